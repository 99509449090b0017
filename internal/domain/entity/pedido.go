package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pedido representa una compra de un artículo de pesca. Pertenece a exactamente
// un User y es de solo lectura después de creado.
type Pedido struct {
	ID       string
	Fecha    time.Time
	Producto string
	Precio   decimal.Decimal // NUMERIC en DB, nunca float
	UserID   string
}
