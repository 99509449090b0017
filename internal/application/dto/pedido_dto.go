package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePedidoRequest entrada para crear un pedido.
type CreatePedidoRequest struct {
	Producto string          `json:"producto" validate:"required,min=1,max=200"`
	Precio   decimal.Decimal `json:"precio" validate:"required"`
}

// PedidoResponse salida de un pedido (nunca la entidad persistida).
type PedidoResponse struct {
	ID       string          `json:"id"`
	Fecha    time.Time       `json:"fecha"`
	Producto string          `json:"producto"`
	Precio   decimal.Decimal `json:"precio"`
	UserID   string          `json:"user_id"`
}

// PedidoListResponse lista de pedidos del usuario.
type PedidoListResponse struct {
	Items []PedidoResponse `json:"items"`
	Total int              `json:"total"`
}

// AdminPedidoListResponse lista paginada de pedidos de todos los usuarios.
type AdminPedidoListResponse struct {
	Items []PedidoResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
