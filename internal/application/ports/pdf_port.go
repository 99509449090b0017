package ports

import (
	"context"

	"github.com/jhoicas/Pesca-api/internal/domain/entity"
)

// ReceiptGenerator define el puerto de salida para generar el recibo PDF de un
// pedido. La aplicación solo conoce este contrato, no el motor de PDF concreto.
type ReceiptGenerator interface {
	GenerateReceiptPDF(ctx context.Context, pedido *entity.Pedido, owner *entity.User) ([]byte, error)
}
