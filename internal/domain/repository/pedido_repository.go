package repository

import "github.com/jhoicas/Pesca-api/internal/domain/entity"

// PedidoRepository define el puerto de persistencia para Pedido.
// GetByID devuelve (nil, nil) si el pedido no existe.
type PedidoRepository interface {
	Create(pedido *entity.Pedido) error
	GetByID(id string) (*entity.Pedido, error)
	// ListByUser devuelve los pedidos del usuario en orden de inserción
	// (fecha ascendente). Slice vacío si no tiene pedidos.
	ListByUser(userID string) ([]*entity.Pedido, error)
	// ListAll lista pedidos de todos los usuarios con paginación (uso admin).
	ListAll(limit, offset int) ([]*entity.Pedido, error)
}
