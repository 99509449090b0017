package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Pesca-api/internal/application/dto"
	"github.com/jhoicas/Pesca-api/internal/application/ports"
	"github.com/jhoicas/Pesca-api/internal/domain"
	"github.com/jhoicas/Pesca-api/internal/domain/entity"
	"github.com/jhoicas/Pesca-api/internal/domain/repository"
)

// PedidoUseCase casos de uso de pedidos: crear, listar y recibo PDF.
// Todas las operaciones quedan acotadas al usuario autenticado salvo ListAll (admin).
type PedidoUseCase struct {
	pedidoRepo repository.PedidoRepository
	userRepo   repository.UserRepository
	receipts   ports.ReceiptGenerator
}

// NewPedidoUseCase construye el caso de uso de pedidos.
func NewPedidoUseCase(pedidoRepo repository.PedidoRepository, userRepo repository.UserRepository, receipts ports.ReceiptGenerator) *PedidoUseCase {
	return &PedidoUseCase{pedidoRepo: pedidoRepo, userRepo: userRepo, receipts: receipts}
}

// Create persiste un pedido del usuario autenticado y devuelve el DTO creado.
func (uc *PedidoUseCase) Create(userID string, in dto.CreatePedidoRequest) (*dto.PedidoResponse, error) {
	if in.Producto == "" || !in.Precio.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	pedido := &entity.Pedido{
		ID:       uuid.New().String(),
		Fecha:    time.Now(),
		Producto: in.Producto,
		Precio:   in.Precio,
		UserID:   userID,
	}
	if err := uc.pedidoRepo.Create(pedido); err != nil {
		return nil, err
	}
	return toPedidoResponse(pedido), nil
}

// ListByUser devuelve los pedidos del usuario en orden de inserción.
// Sin pedidos no es un error: la lista sale vacía.
func (uc *PedidoUseCase) ListByUser(userID string) (*dto.PedidoListResponse, error) {
	pedidos, err := uc.pedidoRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PedidoResponse, 0, len(pedidos))
	for _, p := range pedidos {
		items = append(items, *toPedidoResponse(p))
	}
	return &dto.PedidoListResponse{Items: items, Total: len(items)}, nil
}

// ListAll lista pedidos de todos los usuarios con paginación (solo admin; el
// control de rol lo hace el middleware).
func (uc *PedidoUseCase) ListAll(limit, offset int) (*dto.AdminPedidoListResponse, error) {
	pedidos, err := uc.pedidoRepo.ListAll(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PedidoResponse, 0, len(pedidos))
	for _, p := range pedidos {
		items = append(items, *toPedidoResponse(p))
	}
	return &dto.AdminPedidoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Receipt genera el recibo PDF de un pedido del usuario. Un pedido inexistente
// y un pedido de otro usuario devuelven ambos ErrNotFound, para no revelar ids ajenos.
func (uc *PedidoUseCase) Receipt(ctx context.Context, userID, pedidoID string) ([]byte, error) {
	pedido, err := uc.pedidoRepo.GetByID(pedidoID)
	if err != nil {
		return nil, err
	}
	if pedido == nil || pedido.UserID != userID {
		return nil, domain.ErrNotFound
	}
	owner, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrUserNotFound
	}
	return uc.receipts.GenerateReceiptPDF(ctx, pedido, owner)
}

func toPedidoResponse(p *entity.Pedido) *dto.PedidoResponse {
	if p == nil {
		return nil
	}
	return &dto.PedidoResponse{
		ID:       p.ID,
		Fecha:    p.Fecha,
		Producto: p.Producto,
		Precio:   p.Precio,
		UserID:   p.UserID,
	}
}
