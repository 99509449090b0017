package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Pesca-api/internal/domain"
	"github.com/jhoicas/Pesca-api/internal/domain/entity"
	"github.com/jhoicas/Pesca-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementación del puerto PedidoRepository sobre PostgreSQL.
type PedidoRepo struct {
	pool *pgxpool.Pool
}

// NewPedidoRepository construye el adaptador de persistencia para pedidos.
func NewPedidoRepository(pool *pgxpool.Pool) *PedidoRepo {
	return &PedidoRepo{pool: pool}
}

// Create persiste un nuevo pedido. Un user_id que no resuelve a un usuario
// existente (FK 23503) se mapea a ErrUserNotFound.
func (r *PedidoRepo) Create(pedido *entity.Pedido) error {
	query := `
		INSERT INTO pedidos (id, fecha, producto, precio, user_id)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		pedido.ID, pedido.Fecha, pedido.Producto, pedido.Precio, pedido.UserID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID. Devuelve (nil, nil) si no existe.
func (r *PedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	query := `
		SELECT id, fecha, producto, precio, user_id
		FROM pedidos WHERE id = $1`
	var p entity.Pedido
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Fecha, &p.Producto, &p.Precio, &p.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido by id: %w", err)
	}
	return &p, nil
}

// ListByUser lista los pedidos de un usuario en orden de inserción.
func (r *PedidoRepo) ListByUser(userID string) ([]*entity.Pedido, error) {
	query := `
		SELECT id, fecha, producto, precio, user_id
		FROM pedidos WHERE user_id = $1 ORDER BY fecha ASC, id ASC`
	return r.queryList(query, "list pedidos by user", userID)
}

// ListAll lista pedidos de todos los usuarios con paginación.
func (r *PedidoRepo) ListAll(limit, offset int) ([]*entity.Pedido, error) {
	query := `
		SELECT id, fecha, producto, precio, user_id
		FROM pedidos ORDER BY fecha DESC, id DESC LIMIT $1 OFFSET $2`
	return r.queryList(query, "list pedidos", limit, offset)
}

func (r *PedidoRepo) queryList(query, op string, args ...any) ([]*entity.Pedido, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	list := make([]*entity.Pedido, 0)
	for rows.Next() {
		var p entity.Pedido
		if err := rows.Scan(&p.ID, &p.Fecha, &p.Producto, &p.Precio, &p.UserID); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
