package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Pesca-api/internal/domain"
	"github.com/jhoicas/Pesca-api/internal/domain/entity"
	"github.com/jhoicas/Pesca-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste un nuevo usuario. Una violación del índice único de username
// o de email se mapea al error de dominio correspondiente.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, nombre, apellido, username, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Nombre, user.Apellido, user.Username, user.Email,
		user.PasswordHash, user.Role, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			if strings.Contains(constraintName(err), "email") {
				return domain.ErrEmailAlreadyExists
			}
			return domain.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `
		SELECT id, nombre, apellido, username, email, password_hash, role, created_at
		FROM users WHERE id = $1`
	return r.queryOne(query, id, "get user by id")
}

// GetByUsername obtiene un usuario por username canónico. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	query := `
		SELECT id, nombre, apellido, username, email, password_hash, role, created_at
		FROM users WHERE username = $1`
	return r.queryOne(query, username, "get user by username")
}

func (r *UserRepo) queryOne(query, arg, op string) (*entity.User, error) {
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Nombre, &u.Apellido, &u.Username, &u.Email,
		&u.PasswordHash, &u.Role, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}
