package entity

import "time"

// Roles válidos para User.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User representa una cuenta de la tienda.
type User struct {
	ID           string
	Nombre       string
	Apellido     string
	Username     string // único, ya canonicalizado
	Email        string
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	Role         string // user, admin
	CreatedAt    time.Time
}
