package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Pesca-api/internal/application/auth"
	"github.com/jhoicas/Pesca-api/internal/application/usecase"
	"github.com/jhoicas/Pesca-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	PedidoUC  *usecase.PedidoUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	pedidoHandler := NewPedidoHandler(deps.PedidoUC)

	// Pedidos (requieren Bearer Token, acotados al usuario del token)
	pedidos := app.Group("/pedidos", AuthMiddleware(deps.JWTSecret))
	pedidos.Post("/", pedidoHandler.Create)
	pedidos.Get("/", pedidoHandler.List)
	pedidos.Get("/:id/recibo", pedidoHandler.Receipt)

	// Admin (Bearer Token + rol admin)
	admin := app.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin))
	admin.Get("/pedidos", pedidoHandler.ListAll)
}
