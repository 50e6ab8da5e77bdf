package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stockroom-api/internal/application/auth"
	"github.com/invorya/stockroom-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CategoryUC *usecase.CategoryUseCase
	ItemUC     *usecase.ItemUseCase
	UserUC     *usecase.UserUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Toda ruta protegida pasa por
// AuthMiddleware y por RequireMinRole con su operación de la tabla de
// permisos; el handler nunca decide autorización por su cuenta.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", RequireMinRole(OpAuthMe), authHandler.Me)

	// Categorías (protegido, direccionadas por slug)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", RequireMinRole(OpCategoryList), categoryHandler.List)
	categories.Post("/", RequireMinRole(OpCategoryCreate), categoryHandler.Create)
	categories.Get("/:slug/items", RequireMinRole(OpCategoryItems), categoryHandler.Items)
	categories.Get("/:slug", RequireMinRole(OpCategoryRead), categoryHandler.GetBySlug)
	categories.Put("/:slug", RequireMinRole(OpCategoryUpdate), categoryHandler.Update)
	categories.Delete("/:slug", RequireMinRole(OpCategoryDelete), categoryHandler.Delete)

	// Artículos (protegido, direccionados por slug)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", RequireMinRole(OpItemList), itemHandler.List)
	items.Post("/", RequireMinRole(OpItemCreate), itemHandler.Create)
	items.Get("/:slug", RequireMinRole(OpItemRead), itemHandler.GetBySlug)
	items.Patch("/:slug", RequireMinRole(OpItemUpdate), itemHandler.Update)
	items.Post("/:slug/photos", RequireMinRole(OpItemPhotos), itemHandler.AddPhotos)
	items.Delete("/:slug", RequireMinRole(OpItemDelete), itemHandler.Delete)

	// Usuarios (protegido, administración)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", RequireMinRole(OpUserList), userHandler.List)
	users.Patch("/:id/role", RequireMinRole(OpUserUpdateRole), userHandler.UpdateRole)
	users.Delete("/:id", RequireMinRole(OpUserDelete), userHandler.Delete)
}
