package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stockroom-api/internal/application/dto"
	"github.com/invorya/stockroom-api/internal/domain/entity"
)

// Operaciones protegidas de la API. Cada ruta del router declara la suya.
const (
	OpCategoryList   = "category.list"
	OpCategoryRead   = "category.read"
	OpCategoryItems  = "category.items"
	OpCategoryCreate = "category.create"
	OpCategoryUpdate = "category.update"
	OpCategoryDelete = "category.delete"

	OpItemList   = "item.list"
	OpItemRead   = "item.read"
	OpItemCreate = "item.create"
	OpItemUpdate = "item.update"
	OpItemPhotos = "item.photos"
	OpItemDelete = "item.delete"

	OpAuthMe = "auth.me"

	OpUserList       = "user.list"
	OpUserUpdateRole = "user.update_role"
	OpUserDelete     = "user.delete"
)

// minRoleByOp es la única tabla de umbrales de rol: lecturas abiertas a
// cualquier rol autenticado, creación/actualización desde admin, borrados
// destructivos solo superadmin. Ninguna ruta fija roles por su cuenta; así no
// hay literales sueltos que deriven entre iteraciones.
var minRoleByOp = map[string]entity.Role{
	OpCategoryList:   entity.RoleUser,
	OpCategoryRead:   entity.RoleUser,
	OpCategoryItems:  entity.RoleUser,
	OpCategoryCreate: entity.RoleAdmin,
	OpCategoryUpdate: entity.RoleAdmin,
	OpCategoryDelete: entity.RoleSuperadmin,

	OpItemList:   entity.RoleUser,
	OpItemRead:   entity.RoleUser,
	OpItemCreate: entity.RoleAdmin,
	OpItemUpdate: entity.RoleAdmin,
	OpItemPhotos: entity.RoleAdmin,
	OpItemDelete: entity.RoleSuperadmin,

	OpAuthMe: entity.RoleUser,

	OpUserList:       entity.RoleSuperadmin,
	OpUserUpdateRole: entity.RoleSuperadmin,
	OpUserDelete:     entity.RoleSuperadmin,
}

// MinRoleFor devuelve el rol mínimo de una operación. Operación desconocida
// exige superadmin: mejor cerrar de más que abrir de más.
func MinRoleFor(op string) entity.Role {
	if r, ok := minRoleByOp[op]; ok {
		return r
	}
	return entity.RoleSuperadmin
}

// RequireMinRole autoriza la operación comparando el rol del token contra la
// tabla central. Debe usarse DESPUÉS de AuthMiddleware: la ausencia de token
// ya respondió 401 antes de llegar aquí.
func RequireMinRole(op string) fiber.Handler {
	min := MinRoleFor(op)
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		if !role.AtLeast(min) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol insuficiente para esta operación"})
		}
		return c.Next()
	}
}
