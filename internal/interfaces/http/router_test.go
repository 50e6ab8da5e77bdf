package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stockroom-api/internal/application/auth"
	"github.com/invorya/stockroom-api/internal/application/dto"
	"github.com/invorya/stockroom-api/internal/application/usecase"
	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/infrastructure/memory"
	apphttp "github.com/invorya/stockroom-api/internal/interfaces/http"
)

// apiFixture una API completa sobre los adaptadores en memoria.
type apiFixture struct {
	app   *fiber.App
	users *memory.UserRepo
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	categories := memory.NewCategoryRepository()
	items := memory.NewItemRepository()
	users := memory.NewUserRepository()
	tx := memory.NewTxRunner(categories, items)

	jwtCfg := auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer}
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     auth.NewAuthUseCase(users, jwtCfg),
		CategoryUC: usecase.NewCategoryUseCase(categories, items, tx),
		ItemUC:     usecase.NewItemUseCase(items, categories, nil),
		UserUC:     usecase.NewUserUseCase(users),
		JWTSecret:  testJWTSecret,
	})
	return &apiFixture{app: app, users: users}
}

// do lanza una petición JSON y decodifica la respuesta en out (si no es nil).
func (f *apiFixture) do(t *testing.T, method, path, token string, body, out interface{}) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// register registra un usuario vía API y lo promueve al rol pedido directo en
// el repositorio (la promoción por API exigiría otro superadmin previo).
func (f *apiFixture) register(t *testing.T, email string, role entity.Role) string {
	t.Helper()
	var out dto.LoginResponse
	code := f.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email:    email,
		Password: "contraseña-larga",
	}, &out)
	require.Equal(t, http.StatusCreated, code)

	if role == entity.RoleUser {
		return out.Token
	}
	u, err := f.users.GetByID(out.User.ID)
	require.NoError(t, err)
	u.Role = role
	require.NoError(t, f.users.Update(u))

	// Re-login para obtener un token con el rol nuevo.
	code = f.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    email,
		Password: "contraseña-larga",
	}, &out)
	require.Equal(t, http.StatusOK, code)
	return out.Token
}

// Recorrido completo: categoría → artículo con derivados → invariante de
// stock en actualización parcial → borrado bloqueado por integridad
// referencial.
func TestAPI_FlujoInventarioCompleto(t *testing.T) {
	f := newAPIFixture(t)
	admin := f.register(t, "admin@example.com", entity.RoleAdmin)
	root := f.register(t, "root@example.com", entity.RoleSuperadmin)

	// Crear categoría → 201, slug derivado.
	var cat dto.CategoryResponse
	code := f.do(t, http.MethodPost, "/api/categories", admin,
		dto.CreateCategoryRequest{Name: "Beverages"}, &cat)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "beverages", cat.Slug)

	// Repetir el name → 409.
	var dup dto.ErrorResponse
	code = f.do(t, http.MethodPost, "/api/categories", admin,
		dto.CreateCategoryRequest{Name: "Beverages"}, &dup)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "DUPLICATE", dup.Code)

	// Crear artículo → 201 con precios de venta derivados.
	var item dto.ItemResponse
	code = f.do(t, http.MethodPost, "/api/items", admin, fiber.Map{
		"name":               "Cola",
		"category":           cat.ID,
		"cost_price":         "10",
		"min_profit_percent": "10",
		"max_profit_percent": "50",
		"stock":              5,
		"reorder_level":      2,
	}, &item)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "cola", item.Slug)
	assert.True(t, item.SalePriceMin.Equal(decimal.NewFromInt(11)), "obtenido %s", item.SalePriceMin)
	assert.True(t, item.SalePriceMax.Equal(decimal.NewFromInt(15)), "obtenido %s", item.SalePriceMax)

	// Bajar stock a 1 dejando reorder_level 2 → 400.
	var verr dto.ErrorResponse
	code = f.do(t, http.MethodPatch, "/api/items/cola", admin,
		fiber.Map{"stock": 1}, &verr)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION", verr.Code)

	// Borrar la categoría con Cola dentro → 409.
	code = f.do(t, http.MethodDelete, "/api/categories/beverages", root, nil, &verr)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "CONFLICT", verr.Code)

	// Borrar el artículo y luego la categoría → 200.
	code = f.do(t, http.MethodDelete, "/api/items/cola", root, nil, nil)
	assert.Equal(t, http.StatusOK, code)
	code = f.do(t, http.MethodDelete, "/api/categories/beverages", root, nil, nil)
	assert.Equal(t, http.StatusOK, code)
}

// Los umbrales por operación: lectura abierta a user, escritura admin,
// borrado superadmin.
func TestAPI_UmbralesPorRol(t *testing.T) {
	f := newAPIFixture(t)
	user := f.register(t, "user@example.com", entity.RoleUser)
	admin := f.register(t, "admin@example.com", entity.RoleAdmin)
	root := f.register(t, "root@example.com", entity.RoleSuperadmin)

	var cat dto.CategoryResponse
	code := f.do(t, http.MethodPost, "/api/categories", admin,
		dto.CreateCategoryRequest{Name: "Snacks"}, &cat)
	require.Equal(t, http.StatusCreated, code)

	// user lee pero no escribe.
	assert.Equal(t, http.StatusOK,
		f.do(t, http.MethodGet, "/api/categories/snacks", user, nil, nil))
	assert.Equal(t, http.StatusForbidden,
		f.do(t, http.MethodPost, "/api/categories", user, dto.CreateCategoryRequest{Name: "Dulces"}, nil))

	// admin escribe pero no borra.
	assert.Equal(t, http.StatusForbidden,
		f.do(t, http.MethodDelete, "/api/categories/snacks", admin, nil, nil))

	// superadmin borra.
	assert.Equal(t, http.StatusOK,
		f.do(t, http.MethodDelete, "/api/categories/snacks", root, nil, nil))

	// Sin token no hay acceso ni de lectura.
	assert.Equal(t, http.StatusUnauthorized,
		f.do(t, http.MethodGet, "/api/categories", "", nil, nil))
}

// Gestión de usuarios: solo superadmin, y nadie borra su propia cuenta.
func TestAPI_GestionDeUsuarios(t *testing.T) {
	f := newAPIFixture(t)
	admin := f.register(t, "admin@example.com", entity.RoleAdmin)
	root := f.register(t, "root@example.com", entity.RoleSuperadmin)

	var lista dto.UserListResponse
	assert.Equal(t, http.StatusForbidden,
		f.do(t, http.MethodGet, "/api/users", admin, nil, nil),
		"admin no administra usuarios")
	require.Equal(t, http.StatusOK,
		f.do(t, http.MethodGet, "/api/users", root, nil, &lista))
	require.Len(t, lista.Items, 2)

	var rootID, adminID string
	for _, u := range lista.Items {
		switch u.Email {
		case "root@example.com":
			rootID = u.ID
		case "admin@example.com":
			adminID = u.ID
		}
	}

	// Promover al admin a superadmin.
	var updated dto.UserResponse
	code := f.do(t, http.MethodPatch, fmt.Sprintf("/api/users/%s/role", adminID), root,
		dto.UpdateRoleRequest{Role: "superadmin"}, &updated)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "superadmin", updated.Role)

	// Autoborrado prohibido.
	assert.Equal(t, http.StatusForbidden,
		f.do(t, http.MethodDelete, "/api/users/"+rootID, root, nil, nil))

	// Borrar a otro sí.
	assert.Equal(t, http.StatusOK,
		f.do(t, http.MethodDelete, "/api/users/"+adminID, root, nil, nil))
}

func TestAPI_Me(t *testing.T) {
	f := newAPIFixture(t)
	token := f.register(t, "ana@example.com", entity.RoleUser)

	var me dto.UserResponse
	code := f.do(t, http.MethodGet, "/api/auth/me", token, nil, &me)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ana@example.com", me.Email)
}
