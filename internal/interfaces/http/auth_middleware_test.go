package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stockroom-api/internal/domain/entity"
	apphttp "github.com/invorya/stockroom-api/internal/interfaces/http"
	pkgjwt "github.com/invorya/stockroom-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testEmail     = "tester@stockroom.local"
	testIssuer    = "stockroom-api-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireMinRole sobre la operación indicada
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(op string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	// Ruta protegida: JWT + rol mínimo por operación
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireMinRole(op),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireMinRole — jerarquía user < admin < superadmin
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: rol exacto al mínimo requerido → HTTP 200.
func TestRequireMinRole_AdminAccedeOperacionAdmin(t *testing.T) {
	app := buildTestApp(apphttp.OpItemCreate) // mínimo: admin
	resp := doRequest(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder crear artículos")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, "admin", body["role"], "el role debe ser admin")
}

// Caso 1b: rol superior al mínimo (superadmin en operación admin) → HTTP 200.
func TestRequireMinRole_SuperadminAccedeOperacionAdmin(t *testing.T) {
	app := buildTestApp(apphttp.OpItemCreate)
	resp := doRequest(t, app, tokenForRole(t, "superadmin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"superadmin hereda todo lo que puede hacer admin")
}

// Caso 2: rol inferior al mínimo requerido → HTTP 403 Forbidden.
func TestRequireMinRole_UserBloqueadoEnOperacionAdmin(t *testing.T) {
	app := buildTestApp(apphttp.OpItemCreate)
	resp := doRequest(t, app, tokenForRole(t, "user"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"user no debe poder crear artículos")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 2b: admin bloqueado en operación solo superadmin → HTTP 403.
func TestRequireMinRole_AdminBloqueadoEnOperacionSuperadmin(t *testing.T) {
	app := buildTestApp(apphttp.OpCategoryDelete)
	resp := doRequest(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 2c: rol desconocido nunca pasa, ni siquiera en operación de lectura.
func TestRequireMinRole_RolDesconocidoBloqueado(t *testing.T) {
	app := buildTestApp(apphttp.OpItemList) // mínimo: user
	resp := doRequest(t, app, tokenForRole(t, "gerente"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un rol fuera de la jerarquía no debe pasar ninguna ruta protegida")
}

// Caso 2d: operación no registrada en la tabla exige superadmin.
func TestRequireMinRole_OperacionDesconocidaExigeSuperadmin(t *testing.T) {
	app := buildTestApp("algo.inexistente")

	resp := doRequest(t, app, tokenForRole(t, "admin"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, tokenForRole(t, "superadmin"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

// Caso 3: token sin claim de rol (token legacy) → HTTP 401 MISSING_ROLE.
func TestRequireMinRole_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp(apphttp.OpItemList)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, "", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token sin rol debe retornar 401")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE",
		"la respuesta debe indicar el código MISSING_ROLE")
}

// Caso 4: sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireMinRole_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(apphttp.OpItemList)
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequireMinRole_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(apphttp.OpItemList)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests tabla de permisos
// ──────────────────────────────────────────────────────────────────────────────

func TestMinRoleFor_TablaCentral(t *testing.T) {
	casos := []struct {
		op   string
		want entity.Role
	}{
		{apphttp.OpCategoryList, entity.RoleUser},
		{apphttp.OpCategoryCreate, entity.RoleAdmin},
		{apphttp.OpCategoryDelete, entity.RoleSuperadmin},
		{apphttp.OpItemRead, entity.RoleUser},
		{apphttp.OpItemUpdate, entity.RoleAdmin},
		{apphttp.OpItemDelete, entity.RoleSuperadmin},
		{apphttp.OpUserUpdateRole, entity.RoleSuperadmin},
		{"no.registrada", entity.RoleSuperadmin},
	}
	for _, tc := range casos {
		assert.Equal(t, tc.want, apphttp.MinRoleFor(tc.op), "operación %s", tc.op)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"email":   apphttp.GetEmail(c),
			"role":    string(apphttp.GetRole(c)),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testEmail, body["email"])
	assert.Equal(t, "admin", body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse con role
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ConRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, "superadmin", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, testEmail, claims.Email)
	assert.Equal(t, "superadmin", claims.Role)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
