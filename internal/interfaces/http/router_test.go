package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/attire-api/internal/application/analytics"
	"github.com/jhoicas/attire-api/internal/application/dto"
	"github.com/jhoicas/attire-api/internal/application/inventory"
	"github.com/jhoicas/attire-api/internal/application/sales"
	"github.com/jhoicas/attire-api/internal/application/seed"
	"github.com/jhoicas/attire-api/internal/application/session"
	"github.com/jhoicas/attire-api/internal/application/staff"
	"github.com/jhoicas/attire-api/internal/application/timetracking"
	"github.com/jhoicas/attire-api/internal/infrastructure/localstore"
	"github.com/jhoicas/attire-api/internal/infrastructure/memory"
	"github.com/jhoicas/attire-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/attire-api/internal/interfaces/http"
	"github.com/jhoicas/attire-api/pkg/logger"
)

const (
	ownerEmail    = "deepakadimoolam1412@gmail.com"
	ownerPassword = "Deepak1412"
)

// buildApp arma la API completa sobre un almacén en memoria.
func buildApp(t *testing.T) *fiber.App {
	t.Helper()
	store := localstore.NewStore(memory.NewKVStore(), logger.Nop())
	tx := localstore.NewTxRunner()
	users := localstore.NewUserRepository(store, seed.Users)
	products := localstore.NewProductRepository(store, seed.Products)
	saleRepo := memory.NewSaleRepository(seed.Sales())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		SessionUC: session.NewUseCase(users, localstore.NewSessionRepository(store), tx, session.JWTConfig{
			Secret: "test-secret-key-for-unit-tests", ExpMinutes: 60, Issuer: "attire-test",
		}),
		InventoryUC: inventory.NewUseCase(products, localstore.NewCategoryRepository(store, seed.Categories), tx),
		StaffUC:     staff.NewUseCase(users, tx),
		TimeUC:      timetracking.NewUseCase(localstore.NewTimeEntryRepository(store), users, tx),
		SalesUC:     sales.NewUseCase(saleRepo, pdf.NewMarotoPDFGenerator("Attire Store")),
		AnalyticsUC: analytics.NewUseCase(saleRepo, products, 5),
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: email, Password: password})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out.Token
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	defer resp.Body.Close()
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestRouter_SinSesion_LoginRequired(t *testing.T) {
	app := buildApp(t)
	resp := call(t, app, http.MethodGet, "/api/products", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	e := decodeError(t, resp)
	assert.Equal(t, "LOGIN_REQUIRED", e.Code)
	assert.Equal(t, "/login", e.Redirect)
}

func TestRouter_LoginInvalido(t *testing.T) {
	app := buildApp(t)
	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: ownerEmail, Password: "x"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", decodeError(t, resp).Code)
}

func TestRouter_AdminGestionaCatalogo(t *testing.T) {
	app := buildApp(t)
	token := login(t, app, ownerEmail, ownerPassword)

	resp := call(t, app, http.MethodPost, "/api/products", token, dto.ProductRequest{
		Name: "Ivory Sherwani", Category: "Sherwani", Gender: "Men", Occasion: "Wedding", Stock: 2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	resp = call(t, app, http.MethodGet, "/api/products?gender=Men&occasion=Wedding", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.ProductListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()
	require.Equal(t, 1, list.Total)
	assert.Equal(t, created.ID, list.Items[0].ID)

	resp = call(t, app, http.MethodPost, "/api/categories", token, dto.CategoryRequest{Name: "Sherwani"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	resp = call(t, app, http.MethodPost, "/api/categories", token, dto.CategoryRequest{Name: "Sherwani"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CATEGORY_EXISTS", decodeError(t, resp).Code)

	resp = call(t, app, http.MethodDelete, "/api/products/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = call(t, app, http.MethodGet, "/api/products/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_VendedorNoEscribe(t *testing.T) {
	app := buildApp(t)
	token := login(t, app, "priya.patel@example.com", "password123")

	resp := call(t, app, http.MethodPost, "/api/products", token, dto.ProductRequest{
		Name: "X", Category: "Saree", Gender: "Women", Occasion: "Casual",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodGet, "/api/staff", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodGet, "/api/analytics/dashboard", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestRouter_Fichajes(t *testing.T) {
	app := buildApp(t)
	token := login(t, app, "rohan.sharma@example.com", "password123")

	resp := call(t, app, http.MethodPost, "/api/time/clock-out", token, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "NO_OPEN_SHIFT", decodeError(t, resp).Code)

	resp = call(t, app, http.MethodPost, "/api/time/clock-in", token, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodPost, "/api/time/clock-in", token, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "ALREADY_CLOCKED_IN", decodeError(t, resp).Code)

	resp = call(t, app, http.MethodGet, "/api/time/status", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var st dto.TimeStatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	resp.Body.Close()
	assert.True(t, st.ClockedIn)

	resp = call(t, app, http.MethodPost, "/api/time/clock-out", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestRouter_Personal(t *testing.T) {
	app := buildApp(t)
	token := login(t, app, "tejuvenky277@gmail.com", "Teju9740")

	resp := call(t, app, http.MethodPut, "/api/staff/user-001/role", token, dto.ChangeRoleRequest{Role: "sales"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodPut, "/api/staff/user-003/role", token, dto.ChangeRoleRequest{Role: "admin"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodGet, "/api/staff", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rows []dto.StaffMemberResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	resp.Body.Close()
	assert.Len(t, rows, len(seed.Users()))
}

func TestRouter_RegistroYLogout(t *testing.T) {
	app := buildApp(t)

	resp := call(t, app, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Name: "Dup", Email: "priya.patel@example.com", Password: "x",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "EMAIL_EXISTS", decodeError(t, resp).Code)

	resp = call(t, app, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Name: "Kavya Rao", Email: "kavya@example.com", Password: "secret",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	resp.Body.Close()

	resp = call(t, app, http.MethodGet, "/api/auth/me", out.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodPost, "/api/auth/logout", out.Token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/auth/me", out.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestRouter_PedidosYPDF(t *testing.T) {
	app := buildApp(t)
	token := login(t, app, ownerEmail, ownerPassword)

	resp := call(t, app, http.MethodGet, "/api/sales?status=Pending", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []dto.SaleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()
	assert.Len(t, list, 2)

	resp = call(t, app, http.MethodGet, "/api/sales/ORD-001/pdf", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	resp.Body.Close()

	resp = call(t, app, http.MethodGet, "/api/sales/ORD-999", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodPut, "/api/sales/ORD-003/status", token, dto.UpdateSaleStatusRequest{Status: "Fulfilled"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated dto.SaleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	resp.Body.Close()
	assert.Equal(t, "Fulfilled", updated.Status)

	resp = call(t, app, http.MethodPut, "/api/sales/ORD-003/status", token, dto.UpdateSaleStatusRequest{Status: "Shipped"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodGet, "/api/analytics/dashboard", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var dash dto.DashboardResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&dash))
	resp.Body.Close()
	assert.Equal(t, "890", dash.TotalRevenue.String())
}
