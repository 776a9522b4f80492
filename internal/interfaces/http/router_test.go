package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/application/inventory"
	"github.com/jhoicas/Compras-api/internal/application/procurement"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
	"github.com/jhoicas/Compras-api/internal/infrastructure/memory"
	"github.com/jhoicas/Compras-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Compras-api/internal/interfaces/http"
	"github.com/jhoicas/Compras-api/pkg/logger"
)

var today = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return today }

// newAPI arma la API completa sobre almacenamiento en memoria.
func newAPI(jwtSecret string, logOut io.Writer) *fiber.App {
	store := memory.NewStore()
	products, batches, orders, movements := store.Products(), store.Batches(), store.PurchaseOrders(), store.Movements()

	app := fiber.New()
	app.Use(apphttp.RequestLogger(zerolog.New(logOut)))
	txRunner := memory.NewTxRunner(store)
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:     usecase.NewProductUseCase(products, batches, clock),
		BatchUC:       usecase.NewBatchUseCase(batches, products, orders, clock),
		OrderUC:       usecase.NewPurchaseOrderUseCase(orders, clock, false, logger.Nop().Component("purchase_orders")),
		AccountingUC:  usecase.NewAccountingUseCase(movements, orders),
		DeleteOrder:   procurement.NewDeleteOrderUseCase(txRunner),
		DeleteProduct: procurement.NewDeleteProductUseCase(txRunner),
		OrderSheet:    procurement.NewOrderSheetUseCase(orders, batches, products, movements, pdf.NewOrderSheetGenerator(), clock),
		Replenish:     inventory.NewReplenishmentUseCase(products, batches, clock),
		JWTSecret:     jwtSecret,
	})
	return app
}

type client struct {
	t    *testing.T
	app  *fiber.App
	auth string
}

func (c client) do(method, path string, body any) (int, []byte) {
	c.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if c.auth != "" {
		req.Header.Set("Authorization", c.auth)
	}
	resp, err := c.app.Test(req, -1)
	require.NoError(c.t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp.StatusCode, out
}

func (c client) create(path string, body any) map[string]any {
	c.t.Helper()
	status, raw := c.do(http.MethodPost, path, body)
	require.Equal(c.t, http.StatusCreated, status, string(raw))
	var out map[string]any
	require.NoError(c.t, json.Unmarshal(raw, &out))
	return out
}

func decode(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestAPI_FlujoDeCompra(t *testing.T) {
	c := client{t: t, app: newAPI("", io.Discard)}

	product := c.create("/api/products", map[string]any{
		"name": "Leche entera", "description": "Bolsa 1L", "unit_measure_id": "und",
		"stock_max": 100, "stock_min": 20, "reorder_point": 10,
	})
	productID := product["id"].(string)

	order := c.create("/api/purchase-orders", map[string]any{"value": "1500.50", "expected_delivery": "2024-03-10"})
	orderID := order["id"].(string)
	assert.Equal(t, "PENDING", order["status"])

	c.create("/api/batches", map[string]any{
		"purchase_order_id": orderID, "product_id": productID,
		"manufacture_date": "2024-03-01", "expiry_date": "2024-03-20", "quantity": 15,
	})

	status, raw := c.do(http.MethodGet, "/api/products/"+productID+"/stock-status?quantity=0", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ZERO", decode(t, raw)["status"])

	status, raw = c.do(http.MethodGet, "/api/products/"+productID+"/stock-status", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "UNDEFINED", decode(t, raw)["status"])

	status, raw = c.do(http.MethodGet, "/api/products/"+productID+"/stock-status/batches", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "LOW", decode(t, raw)["status"])

	status, raw = c.do(http.MethodGet, "/api/products/replenishment", nil)
	require.Equal(t, http.StatusOK, status)
	items := decode(t, raw)["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, productID, items[0].(map[string]any)["product_id"])
	assert.EqualValues(t, 85, items[0].(map[string]any)["suggested_order_qty"])

	status, raw = c.do(http.MethodGet, "/api/batches/near-expiry", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode(t, raw)["items"], 1)

	status, raw = c.do(http.MethodGet, "/api/batches/expired?date=2024-03-21", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode(t, raw)["items"], 1)

	status, raw = c.do(http.MethodGet, "/api/purchase-orders/overdue", nil)
	require.Equal(t, http.StatusOK, status)
	var overdue []map[string]any
	require.NoError(t, json.Unmarshal(raw, &overdue))
	require.Len(t, overdue, 1)
	assert.Equal(t, orderID, overdue[0]["id"])

	status, _ = c.do(http.MethodDelete, "/api/purchase-orders/"+orderID, nil)
	assert.Equal(t, http.StatusConflict, status)

	status, raw = c.do(http.MethodDelete, "/api/products/"+productID, nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", decode(t, raw)["code"])

	status, raw = c.do(http.MethodGet, "/api/purchase-orders/"+orderID+"/pdf", nil)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestAPI_Balance(t *testing.T) {
	c := client{t: t, app: newAPI("", io.Discard)}
	for i, m := range []map[string]any{
		{"type": "D", "amount": "100.00", "posting_date": "2024-03-01"},
		{"type": "C", "amount": "40.00", "posting_date": "2024-03-02"},
		{"type": "D", "amount": "5.50", "posting_date": "2024-03-03"},
	} {
		m["entry_number"] = i + 1
		m["account_id"] = "1105"
		c.create("/api/accounting-movements", m)
	}

	status, raw := c.do(http.MethodGet, "/api/accounting-movements/balance?account_id=1105", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "65.5", decode(t, raw)["balance"])

	status, raw = c.do(http.MethodGet, "/api/accounting-movements/balance?account_id=1105&from=2024-03-02&to=2024-03-02", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "-40", decode(t, raw)["balance"])

	status, raw = c.do(http.MethodGet, "/api/accounting-movements/balance?account_id=1105&from=2024-03-02", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", decode(t, raw)["code"])

	status, _ = c.do(http.MethodPost, "/api/accounting-movements", map[string]any{
		"entry_number": 1, "account_id": "1105", "type": "D", "amount": "1", "posting_date": "2024-03-04",
	})
	assert.Equal(t, http.StatusConflict, status)
}

func TestAPI_ErroresMapeados(t *testing.T) {
	c := client{t: t, app: newAPI("", io.Discard)}

	status, raw := c.do(http.MethodGet, "/api/products/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", decode(t, raw)["code"])

	status, _ = c.do(http.MethodGet, "/api/batches/valid?date=15-03-2024", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = c.do(http.MethodGet, "/api/products/x/stock-status?quantity=muchos", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = c.do(http.MethodPost, "/api/purchase-orders", map[string]any{"value": "10", "expected_delivery": "2024-03-10", "status": "LOST"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAPI_AutenticacionYRoles(t *testing.T) {
	app := newAPI(testJWTSecret, io.Discard)

	anon := client{t: t, app: app}
	status, _ := anon.do(http.MethodGet, "/api/products", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	buyer := client{t: t, app: app, auth: tokenForRole(t, "compras")}
	order := buyer.create("/api/purchase-orders", map[string]any{"value": "10", "expected_delivery": "2024-04-01"})
	path := "/api/purchase-orders/" + order["id"].(string)

	status, _ = buyer.do(http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusForbidden, status)

	admin := client{t: t, app: app, auth: tokenForRole(t, "admin")}
	status, _ = admin.do(http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, status)

	status, _ = admin.do(http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRequestLogger_RegistraPeticiones(t *testing.T) {
	var buf bytes.Buffer
	c := client{t: t, app: newAPI("", &buf)}

	c.do(http.MethodGet, "/api/products/no-existe", nil)

	assert.Contains(t, buf.String(), `"status":404`)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"path":"/api/products/no-existe"`)
}

func TestAPI_ValidacionDeCuerpo(t *testing.T) {
	c := client{t: t, app: newAPI("", io.Discard)}

	cases := []struct {
		name, method, path string
		body               any
		contains           string
	}{
		{"fecha mal formada", http.MethodPost, "/api/purchase-orders",
			map[string]any{"value": "10", "expected_delivery": "10/03/2024"}, "expected_delivery debe tener formato YYYY-MM-DD"},
		{"estado desconocido", http.MethodPost, "/api/purchase-orders",
			map[string]any{"value": "10", "expected_delivery": "2024-03-10", "status": "LOST"}, "status debe ser"},
		{"tipo de asiento", http.MethodPost, "/api/accounting-movements",
			map[string]any{"entry_number": 1, "account_id": "1105", "type": "X", "amount": "1", "posting_date": "2024-03-01"}, "type debe ser D o C"},
		{"asiento sin número", http.MethodPost, "/api/accounting-movements",
			map[string]any{"account_id": "1105", "type": "D", "amount": "1", "posting_date": "2024-03-01"}, "entry_number es requerido"},
		{"producto sin unidad", http.MethodPost, "/api/products",
			map[string]any{"name": "Sal", "description": "Bolsa"}, "unit_measure_id es requerido"},
		{"stock_max cero", http.MethodPost, "/api/products",
			map[string]any{"name": "Sal", "description": "Bolsa", "unit_measure_id": "und", "stock_max": 0}, "stock_max no cumple min=1"},
		{"cantidad ausente", http.MethodPatch, "/api/batches/b-1/quantity",
			map[string]any{}, "quantity es requerido"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, raw := c.do(tc.method, tc.path, tc.body)
			require.Equal(t, http.StatusBadRequest, status, string(raw))
			body := decode(t, raw)
			assert.Equal(t, "VALIDATION", body["code"])
			assert.Contains(t, body["message"], tc.contains)
		})
	}

	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader([]byte("{nombre")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "INVALID_BODY", decode(t, raw)["code"])
}

func TestAPI_TipoDeAsientoEnMinusculas(t *testing.T) {
	c := client{t: t, app: newAPI("", io.Discard)}

	out := c.create("/api/accounting-movements", map[string]any{
		"entry_number": 7, "account_id": "2205", "type": "c", "amount": "12.30", "posting_date": "2024-03-01",
	})
	assert.Equal(t, "C", out["type"])
}

func TestAPI_ProductosConCodigoDeBarrasVacio(t *testing.T) {
	c := client{t: t, app: newAPI("", io.Discard)}

	for _, name := range []string{"Azúcar", "Panela"} {
		out := c.create("/api/products", map[string]any{
			"name": name, "description": "Bolsa 1kg", "unit_measure_id": "und", "barcode": "",
		})
		assert.NotContains(t, out, "barcode")
	}
}

func TestAPI_PaginaSinTotal(t *testing.T) {
	c := client{t: t, app: newAPI("", io.Discard)}
	for _, name := range []string{"Arroz", "Frijol"} {
		c.create("/api/products", map[string]any{"name": name, "description": "Bolsa 500g", "unit_measure_id": "und"})
	}

	status, raw := c.do(http.MethodGet, "/api/products?limit=1&offset=1", nil)
	require.Equal(t, http.StatusOK, status)
	body := decode(t, raw)
	assert.Len(t, body["items"], 1)
	assert.Equal(t, map[string]any{"limit": float64(1), "offset": float64(1)}, body["page"])
}
