package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rigforge/internal/config"
	"github.com/rigforge/internal/constants"
	"github.com/rigforge/internal/models"
	"github.com/rigforge/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

type apiResponse struct {
	StatusCode int             `json:"status_code"`
	Msg        string          `json:"msg"`
	Data       json.RawMessage `json:"data"`
}

type testAPI struct {
	t      *testing.T
	engine *gin.Engine
}

func newTestAPI(t *testing.T, enforceAdmin bool) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := models.OpenDB("sqlite", dsn, models.DBPoolConfig{MaxOpenConns: 1, MaxIdleConns: 1}, gormlogger.Silent)
	require.NoError(t, err)
	require.NoError(t, models.MigrateDB(db))
	_, err = models.SeedDemoData(db)
	require.NoError(t, err)

	cfg := &config.Config{
		Server:   config.ServerConfig{Mode: "debug"},
		CORS:     config.CORSConfig{AllowedOrigins: []string{"*"}},
		Security: config.SecurityConfig{EnforceAdminRole: enforceAdmin},
	}
	c, err := provider.NewContainer(cfg, db)
	require.NoError(t, err)
	t.Cleanup(func() {
		c.Close()
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return &testAPI{t: t, engine: SetupRouter(cfg, c)}
}

func (a *testAPI) do(method, path string, body interface{}, headers map[string]string) apiResponse {
	a.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	require.Equal(a.t, http.StatusOK, w.Code)

	var resp apiResponse
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealthAndUnknownRoute(t *testing.T) {
	api := newTestAPI(t, false)

	resp := api.do(http.MethodGet, "/api/v1/health", nil, nil)
	require.Equal(t, 0, resp.StatusCode)
	require.Contains(t, string(resp.Data), `"status":"ok"`)

	resp = api.do(http.MethodGet, "/api/v1/nowhere", nil, nil)
	require.Equal(t, 404, resp.StatusCode)
}

func TestProductRoutes(t *testing.T) {
	api := newTestAPI(t, false)

	resp := api.do(http.MethodGet, "/api/v1/products?category=cpu&cpu_socket=AM5", nil, nil)
	require.Equal(t, 0, resp.StatusCode)
	var products []models.Product
	require.NoError(t, json.Unmarshal(resp.Data, &products))
	require.Len(t, products, 1)
	require.Equal(t, constants.CategoryCPU, products[0].Category)

	resp = api.do(http.MethodGet, "/api/v1/products?min_price=abc", nil, nil)
	require.Equal(t, 400, resp.StatusCode)

	resp = api.do(http.MethodGet, "/api/v1/products?category=psu", nil, nil)
	require.Equal(t, 400, resp.StatusCode)

	resp = api.do(http.MethodGet, "/api/v1/products/9999", nil, nil)
	require.Equal(t, 0, resp.StatusCode)
	require.Equal(t, "null", string(resp.Data))

	resp = api.do(http.MethodGet, "/api/v1/products/abc", nil, nil)
	require.Equal(t, 400, resp.StatusCode)

	resp = api.do(http.MethodGet, "/api/v1/admin/products/low-stock", nil, nil)
	require.Equal(t, 0, resp.StatusCode)
	require.NoError(t, json.Unmarshal(resp.Data, &products))
	require.NotEmpty(t, products)
	for _, p := range products {
		require.LessOrEqual(t, p.StockQuantity, p.LowStockThreshold)
	}
}

func TestAdminProductLifecycle(t *testing.T) {
	api := newTestAPI(t, false)

	resp := api.do(http.MethodPost, "/api/v1/admin/products", map[string]interface{}{
		"name":           "Crucial P3 1TB",
		"brand":          "Crucial",
		"category":       "ssd",
		"price":          59.99,
		"stock_quantity": 4,
		"specs":          map[string]interface{}{"interface": "NVMe", "capacity_gb": 1000},
	}, nil)
	require.Equal(t, 0, resp.StatusCode, resp.Msg)
	var created models.Product
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	require.Equal(t, constants.DefaultLowStockThreshold, created.LowStockThreshold)
	require.True(t, created.IsActive)

	resp = api.do(http.MethodPost, "/api/v1/admin/products", map[string]interface{}{
		"name":     "Bad CPU",
		"brand":    "AMD",
		"category": "cpu",
		"price":    10,
		"specs":    map[string]interface{}{"chipset": "AD102"},
	}, nil)
	require.Equal(t, 400, resp.StatusCode)

	path := fmt.Sprintf("/api/v1/admin/products/%d", created.ID)
	resp = api.do(http.MethodPatch, path, map[string]interface{}{"description": nil, "price": "49.50"}, nil)
	require.Equal(t, 0, resp.StatusCode)
	var updated models.Product
	require.NoError(t, json.Unmarshal(resp.Data, &updated))
	require.Equal(t, "49.50", updated.Price.String())
	require.Nil(t, updated.Description)

	resp = api.do(http.MethodPut, path+"/stock", map[string]interface{}{"stock_quantity": 0}, nil)
	require.Equal(t, 0, resp.StatusCode)
	require.NoError(t, json.Unmarshal(resp.Data, &updated))
	require.Zero(t, updated.StockQuantity)

	resp = api.do(http.MethodPost, path+"/images", map[string]interface{}{"image_url": "not a url"}, nil)
	require.Equal(t, 400, resp.StatusCode)
	resp = api.do(http.MethodPost, path+"/images", map[string]interface{}{"image_url": "https://cdn.example.com/p3.png", "display_order": 1}, nil)
	require.Equal(t, 0, resp.StatusCode)

	resp = api.do(http.MethodDelete, path, nil, nil)
	require.Equal(t, 0, resp.StatusCode)
	require.Equal(t, "true", string(resp.Data))

	resp = api.do(http.MethodDelete, path, nil, nil)
	require.Equal(t, "false", string(resp.Data))
}

func TestCartAndOrderFlow(t *testing.T) {
	api := newTestAPI(t, false)

	// 演示数据中 id=2 的 CPU 库存为 8
	resp := api.do(http.MethodPost, "/api/v1/cart/items", map[string]interface{}{"user_id": 1, "product_id": 2, "quantity": 5}, nil)
	require.Equal(t, 0, resp.StatusCode)
	resp = api.do(http.MethodPost, "/api/v1/cart/items", map[string]interface{}{"user_id": 1, "product_id": 2, "quantity": 5}, map[string]string{"Accept-Language": "en-US"})
	require.Equal(t, 400, resp.StatusCode)
	require.Equal(t, "Insufficient stock", resp.Msg)

	resp = api.do(http.MethodGet, "/api/v1/users/1/cart", nil, nil)
	var items []models.CartItem
	require.NoError(t, json.Unmarshal(resp.Data, &items))
	require.Len(t, items, 1)
	require.Equal(t, 5, items[0].Quantity)

	resp = api.do(http.MethodPost, "/api/v1/orders", map[string]interface{}{
		"user_id":          1,
		"total_amount":     699.99,
		"shipping_address": "1 Main St",
		"billing_address":  "1 Main St",
	}, nil)
	require.Equal(t, 0, resp.StatusCode)
	var order models.Order
	require.NoError(t, json.Unmarshal(resp.Data, &order))
	require.Equal(t, constants.OrderStatusPending, order.Status)

	resp = api.do(http.MethodPost, fmt.Sprintf("/api/v1/orders/%d/items", order.ID), map[string]interface{}{"product_id": 2, "quantity": 1, "price_at_time": 699.99}, nil)
	require.Equal(t, 0, resp.StatusCode)

	resp = api.do(http.MethodPut, fmt.Sprintf("/api/v1/admin/orders/%d/status", order.ID), map[string]interface{}{"status": "teleported"}, nil)
	require.Equal(t, 400, resp.StatusCode)
	resp = api.do(http.MethodPut, fmt.Sprintf("/api/v1/admin/orders/%d/status", order.ID), map[string]interface{}{"status": "shipped"}, nil)
	require.Equal(t, 0, resp.StatusCode)
	require.NoError(t, json.Unmarshal(resp.Data, &order))
	require.Equal(t, constants.OrderStatusShipped, order.Status)
	require.Len(t, order.StatusHistory, 1)

	resp = api.do(http.MethodPut, "/api/v1/admin/orders/9999/status", map[string]interface{}{"status": "shipped"}, nil)
	require.Equal(t, 0, resp.StatusCode)
	require.Equal(t, "null", string(resp.Data))

	resp = api.do(http.MethodPost, "/api/v1/reviews", map[string]interface{}{"user_id": 1, "product_id": 2, "rating": 5, "comment": "fast"}, nil)
	require.Equal(t, 0, resp.StatusCode)
	resp = api.do(http.MethodPost, "/api/v1/reviews", map[string]interface{}{"user_id": 1, "product_id": 2, "rating": 4}, nil)
	require.Equal(t, 409, resp.StatusCode)
	resp = api.do(http.MethodPost, "/api/v1/reviews", map[string]interface{}{"user_id": 1, "product_id": 1, "rating": 4}, nil)
	require.Equal(t, 403, resp.StatusCode)

	resp = api.do(http.MethodDelete, "/api/v1/users/1/cart", nil, nil)
	require.Equal(t, "true", string(resp.Data))
	resp = api.do(http.MethodDelete, "/api/v1/users/1/cart", nil, nil)
	require.Equal(t, "false", string(resp.Data))
}

func TestUserAndWishlistRoutes(t *testing.T) {
	api := newTestAPI(t, false)

	resp := api.do(http.MethodPost, "/api/v1/users", map[string]interface{}{
		"email": "new@example.com", "password": "short", "first_name": "New", "last_name": "User",
	}, map[string]string{"Accept-Language": "en-US"})
	require.Equal(t, 400, resp.StatusCode)
	require.Equal(t, "Password must be at least 8 characters", resp.Msg)

	body := map[string]interface{}{
		"email": "new@example.com", "password": "longenough", "first_name": "New", "last_name": "User",
	}
	resp = api.do(http.MethodPost, "/api/v1/users", body, nil)
	require.Equal(t, 0, resp.StatusCode)
	require.NotContains(t, string(resp.Data), "password")
	resp = api.do(http.MethodPost, "/api/v1/users", body, nil)
	require.Equal(t, 409, resp.StatusCode)

	resp = api.do(http.MethodPost, "/api/v1/wishlist/items", map[string]interface{}{"user_id": 1, "product_id": 1}, nil)
	require.Equal(t, 0, resp.StatusCode)
	var item models.WishlistItem
	require.NoError(t, json.Unmarshal(resp.Data, &item))
	resp = api.do(http.MethodPost, "/api/v1/wishlist/items", map[string]interface{}{"user_id": 1, "product_id": 1}, nil)
	require.Equal(t, 409, resp.StatusCode)

	resp = api.do(http.MethodGet, "/api/v1/users/4242/wishlist", nil, nil)
	require.Equal(t, 404, resp.StatusCode)

	resp = api.do(http.MethodDelete, fmt.Sprintf("/api/v1/wishlist/items/%d", item.ID), nil, nil)
	require.Equal(t, 0, resp.StatusCode)
	resp = api.do(http.MethodDelete, fmt.Sprintf("/api/v1/wishlist/items/%d", item.ID), nil, nil)
	require.Equal(t, 404, resp.StatusCode)
}

func TestAdminRoutesEnforceRole(t *testing.T) {
	api := newTestAPI(t, true)

	resp := api.do(http.MethodGet, "/api/v1/admin/orders", nil, nil)
	require.Equal(t, 403, resp.StatusCode)

	// 演示数据：id=1 为普通用户，id=2 为管理员
	resp = api.do(http.MethodGet, "/api/v1/admin/orders", nil, map[string]string{constants.HeaderUserID: "1"})
	require.Equal(t, 403, resp.StatusCode)

	resp = api.do(http.MethodGet, "/api/v1/admin/dashboard/overview", nil, map[string]string{constants.HeaderUserID: "2"})
	require.Equal(t, 0, resp.StatusCode)
	require.Contains(t, string(resp.Data), `"total_products":5`)

	resp = api.do(http.MethodGet, "/api/v1/admin/authz/permissions", nil, map[string]string{constants.HeaderUserID: "2"})
	require.Equal(t, 0, resp.StatusCode)
	require.Contains(t, string(resp.Data), `"permission":"PUT:/admin/orders/:id/status"`)

	resp = api.do(http.MethodGet, "/api/v1/products", nil, nil)
	require.Equal(t, 0, resp.StatusCode)
}

func TestDeriveAdminPermissionModule(t *testing.T) {
	require.Equal(t, "products", deriveAdminPermissionModule("/admin/products/:id"))
	require.Equal(t, "products", deriveAdminPermissionModule("/admin/product-images/:id"))
	require.Equal(t, "orders", deriveAdminPermissionModule("/admin/orders"))
	require.Equal(t, "health", deriveAdminPermissionModule("/health"))
}

func TestAdminPolicyChangesAreAudited(t *testing.T) {
	api := newTestAPI(t, false)
	admin := map[string]string{constants.HeaderUserID: "2"}
	policy := map[string]string{"role": "auditor", "object": "/api/v1/admin/orders", "action": "get"}

	resp := api.do(http.MethodPost, "/api/v1/admin/authz/policies", policy, admin)
	require.Equal(t, 0, resp.StatusCode)
	resp = api.do(http.MethodDelete, "/api/v1/admin/authz/policies", policy, admin)
	require.Equal(t, 0, resp.StatusCode)
	resp = api.do(http.MethodPost, "/api/v1/admin/authz/policies", map[string]string{"role": "auditor"}, admin)
	require.Equal(t, 400, resp.StatusCode)

	resp = api.do(http.MethodGet, "/api/v1/admin/authz/audit-logs", nil, nil)
	require.Equal(t, 0, resp.StatusCode)
	var logs []models.AuthzAuditLog
	require.NoError(t, json.Unmarshal(resp.Data, &logs))
	require.Len(t, logs, 2)
	require.Equal(t, "revoke_policy", logs[0].Action)
	require.Equal(t, "grant_policy", logs[1].Action)
	require.Equal(t, uint(2), logs[1].OperatorUserID)
	require.Equal(t, "/admin/orders", logs[1].Object)
	require.Equal(t, "GET", logs[1].Method)
	require.NotEmpty(t, logs[1].RequestID)

	resp = api.do(http.MethodGet, "/api/v1/admin/authz/audit-logs?action=grant_policy", nil, nil)
	require.NoError(t, json.Unmarshal(resp.Data, &logs))
	require.Len(t, logs, 1)
}
