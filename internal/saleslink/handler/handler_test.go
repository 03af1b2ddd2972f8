package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/bitfantasy/nimo-saleslink/internal/saleslink/entity"
	"github.com/bitfantasy/nimo-saleslink/internal/saleslink/repository"
	"github.com/bitfantasy/nimo-saleslink/internal/saleslink/service"
	"github.com/bitfantasy/nimo-saleslink/internal/saleslink/testutil"
	"github.com/bitfantasy/nimo-saleslink/internal/shared/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const basePath = "/api/v1/saleslink"

func setupHandlerTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)

	tr, err := i18n.NewTranslator("en", service.Catalogs()...)
	if err != nil {
		t.Fatalf("Failed to create translator: %v", err)
	}
	svcs := service.NewServices(repository.NewRepositories(db), tr, zap.NewNop(), service.Options{
		ExistingLinkPolicy: service.PolicyRedirect,
	})

	router := testutil.SetupRouter()
	NewHandlers(svcs).Register(testutil.AuthGroup(router, basePath))

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

func seedConvertible(t *testing.T, env *testutil.TestEnv) *entity.SalesOrder {
	t.Helper()
	unit := testutil.SeedUom(t, env.DB, "Unit")
	p := testutil.SeedProduct(t, env.DB, &entity.Product{Name: "Product A", UomID: &unit.ID})
	testutil.SeedPartner(t, env.DB, "Acme Co.", 1, time.Now())
	return testutil.SeedSalesOrder(t, env.DB, "SO-2026-0001", testutil.ProductLine(p.ID, "5", &unit.ID))
}

func dataOf(t *testing.T, resp map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := resp["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected data object, got %v", resp["data"])
	}
	return data
}

func TestCreatePurchaseOrder_ByPath(t *testing.T) {
	env := setupHandlerTest(t)
	so := seedConvertible(t, env)

	w := testutil.DoRequest(env.Router, http.MethodPost, basePath+"/sales-orders/"+so.ID+"/create-purchase-order", nil, testutil.DefaultTestToken())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := testutil.ParseResponse(w)
	assert.Equal(t, float64(0), resp["code"])
	action := dataOf(t, resp)
	assert.Equal(t, "ir.actions.act_window", action["type"])
	assert.Equal(t, "purchase.order", action["res_model"])
	assert.Equal(t, "form", action["view_mode"])
	assert.Equal(t, "current", action["target"])
	poID, _ := action["res_id"].(string)
	require.NotEmpty(t, poID)

	w = testutil.DoRequest(env.Router, http.MethodGet, basePath+"/purchase-orders/"+poID, nil, testutil.DefaultTestToken())
	require.Equal(t, http.StatusOK, w.Code)
	po := dataOf(t, testutil.ParseResponse(w))
	assert.Equal(t, so.ID, po["sale_order_id"])
	assert.Equal(t, "test-user-001", po["created_by"])
	lines, _ := po["order_line"].([]interface{})
	assert.Len(t, lines, 1)
}

func TestCreatePurchaseOrder_ByActionBody(t *testing.T) {
	env := setupHandlerTest(t)
	so := seedConvertible(t, env)
	other := testutil.SeedSalesOrder(t, env.DB, "SO-OTHER")

	path := basePath + "/sales-orders/actions/create-purchase-order"

	w := testutil.DoRequest(env.Router, http.MethodPost, path, ActionRequest{IDs: []string{so.ID, other.ID}}, testutil.DefaultTestToken())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, float64(40000), testutil.ParseResponse(w)["code"])

	w = testutil.DoRequest(env.Router, http.MethodPost, path, ActionRequest{IDs: []string{so.ID}}, testutil.DefaultTestToken())
	assert.Equal(t, http.StatusOK, w.Code)

	w = testutil.DoRequest(env.Router, http.MethodPost, path, nil, testutil.DefaultTestToken())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePurchaseOrder_ValidationFailure(t *testing.T) {
	env := setupHandlerTest(t)
	so := testutil.SeedSalesOrder(t, env.DB, "SO-EMPTY")

	w := testutil.DoRequest(env.Router, http.MethodPost, basePath+"/sales-orders/"+so.ID+"/create-purchase-order", nil, testutil.DefaultTestToken())
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := testutil.ParseResponse(w)
	assert.Equal(t, float64(42200), resp["code"])
	assert.Contains(t, resp["message"], "no lines")
}

func TestCreatePurchaseOrder_LocalizedMessage(t *testing.T) {
	env := setupHandlerTest(t)
	so := testutil.SeedSalesOrder(t, env.DB, "SO-EMPTY")

	w := testutil.DoRequestWithHeaders(env.Router, http.MethodPost, basePath+"/sales-orders/"+so.ID+"/create-purchase-order", nil,
		testutil.DefaultTestToken(), map[string]string{"Accept-Language": "zh-CN"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "无法创建采购订单：销售订单没有明细行。", testutil.ParseResponse(w)["message"])
}

func TestCreatePurchaseOrder_RequiresPermission(t *testing.T) {
	env := setupHandlerTest(t)
	so := seedConvertible(t, env)
	readOnly := testutil.GenerateTestToken("viewer", "Viewer", nil, []string{"saleslink:read"})

	w := testutil.DoRequest(env.Router, http.MethodPost, basePath+"/sales-orders/"+so.ID+"/create-purchase-order", nil, readOnly)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = testutil.DoRequest(env.Router, http.MethodPost, basePath+"/sales-orders/"+so.ID+"/create-purchase-order", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	writer := testutil.GenerateTestToken("writer", "Writer", nil, []string{PermWrite})
	w = testutil.DoRequest(env.Router, http.MethodPost, basePath+"/sales-orders/"+so.ID+"/create-purchase-order", nil, writer)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestViewPurchaseOrders(t *testing.T) {
	env := setupHandlerTest(t)
	so := seedConvertible(t, env)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(env.Router, http.MethodPost, basePath+"/sales-orders/"+so.ID+"/view-purchase-orders", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, float64(40400), testutil.ParseResponse(w)["code"])

	w = testutil.DoRequest(env.Router, http.MethodPost, basePath+"/sales-orders/"+so.ID+"/create-purchase-order", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	poID := dataOf(t, testutil.ParseResponse(w))["res_id"]

	w = testutil.DoRequest(env.Router, http.MethodPost, basePath+"/sales-orders/actions/view-purchase-orders", ActionRequest{IDs: []string{so.ID}}, token)
	require.Equal(t, http.StatusOK, w.Code)
	action := dataOf(t, testutil.ParseResponse(w))
	assert.Equal(t, "form", action["view_mode"])
	assert.Equal(t, poID, action["res_id"])
}

func TestViewPurchaseOrders_ListDomain(t *testing.T) {
	env := setupHandlerTest(t)
	so := testutil.SeedSalesOrder(t, env.DB, "SO-1")
	vendor := testutil.SeedPartner(t, env.DB, "Vendor", 1, time.Now())
	repos := repository.NewRepositories(env.DB)
	for _, name := range []string{"PO-X-1", "PO-X-2"} {
		require.NoError(t, repos.Purchase.Create(context.Background(), &entity.PurchaseOrder{
			Name: name, PartnerID: vendor.ID, CompanyID: "c", Currency: "CNY", State: entity.POStateDraft, SaleOrderID: &so.ID,
		}))
	}

	w := testutil.DoRequest(env.Router, http.MethodPost, basePath+"/sales-orders/"+so.ID+"/view-purchase-orders", nil, testutil.DefaultTestToken())
	require.Equal(t, http.StatusOK, w.Code)
	action := dataOf(t, testutil.ParseResponse(w))
	assert.Equal(t, "list,form", action["view_mode"])
	assert.NotContains(t, action, "res_id")

	domain, _ := action["domain"].([]interface{})
	require.Len(t, domain, 1)
	cond, _ := domain[0].([]interface{})
	require.Len(t, cond, 3)
	assert.Equal(t, "id", cond[0])
	assert.Equal(t, "in", cond[1])
	ids, _ := cond[2].([]interface{})
	assert.Len(t, ids, 2)
}

func TestViewSalesOrder(t *testing.T) {
	env := setupHandlerTest(t)
	so := seedConvertible(t, env)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(env.Router, http.MethodPost, basePath+"/sales-orders/"+so.ID+"/create-purchase-order", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	poID, _ := dataOf(t, testutil.ParseResponse(w))["res_id"].(string)

	w = testutil.DoRequest(env.Router, http.MethodPost, basePath+"/purchase-orders/"+poID+"/view-sales-order", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	action := dataOf(t, testutil.ParseResponse(w))
	assert.Equal(t, "sale.order", action["res_model"])
	assert.Equal(t, so.ID, action["res_id"])

	w = testutil.DoRequest(env.Router, http.MethodPost, basePath+"/purchase-orders/actions/view-sales-order", ActionRequest{}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCopyPurchaseOrder(t *testing.T) {
	env := setupHandlerTest(t)
	so := seedConvertible(t, env)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(env.Router, http.MethodPost, basePath+"/sales-orders/"+so.ID+"/create-purchase-order", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	poID, _ := dataOf(t, testutil.ParseResponse(w))["res_id"].(string)

	w = testutil.DoRequest(env.Router, http.MethodPost, basePath+"/purchase-orders/"+poID+"/copy", nil, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	dup := dataOf(t, testutil.ParseResponse(w))
	assert.NotEqual(t, poID, dup["id"])
	assert.Nil(t, dup["sale_order_id"])

	w = testutil.DoRequest(env.Router, http.MethodPost, basePath+"/purchase-orders/missing/copy", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSalesOrder(t *testing.T) {
	env := setupHandlerTest(t)
	so := seedConvertible(t, env)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(env.Router, http.MethodGet, basePath+"/sales-orders/"+so.ID, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), dataOf(t, testutil.ParseResponse(w))["purchase_order_count"])

	testutil.DoRequest(env.Router, http.MethodPost, basePath+"/sales-orders/"+so.ID+"/create-purchase-order", nil, token)

	w = testutil.DoRequest(env.Router, http.MethodGet, basePath+"/sales-orders/"+so.ID, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, testutil.ParseResponse(w))
	assert.Equal(t, float64(1), data["purchase_order_count"])
	assert.Equal(t, "SO-2026-0001", data["name"])

	w = testutil.DoRequest(env.Router, http.MethodGet, basePath+"/sales-orders/"+so.ID+"/purchase-orders", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	list, _ := testutil.ParseResponse(w)["data"].([]interface{})
	assert.Len(t, list, 1)

	w = testutil.DoRequest(env.Router, http.MethodGet, basePath+"/sales-orders/missing", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
