package resources_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/dispatch"
	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/dispatch/dispatchfakes"
	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/resources"
)

type testFixture struct {
	executor  *dispatchfakes.FakeExecutor
	resources *resources.Resources
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()
	executor := dispatchfakes.NewFakeExecutor()
	return &testFixture{executor: executor, resources: resources.New(executor)}
}

func TestProductsListBuildsQuery(t *testing.T) {
	f := setupTestFixture(t)
	f.executor.Handler = func(dispatch.Request) (json.RawMessage, error) {
		return json.RawMessage(`{"Meta":{"Page":2,"PageSize":10,"TotalCount":35,"TotalPages":4},"Items":[{"ID":"P1"}]}`), nil
	}

	filters := url.Values{}
	filters.Set("Active", "true")
	page, err := f.resources.Products.List(context.Background(), resources.ListOptions{
		Search:   "widget",
		SearchOn: []string{"Name", "Description"},
		SortBy:   []string{"!Name"},
		Page:     2,
		PageSize: 10,
		Filters:  filters,
	})
	require.NoError(t, err)
	require.Equal(t, 35, page.Meta.TotalCount)
	require.JSONEq(t, `[{"ID":"P1"}]`, string(page.Items))

	req := f.executor.LastRequest()
	require.Equal(t, http.MethodGet, req.Method)
	require.Equal(t, "/v1/products", req.Path)
	require.Equal(t, "widget", req.Query.Get("search"))
	require.Equal(t, "Name,Description", req.Query.Get("searchOn"))
	require.Equal(t, "!Name", req.Query.Get("sortBy"))
	require.Equal(t, "2", req.Query.Get("page"))
	require.Equal(t, "10", req.Query.Get("pageSize"))
	require.Equal(t, "true", req.Query.Get("Active"))
}

func TestProductsCRUDPaths(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()

	_, err := f.resources.Products.Get(ctx, "PROD-1")
	require.NoError(t, err)
	require.Equal(t, "/v1/products/PROD-1", f.executor.LastRequest().Path)

	_, err = f.resources.Products.Create(ctx, map[string]string{"Name": "Widget"})
	require.NoError(t, err)
	require.Equal(t, http.MethodPost, f.executor.LastRequest().Method)
	require.Equal(t, "/v1/products", f.executor.LastRequest().Path)

	_, err = f.resources.Products.Save(ctx, "PROD-1", map[string]string{"Name": "Widget"})
	require.NoError(t, err)
	require.Equal(t, http.MethodPut, f.executor.LastRequest().Method)

	_, err = f.resources.Products.Patch(ctx, "PROD-1", map[string]string{"Name": "Gadget"})
	require.NoError(t, err)
	require.Equal(t, http.MethodPatch, f.executor.LastRequest().Method)

	require.NoError(t, f.resources.Products.Delete(ctx, "PROD-1"))
	require.Equal(t, http.MethodDelete, f.executor.LastRequest().Method)
	require.Equal(t, "/v1/products/PROD-1", f.executor.LastRequest().Path)
}

func TestPathSegmentsAreEscaped(t *testing.T) {
	f := setupTestFixture(t)

	_, err := f.resources.Products.Get(context.Background(), "weird/id with spaces")
	require.NoError(t, err)
	require.Equal(t, "/v1/products/weird%2Fid%20with%20spaces", f.executor.LastRequest().Path)
}

func TestCategoriesAreCatalogScoped(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()

	_, err := f.resources.Categories.List(ctx, "CATALOG-1", resources.ListOptions{})
	require.NoError(t, err)
	require.Equal(t, "/v1/catalogs/CATALOG-1/categories", f.executor.LastRequest().Path)

	_, err = f.resources.Categories.Get(ctx, "CATALOG-1", "CAT-9")
	require.NoError(t, err)
	require.Equal(t, "/v1/catalogs/CATALOG-1/categories/CAT-9", f.executor.LastRequest().Path)
}

func TestAddressesAreBuyerScoped(t *testing.T) {
	f := setupTestFixture(t)

	_, err := f.resources.Addresses.Create(context.Background(), "BUYER-1", map[string]string{"Street1": "1 Main St"})
	require.NoError(t, err)
	require.Equal(t, http.MethodPost, f.executor.LastRequest().Method)
	require.Equal(t, "/v1/buyers/BUYER-1/addresses", f.executor.LastRequest().Path)
}

func TestPriceBreakEndpoints(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()

	_, err := f.resources.PriceSchedules.SavePriceBreak(ctx, "PS-1", map[string]any{"Quantity": 10, "Price": 9.99})
	require.NoError(t, err)
	require.Equal(t, http.MethodPost, f.executor.LastRequest().Method)
	require.Equal(t, "/v1/priceschedules/PS-1/PriceBreaks", f.executor.LastRequest().Path)

	require.NoError(t, f.resources.PriceSchedules.DeletePriceBreak(ctx, "PS-1", 10))
	req := f.executor.LastRequest()
	require.Equal(t, http.MethodDelete, req.Method)
	require.Equal(t, "/v1/priceschedules/PS-1/PriceBreaks", req.Path)
	require.Equal(t, "10", req.Query.Get("quantity"))
}

func TestOrdersRequireValidDirection(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()

	_, err := f.resources.Orders.List(ctx, "sideways", resources.ListOptions{})
	require.Error(t, err)
	require.Empty(t, f.executor.Requests(), "invalid direction must not reach the wire")

	_, err = f.resources.Orders.List(ctx, resources.OrderIncoming, resources.ListOptions{})
	require.NoError(t, err)
	require.Equal(t, "/v1/orders/incoming", f.executor.LastRequest().Path)

	_, err = f.resources.Orders.Get(ctx, resources.OrderOutgoing, "ORDER-1")
	require.NoError(t, err)
	require.Equal(t, "/v1/orders/outgoing/ORDER-1", f.executor.LastRequest().Path)
}

func TestOrderSubmit(t *testing.T) {
	f := setupTestFixture(t)

	_, err := f.resources.Orders.Submit(context.Background(), resources.OrderIncoming, "ORDER-1")
	require.NoError(t, err)
	require.Equal(t, http.MethodPost, f.executor.LastRequest().Method)
	require.Equal(t, "/v1/orders/incoming/ORDER-1/submit", f.executor.LastRequest().Path)
}

func TestExecutorErrorsPassThrough(t *testing.T) {
	f := setupTestFixture(t)
	f.executor.Handler = func(dispatch.Request) (json.RawMessage, error) {
		return nil, context.DeadlineExceeded
	}

	_, err := f.resources.Buyers.Get(context.Background(), "BUYER-1")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
