// Package resources provides thin facades over the OrderCloud REST
// resources. Facades carry no business logic: payloads pass through
// opaque, and every facade shares one dispatcher so a token refresh in
// any call path is visible to all of them.
package resources

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/dispatch"
)

// ListMeta is the paging envelope OrderCloud wraps around list results.
type ListMeta struct {
	Page       int   `json:"Page"`
	PageSize   int   `json:"PageSize"`
	TotalCount int   `json:"TotalCount"`
	TotalPages int   `json:"TotalPages"`
	ItemRange  []int `json:"ItemRange,omitempty"`
}

// ListPage is a page of results. Items stay opaque JSON — the platform
// owns the entity shapes.
type ListPage struct {
	Meta  ListMeta        `json:"Meta"`
	Items json.RawMessage `json:"Items"`
}

// Resources bundles every facade built on one shared dispatcher.
type Resources struct {
	Products       *ProductsService
	Catalogs       *CatalogsService
	Categories     *CategoriesService
	Promotions     *PromotionsService
	PriceSchedules *PriceSchedulesService
	Buyers         *BuyersService
	Addresses      *AddressesService
	Suppliers      *SuppliersService
	Orders         *OrdersService
}

// New wires every facade to the same executor.
func New(executor dispatch.Executor) *Resources {
	return &Resources{
		Products:       &ProductsService{executor: executor},
		Catalogs:       &CatalogsService{executor: executor},
		Categories:     &CategoriesService{executor: executor},
		Promotions:     &PromotionsService{executor: executor},
		PriceSchedules: &PriceSchedulesService{executor: executor},
		Buyers:         &BuyersService{executor: executor},
		Addresses:      &AddressesService{executor: executor},
		Suppliers:      &SuppliersService{executor: executor},
		Orders:         &OrdersService{executor: executor},
	}
}

// list issues a GET returning a paged envelope.
func list(ctx context.Context, executor dispatch.Executor, path string, opts ListOptions) (*ListPage, error) {
	var page ListPage
	err := executor.Execute(ctx, dispatch.Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  opts.QueryValues(),
	}, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// get issues a GET returning one opaque entity.
func get(ctx context.Context, executor dispatch.Executor, path string) (json.RawMessage, error) {
	var entity json.RawMessage
	if err := executor.Execute(ctx, dispatch.Request{Method: http.MethodGet, Path: path}, &entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// create issues a POST with an opaque body, returning the created entity.
func create(ctx context.Context, executor dispatch.Executor, path string, body any) (json.RawMessage, error) {
	var entity json.RawMessage
	if err := executor.Execute(ctx, dispatch.Request{Method: http.MethodPost, Path: path, Body: body}, &entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// save issues a PUT (full replace) with an opaque body.
func save(ctx context.Context, executor dispatch.Executor, path string, body any) (json.RawMessage, error) {
	var entity json.RawMessage
	if err := executor.Execute(ctx, dispatch.Request{Method: http.MethodPut, Path: path, Body: body}, &entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// patch issues a PATCH (partial update) with an opaque body.
func patch(ctx context.Context, executor dispatch.Executor, path string, body any) (json.RawMessage, error) {
	var entity json.RawMessage
	if err := executor.Execute(ctx, dispatch.Request{Method: http.MethodPatch, Path: path, Body: body}, &entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// del issues a DELETE expecting an empty body.
func del(ctx context.Context, executor dispatch.Executor, path string) error {
	return executor.Execute(ctx, dispatch.Request{Method: http.MethodDelete, Path: path}, nil)
}

// escape makes a caller-supplied ID safe inside a path segment.
func escape(id string) string {
	return url.PathEscape(id)
}
