package resources

import (
	"context"
	"encoding/json"

	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/dispatch"
)

// ProductsService wraps /v1/products.
type ProductsService struct {
	executor dispatch.Executor
}

func (s *ProductsService) List(ctx context.Context, opts ListOptions) (*ListPage, error) {
	return list(ctx, s.executor, "/v1/products", opts)
}

func (s *ProductsService) Get(ctx context.Context, productID string) (json.RawMessage, error) {
	return get(ctx, s.executor, "/v1/products/"+escape(productID))
}

func (s *ProductsService) Create(ctx context.Context, product any) (json.RawMessage, error) {
	return create(ctx, s.executor, "/v1/products", product)
}

func (s *ProductsService) Save(ctx context.Context, productID string, product any) (json.RawMessage, error) {
	return save(ctx, s.executor, "/v1/products/"+escape(productID), product)
}

func (s *ProductsService) Patch(ctx context.Context, productID string, partial any) (json.RawMessage, error) {
	return patch(ctx, s.executor, "/v1/products/"+escape(productID), partial)
}

func (s *ProductsService) Delete(ctx context.Context, productID string) error {
	return del(ctx, s.executor, "/v1/products/"+escape(productID))
}
