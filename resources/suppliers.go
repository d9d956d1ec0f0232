package resources

import (
	"context"
	"encoding/json"

	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/dispatch"
)

// SuppliersService wraps /v1/suppliers.
type SuppliersService struct {
	executor dispatch.Executor
}

func (s *SuppliersService) List(ctx context.Context, opts ListOptions) (*ListPage, error) {
	return list(ctx, s.executor, "/v1/suppliers", opts)
}

func (s *SuppliersService) Get(ctx context.Context, supplierID string) (json.RawMessage, error) {
	return get(ctx, s.executor, "/v1/suppliers/"+escape(supplierID))
}

func (s *SuppliersService) Create(ctx context.Context, supplier any) (json.RawMessage, error) {
	return create(ctx, s.executor, "/v1/suppliers", supplier)
}

func (s *SuppliersService) Save(ctx context.Context, supplierID string, supplier any) (json.RawMessage, error) {
	return save(ctx, s.executor, "/v1/suppliers/"+escape(supplierID), supplier)
}

func (s *SuppliersService) Patch(ctx context.Context, supplierID string, partial any) (json.RawMessage, error) {
	return patch(ctx, s.executor, "/v1/suppliers/"+escape(supplierID), partial)
}

func (s *SuppliersService) Delete(ctx context.Context, supplierID string) error {
	return del(ctx, s.executor, "/v1/suppliers/"+escape(supplierID))
}
