package resources

import (
	"context"
	"encoding/json"

	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/dispatch"
)

// CatalogsService wraps /v1/catalogs.
type CatalogsService struct {
	executor dispatch.Executor
}

func (s *CatalogsService) List(ctx context.Context, opts ListOptions) (*ListPage, error) {
	return list(ctx, s.executor, "/v1/catalogs", opts)
}

func (s *CatalogsService) Get(ctx context.Context, catalogID string) (json.RawMessage, error) {
	return get(ctx, s.executor, "/v1/catalogs/"+escape(catalogID))
}

func (s *CatalogsService) Create(ctx context.Context, catalog any) (json.RawMessage, error) {
	return create(ctx, s.executor, "/v1/catalogs", catalog)
}

func (s *CatalogsService) Save(ctx context.Context, catalogID string, catalog any) (json.RawMessage, error) {
	return save(ctx, s.executor, "/v1/catalogs/"+escape(catalogID), catalog)
}

func (s *CatalogsService) Patch(ctx context.Context, catalogID string, partial any) (json.RawMessage, error) {
	return patch(ctx, s.executor, "/v1/catalogs/"+escape(catalogID), partial)
}

func (s *CatalogsService) Delete(ctx context.Context, catalogID string) error {
	return del(ctx, s.executor, "/v1/catalogs/"+escape(catalogID))
}
