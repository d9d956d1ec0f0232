package resources

import (
	"context"
	"encoding/json"

	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/dispatch"
)

// CategoriesService wraps /v1/catalogs/{catalogID}/categories. Every
// operation is scoped to a catalog.
type CategoriesService struct {
	executor dispatch.Executor
}

func (s *CategoriesService) List(ctx context.Context, catalogID string, opts ListOptions) (*ListPage, error) {
	return list(ctx, s.executor, categoriesPath(catalogID), opts)
}

func (s *CategoriesService) Get(ctx context.Context, catalogID, categoryID string) (json.RawMessage, error) {
	return get(ctx, s.executor, categoriesPath(catalogID)+"/"+escape(categoryID))
}

func (s *CategoriesService) Create(ctx context.Context, catalogID string, category any) (json.RawMessage, error) {
	return create(ctx, s.executor, categoriesPath(catalogID), category)
}

func (s *CategoriesService) Save(ctx context.Context, catalogID, categoryID string, category any) (json.RawMessage, error) {
	return save(ctx, s.executor, categoriesPath(catalogID)+"/"+escape(categoryID), category)
}

func (s *CategoriesService) Patch(ctx context.Context, catalogID, categoryID string, partial any) (json.RawMessage, error) {
	return patch(ctx, s.executor, categoriesPath(catalogID)+"/"+escape(categoryID), partial)
}

func (s *CategoriesService) Delete(ctx context.Context, catalogID, categoryID string) error {
	return del(ctx, s.executor, categoriesPath(catalogID)+"/"+escape(categoryID))
}

func categoriesPath(catalogID string) string {
	return "/v1/catalogs/" + escape(catalogID) + "/categories"
}
