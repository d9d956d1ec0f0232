package resources

import (
	"context"
	"encoding/json"

	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/dispatch"
)

// PromotionsService wraps /v1/promotions. Promotion evaluation rules
// are opaque expressions the platform interprets.
type PromotionsService struct {
	executor dispatch.Executor
}

func (s *PromotionsService) List(ctx context.Context, opts ListOptions) (*ListPage, error) {
	return list(ctx, s.executor, "/v1/promotions", opts)
}

func (s *PromotionsService) Get(ctx context.Context, promotionID string) (json.RawMessage, error) {
	return get(ctx, s.executor, "/v1/promotions/"+escape(promotionID))
}

func (s *PromotionsService) Create(ctx context.Context, promotion any) (json.RawMessage, error) {
	return create(ctx, s.executor, "/v1/promotions", promotion)
}

func (s *PromotionsService) Save(ctx context.Context, promotionID string, promotion any) (json.RawMessage, error) {
	return save(ctx, s.executor, "/v1/promotions/"+escape(promotionID), promotion)
}

func (s *PromotionsService) Patch(ctx context.Context, promotionID string, partial any) (json.RawMessage, error) {
	return patch(ctx, s.executor, "/v1/promotions/"+escape(promotionID), partial)
}

func (s *PromotionsService) Delete(ctx context.Context, promotionID string) error {
	return del(ctx, s.executor, "/v1/promotions/"+escape(promotionID))
}
