package resources

import (
	"context"
	"encoding/json"

	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/dispatch"
)

// BuyersService wraps /v1/buyers.
type BuyersService struct {
	executor dispatch.Executor
}

func (s *BuyersService) List(ctx context.Context, opts ListOptions) (*ListPage, error) {
	return list(ctx, s.executor, "/v1/buyers", opts)
}

func (s *BuyersService) Get(ctx context.Context, buyerID string) (json.RawMessage, error) {
	return get(ctx, s.executor, "/v1/buyers/"+escape(buyerID))
}

func (s *BuyersService) Create(ctx context.Context, buyer any) (json.RawMessage, error) {
	return create(ctx, s.executor, "/v1/buyers", buyer)
}

func (s *BuyersService) Save(ctx context.Context, buyerID string, buyer any) (json.RawMessage, error) {
	return save(ctx, s.executor, "/v1/buyers/"+escape(buyerID), buyer)
}

func (s *BuyersService) Patch(ctx context.Context, buyerID string, partial any) (json.RawMessage, error) {
	return patch(ctx, s.executor, "/v1/buyers/"+escape(buyerID), partial)
}

func (s *BuyersService) Delete(ctx context.Context, buyerID string) error {
	return del(ctx, s.executor, "/v1/buyers/"+escape(buyerID))
}
