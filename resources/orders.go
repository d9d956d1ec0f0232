package resources

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/dispatch"
)

// OrderDirection selects which side of an order the caller acts on.
// OrderCloud addresses orders as incoming (the caller is the seller)
// or outgoing (the caller is the buyer).
type OrderDirection string

const (
	OrderIncoming OrderDirection = "incoming"
	OrderOutgoing OrderDirection = "outgoing"
)

// OrdersService wraps /v1/orders/{direction}.
type OrdersService struct {
	executor dispatch.Executor
}

func (s *OrdersService) List(ctx context.Context, direction OrderDirection, opts ListOptions) (*ListPage, error) {
	path, err := ordersPath(direction)
	if err != nil {
		return nil, err
	}
	return list(ctx, s.executor, path, opts)
}

func (s *OrdersService) Get(ctx context.Context, direction OrderDirection, orderID string) (json.RawMessage, error) {
	path, err := ordersPath(direction)
	if err != nil {
		return nil, err
	}
	return get(ctx, s.executor, path+"/"+escape(orderID))
}

func (s *OrdersService) Create(ctx context.Context, direction OrderDirection, order any) (json.RawMessage, error) {
	path, err := ordersPath(direction)
	if err != nil {
		return nil, err
	}
	return create(ctx, s.executor, path, order)
}

func (s *OrdersService) Patch(ctx context.Context, direction OrderDirection, orderID string, partial any) (json.RawMessage, error) {
	path, err := ordersPath(direction)
	if err != nil {
		return nil, err
	}
	return patch(ctx, s.executor, path+"/"+escape(orderID), partial)
}

func (s *OrdersService) Delete(ctx context.Context, direction OrderDirection, orderID string) error {
	path, err := ordersPath(direction)
	if err != nil {
		return err
	}
	return del(ctx, s.executor, path+"/"+escape(orderID))
}

// Submit moves a draft order into the fulfillment pipeline.
func (s *OrdersService) Submit(ctx context.Context, direction OrderDirection, orderID string) (json.RawMessage, error) {
	path, err := ordersPath(direction)
	if err != nil {
		return nil, err
	}
	var entity json.RawMessage
	if err := s.executor.Execute(ctx, dispatch.Request{
		Method: http.MethodPost,
		Path:   path + "/" + escape(orderID) + "/submit",
	}, &entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func ordersPath(direction OrderDirection) (string, error) {
	switch direction {
	case OrderIncoming, OrderOutgoing:
		return "/v1/orders/" + string(direction), nil
	default:
		return "", errors.Errorf("[OrdersService] invalid order direction %q", direction)
	}
}
