package resources

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/dispatch"
)

// PriceSchedulesService wraps /v1/priceschedules, including the nested
// price-break endpoints.
type PriceSchedulesService struct {
	executor dispatch.Executor
}

func (s *PriceSchedulesService) List(ctx context.Context, opts ListOptions) (*ListPage, error) {
	return list(ctx, s.executor, "/v1/priceschedules", opts)
}

func (s *PriceSchedulesService) Get(ctx context.Context, priceScheduleID string) (json.RawMessage, error) {
	return get(ctx, s.executor, "/v1/priceschedules/"+escape(priceScheduleID))
}

func (s *PriceSchedulesService) Create(ctx context.Context, priceSchedule any) (json.RawMessage, error) {
	return create(ctx, s.executor, "/v1/priceschedules", priceSchedule)
}

func (s *PriceSchedulesService) Save(ctx context.Context, priceScheduleID string, priceSchedule any) (json.RawMessage, error) {
	return save(ctx, s.executor, "/v1/priceschedules/"+escape(priceScheduleID), priceSchedule)
}

func (s *PriceSchedulesService) Patch(ctx context.Context, priceScheduleID string, partial any) (json.RawMessage, error) {
	return patch(ctx, s.executor, "/v1/priceschedules/"+escape(priceScheduleID), partial)
}

func (s *PriceSchedulesService) Delete(ctx context.Context, priceScheduleID string) error {
	return del(ctx, s.executor, "/v1/priceschedules/"+escape(priceScheduleID))
}

// SavePriceBreak creates or updates a quantity price break on a schedule.
func (s *PriceSchedulesService) SavePriceBreak(ctx context.Context, priceScheduleID string, priceBreak any) (json.RawMessage, error) {
	return create(ctx, s.executor, "/v1/priceschedules/"+escape(priceScheduleID)+"/PriceBreaks", priceBreak)
}

// DeletePriceBreak removes the price break at the given quantity.
func (s *PriceSchedulesService) DeletePriceBreak(ctx context.Context, priceScheduleID string, quantity int) error {
	query := url.Values{}
	query.Set("quantity", strconv.Itoa(quantity))
	return s.executor.Execute(ctx, dispatch.Request{
		Method: http.MethodDelete,
		Path:   "/v1/priceschedules/" + escape(priceScheduleID) + "/PriceBreaks",
		Query:  query,
	}, nil)
}
