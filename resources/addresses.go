package resources

import (
	"context"
	"encoding/json"

	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/dispatch"
)

// AddressesService wraps /v1/buyers/{buyerID}/addresses. Every
// operation is scoped to a buyer organization.
type AddressesService struct {
	executor dispatch.Executor
}

func (s *AddressesService) List(ctx context.Context, buyerID string, opts ListOptions) (*ListPage, error) {
	return list(ctx, s.executor, addressesPath(buyerID), opts)
}

func (s *AddressesService) Get(ctx context.Context, buyerID, addressID string) (json.RawMessage, error) {
	return get(ctx, s.executor, addressesPath(buyerID)+"/"+escape(addressID))
}

func (s *AddressesService) Create(ctx context.Context, buyerID string, address any) (json.RawMessage, error) {
	return create(ctx, s.executor, addressesPath(buyerID), address)
}

func (s *AddressesService) Save(ctx context.Context, buyerID, addressID string, address any) (json.RawMessage, error) {
	return save(ctx, s.executor, addressesPath(buyerID)+"/"+escape(addressID), address)
}

func (s *AddressesService) Patch(ctx context.Context, buyerID, addressID string, partial any) (json.RawMessage, error) {
	return patch(ctx, s.executor, addressesPath(buyerID)+"/"+escape(addressID), partial)
}

func (s *AddressesService) Delete(ctx context.Context, buyerID, addressID string) error {
	return del(ctx, s.executor, addressesPath(buyerID)+"/"+escape(addressID))
}

func addressesPath(buyerID string) string {
	return "/v1/buyers/" + escape(buyerID) + "/addresses"
}
