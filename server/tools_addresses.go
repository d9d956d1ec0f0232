package server

import (
	"context"
	"encoding/json"
)

// addressArgs are shared by every address tool: addresses belong to a
// buyer organization, so buyerID is always required.
type addressArgs struct {
	BuyerID   string         `json:"buyerID"`
	AddressID string         `json:"addressID,omitempty"`
	Address   map[string]any `json:"address,omitempty"`
}

func (s *Server) addressTools() []Tool {
	buyerProp := map[string]*Schema{
		"buyerID": {Type: "string", Description: "ID of the buyer owning the addresses"},
	}
	addressIDProp := map[string]*Schema{
		"addressID": {Type: "string", Description: "ID of the address"},
	}

	return []Tool{
		{
			Name:        "list_addresses",
			Description: "List a buyer's addresses.",
			ReadOnly:    true,
			InputSchema: listSchema(buyerProp, "buyerID"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					listArgs
					BuyerID string `json:"buyerID"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("buyerID", a.BuyerID); err != nil {
					return nil, err
				}
				return s.resources.Addresses.List(ctx, a.BuyerID, a.listOptions())
			},
		},
		{
			Name:        "get_address",
			Description: "Get a single buyer address.",
			ReadOnly:    true,
			InputSchema: idSchema("buyerID", "ID of the buyer", addressIDProp, "addressID"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a addressArgs
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("buyerID", a.BuyerID); err != nil {
					return nil, err
				}
				if err := requireString("addressID", a.AddressID); err != nil {
					return nil, err
				}
				return s.resources.Addresses.Get(ctx, a.BuyerID, a.AddressID)
			},
		},
		{
			Name:        "create_address",
			Description: "Create an address for a buyer.",
			InputSchema: idSchema("buyerID", "ID of the buyer", bodySchema("address", "Address fields (Street1, City, State, Zip, Country are required by the platform)"), "address"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a addressArgs
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("buyerID", a.BuyerID); err != nil {
					return nil, err
				}
				return s.resources.Addresses.Create(ctx, a.BuyerID, a.Address)
			},
		},
		{
			Name:        "update_address",
			Description: "Replace a buyer address entirely (PUT).",
			InputSchema: idSchema("buyerID", "ID of the buyer", mergeSchemas(addressIDProp, bodySchema("address", "Full address replacement")), "addressID", "address"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a addressArgs
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("buyerID", a.BuyerID); err != nil {
					return nil, err
				}
				if err := requireString("addressID", a.AddressID); err != nil {
					return nil, err
				}
				return s.resources.Addresses.Save(ctx, a.BuyerID, a.AddressID, a.Address)
			},
		},
		{
			Name:        "patch_address",
			Description: "Partially update a buyer address (PATCH).",
			InputSchema: idSchema("buyerID", "ID of the buyer", mergeSchemas(addressIDProp, bodySchema("address", "Fields to change")), "addressID", "address"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a addressArgs
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("buyerID", a.BuyerID); err != nil {
					return nil, err
				}
				if err := requireString("addressID", a.AddressID); err != nil {
					return nil, err
				}
				return s.resources.Addresses.Patch(ctx, a.BuyerID, a.AddressID, a.Address)
			},
		},
		{
			Name:        "delete_address",
			Description: "Delete a buyer address.",
			InputSchema: idSchema("buyerID", "ID of the buyer", addressIDProp, "addressID"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a addressArgs
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("buyerID", a.BuyerID); err != nil {
					return nil, err
				}
				if err := requireString("addressID", a.AddressID); err != nil {
					return nil, err
				}
				if err := s.resources.Addresses.Delete(ctx, a.BuyerID, a.AddressID); err != nil {
					return nil, err
				}
				return map[string]any{"deleted": a.AddressID}, nil
			},
		},
	}
}
