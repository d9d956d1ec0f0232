package server

import (
	"context"
	"encoding/json"
)

func (s *Server) buyerTools() []Tool {
	return []Tool{
		{
			Name:        "list_buyers",
			Description: "List buyer organizations, with optional search, sort, paging and field filters.",
			ReadOnly:    true,
			InputSchema: listSchema(nil),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a listArgs
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				return s.resources.Buyers.List(ctx, a.listOptions())
			},
		},
		{
			Name:        "get_buyer",
			Description: "Get a single buyer organization by ID.",
			ReadOnly:    true,
			InputSchema: idSchema("buyerID", "ID of the buyer", nil),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					BuyerID string `json:"buyerID"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("buyerID", a.BuyerID); err != nil {
					return nil, err
				}
				return s.resources.Buyers.Get(ctx, a.BuyerID)
			},
		},
		{
			Name:        "create_buyer",
			Description: "Create a buyer organization.",
			InputSchema: &Schema{Type: "object", Properties: bodySchema("buyer", "Buyer fields (Name is required by the platform)"), Required: []string{"buyer"}},
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					Buyer map[string]any `json:"buyer"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				return s.resources.Buyers.Create(ctx, a.Buyer)
			},
		},
		{
			Name:        "update_buyer",
			Description: "Replace a buyer organization entirely (PUT).",
			InputSchema: idSchema("buyerID", "ID of the buyer", bodySchema("buyer", "Full buyer replacement"), "buyer"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					BuyerID string         `json:"buyerID"`
					Buyer   map[string]any `json:"buyer"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("buyerID", a.BuyerID); err != nil {
					return nil, err
				}
				return s.resources.Buyers.Save(ctx, a.BuyerID, a.Buyer)
			},
		},
		{
			Name:        "patch_buyer",
			Description: "Partially update a buyer organization (PATCH).",
			InputSchema: idSchema("buyerID", "ID of the buyer", bodySchema("buyer", "Fields to change"), "buyer"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					BuyerID string         `json:"buyerID"`
					Buyer   map[string]any `json:"buyer"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("buyerID", a.BuyerID); err != nil {
					return nil, err
				}
				return s.resources.Buyers.Patch(ctx, a.BuyerID, a.Buyer)
			},
		},
		{
			Name:        "delete_buyer",
			Description: "Delete a buyer organization by ID.",
			InputSchema: idSchema("buyerID", "ID of the buyer", nil),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					BuyerID string `json:"buyerID"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("buyerID", a.BuyerID); err != nil {
					return nil, err
				}
				if err := s.resources.Buyers.Delete(ctx, a.BuyerID); err != nil {
					return nil, err
				}
				return map[string]any{"deleted": a.BuyerID}, nil
			},
		},
	}
}
