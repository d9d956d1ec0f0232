package server

import (
	"context"
	"encoding/json"

	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/resources"
)

// orderArgs are shared by every order tool. Direction defaults to
// incoming (the seller's view) when omitted.
type orderArgs struct {
	Direction string         `json:"direction,omitempty"`
	OrderID   string         `json:"orderID,omitempty"`
	Order     map[string]any `json:"order,omitempty"`
}

func (a orderArgs) orderDirection() resources.OrderDirection {
	if a.Direction == "" {
		return resources.OrderIncoming
	}
	return resources.OrderDirection(a.Direction)
}

func (s *Server) orderTools() []Tool {
	directionProp := map[string]*Schema{
		"direction": {Type: "string", Enum: []string{"incoming", "outgoing"}, Description: "Order direction relative to the authenticated user (default incoming)"},
	}
	orderIDProp := map[string]*Schema{
		"orderID": {Type: "string", Description: "ID of the order"},
	}

	return []Tool{
		{
			Name:        "list_orders",
			Description: "List orders in a direction, with optional search, sort, paging and field filters.",
			ReadOnly:    true,
			InputSchema: listSchema(directionProp),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					listArgs
					Direction string `json:"direction,omitempty"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				return s.resources.Orders.List(ctx, orderArgs{Direction: a.Direction}.orderDirection(), a.listOptions())
			},
		},
		{
			Name:        "get_order",
			Description: "Get a single order.",
			ReadOnly:    true,
			InputSchema: &Schema{Type: "object", Properties: mergeSchemas(directionProp, orderIDProp), Required: []string{"orderID"}},
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a orderArgs
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("orderID", a.OrderID); err != nil {
					return nil, err
				}
				return s.resources.Orders.Get(ctx, a.orderDirection(), a.OrderID)
			},
		},
		{
			Name:        "create_order",
			Description: "Create a draft order.",
			InputSchema: &Schema{Type: "object", Properties: mergeSchemas(directionProp, bodySchema("order", "Order fields, passed to OrderCloud unchanged"))},
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a orderArgs
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				return s.resources.Orders.Create(ctx, a.orderDirection(), a.Order)
			},
		},
		{
			Name:        "patch_order",
			Description: "Partially update an order (PATCH).",
			InputSchema: &Schema{Type: "object", Properties: mergeSchemas(directionProp, orderIDProp, bodySchema("order", "Fields to change")), Required: []string{"orderID", "order"}},
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a orderArgs
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("orderID", a.OrderID); err != nil {
					return nil, err
				}
				return s.resources.Orders.Patch(ctx, a.orderDirection(), a.OrderID, a.Order)
			},
		},
		{
			Name:        "submit_order",
			Description: "Submit a draft order into the fulfillment pipeline.",
			InputSchema: &Schema{Type: "object", Properties: mergeSchemas(directionProp, orderIDProp), Required: []string{"orderID"}},
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a orderArgs
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("orderID", a.OrderID); err != nil {
					return nil, err
				}
				return s.resources.Orders.Submit(ctx, a.orderDirection(), a.OrderID)
			},
		},
		{
			Name:        "delete_order",
			Description: "Delete an unsubmitted order.",
			InputSchema: &Schema{Type: "object", Properties: mergeSchemas(directionProp, orderIDProp), Required: []string{"orderID"}},
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a orderArgs
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("orderID", a.OrderID); err != nil {
					return nil, err
				}
				if err := s.resources.Orders.Delete(ctx, a.orderDirection(), a.OrderID); err != nil {
					return nil, err
				}
				return map[string]any{"deleted": a.OrderID}, nil
			},
		},
	}
}
