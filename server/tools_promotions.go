package server

import (
	"context"
	"encoding/json"
)

func (s *Server) promotionTools() []Tool {
	return []Tool{
		{
			Name:        "list_promotions",
			Description: "List promotions, with optional search, sort, paging and field filters.",
			ReadOnly:    true,
			InputSchema: listSchema(nil),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a listArgs
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				return s.resources.Promotions.List(ctx, a.listOptions())
			},
		},
		{
			Name:        "get_promotion",
			Description: "Get a single promotion by ID.",
			ReadOnly:    true,
			InputSchema: idSchema("promotionID", "ID of the promotion", nil),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					PromotionID string `json:"promotionID"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("promotionID", a.PromotionID); err != nil {
					return nil, err
				}
				return s.resources.Promotions.Get(ctx, a.PromotionID)
			},
		},
		{
			Name:        "create_promotion",
			Description: "Create a promotion. Eligible/value expressions are passed to OrderCloud unchanged.",
			InputSchema: &Schema{Type: "object", Properties: bodySchema("promotion", "Promotion fields (Code, EligibleExpression and ValueExpression are required by the platform)"), Required: []string{"promotion"}},
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					Promotion map[string]any `json:"promotion"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				return s.resources.Promotions.Create(ctx, a.Promotion)
			},
		},
		{
			Name:        "update_promotion",
			Description: "Replace a promotion entirely (PUT).",
			InputSchema: idSchema("promotionID", "ID of the promotion", bodySchema("promotion", "Full promotion replacement"), "promotion"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					PromotionID string         `json:"promotionID"`
					Promotion   map[string]any `json:"promotion"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("promotionID", a.PromotionID); err != nil {
					return nil, err
				}
				return s.resources.Promotions.Save(ctx, a.PromotionID, a.Promotion)
			},
		},
		{
			Name:        "patch_promotion",
			Description: "Partially update a promotion (PATCH).",
			InputSchema: idSchema("promotionID", "ID of the promotion", bodySchema("promotion", "Fields to change"), "promotion"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					PromotionID string         `json:"promotionID"`
					Promotion   map[string]any `json:"promotion"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("promotionID", a.PromotionID); err != nil {
					return nil, err
				}
				return s.resources.Promotions.Patch(ctx, a.PromotionID, a.Promotion)
			},
		},
		{
			Name:        "delete_promotion",
			Description: "Delete a promotion by ID.",
			InputSchema: idSchema("promotionID", "ID of the promotion", nil),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					PromotionID string `json:"promotionID"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("promotionID", a.PromotionID); err != nil {
					return nil, err
				}
				if err := s.resources.Promotions.Delete(ctx, a.PromotionID); err != nil {
					return nil, err
				}
				return map[string]any{"deleted": a.PromotionID}, nil
			},
		},
	}
}
