package server

import (
	"context"
	"encoding/json"
)

func (s *Server) priceScheduleTools() []Tool {
	return []Tool{
		{
			Name:        "list_price_schedules",
			Description: "List price schedules, with optional search, sort, paging and field filters.",
			ReadOnly:    true,
			InputSchema: listSchema(nil),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a listArgs
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				return s.resources.PriceSchedules.List(ctx, a.listOptions())
			},
		},
		{
			Name:        "get_price_schedule",
			Description: "Get a single price schedule by ID.",
			ReadOnly:    true,
			InputSchema: idSchema("priceScheduleID", "ID of the price schedule", nil),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					PriceScheduleID string `json:"priceScheduleID"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("priceScheduleID", a.PriceScheduleID); err != nil {
					return nil, err
				}
				return s.resources.PriceSchedules.Get(ctx, a.PriceScheduleID)
			},
		},
		{
			Name:        "create_price_schedule",
			Description: "Create a price schedule. Pricing rules are passed to OrderCloud unchanged.",
			InputSchema: &Schema{Type: "object", Properties: bodySchema("priceSchedule", "Price schedule fields (Name is required by the platform)"), Required: []string{"priceSchedule"}},
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					PriceSchedule map[string]any `json:"priceSchedule"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				return s.resources.PriceSchedules.Create(ctx, a.PriceSchedule)
			},
		},
		{
			Name:        "update_price_schedule",
			Description: "Replace a price schedule entirely (PUT).",
			InputSchema: idSchema("priceScheduleID", "ID of the price schedule", bodySchema("priceSchedule", "Full price schedule replacement"), "priceSchedule"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					PriceScheduleID string         `json:"priceScheduleID"`
					PriceSchedule   map[string]any `json:"priceSchedule"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("priceScheduleID", a.PriceScheduleID); err != nil {
					return nil, err
				}
				return s.resources.PriceSchedules.Save(ctx, a.PriceScheduleID, a.PriceSchedule)
			},
		},
		{
			Name:        "patch_price_schedule",
			Description: "Partially update a price schedule (PATCH).",
			InputSchema: idSchema("priceScheduleID", "ID of the price schedule", bodySchema("priceSchedule", "Fields to change"), "priceSchedule"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					PriceScheduleID string         `json:"priceScheduleID"`
					PriceSchedule   map[string]any `json:"priceSchedule"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("priceScheduleID", a.PriceScheduleID); err != nil {
					return nil, err
				}
				return s.resources.PriceSchedules.Patch(ctx, a.PriceScheduleID, a.PriceSchedule)
			},
		},
		{
			Name:        "delete_price_schedule",
			Description: "Delete a price schedule by ID.",
			InputSchema: idSchema("priceScheduleID", "ID of the price schedule", nil),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					PriceScheduleID string `json:"priceScheduleID"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("priceScheduleID", a.PriceScheduleID); err != nil {
					return nil, err
				}
				if err := s.resources.PriceSchedules.Delete(ctx, a.PriceScheduleID); err != nil {
					return nil, err
				}
				return map[string]any{"deleted": a.PriceScheduleID}, nil
			},
		},
		{
			Name:        "save_price_break",
			Description: "Create or update a quantity price break on a price schedule.",
			InputSchema: idSchema("priceScheduleID", "ID of the price schedule", bodySchema("priceBreak", "Price break fields (Quantity and Price)"), "priceBreak"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					PriceScheduleID string         `json:"priceScheduleID"`
					PriceBreak      map[string]any `json:"priceBreak"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("priceScheduleID", a.PriceScheduleID); err != nil {
					return nil, err
				}
				return s.resources.PriceSchedules.SavePriceBreak(ctx, a.PriceScheduleID, a.PriceBreak)
			},
		},
		{
			Name:        "delete_price_break",
			Description: "Delete the price break at a given quantity from a price schedule.",
			InputSchema: idSchema("priceScheduleID", "ID of the price schedule", map[string]*Schema{"quantity": {Type: "integer", Description: "Quantity of the price break to remove"}}, "quantity"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					PriceScheduleID string `json:"priceScheduleID"`
					Quantity        int    `json:"quantity"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("priceScheduleID", a.PriceScheduleID); err != nil {
					return nil, err
				}
				if err := s.resources.PriceSchedules.DeletePriceBreak(ctx, a.PriceScheduleID, a.Quantity); err != nil {
					return nil, err
				}
				return map[string]any{"deleted": a.Quantity}, nil
			},
		},
	}
}
