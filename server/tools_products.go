package server

import (
	"context"
	"encoding/json"
)

func (s *Server) productTools() []Tool {
	return []Tool{
		{
			Name:        "list_products",
			Description: "List products, with optional search, sort, paging and field filters.",
			ReadOnly:    true,
			InputSchema: listSchema(nil),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a listArgs
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				return s.resources.Products.List(ctx, a.listOptions())
			},
		},
		{
			Name:        "get_product",
			Description: "Get a single product by ID.",
			ReadOnly:    true,
			InputSchema: idSchema("productID", "ID of the product", nil),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					ProductID string `json:"productID"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("productID", a.ProductID); err != nil {
					return nil, err
				}
				return s.resources.Products.Get(ctx, a.ProductID)
			},
		},
		{
			Name:        "create_product",
			Description: "Create a product. The product object is passed to OrderCloud unchanged.",
			InputSchema: &Schema{Type: "object", Properties: bodySchema("product", "Product fields (Name is required by the platform)"), Required: []string{"product"}},
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					Product map[string]any `json:"product"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				return s.resources.Products.Create(ctx, a.Product)
			},
		},
		{
			Name:        "update_product",
			Description: "Replace a product entirely (PUT).",
			InputSchema: idSchema("productID", "ID of the product", bodySchema("product", "Full product replacement"), "product"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					ProductID string         `json:"productID"`
					Product   map[string]any `json:"product"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("productID", a.ProductID); err != nil {
					return nil, err
				}
				return s.resources.Products.Save(ctx, a.ProductID, a.Product)
			},
		},
		{
			Name:        "patch_product",
			Description: "Partially update a product (PATCH). Only supplied fields change.",
			InputSchema: idSchema("productID", "ID of the product", bodySchema("product", "Fields to change"), "product"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					ProductID string         `json:"productID"`
					Product   map[string]any `json:"product"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("productID", a.ProductID); err != nil {
					return nil, err
				}
				return s.resources.Products.Patch(ctx, a.ProductID, a.Product)
			},
		},
		{
			Name:        "delete_product",
			Description: "Delete a product by ID.",
			InputSchema: idSchema("productID", "ID of the product", nil),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					ProductID string `json:"productID"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("productID", a.ProductID); err != nil {
					return nil, err
				}
				if err := s.resources.Products.Delete(ctx, a.ProductID); err != nil {
					return nil, err
				}
				return map[string]any{"deleted": a.ProductID}, nil
			},
		},
	}
}
