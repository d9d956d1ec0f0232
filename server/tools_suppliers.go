package server

import (
	"context"
	"encoding/json"
)

func (s *Server) supplierTools() []Tool {
	return []Tool{
		{
			Name:        "list_suppliers",
			Description: "List suppliers, with optional search, sort, paging and field filters.",
			ReadOnly:    true,
			InputSchema: listSchema(nil),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a listArgs
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				return s.resources.Suppliers.List(ctx, a.listOptions())
			},
		},
		{
			Name:        "get_supplier",
			Description: "Get a single supplier by ID.",
			ReadOnly:    true,
			InputSchema: idSchema("supplierID", "ID of the supplier", nil),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					SupplierID string `json:"supplierID"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("supplierID", a.SupplierID); err != nil {
					return nil, err
				}
				return s.resources.Suppliers.Get(ctx, a.SupplierID)
			},
		},
		{
			Name:        "create_supplier",
			Description: "Create a supplier.",
			InputSchema: &Schema{Type: "object", Properties: bodySchema("supplier", "Supplier fields (Name is required by the platform)"), Required: []string{"supplier"}},
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					Supplier map[string]any `json:"supplier"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				return s.resources.Suppliers.Create(ctx, a.Supplier)
			},
		},
		{
			Name:        "update_supplier",
			Description: "Replace a supplier entirely (PUT).",
			InputSchema: idSchema("supplierID", "ID of the supplier", bodySchema("supplier", "Full supplier replacement"), "supplier"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					SupplierID string         `json:"supplierID"`
					Supplier   map[string]any `json:"supplier"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("supplierID", a.SupplierID); err != nil {
					return nil, err
				}
				return s.resources.Suppliers.Save(ctx, a.SupplierID, a.Supplier)
			},
		},
		{
			Name:        "patch_supplier",
			Description: "Partially update a supplier (PATCH).",
			InputSchema: idSchema("supplierID", "ID of the supplier", bodySchema("supplier", "Fields to change"), "supplier"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					SupplierID string         `json:"supplierID"`
					Supplier   map[string]any `json:"supplier"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("supplierID", a.SupplierID); err != nil {
					return nil, err
				}
				return s.resources.Suppliers.Patch(ctx, a.SupplierID, a.Supplier)
			},
		},
		{
			Name:        "delete_supplier",
			Description: "Delete a supplier by ID.",
			InputSchema: idSchema("supplierID", "ID of the supplier", nil),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					SupplierID string `json:"supplierID"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("supplierID", a.SupplierID); err != nil {
					return nil, err
				}
				if err := s.resources.Suppliers.Delete(ctx, a.SupplierID); err != nil {
					return nil, err
				}
				return map[string]any{"deleted": a.SupplierID}, nil
			},
		},
	}
}
