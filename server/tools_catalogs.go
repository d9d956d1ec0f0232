package server

import (
	"context"
	"encoding/json"
)

func (s *Server) catalogTools() []Tool {
	return []Tool{
		{
			Name:        "list_catalogs",
			Description: "List catalogs, with optional search, sort, paging and field filters.",
			ReadOnly:    true,
			InputSchema: listSchema(nil),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a listArgs
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				return s.resources.Catalogs.List(ctx, a.listOptions())
			},
		},
		{
			Name:        "get_catalog",
			Description: "Get a single catalog by ID.",
			ReadOnly:    true,
			InputSchema: idSchema("catalogID", "ID of the catalog", nil),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					CatalogID string `json:"catalogID"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("catalogID", a.CatalogID); err != nil {
					return nil, err
				}
				return s.resources.Catalogs.Get(ctx, a.CatalogID)
			},
		},
		{
			Name:        "create_catalog",
			Description: "Create a catalog. The catalog object is passed to OrderCloud unchanged.",
			InputSchema: &Schema{Type: "object", Properties: bodySchema("catalog", "Catalog fields (Name is required by the platform)"), Required: []string{"catalog"}},
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					Catalog map[string]any `json:"catalog"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				return s.resources.Catalogs.Create(ctx, a.Catalog)
			},
		},
		{
			Name:        "update_catalog",
			Description: "Replace a catalog entirely (PUT).",
			InputSchema: idSchema("catalogID", "ID of the catalog", bodySchema("catalog", "Full catalog replacement"), "catalog"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					CatalogID string         `json:"catalogID"`
					Catalog   map[string]any `json:"catalog"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("catalogID", a.CatalogID); err != nil {
					return nil, err
				}
				return s.resources.Catalogs.Save(ctx, a.CatalogID, a.Catalog)
			},
		},
		{
			Name:        "patch_catalog",
			Description: "Partially update a catalog (PATCH).",
			InputSchema: idSchema("catalogID", "ID of the catalog", bodySchema("catalog", "Fields to change"), "catalog"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					CatalogID string         `json:"catalogID"`
					Catalog   map[string]any `json:"catalog"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("catalogID", a.CatalogID); err != nil {
					return nil, err
				}
				return s.resources.Catalogs.Patch(ctx, a.CatalogID, a.Catalog)
			},
		},
		{
			Name:        "delete_catalog",
			Description: "Delete a catalog by ID.",
			InputSchema: idSchema("catalogID", "ID of the catalog", nil),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					CatalogID string `json:"catalogID"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("catalogID", a.CatalogID); err != nil {
					return nil, err
				}
				if err := s.resources.Catalogs.Delete(ctx, a.CatalogID); err != nil {
					return nil, err
				}
				return map[string]any{"deleted": a.CatalogID}, nil
			},
		},
	}
}
