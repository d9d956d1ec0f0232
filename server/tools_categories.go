package server

import (
	"context"
	"encoding/json"
)

// categoryArgs are shared by every category tool: categories live
// inside a catalog, so catalogID is always required.
type categoryArgs struct {
	CatalogID  string         `json:"catalogID"`
	CategoryID string         `json:"categoryID,omitempty"`
	Category   map[string]any `json:"category,omitempty"`
}

func (s *Server) categoryTools() []Tool {
	catalogProp := map[string]*Schema{
		"catalogID": {Type: "string", Description: "ID of the catalog containing the categories"},
	}

	return []Tool{
		{
			Name:        "list_categories",
			Description: "List categories within a catalog.",
			ReadOnly:    true,
			InputSchema: listSchema(catalogProp, "catalogID"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					listArgs
					CatalogID string `json:"catalogID"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("catalogID", a.CatalogID); err != nil {
					return nil, err
				}
				return s.resources.Categories.List(ctx, a.CatalogID, a.listOptions())
			},
		},
		{
			Name:        "get_category",
			Description: "Get a single category within a catalog.",
			ReadOnly:    true,
			InputSchema: idSchema("catalogID", "ID of the catalog", map[string]*Schema{"categoryID": {Type: "string", Description: "ID of the category"}}, "categoryID"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a categoryArgs
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("catalogID", a.CatalogID); err != nil {
					return nil, err
				}
				if err := requireString("categoryID", a.CategoryID); err != nil {
					return nil, err
				}
				return s.resources.Categories.Get(ctx, a.CatalogID, a.CategoryID)
			},
		},
		{
			Name:        "create_category",
			Description: "Create a category inside a catalog.",
			InputSchema: idSchema("catalogID", "ID of the catalog", bodySchema("category", "Category fields (Name is required by the platform)"), "category"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a categoryArgs
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("catalogID", a.CatalogID); err != nil {
					return nil, err
				}
				return s.resources.Categories.Create(ctx, a.CatalogID, a.Category)
			},
		},
		{
			Name:        "update_category",
			Description: "Replace a category entirely (PUT).",
			InputSchema: idSchema("catalogID", "ID of the catalog", mergeSchemas(map[string]*Schema{"categoryID": {Type: "string", Description: "ID of the category"}}, bodySchema("category", "Full category replacement")), "categoryID", "category"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a categoryArgs
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("catalogID", a.CatalogID); err != nil {
					return nil, err
				}
				if err := requireString("categoryID", a.CategoryID); err != nil {
					return nil, err
				}
				return s.resources.Categories.Save(ctx, a.CatalogID, a.CategoryID, a.Category)
			},
		},
		{
			Name:        "patch_category",
			Description: "Partially update a category (PATCH).",
			InputSchema: idSchema("catalogID", "ID of the catalog", mergeSchemas(map[string]*Schema{"categoryID": {Type: "string", Description: "ID of the category"}}, bodySchema("category", "Fields to change")), "categoryID", "category"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a categoryArgs
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("catalogID", a.CatalogID); err != nil {
					return nil, err
				}
				if err := requireString("categoryID", a.CategoryID); err != nil {
					return nil, err
				}
				return s.resources.Categories.Patch(ctx, a.CatalogID, a.CategoryID, a.Category)
			},
		},
		{
			Name:        "delete_category",
			Description: "Delete a category within a catalog.",
			InputSchema: idSchema("catalogID", "ID of the catalog", map[string]*Schema{"categoryID": {Type: "string", Description: "ID of the category"}}, "categoryID"),
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a categoryArgs
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := requireString("catalogID", a.CatalogID); err != nil {
					return nil, err
				}
				if err := requireString("categoryID", a.CategoryID); err != nil {
					return nil, err
				}
				if err := s.resources.Categories.Delete(ctx, a.CatalogID, a.CategoryID); err != nil {
					return nil, err
				}
				return map[string]any{"deleted": a.CategoryID}, nil
			},
		},
	}
}

// mergeSchemas combines property maps for schemas built from fragments.
func mergeSchemas(maps ...map[string]*Schema) map[string]*Schema {
	merged := map[string]*Schema{}
	for _, m := range maps {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}
