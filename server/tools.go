package server

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/pkg/errors"

	ocerrors "github.com/vlad-iobagiu/sitecore-ordecloud-mcp/internal/errors"
	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/internal/utils"
	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/resources"
)

// Schema is the JSON Schema subset used to describe tool inputs.
// Hand-declared per tool; the platform's entity shapes stay opaque
// behind "object" properties.
type Schema struct {
	Type                 string             `json:"type"`
	Description          string             `json:"description,omitempty"`
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	Items                *Schema            `json:"items,omitempty"`
	Enum                 []string           `json:"enum,omitempty"`
	AdditionalProperties *bool              `json:"additionalProperties,omitempty"`
}

// Tool is one callable OrderCloud operation. Handler receives the raw
// JSON arguments and returns a JSON-serializable result.
type Tool struct {
	Name        string
	Description string
	InputSchema *Schema
	ReadOnly    bool
	Handler     func(ctx context.Context, args json.RawMessage) (any, error)
}

// decodeArgs unmarshals tool arguments, mapping malformed input to the
// validation error category rather than an internal failure.
func decodeArgs(args json.RawMessage, v any) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return ocerrors.Wrapf(ocerrors.ErrInvalidArguments, "%s", err.Error())
	}
	return nil
}

// listArgs are the shared list-operation arguments. Filters values may
// be a single string or an array of strings per key.
type listArgs struct {
	Search   string         `json:"search,omitempty"`
	SearchOn []string       `json:"searchOn,omitempty"`
	SortBy   []string       `json:"sortBy,omitempty"`
	Page     int            `json:"page,omitempty"`
	PageSize int            `json:"pageSize,omitempty"`
	Filters  map[string]any `json:"filters,omitempty"`
}

// listOptions converts the wire arguments to facade options.
func (a listArgs) listOptions() resources.ListOptions {
	opts := resources.ListOptions{
		Search:   a.Search,
		SearchOn: a.SearchOn,
		SortBy:   a.SortBy,
		Page:     a.Page,
		PageSize: a.PageSize,
	}
	if len(a.Filters) == 0 {
		return opts
	}
	opts.Filters = url.Values{}
	for key, value := range a.Filters {
		switch v := value.(type) {
		case string:
			opts.Filters.Add(key, v)
		case []any:
			for _, s := range utils.ToStringSlice(v) {
				opts.Filters.Add(key, s)
			}
		default:
			// Numbers and booleans arrive as JSON scalars; render
			// them the way the platform expects.
			raw, err := json.Marshal(v)
			if err == nil {
				opts.Filters.Add(key, string(raw))
			}
		}
	}
	return opts
}

// requireString enforces a non-empty required argument.
func requireString(name, value string) error {
	if value == "" {
		return errors.Wrapf(ocerrors.ErrInvalidArguments, "%s is required", name)
	}
	return nil
}

// --- shared schema fragments ---

func listSchema(extra map[string]*Schema, required ...string) *Schema {
	properties := map[string]*Schema{
		"search":   {Type: "string", Description: "Full-text search term"},
		"searchOn": {Type: "array", Items: &Schema{Type: "string"}, Description: "Fields to search on"},
		"sortBy":   {Type: "array", Items: &Schema{Type: "string"}, Description: "Fields to sort by; prefix with ! for descending"},
		"page":     {Type: "integer", Description: "Page of results (1-based)"},
		"pageSize": {Type: "integer", Description: "Results per page (1-100)"},
		"filters":  {Type: "object", Description: "Field=value filters; keys are entity field paths"},
	}
	for key, schema := range extra {
		properties[key] = schema
	}
	return &Schema{Type: "object", Properties: properties, Required: required}
}

func idSchema(name, description string, extra map[string]*Schema, required ...string) *Schema {
	properties := map[string]*Schema{
		name: {Type: "string", Description: description},
	}
	for key, schema := range extra {
		properties[key] = schema
	}
	return &Schema{Type: "object", Properties: properties, Required: append([]string{name}, required...)}
}

func bodySchema(name, description string) map[string]*Schema {
	return map[string]*Schema{
		name: {Type: "object", Description: description},
	}
}
