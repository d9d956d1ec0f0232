// Package server exposes the OrderCloud resource facades as MCP tools
// over JSON-RPC 2.0 on newline-delimited stdio, with an optional HTTP
// transport. One tool per REST operation; the auth and dispatch layers
// underneath share a single bearer token across all of them.
package server

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/auth"
	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/internal/config"
	ocerrors "github.com/vlad-iobagiu/sitecore-ordecloud-mcp/internal/errors"
	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/internal/utils"
	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/resources"
)

const serverVersion = "1.0.0"

// Server is the MCP server. It owns the tool catalog and routes
// JSON-RPC requests to tool handlers.
type Server struct {
	env         string
	config      config.Config
	authority   *auth.Authority
	resources   *resources.Resources
	tools       []Tool
	toolsByName map[string]*Tool
	// initialized is atomic because the HTTP transport serves
	// concurrent requests; the stdio loop alone would not need it.
	initialized atomic.Bool
}

// New builds the server and registers the full tool catalog. The
// authority's refresh events are logged here so operators can follow
// the token lifecycle across all facades.
func New(cfg config.Config, authority *auth.Authority, res *resources.Resources) *Server {
	s := &Server{
		env:       cfg.GetEnv(),
		config:    cfg,
		authority: authority,
		resources: res,
	}

	authority.OnTokenRefresh(func(token auth.Token) {
		log.Info().Time("expires_at", token.ExpiresAt).Msg("session token refreshed")
	})

	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	s.tools = append(s.tools, s.authTools()...)
	s.tools = append(s.tools, s.productTools()...)
	s.tools = append(s.tools, s.catalogTools()...)
	s.tools = append(s.tools, s.categoryTools()...)
	s.tools = append(s.tools, s.promotionTools()...)
	s.tools = append(s.tools, s.priceScheduleTools()...)
	s.tools = append(s.tools, s.buyerTools()...)
	s.tools = append(s.tools, s.addressTools()...)
	s.tools = append(s.tools, s.supplierTools()...)
	s.tools = append(s.tools, s.orderTools()...)

	s.toolsByName = make(map[string]*Tool, len(s.tools))
	for i := range s.tools {
		s.toolsByName[s.tools[i].Name] = &s.tools[i]
	}
}

// Tools returns the registered tool names, for diagnostics.
func (s *Server) Tools() []string {
	names := make([]string, 0, len(s.tools))
	for _, t := range s.tools {
		names = append(names, t.Name)
	}
	return names
}

// Serve reads from stdin and writes to stdout. Entry point for the
// stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.Run(ctx, os.Stdin, os.Stdout)
}

// Run processes newline-delimited JSON-RPC 2.0 requests from input
// until EOF.
func (s *Server) Run(ctx context.Context, input io.Reader, output io.Writer) error {
	scanner := bufio.NewScanner(input)
	// Tool results carrying product catalogs can be large.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	encoder := json.NewEncoder(output)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req rpcRequest
		if err := json.Unmarshal(line, &req); err != nil {
			if writeErr := writeError(encoder, json.RawMessage("null"), codeParseError, "parse error: "+err.Error()); writeErr != nil {
				return ocerrors.Wrapf(writeErr, "[Run] writing parse error response")
			}
			continue
		}

		if req.JSONRPC != "2.0" {
			if !req.isNotification() {
				if writeErr := writeError(encoder, req.ID, codeInvalidRequest, "unsupported JSON-RPC version"); writeErr != nil {
					return ocerrors.Wrapf(writeErr, "[Run] writing version error response")
				}
			}
			continue
		}

		if req.isNotification() {
			continue
		}

		if err := s.dispatchRequest(ctx, encoder, &req); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// HandleMessage processes one JSON-RPC message and returns the
// response, or nil for notifications. Used by the HTTP transport.
func (s *Server) HandleMessage(ctx context.Context, raw []byte) *rpcResponse {
	var req rpcRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return &rpcResponse{JSONRPC: "2.0", ID: json.RawMessage("null"), Error: &rpcError{Code: codeParseError, Message: "parse error: " + err.Error()}}
	}
	if req.JSONRPC != "2.0" {
		if req.isNotification() {
			return nil
		}
		return &rpcResponse{JSONRPC: "2.0", ID: req.ID, Error: &rpcError{Code: codeInvalidRequest, Message: "unsupported JSON-RPC version"}}
	}
	if req.isNotification() {
		return nil
	}
	return s.respond(ctx, &req)
}

func (s *Server) dispatchRequest(ctx context.Context, encoder *json.Encoder, req *rpcRequest) error {
	resp := s.respond(ctx, req)
	if resp == nil {
		return nil
	}
	return encoder.Encode(resp)
}

// respond routes a request to its handler and builds the response.
func (s *Server) respond(ctx context.Context, req *rpcRequest) *rpcResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "ping":
		return resultResponse(req.ID, map[string]any{})
	case "tools/list":
		if !s.initialized.Load() {
			return errorResponse(req.ID, codeInvalidRequest, "server not initialized (call initialize first)")
		}
		return s.handleToolsList(req)
	case "tools/call":
		if !s.initialized.Load() {
			return errorResponse(req.ID, codeInvalidRequest, "server not initialized (call initialize first)")
		}
		return s.handleToolsCall(ctx, req)
	default:
		return errorResponse(req.ID, codeMethodNotFound, "unknown method: "+req.Method)
	}
}

func (s *Server) handleInitialize(req *rpcRequest) *rpcResponse {
	if len(req.Params) == 0 {
		return errorResponse(req.ID, codeInvalidParams, "params required for initialize")
	}

	var params initializeParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, codeInvalidParams, "invalid initialize params: "+err.Error())
	}

	log.Info().
		Str("client", params.ClientInfo.Name).
		Str("client_version", params.ClientInfo.Version).
		Msg("mcp client initialized")

	s.initialized.Store(true)

	return resultResponse(req.ID, initializeResult{
		ProtocolVersion: protocolVersion,
		Capabilities:    serverCapabilities{Tools: &toolCapability{}},
		ServerInfo:      serverInfo{Name: s.config.GetAppName(), Version: serverVersion},
	})
}

func (s *Server) handleToolsList(req *rpcRequest) *rpcResponse {
	descriptions := make([]toolDescription, 0, len(s.tools))
	for _, t := range s.tools {
		var annotations *toolAnnotations
		if t.ReadOnly {
			annotations = &toolAnnotations{
				ReadOnlyHint:    utils.Ptr(true),
				DestructiveHint: utils.Ptr(false),
				IdempotentHint:  utils.Ptr(true),
			}
		}
		descriptions = append(descriptions, toolDescription{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.InputSchema,
			Annotations: annotations,
		})
	}
	return resultResponse(req.ID, toolsListResult{Tools: descriptions})
}

func (s *Server) handleToolsCall(ctx context.Context, req *rpcRequest) *rpcResponse {
	if len(req.Params) == 0 {
		return errorResponse(req.ID, codeInvalidParams, "params required for tools/call")
	}

	var params toolsCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, codeInvalidParams, "invalid tools/call params: "+err.Error())
	}

	t, ok := s.toolsByName[params.Name]
	if !ok {
		return errorResponse(req.ID, codeInvalidParams, ocerrors.ErrUnknownTool.Error()+": "+params.Name)
	}

	result, err := t.Handler(ctx, params.Arguments)
	return resultResponse(req.ID, buildToolResult(result, err))
}

// buildToolResult renders the handler outcome as MCP content blocks.
// Failures never leak a partial payload: the result is either the
// serialized success value or the error envelope.
func buildToolResult(result any, runErr error) toolsCallResult {
	if runErr != nil {
		return toolsCallResult{
			IsError:   true,
			Content:   []contentBlock{{Type: "text", Text: runErr.Error()}},
			ErrorInfo: classifyToolError(runErr),
		}
	}

	text := ""
	if result != nil {
		pretty, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return toolsCallResult{
				IsError:   true,
				Content:   []contentBlock{{Type: "text", Text: "encoding result: " + err.Error()}},
				ErrorInfo: &errorInfo{Category: "internal", Retryable: false},
			}
		}
		text = string(pretty)
	}

	return toolsCallResult{Content: []contentBlock{{Type: "text", Text: text}}}
}

// classifyToolError maps the typed error taxonomy onto the structured
// errorInfo the agent uses for recovery decisions.
func classifyToolError(err error) *errorInfo {
	var configErr *ocerrors.ConfigurationError
	if ocerrors.As(err, &configErr) {
		return &errorInfo{Category: "configuration", Retryable: false}
	}
	var authErr *ocerrors.AuthenticationError
	if ocerrors.As(err, &authErr) {
		return &errorInfo{Category: "authentication", Retryable: authErr.StatusCode == 0}
	}
	var clientErr *ocerrors.ClientError
	if ocerrors.As(err, &clientErr) {
		return &errorInfo{Category: "client", Retryable: false}
	}
	var serverErr *ocerrors.ServerError
	if ocerrors.As(err, &serverErr) {
		return &errorInfo{Category: "server", Retryable: true}
	}
	var transportErr *ocerrors.TransportError
	if ocerrors.As(err, &transportErr) {
		return &errorInfo{Category: "transport", Retryable: true}
	}
	if ocerrors.Is(err, ocerrors.ErrInvalidArguments) {
		return &errorInfo{Category: "validation", Retryable: false}
	}
	return &errorInfo{Category: "internal", Retryable: false}
}

func resultResponse(id json.RawMessage, result any) *rpcResponse {
	return &rpcResponse{JSONRPC: "2.0", ID: id, Result: result}
}

func errorResponse(id json.RawMessage, code int, message string) *rpcResponse {
	return &rpcResponse{JSONRPC: "2.0", ID: id, Error: &rpcError{Code: code, Message: message}}
}

func writeError(encoder *json.Encoder, id json.RawMessage, code int, message string) error {
	return encoder.Encode(errorResponse(id, code, message))
}
