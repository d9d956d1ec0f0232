package server

import "encoding/json"

// protocolVersion is the MCP protocol version this server implements.
// Per the MCP specification the server answers initialize with its own
// version and the client decides whether it can proceed.
const protocolVersion = "2025-06-18"

// JSON-RPC 2.0 standard error codes.
const (
	codeParseError     = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternalError  = -32603
)

// rpcRequest is a JSON-RPC 2.0 request or notification. Notifications
// carry no ID and receive no response.
type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

func (r *rpcRequest) isNotification() bool {
	return len(r.ID) == 0
}

// rpcResponse is a JSON-RPC 2.0 response. Exactly one of Result or
// Error is set.
type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// --- MCP protocol types ---

type initializeParams struct {
	ProtocolVersion string     `json:"protocolVersion"`
	Capabilities    any        `json:"capabilities"`
	ClientInfo      clientInfo `json:"clientInfo"`
}

type clientInfo struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

type initializeResult struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    serverCapabilities `json:"capabilities"`
	ServerInfo      serverInfo         `json:"serverInfo"`
}

type serverCapabilities struct {
	Tools *toolCapability `json:"tools,omitempty"`
}

// toolCapability signals tool support; listChanged stays false because
// the catalog is fixed at construction.
type toolCapability struct {
	ListChanged bool `json:"listChanged,omitempty"`
}

type serverInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type toolsListResult struct {
	Tools      []toolDescription `json:"tools"`
	NextCursor string            `json:"nextCursor,omitempty"`
}

// toolDescription describes one tool for tools/list.
type toolDescription struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	InputSchema *Schema          `json:"inputSchema"`
	Annotations *toolAnnotations `json:"annotations,omitempty"`
}

// toolAnnotations are behavioral hints. Nil pointers leave the MCP
// defaults in place (destructive, non-idempotent, open-world).
type toolAnnotations struct {
	ReadOnlyHint    *bool `json:"readOnlyHint,omitempty"`
	DestructiveHint *bool `json:"destructiveHint,omitempty"`
	IdempotentHint  *bool `json:"idempotentHint,omitempty"`
}

type toolsCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// toolsCallResult is the tools/call response. On failure IsError is
// set and ErrorInfo carries structured retryability metadata so the
// agent can decide whether to repeat the call, fix its input, or stop.
type toolsCallResult struct {
	Content   []contentBlock `json:"content"`
	IsError   bool           `json:"isError,omitempty"`
	ErrorInfo *errorInfo     `json:"errorInfo,omitempty"`
}

// errorInfo classifies a failed tool call. Category is one of:
// configuration, authentication, client, server, transport, validation,
// internal.
type errorInfo struct {
	Category  string `json:"category"`
	Retryable bool   `json:"retryable"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
