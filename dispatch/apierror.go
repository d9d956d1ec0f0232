package dispatch

import (
	"encoding/json"
	"fmt"
	"strings"
)

// apiErrorBody is the error envelope OrderCloud returns on failed
// resource calls. Either a structured Errors array or a bare Message.
type apiErrorBody struct {
	Errors []struct {
		ErrorCode string `json:"ErrorCode"`
		Message   string `json:"Message"`
	} `json:"Errors"`
	Message string `json:"Message"`
}

// errorMessage assembles the richest available description of a failed
// call: the structured error list joined as "<ErrorCode>: <Message>",
// else the top-level Message, else the raw body, else the status text.
func errorMessage(raw []byte, statusText string) string {
	var body apiErrorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		if len(body.Errors) > 0 {
			parts := make([]string, 0, len(body.Errors))
			for _, e := range body.Errors {
				parts = append(parts, fmt.Sprintf("%s: %s", e.ErrorCode, e.Message))
			}
			return strings.Join(parts, ", ")
		}
		if body.Message != "" {
			return body.Message
		}
	}
	if trimmed := strings.TrimSpace(string(raw)); trimmed != "" {
		return trimmed
	}
	return statusText
}
