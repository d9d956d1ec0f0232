package config

import (
	"fmt"
	"os"
)

const (
	portEnvVar      = "PORT"
	appNameVar      = "APP_NAME"
	transportEnvVar = "MCP_TRANSPORT"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "8080")
	if port != "" || port[0] != ':' {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "OrderCloud MCP")
}

// GetTransport selects how the MCP server talks to its host: "stdio"
// (newline-delimited JSON-RPC on stdin/stdout, the default) or "http"
// (a POST endpoint on GetPort).
func (EnvVars) GetTransport() string {
	return GetEnv(transportEnvVar, "stdio")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
