package config

type Config interface {
	EnvConfig
	OrderCloudConfig
	CorsConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetTransport() string
	GetEnv() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	OrderCloud
	Cors
}

func New() Config {
	return mainConfig{}
}
