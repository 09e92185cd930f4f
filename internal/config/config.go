package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env          string
	HTTPAddr     string `validate:"required"`
	JWTKey       string `validate:"required"`
	OTLPEndpoint string
	Database     DatabaseConfig
}

type DatabaseConfig struct {
	URI      string
	User     string `validate:"required_without=URI"`
	Password string `validate:"required_without=URI"`
	Cluster  string
	Name     string `validate:"required"`
}

func Load() *Config {
	return &Config{
		Env:          getEnv("ENV", "development"),
		HTTPAddr:     normalizeAddr(getEnv("PORT", "5000")),
		JWTKey:       os.Getenv("ACCESS_TOKEN_SECRET"),
		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		Database: DatabaseConfig{
			URI:      os.Getenv("DATABASE_URI"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASS"),
			Cluster:  getEnv("DB_CLUSTER", "cluster0.mongodb.net"),
			Name:     getEnv("DATABASE_NAME", "toolhub"),
		},
	}
}

// Validate reports missing required settings. The server refuses to start
// without database credentials and a token signing secret.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// ConnectionURI returns DATABASE_URI when set, otherwise an SRV connection string
// built from the cluster host and credentials.
func (d DatabaseConfig) ConnectionURI() string {
	if d.URI != "" {
		return d.URI
	}

	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Cluster,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func normalizeAddr(addr string) string {
	if addr == "" {
		return addr
	}

	if addr[0] == ':' || addr[0] == '[' {
		return addr
	}

	for _, r := range addr {
		if r < '0' || r > '9' {
			return addr
		}
	}

	return ":" + addr
}
