package config

import (
	"fmt"
	"os"

	"github.com/formatio/formatio/pkg/formatting"
	"github.com/formatio/formatio/pkg/middleware"
	"github.com/formatio/formatio/pkg/pagination"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "FORMATIO_CORS_ENABLED",
	Origins:          "FORMATIO_CORS_ORIGINS",
	AllowedMethods:   "FORMATIO_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "FORMATIO_CORS_ALLOWED_HEADERS",
	AllowCredentials: "FORMATIO_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "FORMATIO_CORS_MAX_AGE",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "FORMATIO_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "FORMATIO_PAGINATION_MAX_PAGE_SIZE",
}

// APIConfig holds API routing, request body, CORS, and pagination settings.
type APIConfig struct {
	BasePath       string                `toml:"base_path"`
	MaxRequestBody string                `toml:"max_request_body"`
	CORS           middleware.CORSConfig `toml:"cors"`
	Pagination     pagination.Config     `toml:"pagination"`
}

func (c *APIConfig) MaxRequestBodyBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxRequestBody)
	if err != nil {
		return 1024 * 1024 // 1MB fallback
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS and pagination configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxRequestBody != "" {
		c.MaxRequestBody = overlay.MaxRequestBody
	}

	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxRequestBody == "" {
		c.MaxRequestBody = "1MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("FORMATIO_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("FORMATIO_API_MAX_REQUEST_BODY"); v != "" {
		c.MaxRequestBody = v
	}
}
