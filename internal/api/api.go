// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/formatio/formatio/internal/config"
	"github.com/formatio/formatio/internal/infrastructure"
	"github.com/formatio/formatio/pkg/middleware"
	"github.com/formatio/formatio/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime, err := NewRuntime(cfg, infra)
	if err != nil {
		return nil, err
	}
	domain := NewDomain(runtime)

	mux := http.NewServeMux()
	registerRoutes(mux, domain)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.MaxBody(cfg.API.MaxRequestBodyBytes()))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
