package api

import (
	"net/http"

	"github.com/formatio/formatio/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
) {
	routes.Register(
		mux,
		domain.Blueprints.Handler().Routes(),
		domain.Playbooks.Handler().Routes(),
	)
}
