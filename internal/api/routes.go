package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"bodeview/internal/api/handlers"
	"bodeview/internal/compare"
	"bodeview/internal/registry"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(router *chi.Mux, api huma.API, svc compare.Service, store *registry.Store) {
	h := handlers.NewCompareHandler(svc, store)

	huma.Register(api, huma.Operation{
		OperationID: "createComparison",
		Method:      http.MethodPost,
		Path:        "/api/comparisons",
		Summary:     "Run a gain comparison",
		Description: "Parses a simulation export and a measurement export, renders the gain figure and returns both sweeps",
		Tags:        []string{"Comparison"},
	}, h.CreateComparison)

	huma.Register(api, huma.Operation{
		OperationID: "getComparison",
		Method:      http.MethodGet,
		Path:        "/api/comparisons/{id}",
		Summary:     "Get a gain comparison",
		Description: "Returns a previously run gain comparison",
		Tags:        []string{"Comparison"},
	}, h.GetComparison)

	huma.Register(api, huma.Operation{
		OperationID: "createRejection",
		Method:      http.MethodPost,
		Path:        "/api/cmrr",
		Summary:     "Run a CMRR comparison",
		Description: "Parses the four sweeps, derives the rejection-ratio curves and renders the CMRR figure",
		Tags:        []string{"CMRR"},
	}, h.CreateRejection)

	huma.Register(api, huma.Operation{
		OperationID: "getRejection",
		Method:      http.MethodGet,
		Path:        "/api/cmrr/{id}",
		Summary:     "Get a CMRR comparison",
		Description: "Returns a previously run CMRR comparison",
		Tags:        []string{"CMRR"},
	}, h.GetRejection)

	// Rendered figures are binary, served off the raw router.
	router.Get("/api/comparisons/{id}/plot", h.ServeComparisonPlot)
	router.Get("/api/cmrr/{id}/plot", h.ServeRejectionPlot)
}
