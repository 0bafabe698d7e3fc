package handlers

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bodeview/internal/bode"
	"bodeview/internal/compare"
	"bodeview/internal/registry"
	"bodeview/pkg/models"
)

// CompareHandler handles comparison-related HTTP requests
type CompareHandler struct {
	svc   compare.Service
	store *registry.Store
}

// NewCompareHandler creates a new comparison handler
func NewCompareHandler(svc compare.Service, store *registry.Store) *CompareHandler {
	return &CompareHandler{svc: svc, store: store}
}

// CreateComparison runs a gain comparison and stores the result
func (h *CompareHandler) CreateComparison(ctx context.Context, req *models.CreateComparisonRequest) (*models.CreateComparisonResponse, error) {
	log.Info().
		Str("simulation", req.Body.SimulationFile).
		Str("measurement", req.Body.MeasurementFile).
		Msg("Comparison request received")

	res, err := h.svc.Gain(ctx, compare.GainRequest{
		SimulationFile:  req.Body.SimulationFile,
		MeasurementFile: req.Body.MeasurementFile,
		Title:           req.Body.Title,
	})
	if err != nil {
		return nil, comparisonError(err)
	}
	h.store.PutGain(res)

	return &models.CreateComparisonResponse{Body: comparisonBody(res)}, nil
}

// GetComparison returns a stored gain comparison
func (h *CompareHandler) GetComparison(ctx context.Context, req *models.GetComparisonRequest) (*models.GetComparisonResponse, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid comparison ID", err)
	}
	res, ok := h.store.Gain(id)
	if !ok {
		return nil, huma.Error404NotFound("Comparison not found")
	}
	return &models.GetComparisonResponse{Body: comparisonBody(res)}, nil
}

// CreateRejection runs a CMRR comparison and stores the result
func (h *CompareHandler) CreateRejection(ctx context.Context, req *models.CreateRejectionRequest) (*models.CreateRejectionResponse, error) {
	log.Info().
		Str("simulationDiff", req.Body.SimulationDiffFile).
		Str("measurementDiff", req.Body.MeasurementDiffFile).
		Msg("CMRR request received")

	res, err := h.svc.Rejection(ctx, compare.RejectionRequest{
		SimulationDiffFile:  req.Body.SimulationDiffFile,
		SimulationCMFile:    req.Body.SimulationCMFile,
		MeasurementDiffFile: req.Body.MeasurementDiffFile,
		MeasurementCMFile:   req.Body.MeasurementCMFile,
		Title:               req.Body.Title,
	})
	if err != nil {
		return nil, comparisonError(err)
	}
	h.store.PutRejection(res)

	return &models.CreateRejectionResponse{Body: rejectionBody(res)}, nil
}

// GetRejection returns a stored CMRR comparison
func (h *CompareHandler) GetRejection(ctx context.Context, req *models.GetRejectionRequest) (*models.GetRejectionResponse, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid comparison ID", err)
	}
	res, ok := h.store.Rejection(id)
	if !ok {
		return nil, huma.Error404NotFound("Comparison not found")
	}
	return &models.GetRejectionResponse{Body: rejectionBody(res)}, nil
}

// ServeComparisonPlot serves the rendered gain figure as PNG
func (h *CompareHandler) ServeComparisonPlot(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid comparison ID", http.StatusBadRequest)
		return
	}
	res, ok := h.store.Gain(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	http.ServeFile(w, r, res.PlotFile)
}

// ServeRejectionPlot serves the rendered CMRR figure as PNG
func (h *CompareHandler) ServeRejectionPlot(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid comparison ID", http.StatusBadRequest)
		return
	}
	res, ok := h.store.Rejection(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	http.ServeFile(w, r, res.PlotFile)
}

// comparisonError maps load failures to user-facing HTTP errors.
func comparisonError(err error) error {
	switch {
	case errors.Is(err, bode.ErrHeaderNotFound):
		return huma.Error400BadRequest("Measurement file has no Frequency(Hz) header", err)
	case errors.Is(err, fs.ErrNotExist):
		return huma.Error400BadRequest("Input file not found", err)
	}
	return huma.Error500InternalServerError("Comparison failed", err)
}

func seriesData(s *bode.Series) models.SeriesData {
	return models.SeriesData{
		Frequency:   s.Freq,
		MagnitudeDB: s.MagDB,
		PhaseDeg:    s.PhaseDeg,
	}
}

func comparisonBody(res *compare.GainResult) models.ComparisonBody {
	return models.ComparisonBody{
		ID:          res.ID.String(),
		Title:       res.Title,
		Simulation:  seriesData(res.Simulation),
		Measurement: seriesData(res.Measurement),
		PlotURL:     fmt.Sprintf("/api/comparisons/%s/plot", res.ID),
		CreatedAt:   res.CreatedAt,
	}
}

func rejectionBody(res *compare.RejectionResult) models.RejectionBody {
	return models.RejectionBody{
		ID:    res.ID.String(),
		Title: res.Title,
		Simulation: models.CMRRData{
			Frequency: res.SimulationFreq,
			CMRRDB:    res.SimulationCMRR,
		},
		Measurement: models.CMRRData{
			Frequency: res.MeasurementFreq,
			CMRRDB:    res.MeasurementCMRR,
		},
		PlotURL:   fmt.Sprintf("/api/cmrr/%s/plot", res.ID),
		CreatedAt: res.CreatedAt,
	}
}
