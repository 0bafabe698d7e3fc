package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// CreateComparisonRequest represents a request to run a gain comparison
type CreateComparisonRequest struct {
	Body struct {
		SimulationFile  string `json:"simulation_file" required:"true" doc:"Path to the AC-analysis text export"`
		MeasurementFile string `json:"measurement_file" required:"true" doc:"Path to the oscilloscope CSV export"`
		Title           string `json:"title,omitempty" maxLength:"200" doc:"Figure title"`
	}
}

// ComparisonBody is the JSON representation of a finished gain comparison
type ComparisonBody struct {
	ID          string     `json:"id" doc:"Comparison unique identifier"`
	Title       string     `json:"title,omitempty" doc:"Figure title"`
	Simulation  SeriesData `json:"simulation" doc:"Parsed simulation sweep"`
	Measurement SeriesData `json:"measurement" doc:"Parsed measurement sweep"`
	PlotURL     string     `json:"plot_url" doc:"URL of the rendered figure"`
	CreatedAt   time.Time  `json:"created_at" doc:"When the comparison ran"`
}

// CreateComparisonResponse represents the response from running a gain comparison
type CreateComparisonResponse struct {
	Body ComparisonBody
}

// GetComparisonRequest represents a request to fetch a stored comparison
type GetComparisonRequest struct {
	ID string `path:"id" doc:"Comparison ID"`
}

// GetComparisonResponse represents a stored gain comparison
type GetComparisonResponse struct {
	Body ComparisonBody
}

// CreateRejectionRequest represents a request to run a CMRR comparison
// from the four sweeps: differential and common-mode, from each source.
type CreateRejectionRequest struct {
	Body struct {
		SimulationDiffFile  string `json:"simulation_diff_file" required:"true" doc:"Differential-mode AC-analysis text export"`
		SimulationCMFile    string `json:"simulation_cm_file" required:"true" doc:"Common-mode AC-analysis text export"`
		MeasurementDiffFile string `json:"measurement_diff_file" required:"true" doc:"Differential-mode oscilloscope CSV export"`
		MeasurementCMFile   string `json:"measurement_cm_file" required:"true" doc:"Common-mode oscilloscope CSV export"`
		Title               string `json:"title,omitempty" maxLength:"200" doc:"Figure title"`
	}
}

// RejectionBody is the JSON representation of a finished CMRR comparison
type RejectionBody struct {
	ID          string    `json:"id" doc:"Comparison unique identifier"`
	Title       string    `json:"title,omitempty" doc:"Figure title"`
	Simulation  CMRRData  `json:"simulation" doc:"Simulated CMRR curve"`
	Measurement CMRRData  `json:"measurement" doc:"Measured CMRR curve"`
	PlotURL     string    `json:"plot_url" doc:"URL of the rendered figure"`
	CreatedAt   time.Time `json:"created_at" doc:"When the comparison ran"`
}

// CreateRejectionResponse represents the response from running a CMRR comparison
type CreateRejectionResponse struct {
	Body RejectionBody
}

// GetRejectionRequest represents a request to fetch a stored CMRR comparison
type GetRejectionRequest struct {
	ID string `path:"id" doc:"Comparison ID"`
}

// GetRejectionResponse represents a stored CMRR comparison
type GetRejectionResponse struct {
	Body RejectionBody
}
