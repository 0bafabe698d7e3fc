// Package compare orchestrates one comparison run: parse the exports,
// align the sweeps, derive CMRR, render the figure.
package compare

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bodeview/internal/bode"
	"bodeview/internal/render"
)

// Service runs gain and rejection-ratio comparisons.
type Service interface {
	Gain(ctx context.Context, req GainRequest) (*GainResult, error)
	Rejection(ctx context.Context, req RejectionRequest) (*RejectionResult, error)
}

// GainRequest names one simulation export and one measurement export.
type GainRequest struct {
	SimulationFile  string
	MeasurementFile string
	Title           string
	OutputFile      string // optional; generated under the output dir when empty
}

// GainResult carries both parsed sweeps and the rendered figure path.
type GainResult struct {
	ID          uuid.UUID
	Title       string
	Simulation  *bode.Series
	Measurement *bode.Series
	PlotFile    string
	CreatedAt   time.Time
}

// RejectionRequest names the four exports of a CMRR comparison:
// differential and common-mode sweeps from each source.
type RejectionRequest struct {
	SimulationDiffFile  string
	SimulationCMFile    string
	MeasurementDiffFile string
	MeasurementCMFile   string
	Title               string
	OutputFile          string
}

// RejectionResult carries the derived CMRR curves on their differential
// frequency grids, plus the rendered figure path.
type RejectionResult struct {
	ID              uuid.UUID
	Title           string
	SimulationFreq  []float64
	SimulationCMRR  []float64
	MeasurementFreq []float64
	MeasurementCMRR []float64
	PlotFile        string
	CreatedAt       time.Time
}

type service struct {
	outDir string
	opt    render.Options
}

// NewService creates a comparison service writing figures under outDir.
func NewService(outDir string, opt render.Options) Service {
	return &service{outDir: outDir, opt: opt}
}

func (s *service) Gain(ctx context.Context, req GainRequest) (*GainResult, error) {
	log.Info().
		Str("simulation", req.SimulationFile).
		Str("measurement", req.MeasurementFile).
		Msg("Running gain comparison")

	sim, err := bode.LoadSimulation(req.SimulationFile)
	if err != nil {
		return nil, err
	}
	meas, err := bode.LoadMeasurement(req.MeasurementFile)
	if err != nil {
		return nil, err
	}
	log.Info().
		Int("simulationPoints", sim.Len()).
		Int("measurementPoints", meas.Len()).
		Msg("Parsed sweeps")

	id := uuid.New()
	plotFile, err := s.plotPath(req.OutputFile, "gain", id)
	if err != nil {
		return nil, err
	}
	if err := render.Gain(plotFile, req.Title, sim, meas, s.opt); err != nil {
		return nil, err
	}
	log.Info().Str("plot", plotFile).Msg("Gain figure written")

	return &GainResult{
		ID:          id,
		Title:       req.Title,
		Simulation:  sim,
		Measurement: meas,
		PlotFile:    plotFile,
		CreatedAt:   time.Now(),
	}, nil
}

func (s *service) Rejection(ctx context.Context, req RejectionRequest) (*RejectionResult, error) {
	log.Info().
		Str("simulationDiff", req.SimulationDiffFile).
		Str("simulationCM", req.SimulationCMFile).
		Str("measurementDiff", req.MeasurementDiffFile).
		Str("measurementCM", req.MeasurementCMFile).
		Msg("Running CMRR comparison")

	simDiff, err := bode.LoadSimulation(req.SimulationDiffFile)
	if err != nil {
		return nil, err
	}
	simCM, err := bode.LoadSimulation(req.SimulationCMFile)
	if err != nil {
		return nil, err
	}
	measDiff, err := bode.LoadMeasurement(req.MeasurementDiffFile)
	if err != nil {
		return nil, err
	}
	measCM, err := bode.LoadMeasurement(req.MeasurementCMFile)
	if err != nil {
		return nil, err
	}

	simCMRR := bode.RejectionRatio(simDiff, simCM)
	measCMRR := bode.RejectionRatio(measDiff, measCM)

	id := uuid.New()
	plotFile, err := s.plotPath(req.OutputFile, "cmrr", id)
	if err != nil {
		return nil, err
	}
	title := req.Title
	if title == "" {
		title = "Common-Mode Rejection Ratio"
	}
	err = render.Rejection(plotFile, title,
		render.Curve{Label: "Simulation", Freq: simDiff.Freq, Values: simCMRR},
		render.Curve{Label: "Measurement", Freq: measDiff.Freq, Values: measCMRR, Dashed: true},
		s.opt)
	if err != nil {
		return nil, err
	}
	log.Info().Str("plot", plotFile).Msg("CMRR figure written")

	return &RejectionResult{
		ID:              id,
		Title:           title,
		SimulationFreq:  simDiff.Freq,
		SimulationCMRR:  simCMRR,
		MeasurementFreq: measDiff.Freq,
		MeasurementCMRR: measCMRR,
		PlotFile:        plotFile,
		CreatedAt:       time.Now(),
	}, nil
}

func (s *service) plotPath(explicit, kind string, id uuid.UUID) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if err := os.MkdirAll(s.outDir, 0755); err != nil {
		return "", fmt.Errorf("compare: create output dir: %w", err)
	}
	return filepath.Join(s.outDir, fmt.Sprintf("%s-%s.png", kind, id)), nil
}
