package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"bodeview/internal/api"
	"bodeview/internal/compare"
	"bodeview/internal/config"
	"bodeview/internal/registry"
	"bodeview/internal/render"
	"bodeview/pkg/models"
)

const version = "1.0.0"

func main() {
	// Configure zerolog for structured logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "compare":
		err = runCompare(os.Args[2:])
	case "cmrr":
		err = runCMRR(os.Args[2:])
	case "serve":
		err = runServe()
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  bodeview compare -sim <file> -meas <file> [-title <s>] [-o <out.png>]
  bodeview cmrr -sim-diff <file> -sim-cm <file> -meas-diff <file> -meas-cm <file> [-title <s>] [-o <out.png>]
  bodeview serve`)
}

func newService(cfg *config.Config) compare.Service {
	return compare.NewService(cfg.Output.Dir, render.Options{
		FreqMin: cfg.Plot.FreqMinHz,
		FreqMax: cfg.Plot.FreqMaxHz,
		Width:   cfg.Plot.WidthIn,
		Height:  cfg.Plot.HeightIn,
	})
}

func runCompare(args []string) error {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	sim := fs.String("sim", "", "simulation AC-analysis text export")
	meas := fs.String("meas", "", "oscilloscope CSV export")
	title := fs.String("title", "", "figure title")
	out := fs.String("o", "", "output PNG path")
	fs.Parse(args)

	if *sim == "" || *meas == "" {
		fs.Usage()
		return fmt.Errorf("compare: -sim and -meas are required")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	res, err := newService(cfg).Gain(context.Background(), compare.GainRequest{
		SimulationFile:  *sim,
		MeasurementFile: *meas,
		Title:           *title,
		OutputFile:      *out,
	})
	if err != nil {
		return err
	}
	fmt.Println(res.PlotFile)
	return nil
}

func runCMRR(args []string) error {
	fs := flag.NewFlagSet("cmrr", flag.ExitOnError)
	simDiff := fs.String("sim-diff", "", "differential-mode simulation export")
	simCM := fs.String("sim-cm", "", "common-mode simulation export")
	measDiff := fs.String("meas-diff", "", "differential-mode measurement CSV")
	measCM := fs.String("meas-cm", "", "common-mode measurement CSV")
	title := fs.String("title", "", "figure title")
	out := fs.String("o", "", "output PNG path")
	fs.Parse(args)

	if *simDiff == "" || *simCM == "" || *measDiff == "" || *measCM == "" {
		fs.Usage()
		return fmt.Errorf("cmrr: -sim-diff, -sim-cm, -meas-diff and -meas-cm are required")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	res, err := newService(cfg).Rejection(context.Background(), compare.RejectionRequest{
		SimulationDiffFile:  *simDiff,
		SimulationCMFile:    *simCM,
		MeasurementDiffFile: *measDiff,
		MeasurementCMFile:   *measCM,
		Title:               *title,
		OutputFile:          *out,
	})
	if err != nil {
		return err
	}
	fmt.Println(res.PlotFile)
	return nil
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Create Chi router
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(zerologLogger())
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// Create Huma API
	humaConfig := huma.DefaultConfig("Bodeview API", version)
	humaConfig.DocsPath = "/api/docs"
	humaAPI := humachi.New(router, humaConfig)

	// Register health endpoint
	huma.Register(humaAPI, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns the health status of the service",
	}, func(ctx context.Context, input *struct{}) (*models.HealthResponse, error) {
		resp := &models.HealthResponse{}
		resp.Body.Status = "healthy"
		resp.Body.Version = version
		resp.Body.Time = time.Now()
		return resp, nil
	})

	api.RegisterRoutes(router, humaAPI, newService(cfg), registry.NewStore())

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Starting bodeview server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	log.Info().Msg("Server exited")
	return nil
}

// zerologLogger returns a Chi middleware that logs HTTP requests using zerolog
func zerologLogger() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				log.Info().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("remote_ip", r.RemoteAddr).
					Int("status", ww.Status()).
					Dur("latency", time.Since(start)).
					Str("user_agent", r.UserAgent()).
					Msg("HTTP request")
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
