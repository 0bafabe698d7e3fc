package config

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Plot   PlotConfig
	Output OutputConfig
}

// ServerConfig holds serve-mode configuration
type ServerConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
}

// PlotConfig holds figure geometry and frequency-axis range
type PlotConfig struct {
	FreqMinHz float64
	FreqMaxHz float64
	WidthIn   float64
	HeightIn  float64
}

// OutputConfig holds rendered-figure output configuration
type OutputConfig struct {
	Dir string
}

// Load loads configuration from environment variables and .env files
func Load() (*Config, error) {
	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "dev")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("OUTPUT_DIR", "plots")
	viper.SetDefault("FREQ_MIN_HZ", 10.0)
	viper.SetDefault("FREQ_MAX_HZ", 120e6)
	viper.SetDefault("PLOT_WIDTH_IN", 8.0)
	viper.SetDefault("PLOT_HEIGHT_IN", 6.0)

	// Read from .env files based on environment
	env := viper.GetString("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	viper.SetConfigName(".env." + env)
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Read .env file (ignore error if file doesn't exist)
	_ = viper.ReadInConfig()

	// Environment variables override .env file values
	viper.AutomaticEnv()

	viper.BindEnv("PORT")
	viper.BindEnv("ENVIRONMENT")
	viper.BindEnv("ALLOWED_ORIGINS")
	viper.BindEnv("OUTPUT_DIR")
	viper.BindEnv("FREQ_MIN_HZ")
	viper.BindEnv("FREQ_MAX_HZ")
	viper.BindEnv("PLOT_WIDTH_IN")
	viper.BindEnv("PLOT_HEIGHT_IN")

	var config Config
	config.Server.Port = viper.GetString("PORT")
	config.Server.Env = viper.GetString("ENVIRONMENT")
	config.Server.AllowedOrigins = strings.Split(viper.GetString("ALLOWED_ORIGINS"), ",")
	config.Output.Dir = viper.GetString("OUTPUT_DIR")
	config.Plot.FreqMinHz = viper.GetFloat64("FREQ_MIN_HZ")
	config.Plot.FreqMaxHz = viper.GetFloat64("FREQ_MAX_HZ")
	config.Plot.WidthIn = viper.GetFloat64("PLOT_WIDTH_IN")
	config.Plot.HeightIn = viper.GetFloat64("PLOT_HEIGHT_IN")

	log.Debug().
		Str("environment", config.Server.Env).
		Str("outputDir", config.Output.Dir).
		Float64("freqMinHz", config.Plot.FreqMinHz).
		Float64("freqMaxHz", config.Plot.FreqMaxHz).
		Msg("Configuration loaded")

	return &config, nil
}
