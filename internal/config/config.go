// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"hashi-capture/internal/hashi"
	"hashi-capture/internal/ocr"
	"hashi-capture/internal/region"
)

// Config holds every tunable the command line tools share.
type Config struct {
	// OCR
	OCRLanguage    string
	TessdataPrefix string
	MinPatchSide   int

	// Region filtering
	MinRegionWidth  int
	MinRegionHeight int
	MinRegionArea   int
	MaxAreaDivisor  int

	// Solver limits
	SolverDepth   int
	SolverVisited int
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		OCRLanguage:    getEnvOrDefault("HASHI_OCR_LANGUAGE", "eng"),
		TessdataPrefix: os.Getenv("TESSDATA_PREFIX"),
		MinPatchSide:   parseIntOrDefault("HASHI_OCR_MIN_PATCH", 64),

		MinRegionWidth:  parseIntOrDefault("HASHI_MIN_REGION_WIDTH", 10),
		MinRegionHeight: parseIntOrDefault("HASHI_MIN_REGION_HEIGHT", 10),
		MinRegionArea:   parseIntOrDefault("HASHI_MIN_REGION_AREA", 100),
		MaxAreaDivisor:  parseIntOrDefault("HASHI_MAX_AREA_DIVISOR", 10),

		SolverDepth:   parseIntOrDefault("HASHI_SOLVER_DEPTH", 3),
		SolverVisited: parseIntOrDefault("HASHI_SOLVER_VISITED", 10000),
	}

	if strings.TrimSpace(cfg.OCRLanguage) == "" {
		return nil, fmt.Errorf("HASHI_OCR_LANGUAGE must not be blank")
	}
	if cfg.MinPatchSide <= 0 {
		return nil, fmt.Errorf("HASHI_OCR_MIN_PATCH must be > 0 (got %d)", cfg.MinPatchSide)
	}
	if cfg.MinRegionWidth <= 0 || cfg.MinRegionHeight <= 0 || cfg.MinRegionArea <= 0 {
		return nil, fmt.Errorf("region size floors must be > 0 (got width=%d, height=%d, area=%d)",
			cfg.MinRegionWidth, cfg.MinRegionHeight, cfg.MinRegionArea)
	}
	if cfg.MaxAreaDivisor <= 0 {
		return nil, fmt.Errorf("HASHI_MAX_AREA_DIVISOR must be > 0 (got %d)", cfg.MaxAreaDivisor)
	}
	if cfg.SolverDepth <= 0 || cfg.SolverVisited <= 0 {
		return nil, fmt.Errorf("solver limits must be > 0 (got depth=%d, visited=%d)",
			cfg.SolverDepth, cfg.SolverVisited)
	}
	return cfg, nil
}

// OCRParams maps the config onto recognition parameters.
func (c *Config) OCRParams() ocr.Params {
	return ocr.Params{
		Language:       c.OCRLanguage,
		TessdataPrefix: c.TessdataPrefix,
		MinPatchSide:   c.MinPatchSide,
	}
}

// FilterParams maps the config onto region filter parameters.
func (c *Config) FilterParams() region.FilterParams {
	return region.FilterParams{
		MinWidth:       c.MinRegionWidth,
		MinHeight:      c.MinRegionHeight,
		MinArea:        c.MinRegionArea,
		MaxAreaDivisor: c.MaxAreaDivisor,
	}
}

// SolverOptions maps the config onto solver search limits.
func (c *Config) SolverOptions() hashi.Options {
	return hashi.Options{
		MaxDepth:   c.SolverDepth,
		MaxVisited: c.SolverVisited,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intValue
		}
	}
	return defaultValue
}
