package game

import (
	"fmt"
	"os"
	"strconv"
)

// Stage selects which iteration of the demo to run.
type Stage string

const (
	// StageDungeon carves rooms into a map and blocks movement at walls.
	StageDungeon Stage = "dungeon"
	// StagePlain has no map; entities move freely over a blank screen.
	StagePlain Stage = "plain"
)

// Config holds game configuration options.
type Config struct {
	Title        string
	ScreenWidth  int // Logical screen size in cells
	ScreenHeight int
	FPSLimit     int // Maximum frames presented per second; 0 disables the cap
	Stage        Stage

	// Telemetry enables OTLP trace export.
	Telemetry    bool
	OTLPEndpoint string
	OTLPAPIKey   string
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Title:        "Rust'n'Ruin",
		ScreenWidth:  80,
		ScreenHeight: 50,
		FPSLimit:     20,
		Stage:        StageDungeon,
	}
}

// LoadConfig returns DefaultConfig overridden by RUINWALK_* environment variables.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if v, ok := lookupEnv("RUINWALK_TITLE"); ok {
		cfg.Title = v
	}

	if v, ok := lookupEnv("RUINWALK_FPS"); ok {
		fps, err := strconv.Atoi(v)
		if err != nil || fps < 0 {
			return cfg, fmt.Errorf("invalid RUINWALK_FPS %q: must be a non-negative integer", v)
		}
		cfg.FPSLimit = fps
	}

	if v, ok := lookupEnv("RUINWALK_STAGE"); ok {
		switch Stage(v) {
		case StageDungeon, StagePlain:
			cfg.Stage = Stage(v)
		default:
			return cfg, fmt.Errorf("invalid RUINWALK_STAGE %q: want %q or %q", v, StageDungeon, StagePlain)
		}
	}

	if v, ok := lookupEnv("RUINWALK_TELEMETRY"); ok {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid RUINWALK_TELEMETRY %q: %w", v, err)
		}
		cfg.Telemetry = on
	}

	cfg.OTLPEndpoint = os.Getenv("RUINWALK_OTLP_ENDPOINT")
	cfg.OTLPAPIKey = os.Getenv("RUINWALK_OTLP_API_KEY")

	return cfg, nil
}

// lookupEnv is os.LookupEnv with empty values treated as unset.
func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	return v, ok && v != ""
}
