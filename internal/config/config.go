// Package config centralizes configuration for the outliner application:
// defaults, config files, OUTLINER_* environment variables and CLI flag
// overrides, layered through viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/chocothunder5013/coredump-round1a/internal/batch"
	"github.com/chocothunder5013/coredump-round1a/internal/outline"
)

// Config represents the complete configuration for the outliner application.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Engine configuration
	Engine EngineConfig `mapstructure:"engine" yaml:"engine" json:"engine"`

	// Batch processing configuration
	Batch BatchConfig `mapstructure:"batch" yaml:"batch" json:"batch"`
}

// EngineConfig tunes the heading-detection engine.
type EngineConfig struct {
	MaxHeadingDepth   int     `mapstructure:"max_heading_depth" yaml:"max_heading_depth" json:"max_heading_depth"`
	MinRunArea        float64 `mapstructure:"min_run_area" yaml:"min_run_area" json:"min_run_area"`
	TitlePositionGate float64 `mapstructure:"title_position_gate" yaml:"title_position_gate" json:"title_position_gate"`
	SizeEpsilon       float64 `mapstructure:"size_epsilon" yaml:"size_epsilon" json:"size_epsilon"`
	MergeGapTolerance float64 `mapstructure:"merge_gap_tolerance" yaml:"merge_gap_tolerance" json:"merge_gap_tolerance"`
	SizeWeight        float64 `mapstructure:"size_weight" yaml:"size_weight" json:"size_weight"`
	BoldWeight        float64 `mapstructure:"bold_weight" yaml:"bold_weight" json:"bold_weight"`
	RarityWeight      float64 `mapstructure:"rarity_weight" yaml:"rarity_weight" json:"rarity_weight"`
	TitleFallback     string  `mapstructure:"title_fallback" yaml:"title_fallback" json:"title_fallback"`
}

// BatchConfig contains batch processing settings.
type BatchConfig struct {
	Workers         int    `mapstructure:"workers" yaml:"workers" json:"workers"`
	OutputDir       string `mapstructure:"output_dir" yaml:"output_dir" json:"output_dir"`
	ContinueOnError bool   `mapstructure:"continue_on_error" yaml:"continue_on_error" json:"continue_on_error"`
	TimeoutSec      int    `mapstructure:"timeout_sec" yaml:"timeout_sec" json:"timeout_sec"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	engine := outline.DefaultConfig()
	return Config{
		LogLevel: "info",
		Verbose:  false,
		Engine: EngineConfig{
			MaxHeadingDepth:   engine.MaxHeadingDepth,
			MinRunArea:        engine.MinRunArea,
			TitlePositionGate: engine.TitlePositionGate,
			SizeEpsilon:       engine.SizeEpsilon,
			MergeGapTolerance: engine.MergeGapTolerance,
			SizeWeight:        engine.SizeWeight,
			BoldWeight:        engine.BoldWeight,
			RarityWeight:      engine.RarityWeight,
			TitleFallback:     batch.TitleFromFilename,
		},
		Batch: BatchConfig{
			Workers:         0, // auto: number of CPU cores
			OutputDir:       "output",
			ContinueOnError: true,
			TimeoutSec:      0,
		},
	}
}

// Validate validates the configuration and returns the first error found.
// A validation failure is fatal at startup.
func (c *Config) Validate() error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if err := c.ToEngineConfig().Validate(); err != nil {
		return err
	}

	validFallbacks := []string{batch.TitleFromFilename, batch.TitleFromFirstHeading, batch.TitleEmpty}
	if !contains(validFallbacks, c.Engine.TitleFallback) {
		return fmt.Errorf("invalid title fallback: %s (must be one of: %s)",
			c.Engine.TitleFallback, strings.Join(validFallbacks, ", "))
	}

	if c.Batch.Workers < 0 {
		return fmt.Errorf("invalid batch workers: %d (must not be negative)", c.Batch.Workers)
	}
	if c.Batch.TimeoutSec < 0 {
		return fmt.Errorf("invalid batch timeout: %d (must not be negative)", c.Batch.TimeoutSec)
	}
	return nil
}

// ToEngineConfig converts to the engine configuration format.
func (c *Config) ToEngineConfig() outline.Config {
	return outline.Config{
		MaxHeadingDepth:   c.Engine.MaxHeadingDepth,
		MinRunArea:        c.Engine.MinRunArea,
		TitlePositionGate: c.Engine.TitlePositionGate,
		SizeEpsilon:       c.Engine.SizeEpsilon,
		MergeGapTolerance: c.Engine.MergeGapTolerance,
		SizeWeight:        c.Engine.SizeWeight,
		BoldWeight:        c.Engine.BoldWeight,
		RarityWeight:      c.Engine.RarityWeight,
	}
}

// ToBatchConfig converts to the batch driver configuration format.
func (c *Config) ToBatchConfig() batch.Config {
	cfg := batch.DefaultConfig()
	cfg.Engine = c.ToEngineConfig()
	cfg.TitleFallback = c.Engine.TitleFallback
	cfg.OutputDir = c.Batch.OutputDir
	cfg.Workers = c.Batch.Workers
	cfg.ContinueOnError = c.Batch.ContinueOnError
	cfg.Timeout = time.Duration(c.Batch.TimeoutSec) * time.Second
	return cfg
}

// contains checks if a slice contains a string.
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
