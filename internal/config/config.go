// Package config loads evaluation settings from a JSON file. Fields are
// pointers so a partial config is safe: anything omitted falls back to the
// defaults returned by the Get* accessors.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/onpoeet/cadence-detection/internal/segment"
)

// Config represents the root configuration for an agreement run.
type Config struct {
	// WindowSize is the WindowDiff window width. Pk derives its own window
	// from the reference segment length.
	WindowSize *int `json:"window_size,omitempty"`

	// Boundary is the symbol marking a segment break in encoded vectors.
	Boundary *int `json:"boundary,omitempty"`

	// Weighted selects the weighted WindowDiff variant.
	Weighted *bool `json:"weighted,omitempty"`

	// AnnotationsDir is the directory holding per-annotator .txt files.
	AnnotationsDir *string `json:"annotations_dir,omitempty"`

	// DatabasePath is the SQLite file for run persistence; empty disables it.
	DatabasePath *string `json:"database_path,omitempty"`

	// ReportHTML and ReportPNG are chart output paths; empty disables them.
	ReportHTML *string `json:"report_html,omitempty"`
	ReportPNG  *string `json:"report_png,omitempty"`
}

// Empty returns a Config with all fields unset.
func Empty() *Config {
	return &Config{}
}

// Load reads a Config from a JSON file. The file must have a .json
// extension and stay under the max file size. Fields omitted from the JSON
// keep their defaults, so partial configs are safe.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Empty()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *Config) Validate() error {
	if c.WindowSize != nil && *c.WindowSize < 1 {
		return fmt.Errorf("window_size must be at least 1, got %d", *c.WindowSize)
	}
	if c.Boundary != nil && *c.Boundary < 0 {
		return fmt.Errorf("boundary must be non-negative, got %d", *c.Boundary)
	}
	if c.AnnotationsDir != nil && *c.AnnotationsDir == "" {
		return fmt.Errorf("annotations_dir must not be empty when set")
	}
	return nil
}

// GetWindowSize returns the window_size value or the default.
func (c *Config) GetWindowSize() int {
	if c.WindowSize == nil {
		return 3 // default
	}
	return *c.WindowSize
}

// GetBoundary returns the boundary value or the default.
func (c *Config) GetBoundary() int {
	if c.Boundary == nil {
		return segment.DefaultBoundary
	}
	return *c.Boundary
}

// GetWeighted returns the weighted value or the default.
func (c *Config) GetWeighted() bool {
	if c.Weighted == nil {
		return false
	}
	return *c.Weighted
}

// GetAnnotationsDir returns the annotations_dir value or the default.
func (c *Config) GetAnnotationsDir() string {
	if c.AnnotationsDir == nil {
		return "annotations"
	}
	return *c.AnnotationsDir
}

// GetDatabasePath returns the database_path value or the default (empty,
// meaning persistence is disabled).
func (c *Config) GetDatabasePath() string {
	if c.DatabasePath == nil {
		return ""
	}
	return *c.DatabasePath
}

// GetReportHTML returns the report_html value or the default (empty).
func (c *Config) GetReportHTML() string {
	if c.ReportHTML == nil {
		return ""
	}
	return *c.ReportHTML
}

// GetReportPNG returns the report_png value or the default (empty).
func (c *Config) GetReportPNG() string {
	if c.ReportPNG == nil {
		return ""
	}
	return *c.ReportPNG
}
