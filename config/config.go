// Package config loads editor settings from an HCL file. All settings have
// compiled-in defaults; a missing file is not an error.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Settings holds the host-level knobs the wire engine is parameterized by.
type Settings struct {
	// CellSize is the display size of one grid cell.
	CellSize float64
	// Debug draws the bounding rect and hit shape of every wire.
	Debug bool
	// ShowHints displays the hover cursor hint in the status line.
	ShowHints bool
}

// Default returns the settings used when no config file overrides them.
func Default() Settings {
	return Settings{
		CellSize:  2,
		Debug:     false,
		ShowHints: true,
	}
}

// hclSettings is the decode target for the settings file. Pointer fields
// distinguish "absent" from zero so absent attributes keep their defaults.
type hclSettings struct {
	CellSize  *float64 `hcl:"cell_size,optional"`
	Debug     *bool    `hcl:"debug,optional"`
	ShowHints *bool    `hcl:"show_hints,optional"`
}

// Load reads the HCL settings file at path, applying it over the defaults.
// A nonexistent file yields the defaults without an error.
func Load(path string) (Settings, error) {
	s := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return s, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return s, fmt.Errorf("failed to parse config %s: %w", path, diags)
	}

	var parsed hclSettings
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return s, fmt.Errorf("failed to decode config %s: %w", path, diags)
	}

	if parsed.CellSize != nil {
		if *parsed.CellSize <= 0 {
			return s, fmt.Errorf("config %s: cell_size must be positive, got %v", path, *parsed.CellSize)
		}
		s.CellSize = *parsed.CellSize
	}
	if parsed.Debug != nil {
		s.Debug = *parsed.Debug
	}
	if parsed.ShowHints != nil {
		s.ShowHints = *parsed.ShowHints
	}

	return s, nil
}
