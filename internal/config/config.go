// Package config loads interface settings from an optional HCL file.
// A missing file yields the defaults; these are interface policy only and
// never influence the rules engine.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete interface configuration
type Config struct {
	Interface InterfaceSettings `hcl:"interface,block"`
}

// InterfaceSettings contains timing and display settings for the TUI
type InterfaceSettings struct {
	// AutoMoveIntervalMs is how long to wait between automatic foundation
	// moves, in milliseconds
	AutoMoveIntervalMs int `hcl:"auto_move_interval_ms,optional"`
	// StatusDurationMs is how long transient status text stays visible
	StatusDurationMs int `hcl:"status_duration_ms,optional"`
	// SaveDir is where numbered save files are written
	SaveDir string `hcl:"save_dir,optional"`
	// SavePrefix names save files (prefix0, prefix1, ...)
	SavePrefix string `hcl:"save_prefix,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Interface: InterfaceSettings{
			AutoMoveIntervalMs: 300,
			StatusDurationMs:   3000,
			SaveDir:            ".",
			SavePrefix:         "freecell_save_",
		},
	}
}

// Load reads configuration from an HCL file. A missing file is not an
// error: the defaults are returned.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	def := Default()
	if cfg.Interface.AutoMoveIntervalMs == 0 {
		cfg.Interface.AutoMoveIntervalMs = def.Interface.AutoMoveIntervalMs
	}
	if cfg.Interface.StatusDurationMs == 0 {
		cfg.Interface.StatusDurationMs = def.Interface.StatusDurationMs
	}
	if cfg.Interface.SaveDir == "" {
		cfg.Interface.SaveDir = def.Interface.SaveDir
	}
	if cfg.Interface.SavePrefix == "" {
		cfg.Interface.SavePrefix = def.Interface.SavePrefix
	}
	return &cfg, nil
}

// AutoMoveInterval returns the auto-move delay as a duration
func (s InterfaceSettings) AutoMoveInterval() time.Duration {
	return time.Duration(s.AutoMoveIntervalMs) * time.Millisecond
}

// StatusDuration returns the status text lifetime as a duration
func (s InterfaceSettings) StatusDuration() time.Duration {
	return time.Duration(s.StatusDurationMs) * time.Millisecond
}
