// Package project locates and parses the lumen.toml manifest that
// configures the finalizer driver: which call checkers run, how the
// missing-diagnostic fallback behaves, and where cached results live.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const ManifestName = "lumen.toml"

// DefaultMaxDiagnostics bounds a single run's diagnostic bag unless the
// manifest or a CLI flag overrides it.
const DefaultMaxDiagnostics = 256

type Manifest struct {
	Path   string
	Root   string
	Config Config
}

type Config struct {
	Package  PackageConfig  `toml:"package"`
	Finalize FinalizeConfig `toml:"finalize"`
	Checkers CheckersConfig `toml:"checkers"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type FinalizeConfig struct {
	// ReportMissingDiagnostic controls the fallback emitted when a failed
	// candidate produced no diagnostic of its own.
	ReportMissingDiagnostic bool   `toml:"report_missing_diagnostic"`
	MaxDiagnostics          int    `toml:"max_diagnostics"`
	CacheDir                string `toml:"cache_dir"`
}

type CheckersConfig struct {
	Deprecation         bool `toml:"deprecation"`
	DefaultedParameters bool `toml:"defaulted_parameters"`
}

// DefaultConfig is what a directory without a manifest gets.
func DefaultConfig() Config {
	return Config{
		Finalize: FinalizeConfig{
			ReportMissingDiagnostic: true,
			MaxDiagnostics:          DefaultMaxDiagnostics,
		},
		Checkers: CheckersConfig{
			Deprecation:         true,
			DefaultedParameters: false,
		},
	}
}

// FindManifest walks up from startDir to locate lumen.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and parses the manifest governing startDir. When no manifest
// exists the defaults apply and ok is false.
func Load(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

// LoadConfig parses a manifest file. Sections left out keep their defaults;
// [package].name is the only required key.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if cfg.Finalize.MaxDiagnostics < 0 {
		return Config{}, fmt.Errorf("%s: [finalize].max_diagnostics must not be negative", path)
	}
	if cfg.Finalize.MaxDiagnostics == 0 {
		cfg.Finalize.MaxDiagnostics = DefaultMaxDiagnostics
	}
	return cfg, nil
}
