package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dyluth/peyote/internal/config"
	"github.com/dyluth/peyote/internal/printer"
	"gopkg.in/yaml.v3"
)

//go:embed templates/*
var templatesFS embed.FS

// ConfigFileName is the file written by Initialize.
const ConfigFileName = "peyote.yml"

// CheckExisting returns an error if dir already holds a peyote.yml
func CheckExisting(dir string) error {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists: %s\n\nUse 'peyote init --force' to overwrite it", path)
	}
	return nil
}

// Initialize writes a default peyote.yml into dir and returns its path.
// Without force an existing file is left untouched and an error returned.
func Initialize(dir string, force bool) (string, error) {
	if !force {
		if err := CheckExisting(dir); err != nil {
			return "", err
		}
	}

	content, err := templatesFS.ReadFile("templates/peyote.yml.tmpl")
	if err != nil {
		return "", fmt.Errorf("failed to read peyote.yml template: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	// Validate created file as written, without environment overrides
	written, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read back %s: %w", path, err)
	}
	var cfg config.Config
	if err := yaml.Unmarshal(written, &cfg); err != nil {
		return "", fmt.Errorf("created %s is invalid: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return "", fmt.Errorf("created %s is invalid: %w", path, err)
	}

	return path, nil
}

// PrintSuccess prints the success message with the created file
func PrintSuccess(path string) {
	printer.Success("Created %s\n", path)
	printer.Info("\nNext steps:\n")
	printer.Info("  1. Set cache.redis_url to enable the result cache (optional)\n")
	printer.Info("  2. Run 'peyote serve --config %s'\n", path)
}
