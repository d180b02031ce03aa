// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/screenplay-agent/internal/llm"
)

// Environment variables read by FromEnv.
const (
	EnvAPIKey     = "GOOGLE_API_KEY"
	EnvTextModel  = "SCREENPLAY_MODEL"
	EnvImageModel = "SCREENPLAY_IMAGE_MODEL"
	EnvImagesDir  = "IMAGES_DIR"
	EnvOutputDir  = "OUTPUT_DIR"
)

// Default output locations.
const (
	DefaultImagesDir = "generated_images"
	DefaultOutputDir = "generated_screenplays"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags or the environment.
type Config struct {
	APIKey     string `json:"api_key,omitempty"`     // Gemini API key
	TextModel  string `json:"model,omitempty"`       // Model for text generation stages
	ImageModel string `json:"image_model,omitempty"` // Model for character image generation
	ImagesDir  string `json:"images_dir,omitempty"`  // Directory for character images
	OutputDir  string `json:"output_dir,omitempty"`  // Directory for the finished PDF
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed debug information
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		TextModel:  llm.DefaultTextModel,
		ImageModel: llm.DefaultImageModel,
		ImagesDir:  DefaultImagesDir,
		OutputDir:  DefaultOutputDir,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables. Unset
// variables leave the corresponding field empty.
func FromEnv() Config {
	return Config{
		APIKey:     os.Getenv(EnvAPIKey),
		TextModel:  os.Getenv(EnvTextModel),
		ImageModel: os.Getenv(EnvImageModel),
		ImagesDir:  os.Getenv(EnvImagesDir),
		OutputDir:  os.Getenv(EnvOutputDir),
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to layer config file values over the environment
// and the built-in defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.TextModel == "" {
		result.TextModel = defaults.TextModel
	}
	if result.ImageModel == "" {
		result.ImageModel = defaults.ImageModel
	}
	if result.ImagesDir == "" {
		result.ImagesDir = defaults.ImagesDir
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}

// Validate checks that the configuration has valid values. The API key is
// checked at client construction, not here, so a key-less config can still
// be merged with flags.
func (c *Config) Validate() error {
	if c.TextModel == "" {
		return fmt.Errorf("config error: 'model' must not be empty")
	}
	if c.ImageModel == "" {
		return fmt.Errorf("config error: 'image_model' must not be empty")
	}
	if c.ImagesDir == "" {
		return fmt.Errorf("config error: 'images_dir' must not be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("config error: 'output_dir' must not be empty")
	}
	return nil
}
