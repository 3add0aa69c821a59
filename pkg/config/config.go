// Package config loads the server/CLI configuration from a YAML file.
// Unknown keys are rejected so typos surface at startup instead of being
// silently ignored.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the full configuration surface for the contact form server and
// CLI.
type Config struct {
	// Listen is the address the serve mode binds to.
	Listen string `yaml:"listen"`
	// BasePath mounts the component routes under a path prefix.
	BasePath string `yaml:"base_path"`
	// Title overrides the page heading.
	Title string `yaml:"title"`
	// MapEmbedURL renders the static map iframe when set.
	MapEmbedURL string `yaml:"map_embed_url"`
	// IntakeEndpoint is the contact-intake URL submissions are POSTed to.
	IntakeEndpoint string `yaml:"intake_endpoint"`
	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	Theme ThemeConfig `yaml:"theme"`
}

// ThemeConfig selects the go-theme name/variant applied to the page.
type ThemeConfig struct {
	Name    string `yaml:"name"`
	Variant string `yaml:"variant"`
}

// Default returns the configuration used when no file is provided.
func Default() Config {
	return Config{
		Listen:   ":8080",
		BasePath: "/",
		LogLevel: "info",
	}
}

// Load reads and parses the file at path, applying defaults for any value
// left empty.
func Load(path string) (Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadFS reads and parses a config file from an fs.FS.
func LoadFS(fsys fs.FS, path string) (Config, error) {
	if fsys == nil {
		return Config{}, errors.New("config: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML payload. Unknown fields are an error.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}

	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}
	if cfg.BasePath == "" {
		cfg.BasePath = "/"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}
