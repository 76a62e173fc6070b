package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains the Apache config location and the conventions every
// new publication is derived under.
type Paths struct {
	// ApacheConfig is the config file holding the managed blocks.
	ApacheConfig string `toml:"apache_config"`
	// VRDDir is the directory generated VRD descriptors are placed in.
	VRDDir string `toml:"vrd_dir"`
	// PubDir is the directory publication directories are created in.
	PubDir string `toml:"pub_dir"`
	// URLBase prefixes every publication URL path.
	URLBase string `toml:"url_base"`
	// PlatformDir and WSModule locate the 1C web server module.
	PlatformDir string `toml:"platform_dir"`
	WSModule    string `toml:"ws_module"`
	// TemplatesDir overrides the embedded block and VRD templates.
	TemplatesDir string `toml:"templates_dir"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for webpub1c.
type Config struct {
	Paths     Paths             `toml:"paths"`
	VRDParams map[string]string `toml:"vrd_params"`
	Logging   Logging           `toml:"logging"`
}

// DefaultConfigPath returns the absolute path of the default
// configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/webpub1c/config.toml")
}

// Load locates, parses, and validates a configuration file. The
// returned config has all path fields expanded and normalized. The
// second return is the resolved path, the third whether a file was
// found there.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		if err := toml.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("webpub1c.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	var err error
	if c.Paths.ApacheConfig, err = expandPath(c.Paths.ApacheConfig); err != nil {
		return fmt.Errorf("paths.apache_config: %w", err)
	}
	if c.Paths.VRDDir, err = expandPath(c.Paths.VRDDir); err != nil {
		return fmt.Errorf("paths.vrd_dir: %w", err)
	}
	if c.Paths.PubDir, err = expandPath(c.Paths.PubDir); err != nil {
		return fmt.Errorf("paths.pub_dir: %w", err)
	}
	if c.Paths.PlatformDir, err = expandPath(c.Paths.PlatformDir); err != nil {
		return fmt.Errorf("paths.platform_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.TemplatesDir) != "" {
		if c.Paths.TemplatesDir, err = expandPath(c.Paths.TemplatesDir); err != nil {
			return fmt.Errorf("paths.templates_dir: %w", err)
		}
	}
	c.Paths.URLBase = strings.TrimSpace(c.Paths.URLBase)
	c.Paths.WSModule = strings.TrimSpace(c.Paths.WSModule)
	return nil
}

// WSModulePath returns the full path of the 1cws Apache module, or ""
// when the platform location is not configured.
func (c *Config) WSModulePath() string {
	if c.Paths.PlatformDir == "" || c.Paths.WSModule == "" {
		return ""
	}
	return filepath.Join(c.Paths.PlatformDir, c.Paths.WSModule)
}

// WSModuleValid reports whether the configured module file exists.
func (c *Config) WSModuleValid() bool {
	path := c.WSModulePath()
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other
// packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified
// location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
