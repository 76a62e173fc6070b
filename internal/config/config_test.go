package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"webpub1c/internal/config"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(tempHome); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Paths.URLBase != "/1c" {
		t.Errorf("unexpected url base: %q", cfg.Paths.URLBase)
	}
	if cfg.Paths.ApacheConfig != "/etc/apache2/apache2.conf" {
		t.Errorf("unexpected apache config: %q", cfg.Paths.ApacheConfig)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("unexpected log level: %q", cfg.Logging.Level)
	}
	if got := cfg.WSModulePath(); got != "/opt/1cv8/x86_64/current/wsap24.so" {
		t.Errorf("unexpected module path: %q", got)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "webpub1c.toml")
	content := `
[paths]
apache_config = "` + dir + `/apache.cfg"
vrd_dir = "` + dir + `/vrds"
pub_dir = "` + dir + `/pubs"
url_base = "/publish"

[vrd_params]
debug = "enable"

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %q exists = %v", resolved, exists)
	}
	if cfg.Paths.URLBase != "/publish" {
		t.Errorf("url base = %q", cfg.Paths.URLBase)
	}
	if cfg.VRDParams["debug"] != "enable" {
		t.Errorf("vrd params not decoded: %v", cfg.VRDParams)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("format default not applied: %q", cfg.Logging.Format)
	}
}

func TestLoadExpandsHome(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.toml")
	content := `
[paths]
apache_config = "~/apache.cfg"
vrd_dir = "~/vrds"
pub_dir = "~/pubs"
url_base = "/1c"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := filepath.Join(tempHome, "apache.cfg"); cfg.Paths.ApacheConfig != want {
		t.Errorf("apache_config = %q, want %q", cfg.Paths.ApacheConfig, want)
	}
}

func TestValidateRejectsRelativeURLBase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.toml")
	content := `
[paths]
apache_config = "/tmp/apache.cfg"
vrd_dir = "/tmp/vrds"
pub_dir = "/tmp/pubs"
url_base = "nope"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil || !strings.Contains(err.Error(), "url_base") {
		t.Fatalf("expected url_base validation error, got %v", err)
	}
}

func TestValidateRejectsUnknownLogFormat(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for unknown log format")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[paths]") {
		t.Error("sample config missing [paths] section")
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if !exists {
		t.Fatal("sample config not found after CreateSample")
	}
	if cfg.Paths.URLBase == "" {
		t.Error("sample config missing url base")
	}
}
