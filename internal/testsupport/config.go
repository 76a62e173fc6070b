package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"webpub1c/internal/config"
)

// ConfigOption allows callers to customize the generated test
// configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per
// test: an Apache config file, a vrd directory and a pub directory all
// exist when it returns.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.ApacheConfig = filepath.Join(base, "apache.cfg")
	cfgVal.Paths.VRDDir = filepath.Join(base, "vrds")
	cfgVal.Paths.PubDir = filepath.Join(base, "pubs")
	cfgVal.Paths.URLBase = "/1c"
	cfgVal.Paths.PlatformDir = filepath.Join(base, "platform")
	cfgVal.Paths.WSModule = "wsap24.so"
	cfgVal.Paths.TemplatesDir = ""

	for _, dir := range []string{cfgVal.Paths.VRDDir, cfgVal.Paths.PubDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	WriteFile(t, cfgVal.Paths.ApacheConfig, "# test apache config\n")

	builder := &configBuilder{t: t, baseDir: base, cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithVRDParams sets descriptor parameters on the test config.
func WithVRDParams(params map[string]string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.VRDParams = params
	}
}

// WithWSModuleFile creates the platform module file so module checks
// succeed.
func WithWSModuleFile() ConfigOption {
	return func(b *configBuilder) {
		WriteFile(b.t, b.cfg.WSModulePath(), "binary\n")
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.ApacheConfig)
}
