package testsupport

import (
	"testing"

	"webpub1c/internal/apache"
	"webpub1c/internal/config"
	"webpub1c/internal/logging"
	"webpub1c/internal/templates"
)

// NewStore builds an Apache store over the given test config with a
// no-op logger.
func NewStore(t testing.TB, cfg *config.Config) *apache.Config {
	t.Helper()
	return apache.New(apache.Options{
		Filename:  cfg.Paths.ApacheConfig,
		VRDDir:    cfg.Paths.VRDDir,
		PubDir:    cfg.Paths.PubDir,
		URLBase:   cfg.Paths.URLBase,
		VRDParams: cfg.VRDParams,
		Renderer:  templates.NewRenderer(cfg.Paths.TemplatesDir),
		Logger:    logging.NewNop(),
	})
}
