package config

import (
	"errors"
	"strings"

	"webpub1c/internal/urlpath"
)

// Validate checks the shape of the configuration. Existence of the
// referenced files and directories is not checked here; the check
// command reports on that separately.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Paths.ApacheConfig) == "" {
		return errors.New("paths.apache_config must be set")
	}
	if strings.TrimSpace(c.Paths.VRDDir) == "" {
		return errors.New("paths.vrd_dir must be set")
	}
	if strings.TrimSpace(c.Paths.PubDir) == "" {
		return errors.New("paths.pub_dir must be set")
	}
	if !urlpath.IsAbsolute(c.Paths.URLBase) {
		return errors.New("paths.url_base must be an absolute URL path")
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json":
	default:
		return errors.New("logging.format must be console or json")
	}
	return nil
}
