package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"webpub1c/internal/apache"
	"webpub1c/internal/config"
	"webpub1c/internal/logging"
	"webpub1c/internal/templates"
)

type commandContext struct {
	configFlag  *string
	verboseFlag *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		verboseFlag: verboseFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		level := cfg.Logging.Level
		if c.verboseFlag != nil && *c.verboseFlag {
			level = "info"
		}
		c.logger, c.loggerErr = logging.New(logging.Options{
			Level:  level,
			Format: cfg.Logging.Format,
		})
	})
	return c.logger, c.loggerErr
}

// operationLogger returns a logger tagged with the operation name and a
// fresh request id, so every line of a mutating command can be traced
// to one invocation.
func (c *commandContext) operationLogger(op string) (*slog.Logger, error) {
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return logger.With(
		logging.String("op", op),
		logging.String("request_id", uuid.NewString())), nil
}

// newStore builds the Apache store from the loaded configuration.
func (c *commandContext) newStore(logger *slog.Logger) (*apache.Config, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return apache.New(apache.Options{
		Filename:  cfg.Paths.ApacheConfig,
		VRDDir:    cfg.Paths.VRDDir,
		PubDir:    cfg.Paths.PubDir,
		URLBase:   cfg.Paths.URLBase,
		VRDParams: cfg.VRDParams,
		Renderer:  templates.NewRenderer(cfg.Paths.TemplatesDir),
		Logger:    logger,
	}), nil
}
