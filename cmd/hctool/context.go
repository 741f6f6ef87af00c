package main

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"hctool/internal/config"
	"hctool/internal/logging"
	"hctool/internal/organiser"
	"hctool/internal/savedir"
)

// commandContext lazily resolves the pieces every command needs so that
// flag parsing finishes before configuration is read.
type commandContext struct {
	configFlag   *string
	saveDirFlag  *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, saveDirFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		saveDirFlag:  saveDirFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		c.config, _, _, c.configErr = config.Load(path)
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
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			level = strings.TrimSpace(*c.logLevelFlag)
		}
		c.logger, c.loggerErr = logging.New(logging.Options{
			Level:  level,
			Format: cfg.Logging.Format,
			Output: os.Stderr,
		})
	})
	return c.logger, c.loggerErr
}

// resolver builds a save-directory resolver honouring the --save-dir flag
// over the configured path over platform autodetection.
func (c *commandContext) resolver() (*savedir.Resolver, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	override := cfg.Paths.SaveDir
	if c.saveDirFlag != nil && strings.TrimSpace(*c.saveDirFlag) != "" {
		override = strings.TrimSpace(*c.saveDirFlag)
	}
	return savedir.NewResolver(override), nil
}

func (c *commandContext) groups() (*organiser.GroupTable, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Organiser.VariantGroupsPath != "" {
		return organiser.LoadGroups(cfg.Organiser.VariantGroupsPath)
	}
	return organiser.DefaultGroups(), nil
}
