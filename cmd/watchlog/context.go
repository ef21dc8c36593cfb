package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"watchlog/internal/catalog"
	"watchlog/internal/config"
	"watchlog/internal/engine"
	"watchlog/internal/logging"
	"watchlog/internal/output"
	"watchlog/internal/sheet"
	"watchlog/internal/videocache"
	"watchlog/internal/worklock"
)

type commandContext struct {
	configFlag *string
	fileFlag   *string
	sheetFlag  *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, fileFlag, sheetFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		fileFlag:   fileFlag,
		sheetFlag:  sheetFlag,
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
		if err := cfg.EnsureDirectories(); err != nil {
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
		c.logger, c.loggerErr = logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			LogDir: cfg.Paths.LogDir,
		})
	})
	return c.logger, c.loggerErr
}

// workbookPath resolves the --file flag: an existing or absolute path is
// taken as given, anything else is looked up under the inputs directory.
func (c *commandContext) workbookPath(cfg *config.Config) (string, error) {
	var name string
	if c.fileFlag != nil {
		name = strings.TrimSpace(*c.fileFlag)
	}
	if name == "" {
		return "", errors.New("no workbook specified: pass --file")
	}
	if filepath.IsAbs(name) {
		return name, nil
	}
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}
	candidate := filepath.Join(cfg.Paths.InputsDir, name)
	if _, err := os.Stat(candidate); err != nil {
		return "", fmt.Errorf("workbook %s not found (looked in %s)", name, cfg.Paths.InputsDir)
	}
	return candidate, nil
}

func (c *commandContext) sheetName() (string, error) {
	var name string
	if c.sheetFlag != nil {
		name = strings.TrimSpace(*c.sheetFlag)
	}
	if name == "" {
		return "", errors.New("no worksheet specified: pass --sheet")
	}
	return name, nil
}

// session bundles everything an operation command needs: the exclusively
// locked workbook, an engine over it, and the result writer.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	src    *sheet.XLSX
	engine *engine.Engine
	writer *output.Writer

	release func()
	cache   *videocache.Store
}

func (s *session) close() {
	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			s.logger.Warn("close cache", logging.Error(err))
		}
	}
	if s.src != nil {
		if err := s.src.Close(); err != nil {
			s.logger.Warn("close workbook", logging.Error(err))
		}
	}
	if s.release != nil {
		s.release()
	}
}

// openSession locks and opens the workbook and assembles the engine. With
// withCatalog set it also wires the catalog client and, when enabled, the
// lookup cache; commands that never touch the network skip both.
func (c *commandContext) openSession(withCatalog bool) (*session, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}

	path, err := c.workbookPath(cfg)
	if err != nil {
		return nil, err
	}
	sheetName, err := c.sheetName()
	if err != nil {
		return nil, err
	}

	release, err := worklock.Acquire(path)
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, logger: logger, release: release}

	s.src, err = sheet.OpenXLSX(path, sheetName, logger)
	if err != nil {
		s.close()
		return nil, err
	}

	opts := []engine.Option{
		engine.WithLinkPrefix(cfg.Catalog.LinkPrefix),
		engine.WithPalette(cfg.Sheet.Palette),
	}

	if withCatalog {
		if err := cfg.ValidateCatalog(); err != nil {
			s.close()
			return nil, err
		}
		client, err := catalog.New(cfg.Catalog.APIKey, cfg.Catalog.BaseURL,
			catalog.WithTimeout(time.Duration(cfg.Catalog.RequestTimeout)*time.Second))
		if err != nil {
			s.close()
			return nil, err
		}
		opts = append(opts, engine.WithCatalog(client))

		if cfg.Cache.Enabled {
			store, err := videocache.Open(cfg.Cache.Path, logger)
			if err != nil {
				logger.Warn("catalog cache unavailable", logging.Error(err))
			} else {
				s.cache = store
				opts = append(opts, engine.WithCache(store))
			}
		}
	}

	s.engine = engine.New(s.src, logger, opts...)
	s.writer = output.NewWriter(cfg.Paths.OutputsDir, logger)
	return s, nil
}
