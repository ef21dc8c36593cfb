package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	if err := c.normalizeCache(); err != nil {
		return err
	}
	c.normalizePalette()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.InputsDir, err = expandPath(c.Paths.InputsDir); err != nil {
		return fmt.Errorf("paths.inputs_dir: %w", err)
	}
	if c.Paths.OutputsDir, err = expandPath(c.Paths.OutputsDir); err != nil {
		return fmt.Errorf("paths.outputs_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeCatalog() error {
	if strings.TrimSpace(c.Catalog.APIKey) == "" {
		c.Catalog.APIKey = strings.TrimSpace(os.Getenv("YOUTUBE_API_KEY"))
	}
	c.Catalog.BaseURL = strings.TrimRight(strings.TrimSpace(c.Catalog.BaseURL), "/")
	if c.Catalog.BaseURL == "" {
		c.Catalog.BaseURL = defaultCatalogBaseURL
	}
	if strings.TrimSpace(c.Catalog.LinkPrefix) == "" {
		c.Catalog.LinkPrefix = defaultLinkPrefix
	}
	if c.Catalog.RequestTimeout <= 0 {
		c.Catalog.RequestTimeout = defaultRequestTimeout
	}
	return nil
}

func (c *Config) normalizeCache() error {
	if strings.TrimSpace(c.Cache.Path) == "" {
		c.Cache.Path = defaultCachePath
	}
	var err error
	if c.Cache.Path, err = expandPath(c.Cache.Path); err != nil {
		return fmt.Errorf("cache.path: %w", err)
	}
	return nil
}

// normalizePalette uppercases fill codes and expands 6-digit RGB codes to the
// 8-digit ARGB form the workbook stores.
func (c *Config) normalizePalette() {
	if len(c.Sheet.Palette) == 0 {
		c.Sheet.Palette = defaultPalette()
		return
	}
	normalized := make(map[string]string, len(c.Sheet.Palette))
	for code, color := range c.Sheet.Palette {
		code = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(code), "#"))
		if len(code) == 6 {
			code = "FF" + code
		}
		normalized[code] = strings.ToLower(strings.TrimSpace(color))
	}
	c.Sheet.Palette = normalized
}

func (c *Config) normalizeLogging() {
	if strings.TrimSpace(c.Logging.Format) == "" {
		c.Logging.Format = defaultLogFormat
	}
	if strings.TrimSpace(c.Logging.Level) == "" {
		c.Logging.Level = defaultLogLevel
	}
}
