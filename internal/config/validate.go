package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable. Catalog credentials are only
// checked by ValidateCatalog because most operations never touch the API.
func (c *Config) Validate() error {
	if err := c.validatePalette(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

// ValidateCatalog ensures the catalog API can be reached with this config.
func (c *Config) ValidateCatalog() error {
	if strings.TrimSpace(c.Catalog.APIKey) == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/watchlog/config.toml"
		}
		return fmt.Errorf("catalog.api_key is required. Set YOUTUBE_API_KEY env var or edit %s (create with 'watchlog config init')", defaultPath)
	}
	if strings.TrimSpace(c.Catalog.LinkPrefix) == "" {
		return errors.New("catalog.link_prefix must be set")
	}
	return nil
}

func (c *Config) validatePalette() error {
	if len(c.Sheet.Palette) == 0 {
		return errors.New("sheet.palette must map at least one fill code to a color")
	}
	for code, color := range c.Sheet.Palette {
		if len(code) != 8 {
			return fmt.Errorf("sheet.palette: fill code %q must be an 8-digit ARGB value", code)
		}
		if strings.TrimSpace(color) == "" {
			return fmt.Errorf("sheet.palette: fill code %q has an empty color name", code)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
}
