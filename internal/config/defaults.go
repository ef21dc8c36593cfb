package config

const (
	defaultInputsDir      = "inputs"
	defaultOutputsDir     = "outputs"
	defaultLogDir         = "logs"
	defaultCatalogBaseURL = "https://www.googleapis.com/youtube/v3"
	defaultLinkPrefix     = "https://youtu.be/"
	defaultRequestTimeout = 10
	defaultCachePath      = "~/.cache/watchlog/catalog.db"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// defaultPalette maps the workbook's routine fill codes to color names.
func defaultPalette() map[string]string {
	return map[string]string{
		"FFFF0000": "red",
		"FF00FF00": "green",
		"FFFFFF00": "yellow",
	}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			InputsDir:  defaultInputsDir,
			OutputsDir: defaultOutputsDir,
			LogDir:     defaultLogDir,
		},
		Catalog: Catalog{
			BaseURL:        defaultCatalogBaseURL,
			LinkPrefix:     defaultLinkPrefix,
			RequestTimeout: defaultRequestTimeout,
		},
		Cache: Cache{
			Enabled: true,
			Path:    defaultCachePath,
		},
		Sheet: Sheet{
			Palette: defaultPalette(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
