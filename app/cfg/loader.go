package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	Port          string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	SourcesFile   string `long:"sources-file" env:"SOURCES_FILE" description:"YAML file overriding the built-in feed catalog (optional)"`
	FetchTimeout  int    `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"30" description:"Per-feed fetch timeout in seconds"`
	ScrapeTimeout int    `long:"scrape-timeout" env:"SCRAPE_TIMEOUT" default:"15" description:"Article scrape timeout in seconds"`
	UserAgent     string `long:"user-agent" env:"USER_AGENT" default:"Warta/1.0" description:"User agent string for feed requests"`
	Timezone      string `long:"timezone" env:"TZ" default:"Asia/Jakarta" description:"Timezone for day-boundary calculations (e.g., Asia/Jakarta, UTC)"`
	Debug         bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Port:          raw.Port,
		SourcesFile:   raw.SourcesFile,
		FetchTimeout:  raw.FetchTimeout,
		ScrapeTimeout: raw.ScrapeTimeout,
		UserAgent:     raw.UserAgent,
		Timezone:      raw.Timezone,
		Debug:         raw.Debug,
		Version:       GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
