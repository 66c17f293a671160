package registration

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/signup/pkg/config"
	"github.com/dmitrymomot/signup/pkg/logger"
)

// Config holds the environment driven settings of a Registrar.
type Config struct {
	Strategy    string `env:"REGISTRATION_STRATEGY" envDefault:"accumulate"`
	RegionsFile string `env:"REGISTRATION_REGIONS_FILE"`
	Normalize   bool   `env:"REGISTRATION_NORMALIZE" envDefault:"false"`
	LogLevel    string `env:"REGISTRATION_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"REGISTRATION_LOG_FORMAT" envDefault:"json"`
}

// LoadConfig reads Config from the environment (and a .env file if present).
// The result is cached per process; see config.Load.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewRegistrarFromConfig builds a Registrar from cfg. opts are applied after
// the configured values and may override them.
func NewRegistrarFromConfig(cfg Config, opts ...Option) (*Registrar, error) {
	strategy, err := ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	regions := DefaultRegions()
	if cfg.RegionsFile != "" {
		if regions, err = LoadRegionTable(cfg.RegionsFile); err != nil {
			return nil, err
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.LogLevel)
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithStrategy(strategy),
		WithRegions(regions),
		WithNormalization(cfg.Normalize),
		WithLogger(logger.New(
			logger.WithLevel(level),
			logger.WithFormat(format),
			logger.WithAttr(slog.String("component", "registration")),
		)),
	}
	return NewRegistrar(append(base, opts...)...), nil
}
