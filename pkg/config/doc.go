// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct parsing and
// github.com/joho/godotenv for .env files:
//
//   - Load parses the environment into any struct with `env` tags and caches
//     the result per type, so repeated calls are cheap and consistent.
//   - LoadEnv reads one or more explicit .env files into the environment.
//   - The default .env in the working directory is read once, if present.
//   - MustLoad and MustLoadEnv panic instead of returning an error.
//
// # Usage
//
//	type Config struct {
//	    Strategy    string `env:"REGISTRATION_STRATEGY" envDefault:"accumulate"`
//	    RegionsFile string `env:"REGISTRATION_REGIONS_FILE"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Sentinel errors can be matched with errors.Is: ErrParsingConfig,
// ErrNilPointer, ErrLoadingEnvFile and ErrNoEnvFiles.
//
// # Testing
//
// Call ResetCache between tests that change the environment for the same
// configuration type.
package config
