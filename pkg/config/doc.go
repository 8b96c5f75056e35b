// Package config loads typed configuration from environment variables and
// .env files using github.com/caarlos0/env/v11 and github.com/joho/godotenv.
//
//	type appConfig struct {
//		Env     string `env:"APP_ENV" envDefault:"development"`
//		SpecDir string `env:"PARAMPARSER_SPEC_DIR" envDefault:"specs"`
//		HTTP    httpserver.Config
//	}
//
//	var cfg appConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// The first Load of a process reads ./.env when it exists. LoadEnv loads
// explicit files instead; later files override earlier ones and both
// override variables already set in the process.
//
// Every configuration type is parsed once and served from a cache
// afterwards. A failed parse is not cached, so a later call can succeed
// once the environment is fixed. ForceReloadConfig and ResetCache drop
// cached values, which tests use between cases.
//
// Parse failures wrap ErrParsingConfig and .env failures wrap
// ErrLoadingEnvFile.
package config
