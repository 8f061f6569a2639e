// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv (dotenv files) and
// github.com/caarlos0/env/v11 (struct tag parsing):
//
//   - Load parses the process environment into a struct and caches the result
//     per type, so repeated calls are cheap and consistent.
//   - Parse fills a struct from an explicit map, bypassing the environment and
//     the cache.
//   - LoadEnv reads extra dotenv files; ResetCache forgets cached values.
//
// # Usage
//
//	type Config struct {
//		Env       string `env:"APP_ENV" envDefault:"development"`
//		RulesFile string `env:"PRICING_RULES_FILE"`
//		Login     signup.LoginPolicy `envPrefix:"LOGIN_"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// # Error Handling
//
// Parsing failures wrap ErrParsingConfig (check with errors.Is); a failed
// Load is not cached, so it may be retried after the environment changes.
package config
