package commands

import "github.com/dmitrymomot/whitebox/pkg/signup"

// Config is read from the environment. Variables that are not set keep the
// values from defaultConfig.
type Config struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	AppName string `env:"APP_NAME" envDefault:"whitebox"`
	// Empty keeps the level and format implied by Env.
	LogLevel  string             `env:"LOG_LEVEL"`
	LogFormat string             `env:"LOG_FORMAT"`
	RulesFile string             `env:"PRICING_RULES_FILE"`
	Login     signup.LoginPolicy `envPrefix:"LOGIN_"`
	Email     signup.EmailPolicy `envPrefix:"EMAIL_"`
}

func defaultConfig() Config {
	return Config{
		Login: signup.DefaultLoginPolicy(),
		Email: signup.DefaultEmailPolicy(),
	}
}
