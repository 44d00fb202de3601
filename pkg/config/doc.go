// Package config fills configuration structs from environment variables.
//
// Struct fields are bound with caarlos0/env tags. A .env file in the working
// directory is loaded once, before the first struct is parsed; variables
// already set in the environment win over the file.
//
//	type Config struct {
//		Env    string `env:"APP_ENV" envDefault:"development"`
//		Locale string `env:"MASK_LOCALE" envDefault:"pt-BR"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Each struct type (and prefix) is parsed once per process; later calls copy
// the cached value, including a cached parse error.
package config
