// Package config loads typed configuration from the environment.
//
// A .env file in the working directory is read once (if present) through
// github.com/joho/godotenv, then the target struct is populated from its env
// tags by github.com/caarlos0/env/v11:
//
//	type App struct {
//		Env  string `env:"APP_ENV" envDefault:"development"`
//		HTTP httpserver.Config
//	}
//
//	var cfg App
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
package config
