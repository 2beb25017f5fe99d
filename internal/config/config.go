package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envconfigPrefix = "TRADEDECK"

// Config is the client-side configuration. Everything has a working default
// for a local deployment; a .env file or TRADEDECK_* environment variables
// override it.
type Config struct {
	APIAddress    string `envconfig:"API_ADDRESS"`
	RedirectURI   string `envconfig:"REDIRECT_URI"`
	AllowInsecure bool   `envconfig:"ALLOW_INSECURE"`
	Debug         bool   `envconfig:"DEBUG"`
}

// NewConfigWithDefaults returns a Config with default values already
// applied. Callers are then free to override individual fields.
func NewConfigWithDefaults() Config {
	return Config{
		APIAddress:  "http://localhost:3000",
		RedirectURI: "http://localhost:3000/callback",
	}
}

// GetConfigFromEnvironment returns configuration derived from a .env file
// (if one is present in the working directory) and environment variables.
func GetConfigFromEnvironment() (Config, error) {
	// A missing .env file is not an error.
	godotenv.Load() // nolint: errcheck
	c := NewConfigWithDefaults()
	if err := envconfig.Process(envconfigPrefix, &c); err != nil {
		return c, err
	}
	return c, nil
}
