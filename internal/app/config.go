package app

import (
	"io"
	"os"
)

// DefaultCardNumber is a well-known test card number.
const DefaultCardNumber = "4111111111111111"

// Config holds runtime wiring options for building the app.
type Config struct {
	Out        io.Writer // shop output, e.g. os.Stdout
	Log        io.Writer // log output; defaults to os.Stderr
	LogLevel   string    // debug, info, warn or error
	CardNumber string    // card charged by the card adapter
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ConfigFromEnv returns defaults overridden by SHOPPING_LOG_LEVEL and SHOPPING_CARD.
func ConfigFromEnv() Config {
	return Config{
		Out:        os.Stdout,
		Log:        os.Stderr,
		LogLevel:   getenv("SHOPPING_LOG_LEVEL", "warn"),
		CardNumber: getenv("SHOPPING_CARD", DefaultCardNumber),
	}
}
