package config

import "os"

// Config holds environment-driven configuration.
type Config struct {
	Addr      string
	DataFile  string
	JWTSecret string
	// AdminEnabled turns on the operator routes (catalog mutations and
	// image upload). Off by default: the plain storefront is read-only.
	AdminEnabled bool
}

// Load reads configuration from environment variables.
func Load() Config {
	addr := os.Getenv("MOOD_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	dataFile := os.Getenv("MOOD_DATA_FILE")
	if dataFile == "" {
		dataFile = "mood-data.json"
	}

	return Config{
		Addr:         addr,
		DataFile:     dataFile,
		JWTSecret:    os.Getenv("JWT_SECRET"),
		AdminEnabled: os.Getenv("MOOD_ADMIN") == "1",
	}
}
