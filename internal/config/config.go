package config

import "os"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort    string
	MongoURI      string
	MongoDatabase string
	TokenSecret   string
}

// Load builds Config from environment with sensible defaults. MONGO_URI has
// no default: without it the connection attempt fails and the process exits
// before binding its listener.
func Load() *Config {
	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "3070"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: getEnv("MONGO_DATABASE", "recipes_db"),
		TokenSecret:   getEnv("TOKEN_SECRET", "change-me"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
