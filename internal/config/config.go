package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// OpenAI. May be empty: the chat endpoint then answers every request
	// with a configuration error instead of failing startup.
	OpenAIAPIKey string

	// Notion content source. The remote catalog is used only when both are
	// set; otherwise the compiled-in catalog serves.
	NotionAPIKey     string
	NotionDatabaseID string

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		Env:              getEnvOrDefault("ENV", "development"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		NotionAPIKey:     os.Getenv("NOTION_API_KEY"),
		NotionDatabaseID: os.Getenv("NOTION_DATABASE_ID"),
		FrontendURL:      getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
	}
}

// UsesRemoteContent reports whether the Notion-backed catalog is configured.
func (c *Config) UsesRemoteContent() bool {
	return c.NotionAPIKey != "" && c.NotionDatabaseID != ""
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}
