package config

import (
	"os"
	"testing"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestUsesRemoteContent(t *testing.T) {
	tests := []struct {
		name     string
		apiKey   string
		dbID     string
		expected bool
	}{
		{"both set", "secret", "db", true},
		{"missing key", "", "db", false},
		{"missing database", "secret", "", false},
		{"neither set", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{NotionAPIKey: tc.apiKey, NotionDatabaseID: tc.dbID}
			if cfg.UsesRemoteContent() != tc.expected {
				t.Errorf("Expected %v for key=%q db=%q", tc.expected, tc.apiKey, tc.dbID)
			}
		})
	}
}
