package knowledge

import "testing"

func TestResolveCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		expected string
	}{
		{"known category", "uxDesign", "uxDesign"},
		{"default itself", "default", "default"},
		{"unknown falls back", "marketing", "default"},
		{"empty falls back", "", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveCategory(tc.category); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestPromptNeverEmpty(t *testing.T) {
	if Prompt("nonsense") == "" {
		t.Error("Prompt must resolve unknown categories to the default prompt")
	}
}
