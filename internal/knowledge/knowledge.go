// Package knowledge holds the static tables behind the portfolio assistant:
// per-topic background snippets and the base system prompt for each
// conversation category. Both tables are compiled in, loaded once, and never
// mutated.
package knowledge

// Category keys understood by the assistant.
const (
	CategoryDefault     = "default"
	CategoryUXDesign    = "uxDesign"
	CategoryDevelopment = "development"
	CategoryResearch    = "research"
	CategoryProjects    = "projects"
	CategoryAIML        = "aiml"
)

// ResolveCategory maps an arbitrary client-supplied category to a known key.
// Unknown values fall back to the default category, never an error.
func ResolveCategory(category string) string {
	if _, ok := CategoryPrompts[category]; ok {
		return category
	}
	return CategoryDefault
}

// Snippet returns the background text for a topic key, or "" when the key is
// unknown.
func Snippet(key string) string {
	return snippets[key]
}

// Prompt returns the base system prompt for a category key. The category is
// resolved first, so the result is never empty.
func Prompt(category string) string {
	return CategoryPrompts[ResolveCategory(category)]
}
