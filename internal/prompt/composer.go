// Package prompt builds the system prompt and illustration sent with each
// completion request. Composition is pure: the same message, category, and
// selected project always produce the same output.
package prompt

import (
	"fmt"
	"strings"

	"portfolio-backend/internal/knowledge"
)

const (
	projectSnippetLimit = 500
	topicSnippetLimit   = 300
	shortSnippetLimit   = 200
)

// Illustration asset served alongside a reply, keyed by image category.
var imageByCategory = map[string]string{
	"analytics":   "/images/chat/analytics.webp",
	"design":      "/images/chat/design.webp",
	"development": "/images/chat/development.webp",
	"research":    "/images/chat/research.webp",
}

// projectSnippets maps catalog slugs to knowledge table keys.
var projectSnippets = map[string]string{
	"commercial-analytics-hub": "commercialAnalyticsHub",
	"supply-chain-suite":       "supplyChainSuite",
	"design-system":            "designSystem",
	"huggies-website":          "huggiesWebsite",
	"real-estate-platform":     "realEstatePlatform",
}

// projectImageCategory fixes the illustration per project, independent of the
// message text. Slugs not listed fall back to analytics.
var projectImageCategory = map[string]string{
	"commercial-analytics-hub": "analytics",
	"supply-chain-suite":       "analytics",
	"design-system":            "design",
	"huggies-website":          "design",
	"real-estate-platform":     "development",
}

type topicRule struct {
	keywords []string
	snippet  string
	limit    int
}

// topicRules are evaluated in order and are additive: every matching group
// appends its snippet. A message mentioning several topics gets several
// snippets, possibly overlapping ones.
var topicRules = []topicRule{
	{[]string{"analytics", "data"}, "commercialAnalyticsHub", topicSnippetLimit},
	{[]string{"supply chain", "logistics"}, "supplyChainSuite", topicSnippetLimit},
	{[]string{"design system", "figma"}, "designSystem", topicSnippetLimit},
	{[]string{"huggies", "redesign"}, "huggiesWebsite", topicSnippetLimit},
	{[]string{"real estate", "freelance"}, "realEstatePlatform", shortSnippetLimit},
	{[]string{"philosophy", "approach"}, "designPhilosophy", shortSnippetLimit},
	{[]string{"workflow", "development"}, "developerWorkflow", shortSnippetLimit},
	{[]string{"research", "testing"}, "researchProcess", shortSnippetLimit},
	{[]string{"project", "management"}, "projectManagement", shortSnippetLimit},
	{[]string{"career", "goals"}, "careerGoals", shortSnippetLimit},
}

type imageRule struct {
	keywords []string
	category string
}

// imageRules are evaluated in order; the first match wins.
var imageRules = []imageRule{
	{[]string{"analytics", "data"}, "analytics"},
	{[]string{"design", "figma"}, "design"},
	{[]string{"development", "code"}, "development"},
	{[]string{"research", "user research"}, "research"},
}

var aboutPhrases = []string{
	"tell me about yourself",
	"who are you",
	"about you",
	"introduce yourself",
}

// Compose produces the system prompt and the illustration path ("" when none)
// for one request. selectedProject takes precedence over everything in the
// message text.
func Compose(message, category, selectedProject string) (string, string) {
	if selectedProject != "" {
		return composeForProject(selectedProject)
	}

	lower := strings.ToLower(message)
	system := knowledge.Prompt(category)

	// Prompt selection rules. These are not exclusive: a later match
	// overrides an earlier one.
	if containsAny(lower, "role", "job", "work") {
		system = knowledge.Prompt(knowledge.CategoryUXDesign)
		if containsAny(lower, "developer", "coding") {
			system = knowledge.Prompt(knowledge.CategoryDevelopment)
		}
	}
	if containsAny(lower, "machine learning", "artificial intelligence") {
		system = knowledge.Prompt(knowledge.CategoryAIML)
	}
	if containsAny(lower, "portfolio", "case studies") {
		system = knowledge.Prompt(knowledge.CategoryProjects)
	}
	about := containsAny(lower, aboutPhrases...)
	if about {
		system = knowledge.Prompt(knowledge.CategoryDefault)
	}

	for _, rule := range topicRules {
		if containsAny(lower, rule.keywords...) {
			system += "\n\nBackground: " + truncate(knowledge.Snippet(rule.snippet), rule.limit)
		}
	}

	image := ""
	if !about {
		for _, rule := range imageRules {
			if containsAny(lower, rule.keywords...) {
				image = imageByCategory[rule.category]
				break
			}
		}
	}

	return system, image
}

func composeForProject(slug string) (string, string) {
	system := knowledge.Prompt(knowledge.CategoryDefault)
	system += fmt.Sprintf("\n\nThe visitor has opened the %q case study. Keep your answers focused on "+
		"this project, and if the visitor asks about something unrelated, answer briefly and steer the "+
		"conversation back to it.", slug)

	if key, ok := projectSnippets[slug]; ok {
		system += "\n\nProject background: " + truncate(knowledge.Snippet(key), projectSnippetLimit)
	}

	category, ok := projectImageCategory[slug]
	if !ok {
		category = "analytics"
	}
	return system, imageByCategory[category]
}

// truncate keeps the first limit bytes and always appends the ellipsis
// marker, even mid-word. The knowledge snippets are ASCII, so a byte cut is
// a character cut.
func truncate(s string, limit int) string {
	if len(s) > limit {
		s = s[:limit]
	}
	return s + "..."
}

func containsAny(haystack string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
