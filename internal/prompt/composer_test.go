package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio-backend/internal/knowledge"
)

func TestCompose_SelectedProject(t *testing.T) {
	system, image := Compose("anything at all", "default", "huggies-website")

	snippet := knowledge.Snippet("huggiesWebsite")
	assert.Greater(t, len(snippet), projectSnippetLimit, "project snippet must be longer than the cut")
	assert.Contains(t, system, snippet[:projectSnippetLimit]+"...")
	assert.Contains(t, system, `"huggies-website"`)
	assert.Equal(t, "/images/chat/design.webp", image)
}

func TestCompose_SelectedProjectIgnoresMessage(t *testing.T) {
	// The message mentions research, but the project mapping wins.
	_, image := Compose("what research went into this?", "default", "supply-chain-suite")
	assert.Equal(t, "/images/chat/analytics.webp", image)
}

func TestCompose_UnknownProjectDefaultsToAnalyticsImage(t *testing.T) {
	system, image := Compose("", "default", "secret-side-project")
	assert.Equal(t, "/images/chat/analytics.webp", image)
	assert.NotContains(t, system, "Project background:")
}

func TestCompose_AboutYourselfIsBareDefault(t *testing.T) {
	system, image := Compose("Tell me about yourself", "default", "")

	assert.Equal(t, knowledge.Prompt(knowledge.CategoryDefault), system,
		"no snippets should be appended")
	assert.Empty(t, image)
}

func TestCompose_AnalyticsTopic(t *testing.T) {
	system, image := Compose("What's your analytics and data experience?", "default", "")

	snippet := knowledge.Snippet("commercialAnalyticsHub")
	assert.Contains(t, system, snippet[:topicSnippetLimit]+"...")
	assert.Equal(t, "/images/chat/analytics.webp", image)
}

func TestCompose_AboutYourselfSuppressesImage(t *testing.T) {
	_, image := Compose("What's your analytics and data experience? And who are you?", "default", "")
	assert.Empty(t, image)
}

func TestCompose_UnknownCategoryFallsBackToDefault(t *testing.T) {
	system, _ := Compose("hello there", "marketing", "")
	assert.Equal(t, knowledge.Prompt(knowledge.CategoryDefault), system)
}

func TestCompose_RoleRuleNarrowedByDeveloper(t *testing.T) {
	system, _ := Compose("what was your last job?", "default", "")
	assert.Equal(t, knowledge.Prompt(knowledge.CategoryUXDesign), system)

	system, _ = Compose("what was your last job, mostly coding?", "default", "")
	assert.Equal(t, knowledge.Prompt(knowledge.CategoryDevelopment), system)
}

func TestCompose_MultipleTopicGroups(t *testing.T) {
	// Overlapping rules are additive, in fixed group order.
	system, _ := Compose("how does data inform your research?", "default", "")

	analytics := knowledge.Snippet("commercialAnalyticsHub")[:topicSnippetLimit] + "..."
	research := knowledge.Snippet("researchProcess")[:shortSnippetLimit] + "..."
	assert.Contains(t, system, analytics)
	assert.Contains(t, system, research)

	assert.Less(t, strings.Index(system, analytics), strings.Index(system, research),
		"snippets must appear in group order")
}

func TestCompose_FirstImageRuleWins(t *testing.T) {
	// "data" (analytics) and "figma" (design) both match; analytics is
	// registered first.
	_, image := Compose("do you design in figma with real data?", "default", "")
	assert.Equal(t, "/images/chat/analytics.webp", image)
}

func TestCompose_IsPure(t *testing.T) {
	s1, i1 := Compose("analytics work in figma", "projects", "")
	s2, i2 := Compose("analytics work in figma", "projects", "")
	assert.Equal(t, s1, s2)
	assert.Equal(t, i1, i2)
}

func TestSnippetLengthsCoverTruncation(t *testing.T) {
	for slug, key := range projectSnippets {
		assert.Greater(t, len(knowledge.Snippet(key)), projectSnippetLimit, slug)
	}
	for _, rule := range topicRules {
		assert.Greater(t, len(knowledge.Snippet(rule.snippet)), rule.limit, rule.snippet)
	}
}
