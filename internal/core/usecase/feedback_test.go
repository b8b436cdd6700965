package usecase

import (
	"strings"
	"testing"

	"github.com/puIad/nlp-project/internal/core/domain"
)

func feedbackResult() *domain.AnalysisResult {
	result := domain.NewAnalysisResult()
	for _, kind := range domain.SectionKinds {
		result.Sections[kind] = domain.SectionRecord{Kind: kind}
	}
	return &result
}

func TestIdentifyWeaknessesMissingCoreSections(t *testing.T) {
	result := feedbackResult()

	weaknesses := identifyWeaknesses(result)

	// Four core sections missing plus limited skills, capped at five.
	if len(weaknesses) != 5 {
		t.Fatalf("weaknesses = %v, want 5 entries", weaknesses)
	}
	if weaknesses[0] != "Missing professional summary section" {
		t.Errorf("first weakness = %q", weaknesses[0])
	}
	if weaknesses[4] != "Limited skills listed" {
		t.Errorf("fifth weakness = %q", weaknesses[4])
	}
}

func TestIdentifyStrengthsCap(t *testing.T) {
	result := feedbackResult()
	result.ExperienceLevel = domain.LevelSenior
	result.CareerField = "Information Technology"
	result.OverallScore = 85
	result.SkillsFound = make([]string, 12)
	for _, kind := range domain.SectionKinds {
		result.Sections[kind] = domain.SectionRecord{Kind: kind, Detected: true, QualityScore: 9}
	}

	strengths := identifyStrengths(result)
	if len(strengths) != 5 {
		t.Fatalf("strengths = %v, want capped at 5", strengths)
	}
	if strengths[0] != "Strong technical skill set" {
		t.Errorf("first strength = %q", strengths[0])
	}
	if strengths[1] != "Senior professional experience" {
		t.Errorf("second strength = %q", strengths[1])
	}
}

func TestGenerateRecommendationsDataScience(t *testing.T) {
	result := feedbackResult()
	result.CareerField = "Data Science"
	result.SkillsFound = []string{"tensorflow"}

	recommendations := generateRecommendations(result)

	var foundPython, foundML bool
	for _, rec := range recommendations {
		if strings.Contains(rec, "Python is essential") {
			foundPython = true
		}
		if strings.Contains(rec, "ML/DL frameworks") {
			foundML = true
		}
	}
	if !foundPython || !foundML {
		t.Errorf("recommendations = %v, want Data Science guidance", recommendations)
	}
	if len(recommendations) > maxRecommendations {
		t.Errorf("recommendations over cap: %d", len(recommendations))
	}
}

func TestGenerateSuggestionsKnownField(t *testing.T) {
	result := feedbackResult()
	result.CareerField = "Machine Learning"
	result.ExperienceLevel = domain.LevelFresher
	result.SkillsFound = []string{}

	suggestions := generateSuggestions(result)

	if len(suggestions) != maxSuggestions {
		t.Fatalf("suggestions = %d entries, want %d", len(suggestions), maxSuggestions)
	}
	if suggestions[0].Title != "Machine Learning Course" {
		t.Errorf("first suggestion = %q, want catalog entry", suggestions[0].Title)
	}
	for _, s := range suggestions {
		if s.Title == "" || s.Query == "" || s.Reason == "" {
			t.Errorf("incomplete suggestion: %+v", s)
		}
	}
}

func TestGenerateSuggestionsUnknownField(t *testing.T) {
	result := feedbackResult()
	result.CareerField = domain.GeneralField
	result.SkillsFound = make([]string, 8)

	suggestions := generateSuggestions(result)

	// No catalog entries, no low-skill entry, no fresher entry: CV writing
	// and interview preparation remain.
	if len(suggestions) != 2 {
		t.Fatalf("suggestions = %+v, want 2 entries", suggestions)
	}
	if !strings.Contains(suggestions[0].Title, "CV/Resume") {
		t.Errorf("first suggestion = %q", suggestions[0].Title)
	}
	if !strings.Contains(suggestions[1].Title, "Interview Preparation") {
		t.Errorf("second suggestion = %q", suggestions[1].Title)
	}
}
