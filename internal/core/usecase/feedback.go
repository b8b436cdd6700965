package usecase

import (
	"fmt"
	"strings"

	"github.com/puIad/nlp-project/internal/core/domain"
)

const (
	maxStrengths       = 5
	maxWeaknesses      = 5
	maxRecommendations = 7
	maxSuggestions     = 5
)

// generateFeedback derives the narrative guidance lists from a fully scored
// result. It reads the result and never mutates anything but the returned
// Feedback.
func generateFeedback(result *domain.AnalysisResult) domain.Feedback {
	return domain.Feedback{
		Strengths:       identifyStrengths(result),
		Weaknesses:      identifyWeaknesses(result),
		Recommendations: generateRecommendations(result),
		Suggestions:     generateSuggestions(result),
	}
}

func identifyStrengths(result *domain.AnalysisResult) []string {
	strengths := []string{}

	if len(result.SkillsFound) >= 10 {
		strengths = append(strengths, "Strong technical skill set")
	}
	if result.ExperienceLevel == domain.LevelMidLevel || result.ExperienceLevel == domain.LevelSenior {
		strengths = append(strengths, fmt.Sprintf("%s professional experience", result.ExperienceLevel))
	}
	if result.DetectedSectionCount() >= 7 {
		strengths = append(strengths, "Well-structured CV with comprehensive sections")
	}
	for _, kind := range domain.SectionKinds {
		section := result.Sections[kind]
		if section.Detected && section.QualityScore >= 8 {
			strengths = append(strengths, fmt.Sprintf("Excellent %s section", kind.Label()))
		}
	}
	if result.CareerField != domain.GeneralField {
		strengths = append(strengths, fmt.Sprintf("Clear career focus in %s", result.CareerField))
	}
	if result.OverallScore >= 80 {
		strengths = append(strengths, "Overall excellent CV quality")
	}

	return truncate(strengths, maxStrengths)
}

var coreSections = []domain.SectionKind{
	domain.SectionProfessionalSummary,
	domain.SectionEducation,
	domain.SectionWorkExperience,
	domain.SectionSkills,
}

func identifyWeaknesses(result *domain.AnalysisResult) []string {
	weaknesses := []string{}

	for _, kind := range coreSections {
		if !result.Sections[kind].Detected {
			weaknesses = append(weaknesses, fmt.Sprintf("Missing %s section", kind.Label()))
		}
	}
	if len(result.SkillsFound) < 5 {
		weaknesses = append(weaknesses, "Limited skills listed")
	}
	if result.ExperienceLevel == domain.LevelFresher {
		weaknesses = append(weaknesses, "Limited or no work experience")
	}
	for _, kind := range domain.SectionKinds {
		section := result.Sections[kind]
		if section.Detected && section.QualityScore < 4 {
			weaknesses = append(weaknesses, fmt.Sprintf("Weak %s section needs improvement", kind.Label()))
		}
	}
	if result.OverallScore < 50 {
		weaknesses = append(weaknesses, "Overall CV needs significant improvement")
	}

	return truncate(weaknesses, maxWeaknesses)
}

func generateRecommendations(result *domain.AnalysisResult) []string {
	recommendations := []string{}

	if !result.Sections[domain.SectionProfessionalSummary].Detected {
		recommendations = append(recommendations, "Add a professional summary highlighting your key qualifications and career goals")
	}
	if !result.Sections[domain.SectionSkills].Detected {
		recommendations = append(recommendations, "Create a dedicated skills section with your technical and soft skills")
	}
	if !result.Sections[domain.SectionProjects].Detected {
		recommendations = append(recommendations, "Add a projects section to showcase your practical experience")
	}

	switch result.CareerField {
	case "Information Technology":
		if !hasSkill(result.SkillsFound, "git") {
			recommendations = append(recommendations, "Consider adding version control skills (Git/GitHub)")
		}
		if !hasSkill(result.SkillsFound, "docker") && !hasSkill(result.SkillsFound, "kubernetes") {
			recommendations = append(recommendations, "Container technologies (Docker, Kubernetes) are in high demand")
		}
	case "Data Science":
		if !hasSkill(result.SkillsFound, "python") {
			recommendations = append(recommendations, "Python is essential for Data Science - highlight your Python skills")
		}
		if !hasSkill(result.SkillsFound, "machine learning") && !hasSkill(result.SkillsFound, "deep learning") {
			recommendations = append(recommendations, "Add ML/DL frameworks you've worked with")
		}
	}

	if len(result.SkillsFound) < 10 {
		recommendations = append(recommendations, "Consider adding more relevant technical skills")
	}
	if result.ExperienceLevel == domain.LevelFresher {
		recommendations = append(recommendations, "Highlight academic projects, internships, or personal projects to compensate for limited experience")
	}

	recommendations = append(recommendations,
		"Use action verbs to describe achievements (developed, implemented, led, improved)",
		"Quantify achievements where possible (e.g., 'Improved performance by 30%')",
	)

	return truncate(recommendations, maxRecommendations)
}

// generateSuggestions assembles curated learning topics: two field-specific
// entries from the catalog, then conditional and general entries, capped at 5.
func generateSuggestions(result *domain.AnalysisResult) []domain.TopicSuggestion {
	suggestions := []domain.TopicSuggestion{}
	career := result.CareerField
	careerLower := strings.ToLower(career)

	if catalog, ok := topicCatalog[career]; ok {
		limit := 2
		if len(catalog) < limit {
			limit = len(catalog)
		}
		suggestions = append(suggestions, catalog[:limit]...)
	}

	if len(result.SkillsFound) < 5 {
		suggestions = append(suggestions, domain.TopicSuggestion{
			Title:  fmt.Sprintf("Top Skills for %s in 2024", career),
			Query:  fmt.Sprintf("top skills %s career 2024", careerLower),
			Reason: "Expand your professional skill set",
		})
	}

	suggestions = append(suggestions, domain.TopicSuggestion{
		Title:  fmt.Sprintf("How to Write a %s CV/Resume", career),
		Query:  fmt.Sprintf("%s resume cv writing tips", careerLower),
		Reason: "Improve your CV presentation for your field",
	})

	if result.ExperienceLevel == domain.LevelFresher {
		suggestions = append(suggestions, domain.TopicSuggestion{
			Title:  fmt.Sprintf("Entry Level %s Career Guide", career),
			Query:  fmt.Sprintf("entry level %s career tips", careerLower),
			Reason: "Guide for starting your career",
		})
	}

	suggestions = append(suggestions, domain.TopicSuggestion{
		Title:  fmt.Sprintf("%s Interview Preparation", career),
		Query:  fmt.Sprintf("%s interview questions answers", careerLower),
		Reason: "Prepare for job interviews in your field",
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

func hasSkill(skills []string, want string) bool {
	for _, skill := range skills {
		if skill == want {
			return true
		}
	}
	return false
}

func truncate(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
