package usecase

import (
	"regexp"
	"strings"

	"github.com/puIad/nlp-project/internal/core/domain"
)

var bulletLineRe = regexp.MustCompile(`(?m)^[\s]*[•\-*]`)

var levelBaseScores = map[domain.ExperienceLevel]float64{
	domain.LevelFresher:  40,
	domain.LevelJunior:   60,
	domain.LevelMidLevel: 80,
	domain.LevelSenior:   100,
	domain.LevelUnknown:  30,
}

// computeScores fills the five sub-scores and the weighted overall score.
// The classification fields of result (level, career field, sections, skills)
// must already be populated.
func computeScores(text string, result *domain.AnalysisResult) {
	result.ExperienceScore = experienceScore(result)
	result.SkillsScore = skillsScore(result.SkillsFound)
	result.StructureScore = structureScore(result.Sections)
	result.CareerScore = careerScore(result.CareerField, result.SkillsFound)
	result.ReadabilityScore = readabilityScore(text)

	result.OverallScore = result.ExperienceScore*0.25 +
		result.SkillsScore*0.25 +
		result.StructureScore*0.20 +
		result.CareerScore*0.15 +
		result.ReadabilityScore*0.15
}

func experienceScore(result *domain.AnalysisResult) float64 {
	score, ok := levelBaseScores[result.ExperienceLevel]
	if !ok {
		score = 30
	}
	if work := result.Sections[domain.SectionWorkExperience]; work.Detected {
		score = clamp100(score + work.QualityScore*3)
	}
	return score
}

func skillsScore(skills []string) float64 {
	score := clamp100(float64(len(skills)) * 8)

	categories := make(map[string]struct{})
	for _, skill := range skills {
		if category, ok := skillCategoryOf(skill); ok {
			categories[category] = struct{}{}
		}
	}
	return clamp100(score + float64(len(categories))*5)
}

func structureScore(sections map[domain.SectionKind]domain.SectionRecord) float64 {
	detected := 0
	qualitySum := 0.0
	for _, section := range sections {
		if section.Detected {
			detected++
			qualitySum += section.QualityScore
		}
	}
	score := clamp100(float64(detected) * 12)

	divisor := detected
	if divisor < 1 {
		divisor = 1
	}
	avgQuality := qualitySum / float64(divisor)
	return clamp100(score + avgQuality*2)
}

// careerScore rewards a confident field classification, plus a bonus for each
// extracted skill that appears inside one of the winning field's keywords.
func careerScore(field string, skills []string) float64 {
	if field == domain.GeneralField {
		return 50
	}
	score := 70.0

	var keywords []string
	for _, candidate := range careerFields {
		if candidate.name == field {
			keywords = candidate.allKeywords()
			break
		}
	}
	matching := 0
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		for _, keyword := range keywords {
			if strings.Contains(keyword, lower) {
				matching++
				break
			}
		}
	}
	return clamp100(score + float64(matching)*5)
}

func readabilityScore(text string) float64 {
	wordCount := len(strings.Fields(text))

	var score float64
	switch {
	case wordCount >= 300 && wordCount <= 800:
		score = 80
	case wordCount >= 200 && wordCount <= 1000:
		score = 60
	case wordCount < 200:
		score = 40
	default:
		score = 50
	}

	if len(bulletLineRe.FindAllStringIndex(text, -1)) >= 5 {
		score = clamp100(score + 15)
	}
	return score
}

func clamp100(v float64) float64 {
	if v > 100 {
		return 100
	}
	return v
}
