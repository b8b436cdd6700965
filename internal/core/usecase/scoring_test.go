package usecase

import (
	"strings"
	"testing"

	"github.com/puIad/nlp-project/internal/core/domain"
)

func scoredResult(level domain.ExperienceLevel) *domain.AnalysisResult {
	result := domain.NewAnalysisResult()
	result.ExperienceLevel = level
	return &result
}

func TestExperienceScoreBaseline(t *testing.T) {
	cases := []struct {
		level domain.ExperienceLevel
		want  float64
	}{
		{domain.LevelFresher, 40},
		{domain.LevelJunior, 60},
		{domain.LevelMidLevel, 80},
		{domain.LevelSenior, 100},
		{domain.LevelUnknown, 30},
	}
	for _, tc := range cases {
		if got := experienceScore(scoredResult(tc.level)); got != tc.want {
			t.Errorf("level %q: experience score = %v, want %v", tc.level, got, tc.want)
		}
	}
}

func TestExperienceScoreWorkQualityBonus(t *testing.T) {
	result := scoredResult(domain.LevelJunior)
	result.Sections[domain.SectionWorkExperience] = domain.SectionRecord{
		Kind:         domain.SectionWorkExperience,
		Detected:     true,
		QualityScore: 6,
	}

	// 60 base + 6*3 bonus.
	if got := experienceScore(result); got != 78 {
		t.Errorf("experience score = %v, want 78", got)
	}

	result.Sections[domain.SectionWorkExperience] = domain.SectionRecord{
		Kind:         domain.SectionWorkExperience,
		Detected:     true,
		QualityScore: 10,
	}
	result.ExperienceLevel = domain.LevelSenior
	if got := experienceScore(result); got != 100 {
		t.Errorf("experience score = %v, want capped at 100", got)
	}
}

func TestSkillsScore(t *testing.T) {
	if got := skillsScore(nil); got != 0 {
		t.Errorf("no skills: score = %v, want 0", got)
	}

	// 2 skills * 8 + 2 distinct categories * 5.
	if got := skillsScore([]string{"python", "docker"}); got != 26 {
		t.Errorf("two skills: score = %v, want 26", got)
	}

	// Enough skills saturate the score.
	many := make([]string, 0, 20)
	for _, category := range skillsTaxonomy[:4] {
		many = append(many, category.skills[:5]...)
	}
	if got := skillsScore(many); got != 100 {
		t.Errorf("many skills: score = %v, want 100", got)
	}
}

func TestStructureScore(t *testing.T) {
	sections := map[domain.SectionKind]domain.SectionRecord{
		domain.SectionEducation:      {Detected: true, QualityScore: 6},
		domain.SectionWorkExperience: {Detected: true, QualityScore: 8},
		domain.SectionSkills:         {Detected: false},
	}

	// 2 detected * 12 + avg quality 7 * 2.
	if got := structureScore(sections); got != 38 {
		t.Errorf("structure score = %v, want 38", got)
	}

	if got := structureScore(nil); got != 0 {
		t.Errorf("no sections: structure score = %v, want 0", got)
	}
}

func TestStructureScoreMonotonicity(t *testing.T) {
	// Detecting one more section never lowers the score, even when the new
	// section's quality drags the average down.
	kinds := []domain.SectionKind{
		domain.SectionProfessionalSummary,
		domain.SectionEducation,
		domain.SectionWorkExperience,
		domain.SectionSkills,
		domain.SectionProjects,
		domain.SectionCertifications,
	}
	sections := map[domain.SectionKind]domain.SectionRecord{}
	prev := structureScore(sections)
	for i, kind := range kinds {
		quality := 10.0
		if i%2 == 1 {
			quality = 0
		}
		sections[kind] = domain.SectionRecord{Kind: kind, Detected: true, QualityScore: quality}
		got := structureScore(sections)
		if got < prev {
			t.Fatalf("adding %s dropped score from %v to %v", kind, prev, got)
		}
		prev = got
	}

	// Raising a detected section's quality never lowers the score either.
	low := map[domain.SectionKind]domain.SectionRecord{
		domain.SectionEducation: {Detected: true, QualityScore: 3},
	}
	high := map[domain.SectionKind]domain.SectionRecord{
		domain.SectionEducation: {Detected: true, QualityScore: 9},
	}
	if structureScore(high) < structureScore(low) {
		t.Fatalf("higher quality scored %v below %v", structureScore(high), structureScore(low))
	}
}

func TestCareerScore(t *testing.T) {
	if got := careerScore(domain.GeneralField, []string{"python"}); got != 50 {
		t.Errorf("general field: career score = %v, want 50", got)
	}

	// Field set with no skill overlap keeps the 70 base.
	if got := careerScore("Chef", []string{"quantum computing"}); got != 70 {
		t.Errorf("no overlap: career score = %v, want 70", got)
	}

	// "python" appears inside Information Technology's keywords.
	if got := careerScore("Information Technology", []string{"python"}); got != 75 {
		t.Errorf("one matching skill: career score = %v, want 75", got)
	}
}

func TestReadabilityScore(t *testing.T) {
	words := func(n int) string { return strings.TrimSpace(strings.Repeat("word ", n)) }

	if got := readabilityScore(words(500)); got != 80 {
		t.Errorf("500 words: readability = %v, want 80", got)
	}
	if got := readabilityScore(words(250)); got != 60 {
		t.Errorf("250 words: readability = %v, want 60", got)
	}
	if got := readabilityScore(words(100)); got != 40 {
		t.Errorf("100 words: readability = %v, want 40", got)
	}
	if got := readabilityScore(words(1500)); got != 50 {
		t.Errorf("1500 words: readability = %v, want 50", got)
	}

	bulleted := words(500) + "\n" + strings.Repeat("- bullet line\n", 6)
	if got := readabilityScore(bulleted); got != 95 {
		t.Errorf("bulleted: readability = %v, want 95", got)
	}
}

func TestComputeScoresWeights(t *testing.T) {
	result := domain.NewAnalysisResult()
	result.ExperienceLevel = domain.LevelSenior
	result.CareerField = domain.GeneralField

	text := strings.TrimSpace(strings.Repeat("word ", 400))
	computeScores(text, &result)

	// experience 100*.25 + skills 0*.25 + structure 0*.20 + career 50*.15 + readability 80*.15
	want := 100*0.25 + 50*0.15 + 80*0.15
	if result.OverallScore != want {
		t.Errorf("overall = %v, want %v", result.OverallScore, want)
	}
}
