package usecase

import (
	"testing"

	"github.com/puIad/nlp-project/internal/core/domain"
)

func workSections(content string) map[domain.SectionKind]domain.SectionRecord {
	return map[domain.SectionKind]domain.SectionRecord{
		domain.SectionWorkExperience: {
			Kind:     domain.SectionWorkExperience,
			Detected: true,
			Content:  content,
		},
	}
}

func TestClassifyExperienceLevelKeywords(t *testing.T) {
	cases := []struct {
		text string
		want domain.ExperienceLevel
	}{
		{"recent graduate looking for a first role", domain.LevelFresher},
		{"working as an associate in the consulting team", domain.LevelJunior},
		{"intermediate developer comfortable with production systems", domain.LevelMidLevel},
		{"principal engineer owning platform direction", domain.LevelSenior},
	}

	for _, tc := range cases {
		got := classifyExperienceLevel(tc.text, nil, 2024)
		if got != tc.want {
			t.Errorf("text %q: level = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestClassifyExperienceLevelYearRanges(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    domain.ExperienceLevel
	}{
		{"no ranges", "did various things without any dates", domain.LevelFresher},
		{"two years", "developer 2021 - 2023", domain.LevelJunior},
		{"five years", "developer 2017 - 2020, then 2020 - 2022", domain.LevelMidLevel},
		{"nine years", "developer 2015 - 2019, then 2019 - present", domain.LevelSenior},
		{"inverted range ignored", "typo range 2023 - 2019", domain.LevelFresher},
	}

	for _, tc := range cases {
		// Text itself carries no level keywords; the section content decides.
		got := classifyExperienceLevel("plain text", workSections(tc.content), 2024)
		if got != tc.want {
			t.Errorf("%s: level = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestClassifyExperienceLevelOpenRangeUsesReferenceYear(t *testing.T) {
	sections := workSections("developer 2019 - present")

	if got := classifyExperienceLevel("plain text", sections, 2021); got != domain.LevelJunior {
		t.Errorf("reference 2021: level = %q, want Junior", got)
	}
	if got := classifyExperienceLevel("plain text", sections, 2026); got != domain.LevelSenior {
		t.Errorf("reference 2026: level = %q, want Senior", got)
	}
}

func TestClassifyExperienceLevelEducationOnly(t *testing.T) {
	sections := map[domain.SectionKind]domain.SectionRecord{
		domain.SectionEducation: {Kind: domain.SectionEducation, Detected: true, Content: "BSc"},
	}

	if got := classifyExperienceLevel("plain text", sections, 2024); got != domain.LevelFresher {
		t.Errorf("education only: level = %q, want Fresher", got)
	}
}

func TestClassifyExperienceLevelUnknown(t *testing.T) {
	if got := classifyExperienceLevel("plain text", nil, 2024); got != domain.LevelUnknown {
		t.Errorf("no signals: level = %q, want Unknown", got)
	}
}
