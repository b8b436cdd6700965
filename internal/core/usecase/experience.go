package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/puIad/nlp-project/internal/core/domain"
)

// levelIndicator is one keyword group signalling an experience level. Groups
// are checked in order; the first keyword found anywhere in the text wins.
type levelIndicator struct {
	level    domain.ExperienceLevel
	keywords []string
}

var levelIndicators = []levelIndicator{
	{domain.LevelFresher, []string{"fresher", "fresh graduate", "entry level", "graduate", "recent graduate", "no experience"}},
	{domain.LevelJunior, []string{"junior", "associate", "1 year", "2 years", "trainee"}},
	{domain.LevelMidLevel, []string{"mid level", "intermediate", "3 years", "4 years", "5 years"}},
	{domain.LevelSenior, []string{"senior", "lead", "principal", "architect", "manager", "6+ years", "7 years", "8 years", "10 years"}},
}

var yearRangeRe = regexp.MustCompile(`(\d{4})\s*[-–]\s*(?:(\d{4})|present|current)`)

// classifyExperienceLevel determines the candidate's seniority. Explicit
// keywords win; otherwise year ranges in the work experience section are
// summed against referenceYear; otherwise education-only CVs read as Fresher.
func classifyExperienceLevel(textLower string, sections map[domain.SectionKind]domain.SectionRecord, referenceYear int) domain.ExperienceLevel {
	for _, indicator := range levelIndicators {
		for _, keyword := range indicator.keywords {
			if strings.Contains(textLower, keyword) {
				return indicator.level
			}
		}
	}

	work := sections[domain.SectionWorkExperience]
	if work.Detected {
		totalYears := sumYearRanges(strings.ToLower(work.Content), referenceYear)
		switch {
		case totalYears == 0:
			return domain.LevelFresher
		case totalYears <= 2:
			return domain.LevelJunior
		case totalYears <= 5:
			return domain.LevelMidLevel
		default:
			return domain.LevelSenior
		}
	}

	if sections[domain.SectionEducation].Detected && !work.Detected {
		return domain.LevelFresher
	}

	return domain.LevelUnknown
}

// sumYearRanges adds up every "YYYY-YYYY" or "YYYY-present" span found in
// content. Open-ended ranges close at referenceYear; inverted ranges count
// as zero instead of going negative.
func sumYearRanges(content string, referenceYear int) int {
	total := 0
	for _, match := range yearRangeRe.FindAllStringSubmatch(content, -1) {
		start, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		end := referenceYear
		if match[2] != "" {
			end, err = strconv.Atoi(match[2])
			if err != nil {
				continue
			}
		}
		if years := end - start; years > 0 {
			total += years
		}
	}
	return total
}
