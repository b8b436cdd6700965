package usecase

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/puIad/nlp-project/internal/core/domain"
)

const sectionContentCap = 2000

var (
	summaryToneRe    = regexp.MustCompile(`(?i)experienced|skilled|passionate|seeking|goal`)
	degreeRe         = regexp.MustCompile(`(?i)bachelor|master|phd|degree|diploma`)
	institutionRe    = regexp.MustCompile(`(?i)university|college|institute`)
	gradeRe          = regexp.MustCompile(`(?i)gpa|cgpa|grade`)
	yearRe           = regexp.MustCompile(`\d{4}`)
	actionVerbRe     = regexp.MustCompile(`(?i)developed|managed|led|created|implemented`)
	projectVerbRe    = regexp.MustCompile(`(?i)developed|built|created|designed`)
	projectTechRe    = regexp.MustCompile(`(?i)using|with|technologies`)
	educationHintRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:bachelor|master|phd|b\.?s\.?|m\.?s\.?|b\.?a\.?|m\.?a\.?)\s*(?:of|in)?\s*\w+`),
		regexp.MustCompile(`(?i)(?:university|college|institute|school)\s+of\s+\w+`),
		regexp.MustCompile(`(?i)(?:gpa|cgpa)[\s:]*[\d.]+`),
		regexp.MustCompile(`\d{4}\s*-\s*\d{4}`),
	}
	workHintRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:worked|working)\s+(?:as|at|for)`),
		regexp.MustCompile(`(?i)(?:responsibilities|duties)\s*:`),
		regexp.MustCompile(`(?i)(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{4}`),
		regexp.MustCompile(`(?i)present|current|ongoing`),
	}
)

// detectSections locates every known section kind in text. Header matches win
// over content heuristics; a kind that matches neither is still present in the
// returned map with Detected=false so callers see the full fixed key set.
func detectSections(text string) map[domain.SectionKind]domain.SectionRecord {
	sections := make(map[domain.SectionKind]domain.SectionRecord, len(sectionPatterns))
	textLower := strings.ToLower(text)
	headerStarts := collectHeaderStarts(text)

	for _, sp := range sectionPatterns {
		record := domain.SectionRecord{Kind: sp.kind}

		for _, header := range sp.headers {
			loc := header.FindStringIndex(text)
			if loc == nil {
				continue
			}
			content, contentEnd := sectionContent(text, loc[1], headerStarts)
			record.Detected = true
			record.Content = content
			record.QualityScore = scoreSectionQuality(sp.kind, content)
			record.Explanation = explainSectionQuality(sp.kind, record.QualityScore)
			record.Span = &domain.Span{Start: loc[0], End: contentEnd}
			break
		}

		if !record.Detected {
			confidence := contentConfidence(textLower, sp.kind)
			if confidence > 0.5 {
				record.Detected = true
				record.QualityScore = confidence * 10
				record.Explanation = fmt.Sprintf("Detected by content analysis (confidence: %.0f%%)", confidence*100)
			}
		}

		sections[sp.kind] = record
	}
	return sections
}

// collectHeaderStarts gathers the start offset of every header match of every
// kind, sorted ascending. Used to bound section content at the next header.
func collectHeaderStarts(text string) []int {
	var starts []int
	for _, sp := range sectionPatterns {
		for _, header := range sp.headers {
			for _, loc := range header.FindAllStringIndex(text, -1) {
				starts = append(starts, loc[0])
			}
		}
	}
	sort.Ints(starts)
	return starts
}

// sectionContent returns the trimmed content following a header at start and
// the untrimmed end offset, so spans keep bracketing the original text.
func sectionContent(text string, start int, headerStarts []int) (string, int) {
	end := len(text)
	for _, pos := range headerStarts {
		if pos > start {
			end = pos
			break
		}
	}
	if limit := start + sectionContentCap; end > limit {
		end = limit
	}
	return strings.TrimSpace(text[start:end]), end
}

// contentConfidence estimates how likely the text as a whole contains the
// given section even without an explicit header. Only education, work
// experience and skills have content heuristics; everything else is 0.
func contentConfidence(textLower string, kind domain.SectionKind) float64 {
	switch kind {
	case domain.SectionEducation:
		return hintConfidence(textLower, educationHintRes)
	case domain.SectionWorkExperience:
		return hintConfidence(textLower, workHintRes)
	case domain.SectionSkills:
		confidence := float64(len(extractSkills(textLower))) / 5
		if confidence > 1 {
			confidence = 1
		}
		return confidence
	}
	return 0
}

func hintConfidence(textLower string, hints []*regexp.Regexp) float64 {
	matches := 0
	for _, hint := range hints {
		if hint.MatchString(textLower) {
			matches++
		}
	}
	confidence := float64(matches) / 3
	if confidence > 1 {
		confidence = 1
	}
	return confidence
}

// scoreSectionQuality rates section content on a 0..10 scale: a word-count
// baseline plus kind-specific signals (degrees for education, action verbs
// for work experience, skill density for skills).
func scoreSectionQuality(kind domain.SectionKind, content string) float64 {
	if content == "" {
		return 0
	}

	score := 5.0
	wordCount := len(strings.Fields(content))

	switch {
	case wordCount < 10:
		score -= 2
	case wordCount < 30:
		score -= 1
	case wordCount > 200:
		score += 2
	case wordCount > 100:
		score += 1
	}

	switch kind {
	case domain.SectionProfessionalSummary:
		if wordCount >= 50 && wordCount <= 150 {
			score += 2
		}
		if summaryToneRe.MatchString(content) {
			score += 1
		}
	case domain.SectionEducation:
		if degreeRe.MatchString(content) {
			score += 1
		}
		if institutionRe.MatchString(content) {
			score += 1
		}
		if gradeRe.MatchString(content) {
			score += 0.5
		}
	case domain.SectionWorkExperience:
		if yearRe.MatchString(content) {
			score += 1
		}
		if actionVerbRe.MatchString(content) {
			score += 1
		}
	case domain.SectionSkills:
		density := float64(len(extractSkills(strings.ToLower(content)))) / 3
		if density > 3 {
			density = 3
		}
		score += density
	case domain.SectionProjects:
		if projectVerbRe.MatchString(content) {
			score += 1
		}
		if projectTechRe.MatchString(content) {
			score += 1
		}
	}

	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

func explainSectionQuality(kind domain.SectionKind, score float64) string {
	label := kind.Label()
	switch {
	case score >= 8:
		return fmt.Sprintf("Excellent %s section with comprehensive details", label)
	case score >= 6:
		return fmt.Sprintf("Good %s section with adequate information", label)
	case score >= 4:
		return fmt.Sprintf("Average %s section - could use more details", label)
	case score >= 2:
		return fmt.Sprintf("Weak %s section - needs significant improvement", label)
	default:
		return fmt.Sprintf("Missing or very weak %s section", label)
	}
}
