package usecase

import (
	"sort"
	"strings"

	"github.com/puIad/nlp-project/internal/core/domain"
)

const careerHeaderChars = 500

type fieldScore struct {
	field         careerField
	score         int
	jobTitleHits  []string
	primaryHits   []string
	secondaryHits []string
	tiersMatched  int
}

// classifyCareerField runs weighted keyword matching over the career taxonomy
// and returns the winning field name, or GeneralField when nothing scores.
// textLower must be the lowercased document; skills are the extracted skills.
func classifyCareerField(textLower string, skills []string) string {
	header := headerWindow(textLower)

	scores := make([]fieldScore, 0, len(careerFields))
	for _, field := range careerFields {
		scores = append(scores, scoreField(field, textLower, header, skills))
	}

	// Stable sort keeps taxonomy order as the tie-break.
	ranked := make([]fieldScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	best := ranked[0]
	if best.score <= 0 {
		return domain.GeneralField
	}

	// A specialized data-science subfield without an explicit job title loses
	// to generic Data Science when the latter has one and a comparable score.
	if dataScienceFields[best.field.name] && best.field.name != "Data Science" && len(best.jobTitleHits) == 0 {
		for _, candidate := range scores {
			if candidate.field.name != "Data Science" {
				continue
			}
			if float64(candidate.score) > float64(best.score)*0.7 && len(candidate.jobTitleHits) > 0 {
				return "Data Science"
			}
			break
		}
	}

	// IT matches broadly on common tooling; a runner-up with an explicit job
	// title and a competitive score is the more specific answer.
	if best.field.name == "Information Technology" {
		limit := 5
		if len(ranked) < limit {
			limit = len(ranked)
		}
		for _, candidate := range ranked[1:limit] {
			if len(candidate.jobTitleHits) == 0 || float64(candidate.score) <= float64(best.score)*0.6 {
				continue
			}
			if candidate.field.name == "Information Technology" || candidate.field.name == "Engineering" {
				continue
			}
			return candidate.field.name
		}
	}

	return best.field.name
}

func headerWindow(textLower string) string {
	runes := []rune(textLower)
	if len(runes) <= careerHeaderChars {
		return textLower
	}
	return string(runes[:careerHeaderChars])
}

func scoreField(field careerField, textLower, header string, skills []string) fieldScore {
	fs := fieldScore{field: field}

	for _, title := range field.jobTitles {
		if !strings.Contains(textLower, title) {
			continue
		}
		fs.score += 10
		fs.jobTitleHits = append(fs.jobTitleHits, title)
		if strings.Contains(header, title) {
			fs.score += 5
		}
	}

	for _, keyword := range field.primary {
		if !strings.Contains(textLower, keyword) {
			continue
		}
		// Multi-word phrases are more specific signals.
		if len(strings.Fields(keyword)) >= 2 {
			fs.score += 6
		} else {
			fs.score += 4
		}
		fs.primaryHits = append(fs.primaryHits, keyword)
	}

	for _, keyword := range field.secondary {
		if strings.Contains(textLower, keyword) {
			fs.score += 2
			fs.secondaryHits = append(fs.secondaryHits, keyword)
		}
	}

	keywordSet := make(map[string]struct{})
	for _, keyword := range field.allKeywords() {
		keywordSet[keyword] = struct{}{}
	}
	seenSkills := make(map[string]struct{})
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		if _, dup := seenSkills[lower]; dup {
			continue
		}
		seenSkills[lower] = struct{}{}
		if _, ok := keywordSet[lower]; ok {
			fs.score += 3
		}
	}

	// Repeated primary keywords indicate strong focus.
	for _, keyword := range fs.primaryHits {
		count := strings.Count(textLower, keyword)
		if count > 2 {
			bonus := (count - 2) * 2
			if bonus > 8 {
				bonus = 8
			}
			fs.score += bonus
		}
	}

	if len(fs.jobTitleHits) > 0 {
		fs.tiersMatched++
	}
	if len(fs.primaryHits) > 0 {
		fs.tiersMatched++
	}
	if len(fs.secondaryHits) > 0 {
		fs.tiersMatched++
	}
	if fs.tiersMatched >= 2 {
		fs.score += 5
	}
	if fs.tiersMatched == 3 {
		fs.score += 5
	}

	return fs
}
