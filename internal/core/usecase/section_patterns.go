package usecase

import (
	"regexp"

	"github.com/puIad/nlp-project/internal/core/domain"
)

// Header alternatives per section kind, in priority order. Each alternative
// must match a whole line, allowing a leading bullet/dash/star and a trailing
// colon. The first alternative that matches anywhere in the text wins.
type sectionPattern struct {
	kind    domain.SectionKind
	headers []*regexp.Regexp
}

func compileHeaders(alternatives ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(alternatives))
	for _, alt := range alternatives {
		compiled = append(compiled, regexp.MustCompile(`(?im)^[\s•\-*]*(?:`+alt+`)[\s:]*$`))
	}
	return compiled
}

var sectionPatterns = []sectionPattern{
	{
		kind: domain.SectionProfessionalSummary,
		headers: compileHeaders(
			`(?:professional\s+)?summary`,
			`(?:career\s+)?objective`,
			`profile\s*(?:summary)?`,
			`about\s+me`,
			`personal\s+statement`,
			`executive\s+summary`,
		),
	},
	{
		kind: domain.SectionEducation,
		headers: compileHeaders(
			`education(?:al)?\s*(?:background|qualifications?)?`,
			`academic\s*(?:background|qualifications?)`,
			`qualifications?`,
			`degrees?`,
			`schooling`,
		),
	},
	{
		kind: domain.SectionWorkExperience,
		headers: compileHeaders(
			`(?:work|professional|employment)\s+(?:experience|history)`,
			`experience`,
			`career\s+history`,
			`employment\s+record`,
		),
	},
	{
		kind: domain.SectionInternshipExperience,
		headers: compileHeaders(
			`internships?`,
			`training\s+(?:experience|program)`,
			`industrial\s+training`,
			`practical\s+experience`,
		),
	},
	{
		kind: domain.SectionSkills,
		headers: compileHeaders(
			`(?:technical\s+)?skills?`,
			`competenc(?:ies|y)`,
			`expertise`,
			`proficiencies`,
			`technical\s+abilities`,
			`core\s+competencies`,
		),
	},
	{
		kind: domain.SectionProjects,
		headers: compileHeaders(
			`projects?`,
			`portfolio`,
			`(?:key\s+)?accomplishments`,
			`works?`,
		),
	},
	{
		kind: domain.SectionCertifications,
		headers: compileHeaders(
			`certifications?`,
			`licenses?`,
			`credentials?`,
			`professional\s+development`,
			`courses?\s+completed`,
		),
	},
	{
		kind: domain.SectionAchievements,
		headers: compileHeaders(
			`achievements?`,
			`awards?\s*(?:and\s+honors?)?`,
			`honors?`,
			`accomplishments?`,
			`recognition`,
		),
	},
	{
		kind: domain.SectionHobbies,
		headers: compileHeaders(
			`hobbies?\s*(?:and\s+interests?)?`,
			`interests?`,
			`extra\s*curricular`,
			`activities`,
			`personal\s+interests?`,
		),
	},
}
