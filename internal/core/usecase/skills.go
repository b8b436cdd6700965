package usecase

import "regexp"

// compiledSkill pairs a taxonomy skill with its whole-word matcher and the
// first category that lists it. Built once at init; extraction only reads.
type compiledSkill struct {
	name     string
	category string
	re       *regexp.Regexp
}

var compiledSkills = compileSkills()

func compileSkills() []compiledSkill {
	seen := make(map[string]struct{})
	var out []compiledSkill
	for _, category := range skillsTaxonomy {
		for _, skill := range category.skills {
			if _, dup := seen[skill]; dup {
				continue
			}
			seen[skill] = struct{}{}
			out = append(out, compiledSkill{
				name:     skill,
				category: category.name,
				re:       regexp.MustCompile(`\b` + regexp.QuoteMeta(skill) + `\b`),
			})
		}
	}
	return out
}

// extractSkills returns every taxonomy skill present in textLower as a whole
// word, in taxonomy order, without duplicates. The input must already be
// lowercased; skills are stored lowercase so matching is exact.
func extractSkills(textLower string) []string {
	found := make([]string, 0, 16)
	for _, skill := range compiledSkills {
		if skill.re.MatchString(textLower) {
			found = append(found, skill.name)
		}
	}
	return found
}

// skillCategoryOf reports the first taxonomy category listing the skill.
func skillCategoryOf(skill string) (string, bool) {
	for _, compiled := range compiledSkills {
		if compiled.name == skill {
			return compiled.category, true
		}
	}
	return "", false
}
