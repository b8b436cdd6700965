package usecase

import (
	"context"
	"log/slog"
	"regexp"
	"sort"

	"github.com/puIad/nlp-project/internal/core/domain"
	"github.com/puIad/nlp-project/internal/core/ports"
)

// taggerTextLimit bounds how much text goes to the statistical tagger.
const taggerTextLimit = 100000

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`(?:\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// extractEntities pulls emails and phones with fixed patterns and, when a
// tagger is configured, names, organizations, locations and dates from it.
// A tagger failure degrades to the regex-only result; every list comes back
// deduplicated and sorted.
func extractEntities(ctx context.Context, logger *slog.Logger, tagger ports.EntityTagger, text string) domain.EntityBag {
	bag := domain.EntityBag{
		Names:         []string{},
		Organizations: []string{},
		Locations:     []string{},
		Dates:         []string{},
		Emails:        dedupeSorted(emailRe.FindAllString(text, -1)),
		Phones:        dedupeSorted(phoneRe.FindAllString(text, -1)),
	}

	if tagger == nil {
		return bag
	}

	tagged, err := tagger.Tag(ctx, truncateRunes(text, taggerTextLimit))
	if err != nil {
		logger.Warn("entity tagging failed, keeping regex entities", "error", err)
		return bag
	}

	for _, entity := range tagged {
		switch entity.Label {
		case domain.LabelPerson:
			bag.Names = append(bag.Names, entity.Text)
		case domain.LabelOrganization:
			bag.Organizations = append(bag.Organizations, entity.Text)
		case domain.LabelGPE, domain.LabelLocation:
			bag.Locations = append(bag.Locations, entity.Text)
		case domain.LabelDate:
			bag.Dates = append(bag.Dates, entity.Text)
		}
	}

	bag.Names = dedupeSorted(bag.Names)
	bag.Organizations = dedupeSorted(bag.Organizations)
	bag.Locations = dedupeSorted(bag.Locations)
	bag.Dates = dedupeSorted(bag.Dates)
	return bag
}

func dedupeSorted(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}

func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
