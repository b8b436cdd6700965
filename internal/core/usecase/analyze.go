package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/puIad/nlp-project/internal/core/domain"
	"github.com/puIad/nlp-project/internal/core/ports"
)

// minAnalyzableChars is the floor below which a document is treated as empty.
const minAnalyzableChars = 50

// Analyzer runs the full CV analysis pipeline: section detection, skill and
// entity extraction, career and experience classification, scoring and
// feedback. It is safe for concurrent use; all taxonomies are read-only.
type Analyzer struct {
	logger *slog.Logger
	tagger ports.EntityTagger

	referenceYear int
	now           func() time.Time
}

type AnalyzerOption func(*Analyzer)

// WithReferenceYear pins the year open-ended employment ranges close at.
// Zero keeps the wall clock.
func WithReferenceYear(year int) AnalyzerOption {
	return func(a *Analyzer) { a.referenceYear = year }
}

func withClock(now func() time.Time) AnalyzerOption {
	return func(a *Analyzer) { a.now = now }
}

// NewAnalyzer builds an Analyzer. The tagger may be nil, in which case only
// regex-derived entities are reported.
func NewAnalyzer(logger *slog.Logger, tagger ports.EntityTagger, opts ...AnalyzerOption) *Analyzer {
	analyzer := &Analyzer{
		logger: logger,
		tagger: tagger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(analyzer)
	}
	return analyzer
}

// Analyze produces a complete result for the given text. Inputs shorter than
// 50 significant characters short-circuit to a zero-scored result carrying a
// single weakness. The same text always yields the same result.
func (a *Analyzer) Analyze(ctx context.Context, text string) domain.AnalysisResult {
	result := domain.NewAnalysisResult()

	if len(strings.TrimSpace(text)) < minAnalyzableChars {
		result.Recommendations.Weaknesses = append(result.Recommendations.Weaknesses, "CV text is too short or empty")
		return result
	}

	textLower := strings.ToLower(text)

	result.Sections = detectSections(text)
	result.SkillsFound = extractSkills(textLower)
	result.Entities = extractEntities(ctx, a.logger, a.tagger, text)
	result.CareerField = classifyCareerField(textLower, result.SkillsFound)
	result.ExperienceLevel = classifyExperienceLevel(textLower, result.Sections, a.resolveReferenceYear())

	computeScores(text, &result)
	result.Recommendations = generateFeedback(&result)

	a.logger.Debug("cv analysis completed",
		"career_field", result.CareerField,
		"experience_level", result.ExperienceLevel,
		"overall_score", result.OverallScore,
		"skills_found", len(result.SkillsFound),
		"sections_detected", result.DetectedSectionCount(),
	)
	return result
}

func (a *Analyzer) resolveReferenceYear() int {
	if a.referenceYear > 0 {
		return a.referenceYear
	}
	return a.now().Year()
}
