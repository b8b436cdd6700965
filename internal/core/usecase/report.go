package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/puIad/nlp-project/internal/core/domain"
	"github.com/puIad/nlp-project/internal/core/ports"
)

// topSkillsLimit bounds the skill ranking in the aggregate report.
const topSkillsLimit = 20

type ReportUseCase struct {
	repo     ports.CVRepository
	exporter ports.ReportExporter
	now      func() time.Time
}

func NewReportUseCase(repo ports.CVRepository, exporter ports.ReportExporter) *ReportUseCase {
	return &ReportUseCase{
		repo:     repo,
		exporter: exporter,
		now:      time.Now,
	}
}

func (uc *ReportUseCase) Report(ctx context.Context) (*domain.Report, error) {
	cvs, err := uc.repo.ListAnalyzed(ctx)
	if err != nil {
		return nil, fmt.Errorf("list analyzed cvs: %w", err)
	}

	report := &domain.Report{
		GeneratedAt:       uc.now().UTC(),
		TotalCVs:          len(cvs),
		ByCareerField:     make(map[string]int),
		ByExperienceLevel: make(map[string]int),
		TopSkills:         []domain.SkillCount{},
		Rows:              make([]domain.ReportRow, 0, len(cvs)),
	}

	skillCounts := make(map[string]int)
	var scoreSum float64

	for _, cv := range cvs {
		scoreSum += cv.OverallScore
		report.ByCareerField[cv.CareerField]++
		report.ByExperienceLevel[string(cv.ExperienceLevel)]++

		row := domain.ReportRow{
			ID:              cv.ID,
			Filename:        cv.Filename,
			CareerField:     cv.CareerField,
			ExperienceLevel: cv.ExperienceLevel,
			OverallScore:    cv.OverallScore,
			CreatedAt:       cv.CreatedAt,
		}
		if cv.Analysis != nil {
			row.ExperienceScore = cv.Analysis.ExperienceScore
			row.SkillsScore = cv.Analysis.SkillsScore
			row.StructureScore = cv.Analysis.StructureScore
			row.CareerScore = cv.Analysis.CareerScore
			row.ReadabilityScore = cv.Analysis.ReadabilityScore
			row.SkillCount = len(cv.Analysis.SkillsFound)
			for _, skill := range cv.Analysis.SkillsFound {
				skillCounts[skill]++
			}
		}
		report.Rows = append(report.Rows, row)
	}

	if len(cvs) > 0 {
		report.AverageScore = scoreSum / float64(len(cvs))
	}
	report.TopSkills = rankSkills(skillCounts)
	return report, nil
}

func (uc *ReportUseCase) ExportXLSX(ctx context.Context) ([]byte, error) {
	report, err := uc.Report(ctx)
	if err != nil {
		return nil, err
	}
	data, err := uc.exporter.Export(report)
	if err != nil {
		return nil, fmt.Errorf("export report: %w", err)
	}
	return data, nil
}

func rankSkills(counts map[string]int) []domain.SkillCount {
	ranked := make([]domain.SkillCount, 0, len(counts))
	for skill, count := range counts {
		ranked = append(ranked, domain.SkillCount{Skill: skill, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Skill < ranked[j].Skill
	})
	if len(ranked) > topSkillsLimit {
		ranked = ranked[:topSkillsLimit]
	}
	return ranked
}
