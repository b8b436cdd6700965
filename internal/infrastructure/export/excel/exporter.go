package excel

import (
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/puIad/nlp-project/internal/core/domain"
)

const (
	summarySheet = "Summary"
	cvsSheet     = "CVs"
	skillsSheet  = "Top Skills"
)

// Exporter renders the aggregate report as an XLSX workbook.
type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

func (e *Exporter) Export(report *domain.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(cvsSheet); err != nil {
		return nil, fmt.Errorf("create cvs sheet: %w", err)
	}
	if _, err := f.NewSheet(skillsSheet); err != nil {
		return nil, fmt.Errorf("create skills sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	if err := e.writeSummary(f, report, headerStyle); err != nil {
		return nil, fmt.Errorf("write summary sheet: %w", err)
	}
	if err := e.writeCVs(f, report, headerStyle); err != nil {
		return nil, fmt.Errorf("write cvs sheet: %w", err)
	}
	if err := e.writeTopSkills(f, report, headerStyle); err != nil {
		return nil, fmt.Errorf("write skills sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *Exporter) writeSummary(f *excelize.File, report *domain.Report, headerStyle int) error {
	_ = f.SetColWidth(summarySheet, "A", "A", 28)
	_ = f.SetColWidth(summarySheet, "B", "B", 40)

	if err := f.SetCellValue(summarySheet, "A1", "CV Analysis Report"); err != nil {
		return err
	}
	_ = f.MergeCell(summarySheet, "A1", "B1")
	_ = f.SetCellStyle(summarySheet, "A1", "B1", headerStyle)

	generatedAt := report.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now().UTC()
	}

	rows := [][2]any{
		{"Generated:", generatedAt.Format("2006-01-02 15:04:05")},
		{"Total CVs:", report.TotalCVs},
		{"Average Score:", fmt.Sprintf("%.2f", report.AverageScore)},
	}
	line := 3
	for _, row := range rows {
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", line), row[0])
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", line), row[1])
		line++
	}
	line++

	_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", line), "By Career Field")
	_ = f.MergeCell(summarySheet, fmt.Sprintf("A%d", line), fmt.Sprintf("B%d", line))
	_ = f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", line), fmt.Sprintf("B%d", line), headerStyle)
	line++
	for _, field := range sortedKeys(report.ByCareerField) {
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", line), field)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", line), report.ByCareerField[field])
		line++
	}
	line++

	_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", line), "By Experience Level")
	_ = f.MergeCell(summarySheet, fmt.Sprintf("A%d", line), fmt.Sprintf("B%d", line))
	_ = f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", line), fmt.Sprintf("B%d", line), headerStyle)
	line++
	for _, level := range sortedKeys(report.ByExperienceLevel) {
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", line), level)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", line), report.ByExperienceLevel[level])
		line++
	}
	return nil
}

func (e *Exporter) writeCVs(f *excelize.File, report *domain.Report, headerStyle int) error {
	headers := []string{
		"ID", "Filename", "Career Field", "Level", "Overall",
		"Experience", "Skills", "Structure", "Career", "Readability",
		"Skill Count", "Uploaded",
	}
	widths := []float64{30, 28, 24, 12, 10, 12, 10, 10, 10, 12, 12, 20}
	for i, width := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(cvsSheet, col, col, width)
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(cvsSheet, cell, header); err != nil {
			return err
		}
		_ = f.SetCellStyle(cvsSheet, cell, cell, headerStyle)
	}

	for i, row := range report.Rows {
		values := []any{
			row.ID, row.Filename, row.CareerField, string(row.ExperienceLevel), row.OverallScore,
			row.ExperienceScore, row.SkillsScore, row.StructureScore, row.CareerScore, row.ReadabilityScore,
			row.SkillCount, row.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(cvsSheet, cell, value); err != nil {
				return err
			}
		}
	}

	if len(report.Rows) > 0 {
		_ = f.AutoFilter(cvsSheet, fmt.Sprintf("A1:L%d", len(report.Rows)+1), nil)
	}
	return f.SetPanes(cvsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func (e *Exporter) writeTopSkills(f *excelize.File, report *domain.Report, headerStyle int) error {
	_ = f.SetColWidth(skillsSheet, "A", "A", 30)
	_ = f.SetColWidth(skillsSheet, "B", "B", 10)

	_ = f.SetCellValue(skillsSheet, "A1", "Skill")
	_ = f.SetCellValue(skillsSheet, "B1", "Count")
	_ = f.SetCellStyle(skillsSheet, "A1", "B1", headerStyle)

	for i, skill := range report.TopSkills {
		_ = f.SetCellValue(skillsSheet, fmt.Sprintf("A%d", i+2), skill.Skill)
		_ = f.SetCellValue(skillsSheet, fmt.Sprintf("B%d", i+2), skill.Count)
	}
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
