package domain

import "time"

// SkillCount is one entry of the top-skills ranking.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// ReportRow is the per-CV line of the aggregate report.
type ReportRow struct {
	ID               string          `json:"id"`
	Filename         string          `json:"filename"`
	CareerField      string          `json:"career_field"`
	ExperienceLevel  ExperienceLevel `json:"experience_level"`
	OverallScore     float64         `json:"overall_score"`
	ExperienceScore  float64         `json:"experience_score"`
	SkillsScore      float64         `json:"skills_score"`
	StructureScore   float64         `json:"structure_score"`
	CareerScore      float64         `json:"career_score"`
	ReadabilityScore float64         `json:"readability_score"`
	SkillCount       int             `json:"skill_count"`
	CreatedAt        time.Time       `json:"created_at"`
}

// Report aggregates every analyzed CV for the admin surface.
type Report struct {
	GeneratedAt       time.Time      `json:"generated_at"`
	TotalCVs          int            `json:"total_cvs"`
	AverageScore      float64        `json:"average_score"`
	ByCareerField     map[string]int `json:"by_career_field"`
	ByExperienceLevel map[string]int `json:"by_experience_level"`
	TopSkills         []SkillCount   `json:"top_skills"`
	Rows              []ReportRow    `json:"rows"`
}
