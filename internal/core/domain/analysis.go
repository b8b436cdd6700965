package domain

// SectionKind names one of the fixed CV sections the detector knows about.
type SectionKind string

const (
	SectionProfessionalSummary  SectionKind = "professional_summary"
	SectionEducation            SectionKind = "education"
	SectionWorkExperience       SectionKind = "work_experience"
	SectionInternshipExperience SectionKind = "internship_experience"
	SectionSkills               SectionKind = "skills"
	SectionProjects             SectionKind = "projects"
	SectionCertifications       SectionKind = "certifications"
	SectionAchievements         SectionKind = "achievements"
	SectionHobbies              SectionKind = "hobbies"
)

// SectionKinds lists every kind in detection order.
var SectionKinds = []SectionKind{
	SectionProfessionalSummary,
	SectionEducation,
	SectionWorkExperience,
	SectionInternshipExperience,
	SectionSkills,
	SectionProjects,
	SectionCertifications,
	SectionAchievements,
	SectionHobbies,
}

// Label renders the kind for user-facing messages ("work experience").
func (k SectionKind) Label() string {
	out := make([]byte, 0, len(k))
	for i := 0; i < len(k); i++ {
		if k[i] == '_' {
			out = append(out, ' ')
			continue
		}
		out = append(out, k[i])
	}
	return string(out)
}

// Span is a half-open [Start, End) offset range into the analyzed text.
type Span struct {
	Start int
	End   int
}

// SectionRecord is the per-kind detection outcome. When Detected is false,
// QualityScore is 0 and Content is empty.
type SectionRecord struct {
	Kind         SectionKind `json:"-"`
	Detected     bool        `json:"detected"`
	QualityScore float64     `json:"quality_score"`
	Content      string      `json:"-"`
	Explanation  string      `json:"explanation"`
	Span         *Span       `json:"-"`
}

type ExperienceLevel string

const (
	LevelFresher  ExperienceLevel = "Fresher"
	LevelJunior   ExperienceLevel = "Junior"
	LevelMidLevel ExperienceLevel = "Mid-Level"
	LevelSenior   ExperienceLevel = "Senior"
	LevelUnknown  ExperienceLevel = "Unknown"
)

// GeneralField is the career-field fallback when no taxonomy field scores.
const GeneralField = "General"

// EntityBag groups extracted entities by kind. Each slice is duplicate-free
// and sorted so repeated analyses of the same text are byte-identical.
type EntityBag struct {
	Names         []string `json:"names"`
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
	Dates         []string `json:"dates"`
	Emails        []string `json:"emails"`
	Phones        []string `json:"phones"`
}

// TaggedEntity is one span reported by the statistical tagger.
type TaggedEntity struct {
	Text  string
	Label string
}

// Tagger labels mapped onto EntityBag categories.
const (
	LabelPerson       = "PERSON"
	LabelOrganization = "ORG"
	LabelGPE          = "GPE"
	LabelLocation     = "LOC"
	LabelDate         = "DATE"
)

// TopicSuggestion is a curated learning pointer derived from the analysis.
type TopicSuggestion struct {
	Title  string `json:"title"`
	Query  string `json:"query"`
	Reason string `json:"reason"`
}

// Feedback carries the generated guidance lists, bounded at 5/5/7/5 entries.
type Feedback struct {
	Strengths       []string          `json:"strengths"`
	Weaknesses      []string          `json:"weaknesses"`
	Recommendations []string          `json:"recommendations"`
	Suggestions     []TopicSuggestion `json:"suggestions"`
}

// AnalysisResult is the terminal artifact of one analysis invocation.
// All scores are within [0, 100].
type AnalysisResult struct {
	OverallScore    float64         `json:"overall_score"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	CareerField     string          `json:"career_field"`

	ExperienceScore  float64 `json:"experience_score"`
	SkillsScore      float64 `json:"skills_score"`
	StructureScore   float64 `json:"structure_score"`
	CareerScore      float64 `json:"career_score"`
	ReadabilityScore float64 `json:"readability_score"`

	Sections    map[SectionKind]SectionRecord `json:"sections_detected"`
	SkillsFound []string                      `json:"skills_found"`
	Entities    EntityBag                     `json:"entities"`

	Recommendations Feedback `json:"recommendations"`
}

// NewAnalysisResult returns an empty result with the documented fallbacks in
// place so a short-circuited analysis still serializes completely.
func NewAnalysisResult() AnalysisResult {
	return AnalysisResult{
		ExperienceLevel: LevelUnknown,
		CareerField:     GeneralField,
		Sections:        make(map[SectionKind]SectionRecord, len(SectionKinds)),
		SkillsFound:     []string{},
		Entities: EntityBag{
			Names:         []string{},
			Organizations: []string{},
			Locations:     []string{},
			Dates:         []string{},
			Emails:        []string{},
			Phones:        []string{},
		},
		Recommendations: Feedback{
			Strengths:       []string{},
			Weaknesses:      []string{},
			Recommendations: []string{},
			Suggestions:     []TopicSuggestion{},
		},
	}
}

// DetectedSectionCount counts sections marked detected.
func (r AnalysisResult) DetectedSectionCount() int {
	count := 0
	for _, section := range r.Sections {
		if section.Detected {
			count++
		}
	}
	return count
}
