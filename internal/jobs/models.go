// Package jobs holds the records returned by the matching service client:
// job postings, resumes, matching results and applications.
package jobs

import (
	"strconv"
	"strings"
)

// Field names understood by StringField.
const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldCompany     = "company"
	FieldPosition    = "position"
	FieldSkills      = "skills"
	FieldDescription = "description"
	FieldLocation    = "location"
	FieldExperience  = "experience"
	FieldStatus      = "status"
	FieldName        = "name"
)

var (
	// PostingSearchFields are matched by a keyword search over postings.
	PostingSearchFields = []string{FieldTitle, FieldCompany, FieldPosition, FieldSkills, FieldDescription}
	// ResumeSearchFields are matched by a keyword search over resumes.
	ResumeSearchFields = []string{FieldTitle, FieldName, FieldPosition, FieldSkills, FieldDescription}
	// MatchSearchFields cover both sides of a match.
	MatchSearchFields = []string{FieldTitle, FieldCompany, FieldPosition, FieldSkills, FieldName}
	// ApplicationSearchFields are matched by a keyword search over applications.
	ApplicationSearchFields = []string{FieldTitle, FieldCompany, FieldName}
)

// Record is implemented by every model in this package.
type Record interface {
	RecordID() int
	MatchScore() *float64
	StringField(name string) string
}

type Posting struct {
	ID          int      `json:"id"`
	Title       string   `json:"title,omitempty"`
	Company     string   `json:"company,omitempty"`
	Position    string   `json:"position,omitempty"`
	Location    string   `json:"location,omitempty"`
	Experience  string   `json:"experience,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Description string   `json:"description,omitempty"`
	Salary      string   `json:"salary,omitempty"`
	Active      *bool    `json:"is_active,omitempty"`
	Score       *float64 `json:"score,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
}

func (p *Posting) RecordID() int {
	if p == nil {
		return 0
	}
	return p.ID
}

func (p *Posting) MatchScore() *float64 {
	if p == nil {
		return nil
	}
	return p.Score
}

// IsActive treats postings without the flag as open.
func (p *Posting) IsActive() bool {
	return p != nil && (p.Active == nil || *p.Active)
}

func (p *Posting) StringField(name string) string {
	if p == nil {
		return ""
	}

	switch name {
	case FieldID:
		return strconv.Itoa(p.ID)
	case FieldTitle:
		return p.Title
	case FieldCompany:
		return p.Company
	case FieldPosition:
		return p.Position
	case FieldLocation:
		return p.Location
	case FieldExperience:
		return p.Experience
	case FieldSkills:
		return strings.Join(p.Skills, ",")
	case FieldDescription:
		return p.Description
	default:
		return ""
	}
}

type Resume struct {
	ID          int      `json:"id"`
	Title       string   `json:"title,omitempty"`
	Name        string   `json:"name,omitempty"`
	Position    string   `json:"position,omitempty"`
	Location    string   `json:"location,omitempty"`
	Experience  string   `json:"experience,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Description string   `json:"description,omitempty"`
	Score       *float64 `json:"score,omitempty"`
}

func (r *Resume) RecordID() int {
	if r == nil {
		return 0
	}
	return r.ID
}

func (r *Resume) MatchScore() *float64 {
	if r == nil {
		return nil
	}
	return r.Score
}

func (r *Resume) StringField(name string) string {
	if r == nil {
		return ""
	}

	switch name {
	case FieldID:
		return strconv.Itoa(r.ID)
	case FieldTitle:
		return r.Title
	case FieldName:
		return r.Name
	case FieldPosition:
		return r.Position
	case FieldLocation:
		return r.Location
	case FieldExperience:
		return r.Experience
	case FieldSkills:
		return strings.Join(r.Skills, ",")
	case FieldDescription:
		return r.Description
	default:
		return ""
	}
}

// Match is one result of the matching service: a posting scored for a
// resume, or a resume scored for a posting.
type Match struct {
	ID      int      `json:"id"`
	Posting *Posting `json:"posting,omitempty"`
	Resume  *Resume  `json:"resume,omitempty"`
	Score   *float64 `json:"score,omitempty"`
}

func (m *Match) RecordID() int {
	if m == nil {
		return 0
	}
	return m.ID
}

func (m *Match) MatchScore() *float64 {
	if m == nil {
		return nil
	}
	return m.Score
}

// IsActive follows the matched posting.
func (m *Match) IsActive() bool {
	if m == nil {
		return false
	}
	return m.Posting == nil || m.Posting.IsActive()
}

// StringField reads from the posting first and falls back to the resume.
func (m *Match) StringField(name string) string {
	if m == nil {
		return ""
	}
	if name == FieldID {
		return strconv.Itoa(m.ID)
	}
	if v := m.Posting.StringField(name); v != "" {
		return v
	}
	return m.Resume.StringField(name)
}

type Application struct {
	ID            int      `json:"id"`
	JobPostingID  int      `json:"job_posting_id"`
	ResumeID      int      `json:"resume_id"`
	Status        string   `json:"status,omitempty"`
	ApplicantName string   `json:"applicant_name,omitempty"`
	JobTitle      string   `json:"job_title,omitempty"`
	Company       string   `json:"company,omitempty"`
	Score         *float64 `json:"score,omitempty"`
	AppliedAt     string   `json:"applied_at,omitempty"`
}

func (a *Application) RecordID() int {
	if a == nil {
		return 0
	}
	return a.ID
}

func (a *Application) MatchScore() *float64 {
	if a == nil {
		return nil
	}
	return a.Score
}

func (a *Application) StringField(name string) string {
	if a == nil {
		return ""
	}

	switch name {
	case FieldID:
		return strconv.Itoa(a.ID)
	case FieldStatus:
		return a.Status
	case FieldTitle:
		return a.JobTitle
	case FieldCompany:
		return a.Company
	case FieldName:
		return a.ApplicantName
	default:
		return ""
	}
}

// FindByID returns the first record with id.
func FindByID[R Record](records []R, id int) (R, bool) {
	for _, r := range records {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero R
	return zero, false
}

// IDs returns record ids in input order.
func IDs[R Record](records []R) []int {
	ids := make([]int, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.RecordID())
	}
	return ids
}
