// Package report turns filtered records and their aggregates into
// display rows and renders them as a table, JSON or YAML.
package report

import (
	"github.com/spigell/jobmatch/internal/filtering"
	"github.com/spigell/jobmatch/internal/score"
)

const notScoredLabel = "Not scored"

// Row is one display-ready record.
type Row struct {
	ID       int              `json:"id" yaml:"id"`
	Title    string           `json:"title" yaml:"title"`
	Subtitle string           `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Score    score.Percentage `json:"-" yaml:"-"`
	Percent  string           `json:"score" yaml:"score"`
	Tier     score.Tier       `json:"tier,omitempty" yaml:"tier,omitempty"`
	Label    string           `json:"label" yaml:"label"`
}

// Columns names the record fields shown as title and subtitle.
type Columns struct {
	Title    string
	Subtitle string
}

// Rows builds one row per record, keeping the input order. Unscored
// records get no tier and are labelled as not scored.
func Rows[R filtering.Record](records []R, cols Columns, th score.Thresholds, labels score.Labels) []Row {
	rows := make([]Row, 0, len(records))
	for _, r := range records {
		pct := score.ToPercentage(r.MatchScore())
		row := Row{
			ID:       r.RecordID(),
			Title:    r.StringField(cols.Title),
			Subtitle: r.StringField(cols.Subtitle),
			Score:    pct,
			Percent:  pct.String(),
			Label:    notScoredLabel,
		}
		if s := r.MatchScore(); s != nil {
			row.Tier = score.BucketOf(*s, th)
			row.Label = labels.Label(row.Tier)
		}
		rows = append(rows, row)
	}
	return rows
}
