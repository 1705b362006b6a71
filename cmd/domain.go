package cmd

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/spigell/jobmatch/internal/filtering"
	"github.com/spigell/jobmatch/internal/jobs"
	"github.com/spigell/jobmatch/internal/logger"
	"github.com/spigell/jobmatch/internal/report"
	"github.com/spigell/jobmatch/internal/score"
	"github.com/spigell/jobmatch/internal/stats"
)

// domain describes how one record kind of the dump is searched and shown.
type domain[R filtering.Record] struct {
	name    string
	records []R
	search  []string
	columns report.Columns
	labels  score.Labels
	// hasStatus is set for records carrying a status tag.
	hasStatus bool
}

func postingsDomain(d *jobs.Dump) domain[*jobs.Posting] {
	return domain[*jobs.Posting]{
		name:    DomainPostings,
		records: d.Postings,
		search:  jobs.PostingSearchFields,
		columns: report.Columns{Title: jobs.FieldTitle, Subtitle: jobs.FieldCompany},
		labels:  score.JobLabels,
	}
}

func matchesDomain(d *jobs.Dump) domain[*jobs.Match] {
	return domain[*jobs.Match]{
		name:    DomainMatches,
		records: d.Matches,
		search:  jobs.MatchSearchFields,
		columns: report.Columns{Title: jobs.FieldTitle, Subtitle: jobs.FieldCompany},
		labels:  score.JobLabels,
	}
}

func resumesDomain(d *jobs.Dump) domain[*jobs.Resume] {
	return domain[*jobs.Resume]{
		name:    DomainResumes,
		records: d.Resumes,
		search:  jobs.ResumeSearchFields,
		columns: report.Columns{Title: jobs.FieldName, Subtitle: jobs.FieldTitle},
		labels:  score.TalentLabels,
	}
}

func applicationsDomain(d *jobs.Dump) domain[*jobs.Application] {
	return domain[*jobs.Application]{
		name:      DomainApplications,
		records:   d.Applications,
		search:    jobs.ApplicationSearchFields,
		columns:   report.Columns{Title: jobs.FieldName, Subtitle: jobs.FieldTitle},
		labels:    score.TalentLabels,
		hasStatus: true,
	}
}

func (d domain[R]) options(c *Config) filtering.Options {
	return filtering.Options{
		SearchFields: searchFieldsOr(c.SearchFields, d.search),
		StatusField:  jobs.FieldStatus,
		Sort:         c.SortKey(),
	}
}

// rank filters and orders the domain records with criteria.
func (d domain[R]) rank(s *session, criteria filtering.Criteria) []R {
	zl := logger.WithFields(s.logger, zap.String(logger.FieldDomain, d.name))
	opts := d.options(s.config)

	steps := filtering.FromCriteria[R](criteria, opts)
	for _, st := range filtering.Describe(steps) {
		zl.Debug("filter configured",
			zap.String("name", st.Name),
			zap.Bool("enabled", st.Enabled),
			zap.String("reason", st.Reason),
			zap.Any("details", st.Details),
		)
	}

	zl.Info("ranking records", append(criteria.LogFields(), zap.Int("count", len(d.records)))...)
	return filtering.New(steps, opts.Sort, zl).Run(d.records)
}

type rankOutput struct {
	Domain  string        `json:"domain" yaml:"domain"`
	Summary stats.Summary `json:"summary" yaml:"summary"`
	Rows    []report.Row  `json:"rows" yaml:"rows"`
}

func (d domain[R]) render(s *session, out io.Writer, records []R) error {
	th := s.config.ScoreThresholds()
	summary := stats.Summarize(records, th)
	rows := report.Rows(records, d.columns, th, d.labels)

	if format := s.config.Format(); format != report.FormatTable {
		return report.Encode(out, format, rankOutput{Domain: d.name, Summary: summary, Rows: rows})
	}

	table := report.NewTable(out, s.config.NoColor)
	if err := table.Summary(fmt.Sprintf("SUMMARY (%s)", d.name), summary, th, d.labels); err != nil {
		return err
	}
	return table.Rows(rows)
}
