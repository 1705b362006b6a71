package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/jobmatch/internal/filtering"
	"github.com/spigell/jobmatch/internal/jobs"
	"github.com/spigell/jobmatch/internal/logger"
	"github.com/spigell/jobmatch/internal/report"
	"github.com/spigell/jobmatch/internal/stats"
	"github.com/spigell/jobmatch/internal/tally"
	"github.com/spigell/jobmatch/internal/util"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize applications per status",
	Run: func(cmd *cobra.Command, _ []string) {
		zl, closeLog := startLogger()
		defer closeLog()

		s, err := newSession(zl)
		if err != nil {
			fatal(zl, "starting", err)
		}

		result, err := buildReport(cmd.Context(), s)
		if err != nil {
			fatal(zl, "building report", err)
		}

		if err := renderReport(s, cmd.OutOrStdout(), result); err != nil {
			fatal(zl, "rendering report", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

// statusView is the ranked slice of applications sharing one status.
type statusView struct {
	Key     string        `json:"key" yaml:"key"`
	Label   string        `json:"label" yaml:"label"`
	Summary stats.Summary `json:"summary" yaml:"summary"`
	Rows    []report.Row  `json:"rows" yaml:"rows"`
}

type applicationsReport struct {
	Overall    stats.Summary  `json:"overall" yaml:"overall"`
	Statuses   map[string]int `json:"statuses" yaml:"statuses"`
	Other      int            `json:"other" yaml:"other"`
	PerPosting map[int]int    `json:"per_posting" yaml:"per_posting"`
	Views      []statusView   `json:"views" yaml:"views"`

	statusCounts tally.Result[string]
}

// buildReport filters applications once with the current selection, less
// its status, then builds one view per declared status concurrently.
func buildReport(ctx context.Context, s *session) (*applicationsReport, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	d := applicationsDomain(s.dump)
	th := s.config.ScoreThresholds()
	cats := s.config.Categories().Sorted()

	base := s.criteria()
	base.Status = ""
	records := d.rank(s, base)

	counts := jobs.ApplicationStatuses(records, cats)
	result := &applicationsReport{
		Overall:      stats.Summarize(records, th),
		Statuses:     counts.Counts,
		Other:        counts.Other,
		PerPosting:   jobs.ApplicationsPerPosting(s.dump.Postings, records).Counts,
		Views:        make([]statusView, len(cats)),
		statusCounts: counts,
	}

	opts := d.options(s.config)
	g, gCtx := errgroup.WithContext(ctx)
	for i, cat := range cats {
		i, cat := i, cat
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			viewLog := logger.WithView(s.logger, d.name, "status="+cat.Key)
			steps := []filtering.Filter[*jobs.Application]{filtering.NewStatus[*jobs.Application](jobs.FieldStatus, cat.Key)}
			view := filtering.New(steps, opts.Sort, viewLog).Run(records)

			summary := stats.Summarize(view, th)
			viewLog.Debug("status view ready", zap.Int("count", summary.TotalCount))

			// Each goroutine owns its index.
			result.Views[i] = statusView{
				Key:     cat.Key,
				Label:   cat.Label,
				Summary: summary,
				Rows:    report.Rows(view, d.columns, th, d.labels),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func renderReport(s *session, out io.Writer, r *applicationsReport) error {
	if format := s.config.Format(); format != report.FormatTable {
		return report.Encode(out, format, r)
	}

	th := s.config.ScoreThresholds()
	labels := applicationsDomain(s.dump).labels
	table := report.NewTable(out, s.config.NoColor)

	if err := table.Summary("ALL APPLICATIONS", r.Overall, th, labels); err != nil {
		return err
	}
	if err := table.Tally("STATUSES", r.statusCounts, s.config.Categories()); err != nil {
		return err
	}

	if len(s.dump.Postings) > 0 {
		if _, err := fmt.Fprintln(out, "APPLICATIONS PER POSTING"); err != nil {
			return err
		}
		for _, p := range s.dump.Postings {
			line := fmt.Sprintf("  %s %d", util.Pad(util.Truncate(fmt.Sprintf("%d %s", p.ID, p.Title), 40), 43), r.PerPosting[p.ID])
			if _, err := fmt.Fprintln(out, line); err != nil {
				return err
			}
		}
	}

	for _, v := range r.Views {
		if len(v.Rows) == 0 {
			continue
		}
		if err := table.Summary(fmt.Sprintf("%s (%d)", v.Label, v.Summary.TotalCount), v.Summary, th, labels); err != nil {
			return err
		}
		if err := table.Rows(v.Rows); err != nil {
			return err
		}
	}
	return nil
}
