package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/spigell/jobmatch/internal/score"
	"github.com/spigell/jobmatch/internal/stats"
	"github.com/spigell/jobmatch/internal/tally"
	"github.com/spigell/jobmatch/internal/util"
)

const (
	idWidth       = 8
	scoreWidth    = 6
	titleWidth    = 40
	subtitleWidth = 24
	labelWidth    = 18
)

// Table writes aligned plain-text tables, coloring rows by tier.
type Table struct {
	w       io.Writer
	noColor bool
}

func NewTable(w io.Writer, noColor bool) *Table {
	return &Table{w: w, noColor: noColor}
}

func (t *Table) paint(tier score.Tier) *color.Color {
	var c *color.Color
	switch tier {
	case score.Excellent:
		c = color.New(color.FgGreen, color.Bold)
	case score.Good:
		c = color.New(color.FgGreen)
	case score.Fair:
		c = color.New(color.FgYellow)
	case score.Low:
		c = color.New(color.FgRed)
	default:
		c = color.New(color.Faint)
	}
	if t.noColor {
		c.DisableColor()
	}
	return c
}

func (t *Table) heading(title string) error {
	c := color.New(color.FgCyan, color.Bold)
	if t.noColor {
		c.DisableColor()
	}
	_, err := c.Fprintln(t.w, title)
	return err
}

// Rows renders ranked rows.
func (t *Table) Rows(rows []Row) error {
	header := util.Pad("ID", idWidth) + " " +
		util.Pad("SCORE", scoreWidth) + " " +
		util.Pad("MATCH", labelWidth) + " " +
		util.Pad("TITLE", titleWidth) + " " +
		"COMPANY"
	if err := t.heading(header); err != nil {
		return err
	}

	for _, r := range rows {
		line := util.Pad(strconv.Itoa(r.ID), idWidth) + " " +
			util.Pad(r.Percent, scoreWidth) + " " +
			util.Pad(r.Label, labelWidth) + " " +
			util.Pad(util.Truncate(r.Title, titleWidth), titleWidth+3) + " " +
			util.Truncate(r.Subtitle, subtitleWidth)
		if _, err := t.paint(r.Tier).Fprintln(t.w, line); err != nil {
			return err
		}
	}
	return nil
}

// Summary renders aggregate statistics with one line per tier.
func (t *Table) Summary(title string, s stats.Summary, th score.Thresholds, labels score.Labels) error {
	if err := t.heading(title); err != nil {
		return err
	}

	avg, high, low := s.Percentages()
	if _, err := fmt.Fprintf(t.w, "total %d, scored %d, unscored %d\naverage %s, best %s, worst %s\n",
		s.TotalCount, s.ScoredCount, s.UnscoredCount, avg, high, low); err != nil {
		return err
	}

	for _, tier := range SummaryTiers(s, th) {
		line := fmt.Sprintf("  %s %d", util.Pad(labels.Label(tier), labelWidth), s.Count(tier))
		if _, err := t.paint(tier).Fprintln(t.w, line); err != nil {
			return err
		}
	}
	return nil
}

// Tally renders status counts ordered by category weight. Other is shown
// only when some status was not declared.
func (t *Table) Tally(title string, r tally.Result[string], cats tally.Categories) error {
	if err := t.heading(title); err != nil {
		return err
	}

	for _, cat := range cats.Sorted() {
		if _, err := fmt.Fprintf(t.w, "  %s %d\n", util.Pad(cat.Label, labelWidth), r.Count(cat.Key)); err != nil {
			return err
		}
	}
	if r.Other > 0 {
		if _, err := fmt.Fprintf(t.w, "  %s %d\n", util.Pad(tally.OtherLabel, labelWidth), r.Other); err != nil {
			return err
		}
	}
	return nil
}

// SummaryTiers lists the tiers of s in threshold order, with Unclassified
// appended when it holds records.
func SummaryTiers(s stats.Summary, th score.Thresholds) []score.Tier {
	tiers := th.Tiers()
	if s.Count(score.Unclassified) > 0 {
		tiers = append(tiers, score.Unclassified)
	}
	return tiers
}
