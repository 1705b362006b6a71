package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/jobmatch/internal/jobs"
	"github.com/spigell/jobmatch/internal/score"
	"github.com/spigell/jobmatch/internal/stats"
	"github.com/spigell/jobmatch/internal/tally"
)

func ptr(v float64) *float64 { return &v }

var cols = Columns{Title: jobs.FieldTitle, Subtitle: jobs.FieldCompany}

func samplePostings() []*jobs.Posting {
	return []*jobs.Posting{
		{ID: 1, Title: "iOS Developer", Company: "Acme", Score: ptr(0.95)},
		{ID: 3, Title: "Android Developer", Company: "Initech", Score: ptr(0.65)},
		{ID: 2, Title: "Go Developer", Company: "Globex"},
		{ID: 4, Title: "QA", Score: ptr(0.2)},
	}
}

func TestRows(t *testing.T) {
	rows := Rows(samplePostings(), cols, score.DefaultThresholds, score.JobLabels)
	require.Len(t, rows, 4)

	assert.Equal(t, []int{1, 3, 2, 4}, []int{rows[0].ID, rows[1].ID, rows[2].ID, rows[3].ID})

	assert.Equal(t, "95%", rows[0].Percent)
	assert.Equal(t, score.Excellent, rows[0].Tier)
	assert.Equal(t, "Excellent match", rows[0].Label)
	assert.Equal(t, "Acme", rows[0].Subtitle)

	assert.Equal(t, "Low match", rows[1].Label)

	assert.Equal(t, "n/a", rows[2].Percent)
	assert.False(t, rows[2].Score.Known)
	assert.Empty(t, rows[2].Tier)
	assert.Equal(t, notScoredLabel, rows[2].Label)

	assert.Equal(t, score.Unclassified, rows[3].Tier)
	assert.Equal(t, "Below threshold", rows[3].Label)
}

func TestRowsTalentLabels(t *testing.T) {
	resumes := []*jobs.Resume{{ID: 5, Name: "Kim", Title: "Backend", Score: ptr(0.82)}}

	rows := Rows(resumes, Columns{Title: jobs.FieldName, Subtitle: jobs.FieldTitle}, score.DefaultThresholds, score.TalentLabels)
	require.Len(t, rows, 1)
	assert.Equal(t, "Kim", rows[0].Title)
	assert.Equal(t, "Strong candidate", rows[0].Label)
}

func TestTableRows(t *testing.T) {
	var buf bytes.Buffer
	rows := Rows(samplePostings(), cols, score.DefaultThresholds, score.JobLabels)

	require.NoError(t, NewTable(&buf, true).Rows(rows))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "95%")
	assert.Contains(t, lines[1], "iOS Developer")
	assert.Contains(t, lines[3], "n/a")
	assert.NotContains(t, buf.String(), "\x1b[", "colors must be disabled")
}

func TestTableSummary(t *testing.T) {
	var buf bytes.Buffer
	summary := stats.Summarize(samplePostings(), score.DefaultThresholds)

	require.NoError(t, NewTable(&buf, true).Summary("SUMMARY", summary, score.DefaultThresholds, score.JobLabels))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "SUMMARY\n"))
	assert.Contains(t, out, "total 4, scored 3, unscored 1")
	assert.Contains(t, out, "average 60%, best 95%, worst 20%")
	assert.Contains(t, out, "Excellent match")
	assert.Contains(t, out, "Below threshold")
}

func TestSummaryTiers(t *testing.T) {
	summary := stats.Summarize([]*jobs.Posting{{ID: 1, Score: ptr(0.95)}}, score.DefaultThresholds)
	assert.Equal(t, score.DefaultThresholds.Tiers(), SummaryTiers(summary, score.DefaultThresholds))

	summary = stats.Summarize([]*jobs.Posting{{ID: 1, Score: ptr(0.1)}}, score.DefaultThresholds)
	assert.Equal(t, score.Unclassified, SummaryTiers(summary, score.DefaultThresholds)[4])
}

func TestTableTally(t *testing.T) {
	var buf bytes.Buffer
	applications := []*jobs.Application{
		{ID: 1, Status: tally.StatusRejected},
		{ID: 2, Status: tally.StatusPending},
		{ID: 3, Status: "ARCHIVED"},
	}
	result := jobs.ApplicationStatuses(applications, tally.ApplicationStatuses)

	require.NoError(t, NewTable(&buf, true).Tally("STATUS", result, tally.ApplicationStatuses))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "STATUS", lines[0])
	assert.Contains(t, lines[1], "Pending")
	assert.Contains(t, lines[4], "Rejected")
	assert.Contains(t, lines[5], tally.OtherLabel)
	assert.True(t, strings.HasSuffix(lines[5], " 1"))
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]Format{"": FormatTable, "JSON": FormatJSON, " yaml ": FormatYAML} {
		got, err := ParseFormat(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	summary := stats.Summarize(samplePostings(), score.DefaultThresholds)

	var js bytes.Buffer
	require.NoError(t, Encode(&js, FormatJSON, summary))
	assert.Contains(t, js.String(), `"total_count": 4`)

	var ym bytes.Buffer
	require.NoError(t, Encode(&ym, FormatYAML, summary))
	assert.Contains(t, ym.String(), "total_count: 4")
	assert.Contains(t, ym.String(), "EXCELLENT: 1")

	assert.Error(t, Encode(&js, FormatTable, summary))
}
