package stats

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/jobmatch/internal/score"
)

type scored struct {
	id    int
	value *float64
}

func (s scored) MatchScore() *float64 { return s.value }

func ptr(v float64) *float64 { return &v }

func TestSummarize_EndToEnd(t *testing.T) {
	records := []scored{
		{id: 1, value: ptr(0.95)},
		{id: 2},
		{id: 3, value: ptr(0.65)},
	}

	summary := Summarize(records, score.DefaultThresholds)

	assert.Equal(t, 3, summary.TotalCount)
	assert.Equal(t, 2, summary.ScoredCount)
	assert.Equal(t, 1, summary.UnscoredCount)
	assert.InDelta(t, 0.8, summary.AverageScore, 1e-9)
	assert.InDelta(t, 0.95, summary.MaxScore, 1e-9)
	assert.InDelta(t, 0.65, summary.MinScore, 1e-9)
	assert.Equal(t, map[score.Tier]int{
		score.Excellent: 1,
		score.Good:      0,
		score.Fair:      0,
		score.Low:       1,
	}, summary.BucketCounts)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize([]scored{}, score.DefaultThresholds)

	assert.Equal(t, 0, summary.TotalCount)
	assert.Zero(t, summary.AverageScore)
	assert.Zero(t, summary.MaxScore)
	assert.Zero(t, summary.MinScore)

	avg, _, _ := summary.Percentages()
	assert.False(t, avg.Known)
}

func TestSummarize_OnlyUnscored(t *testing.T) {
	summary := Summarize([]scored{{id: 1}, {id: 2}}, score.DefaultThresholds)

	assert.Equal(t, 2, summary.TotalCount)
	assert.Equal(t, 2, summary.UnscoredCount)
	assert.Zero(t, summary.AverageScore)
	assert.Zero(t, summary.MaxScore)
	assert.Zero(t, summary.MinScore)
}

func TestSummarize_ClampsAndCountsUnclassified(t *testing.T) {
	records := []scored{
		{value: ptr(1.5)},
		{value: ptr(-0.4)},
		{value: ptr(0.3)},
	}

	summary := Summarize(records, score.DefaultThresholds)

	assert.InDelta(t, 1.0, summary.MaxScore, 1e-9)
	assert.InDelta(t, 0.0, summary.MinScore, 1e-9)
	assert.Equal(t, 1, summary.Count(score.Excellent))
	assert.Equal(t, 2, summary.Count(score.Unclassified))
}

func TestSummarize_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		n := rng.Intn(30)
		records := make([]scored, n)
		for j := range records {
			if rng.Intn(4) == 0 {
				continue
			}
			records[j].value = ptr(rng.Float64()*1.4 - 0.2)
		}

		summary := Summarize(records, score.DefaultThresholds)

		buckets := 0
		for _, c := range summary.BucketCounts {
			buckets += c
		}
		require.Equal(t, summary.TotalCount, buckets+summary.UnscoredCount)
		require.Equal(t, n, summary.TotalCount)

		if summary.ScoredCount > 0 {
			require.LessOrEqual(t, summary.MinScore, summary.AverageScore)
			require.LessOrEqual(t, summary.AverageScore, summary.MaxScore)
		} else {
			require.Zero(t, summary.AverageScore)
			require.Zero(t, summary.MinScore)
			require.Zero(t, summary.MaxScore)
		}
	}
}

func TestSummarize_AverageStaysWithinRange(t *testing.T) {
	for _, v := range []float64{0.1, 0.3, 0.7, 1.0 / 3} {
		records := []scored{{value: ptr(v)}, {value: ptr(v)}, {value: ptr(v)}}

		summary := Summarize(records, score.DefaultThresholds)

		assert.Equal(t, summary.MinScore, summary.MaxScore)
		assert.Equal(t, summary.MaxScore, summary.AverageScore, "average of equal scores %v", v)
	}
}

func TestSummarize_DoesNotMutateInput(t *testing.T) {
	records := []scored{{id: 1, value: ptr(1.7)}, {id: 2, value: ptr(0.5)}}

	_ = Summarize(records, score.DefaultThresholds)

	assert.Equal(t, 1.7, *records[0].value)
	assert.Equal(t, 1, records[0].id)
}

func TestSummary_Percentages(t *testing.T) {
	summary := Summarize([]scored{{value: ptr(0.876)}, {value: ptr(0.5)}}, score.DefaultThresholds)

	avg, high, low := summary.Percentages()
	assert.Equal(t, score.Percentage{Value: 69, Known: true}, avg)
	assert.Equal(t, score.Percentage{Value: 88, Known: true}, high)
	assert.Equal(t, score.Percentage{Value: 50, Known: true}, low)
}
