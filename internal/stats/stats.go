// Package stats computes aggregate statistics over scored records.
package stats

import (
	"github.com/spigell/jobmatch/internal/score"
)

// Scored is anything carrying an optional match score.
type Scored interface {
	MatchScore() *float64
}

// Summary aggregates a list of scored records.
//
// TotalCount always equals the sum of BucketCounts plus UnscoredCount.
// Scored records below the lowest threshold are counted under
// score.Unclassified. When no record is scored, AverageScore, MaxScore
// and MinScore are all 0.
type Summary struct {
	TotalCount    int                `json:"total_count" yaml:"total_count"`
	ScoredCount   int                `json:"scored_count" yaml:"scored_count"`
	UnscoredCount int                `json:"unscored_count" yaml:"unscored_count"`
	AverageScore  float64            `json:"average_score" yaml:"average_score"`
	MaxScore      float64            `json:"max_score" yaml:"max_score"`
	MinScore      float64            `json:"min_score" yaml:"min_score"`
	BucketCounts  map[score.Tier]int `json:"bucket_counts" yaml:"bucket_counts"`
}

// Summarize walks records once. Scores are clamped before use; unscored
// records count toward TotalCount only. Every tier declared in th starts at 0.
func Summarize[R Scored](records []R, th score.Thresholds) Summary {
	summary := Summary{
		TotalCount:   len(records),
		BucketCounts: make(map[score.Tier]int, len(th)+1),
	}
	for _, tier := range th.Tiers() {
		summary.BucketCounts[tier] = 0
	}

	var sum float64
	for _, r := range records {
		s := score.Clamp(r.MatchScore())
		if s == nil {
			summary.UnscoredCount++
			continue
		}

		v := *s
		if summary.ScoredCount == 0 || v > summary.MaxScore {
			summary.MaxScore = v
		}
		if summary.ScoredCount == 0 || v < summary.MinScore {
			summary.MinScore = v
		}
		summary.ScoredCount++
		sum += v

		summary.BucketCounts[score.BucketOf(v, th)]++
	}

	if summary.ScoredCount > 0 {
		// Rounding can push the mean just outside [min,max].
		summary.AverageScore = min(max(sum/float64(summary.ScoredCount), summary.MinScore), summary.MaxScore)
	}

	return summary
}

// Count returns the number of records in tier.
func (s Summary) Count(tier score.Tier) int {
	return s.BucketCounts[tier]
}

// Percentages returns average, max and min as display values. They are
// unknown when nothing was scored.
func (s Summary) Percentages() (avg, high, low score.Percentage) {
	if s.ScoredCount == 0 {
		return score.Percentage{}, score.Percentage{}, score.Percentage{}
	}
	return score.ToPercentage(&s.AverageScore), score.ToPercentage(&s.MaxScore), score.ToPercentage(&s.MinScore)
}
