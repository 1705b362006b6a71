// Package score holds helpers for match scores returned by the remote matching service.
package score

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// Tier is a quality bucket derived from a match score.
type Tier string

const (
	Excellent    Tier = "EXCELLENT"
	Good         Tier = "GOOD"
	Fair         Tier = "FAIR"
	Low          Tier = "LOW"
	Unclassified Tier = "UNCLASSIFIED"
)

// Threshold maps the lowest score of a bucket to its tier.
type Threshold struct {
	Min  float64
	Tier Tier
}

// Thresholds must be ordered from the highest Min to the lowest.
type Thresholds []Threshold

// DefaultThresholds are used for both job and talent matching.
var DefaultThresholds = Thresholds{
	{Min: 0.9, Tier: Excellent},
	{Min: 0.8, Tier: Good},
	{Min: 0.7, Tier: Fair},
	{Min: 0.6, Tier: Low},
}

// Validate checks that every threshold lies in [0,1], has a tier and
// that the list is strictly descending.
func (th Thresholds) Validate() error {
	if len(th) == 0 {
		return errors.New("at least one threshold is required")
	}
	for i, t := range th {
		if t.Tier == "" {
			return fmt.Errorf("threshold %d: tier is required", i)
		}
		if t.Tier == Unclassified {
			return fmt.Errorf("threshold %d: tier %s is reserved", i, Unclassified)
		}
		if math.IsNaN(t.Min) || t.Min < 0 || t.Min > 1 {
			return fmt.Errorf("threshold %d (%s): min %v is out of [0,1]", i, t.Tier, t.Min)
		}
		if i > 0 && t.Min >= th[i-1].Min {
			return fmt.Errorf("threshold %d (%s): min %v must be lower than %v", i, t.Tier, t.Min, th[i-1].Min)
		}
	}
	return nil
}

// Sorted returns a copy ordered from the highest Min to the lowest.
func (th Thresholds) Sorted() Thresholds {
	sorted := slices.Clone(th)
	slices.SortStableFunc(sorted, func(a, b Threshold) int {
		switch {
		case a.Min > b.Min:
			return -1
		case a.Min < b.Min:
			return 1
		default:
			return 0
		}
	})
	return sorted
}

// Tiers returns the declared tiers in threshold order.
func (th Thresholds) Tiers() []Tier {
	tiers := make([]Tier, 0, len(th))
	for _, t := range th {
		tiers = append(tiers, t.Tier)
	}
	return tiers
}

// Clamp returns nil for an unscored value and a fresh pointer to the
// value limited to [0,1] otherwise. NaN is treated as 0.
func Clamp(s *float64) *float64 {
	if s == nil {
		return nil
	}
	v := clamp(*s)
	return &v
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// BucketOf returns the first tier whose Min is not above s.
// Thresholds are walked high to low, so a score equal to a boundary
// lands in the higher bucket.
func BucketOf(s float64, th Thresholds) Tier {
	s = clamp(s)
	for _, t := range th {
		if s >= t.Min {
			return t.Tier
		}
	}
	return Unclassified
}

// Percentage is a display value. Known is false for unscored records so
// that "no score" is never rendered as a 0% match.
type Percentage struct {
	Value int
	Known bool
}

func (p Percentage) String() string {
	if !p.Known {
		return "n/a"
	}
	return fmt.Sprintf("%d%%", p.Value)
}

// ToPercentage rounds a clamped score to a whole percent.
func ToPercentage(s *float64) Percentage {
	if s == nil {
		return Percentage{}
	}
	return Percentage{Value: int(math.Round(clamp(*s) * 100)), Known: true}
}

// MeetsFloor reports whether a known score reaches floor. Unscored values never do.
func MeetsFloor(s *float64, floor float64) bool {
	if s == nil {
		return false
	}
	return clamp(*s) >= floor
}

// Labels maps tiers to human-facing names for one domain.
type Labels map[Tier]string

var (
	// JobLabels are shown when ranking postings for a resume.
	JobLabels = Labels{
		Excellent:    "Excellent match",
		Good:         "Good match",
		Fair:         "Fair match",
		Low:          "Low match",
		Unclassified: "Below threshold",
	}
	// TalentLabels are shown when ranking resumes for a posting.
	TalentLabels = Labels{
		Excellent:    "Top candidate",
		Good:         "Strong candidate",
		Fair:         "Possible candidate",
		Low:          "Weak candidate",
		Unclassified: "Not a fit",
	}
)

// Label falls back to the tier tag when no label is defined.
func (l Labels) Label(t Tier) string {
	if label, ok := l[t]; ok {
		return label
	}
	return string(t)
}
