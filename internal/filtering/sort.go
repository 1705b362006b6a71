package filtering

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/spigell/jobmatch/internal/score"
)

// SortKey selects how the pipeline orders its output.
type SortKey string

const (
	// SortByScore orders by score, highest first, unscored records last.
	SortByScore SortKey = "score"
	// SortByID orders by ascending record id.
	SortByID SortKey = "id"
	// SortNone keeps the input order, for plain searches without ranking.
	SortNone SortKey = "none"
)

// ParseSortKey accepts "score", "id" and "none". An empty value means score.
func ParseSortKey(s string) (SortKey, error) {
	switch key := SortKey(strings.ToLower(strings.TrimSpace(s))); key {
	case "":
		return SortByScore, nil
	case SortByScore, SortByID, SortNone:
		return key, nil
	default:
		return "", fmt.Errorf("unknown sort key %q", s)
	}
}

// sortRecords sorts in place. Ties keep their relative order.
func sortRecords[R Record](records []R, key SortKey) {
	switch key {
	case SortNone:
		return
	case SortByID:
		slices.SortStableFunc(records, func(a, b R) int {
			return cmp.Compare(a.RecordID(), b.RecordID())
		})
	default:
		slices.SortStableFunc(records, compareScoreDesc[R])
	}
}

func compareScoreDesc[R Record](a, b R) int {
	sa, sb := a.MatchScore(), b.MatchScore()
	switch {
	case sa == nil && sb == nil:
		return 0
	case sa == nil:
		return 1
	case sb == nil:
		return -1
	default:
		return cmp.Compare(*score.Clamp(sb), *score.Clamp(sa))
	}
}
