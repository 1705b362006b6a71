package filtering

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/jobmatch/internal/keyword"
	"github.com/spigell/jobmatch/internal/logger"
	"github.com/spigell/jobmatch/internal/score"
)

const (
	DefaultLocationField   = "location"
	DefaultExperienceField = "experience"
	DefaultStatusField     = "status"

	noConstraintMsg = "no constraint"
)

// Criteria is the filter selection owned by the caller. Empty fields
// put no constraint on their dimension; the rest are AND-combined.
type Criteria struct {
	Keyword         string
	Location        string
	ExperienceLevel string
	Status          string
	ActiveOnly      bool
	// MinScore drops unscored records and those below the floor. Nil disables it.
	MinScore   *float64
	ExcludeIDs []int
}

// IsEmpty reports whether no criterion is set.
func (c Criteria) IsEmpty() bool {
	return strings.TrimSpace(c.Keyword) == "" &&
		strings.TrimSpace(c.Location) == "" &&
		strings.TrimSpace(c.ExperienceLevel) == "" &&
		strings.TrimSpace(c.Status) == "" &&
		!c.ActiveOnly &&
		c.MinScore == nil &&
		len(c.ExcludeIDs) == 0
}

// LogFields describes the non-empty criteria for structured logs.
func (c Criteria) LogFields() []zap.Field {
	fields := logger.StringFields(
		logger.StringField{Key: "keyword", Value: c.Keyword},
		logger.StringField{Key: "location", Value: c.Location},
		logger.StringField{Key: "experience", Value: c.ExperienceLevel},
		logger.StringField{Key: "status", Value: c.Status},
	)
	if c.ActiveOnly {
		fields = append(fields, zap.Bool("active_only", true))
	}
	if c.MinScore != nil {
		fields = append(fields, zap.Float64("min_score", *c.MinScore))
	}
	if len(c.ExcludeIDs) > 0 {
		fields = append(fields, zap.Ints("excluded_ids", c.ExcludeIDs))
	}
	return fields
}

// Options tells the pipeline which record fields back each criterion.
type Options struct {
	// SearchFields are concatenated for keyword matching.
	SearchFields    []string
	LocationField   string
	ExperienceField string
	StatusField     string
	Sort            SortKey
}

func (o Options) withDefaults() Options {
	if o.LocationField == "" {
		o.LocationField = DefaultLocationField
	}
	if o.ExperienceField == "" {
		o.ExperienceField = DefaultExperienceField
	}
	if o.StatusField == "" {
		o.StatusField = DefaultStatusField
	}
	if o.Sort == "" {
		o.Sort = SortByScore
	}
	return o
}

// FromCriteria builds one step per criterion. Criteria left empty
// produce disabled steps so Describe still lists them.
func FromCriteria[R Record](c Criteria, opts Options) []Filter[R] {
	opts = opts.withDefaults()

	steps := []Filter[R]{
		NewKeyword[R](c.Keyword, opts.SearchFields),
		NewContains[R]("location", opts.LocationField, c.Location),
		NewContains[R]("experience", opts.ExperienceField, c.ExperienceLevel),
		NewStatus[R](opts.StatusField, c.Status),
		NewActiveOnly[R](c.ActiveOnly),
		NewMinScore[R](c.MinScore),
		NewExcludedIDs[R](c.ExcludeIDs),
	}
	return steps
}

type predicateFilter[R Record] struct {
	name     string
	disabled bool
	reason   string
	details  map[string]string
	keep     func(R) bool
}

func newPredicate[R Record](name string, details map[string]string, keep func(R) bool) *predicateFilter[R] {
	return &predicateFilter[R]{name: name, details: details, keep: keep}
}

func (f *predicateFilter[R]) Name() string { return f.name }

func (f *predicateFilter[R]) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *predicateFilter[R]) IsEnabled() bool { return !f.disabled }

func (f *predicateFilter[R]) Apply(records []R) ([]R, Step) {
	kept := make([]R, 0, len(records))
	for _, r := range records {
		if f.keep(r) {
			kept = append(kept, r)
		}
	}

	return kept, Step{Initial: len(records), Dropped: len(records) - len(kept), Left: len(kept)}
}

func (f *predicateFilter[R]) Status() Status {
	return Status{Name: f.name, Enabled: f.IsEnabled(), Reason: f.reason, Details: f.details}
}

// NewKeyword keeps records whose fields contain every token of query.
func NewKeyword[R Record](query string, fields []string) Filter[R] {
	query = strings.TrimSpace(query)
	f := newPredicate(
		"keyword",
		map[string]string{"query": query, "fields": strings.Join(fields, ",")},
		func(r R) bool {
			values := make([]string, 0, len(fields))
			for _, name := range fields {
				values = append(values, r.StringField(name))
			}
			return keyword.Matches(query, values...)
		},
	)
	if query == "" {
		f.Disable(noConstraintMsg)
	}
	return f
}

// NewContains keeps records whose field contains value, ignoring case.
func NewContains[R Record](name, field, value string) Filter[R] {
	needle := strings.ToLower(strings.TrimSpace(value))
	f := newPredicate(
		name,
		map[string]string{"field": field, "value": needle},
		func(r R) bool {
			return strings.Contains(strings.ToLower(r.StringField(field)), needle)
		},
	)
	if needle == "" {
		f.Disable(noConstraintMsg)
	}
	return f
}

// NewStatus keeps records whose status equals status exactly.
func NewStatus[R Record](field, status string) Filter[R] {
	status = strings.TrimSpace(status)
	f := newPredicate(
		"status",
		map[string]string{"field": field, "status": status},
		func(r R) bool {
			return r.StringField(field) == status
		},
	)
	if status == "" {
		f.Disable(noConstraintMsg)
	}
	return f
}

// NewActiveOnly drops records reporting themselves as inactive.
func NewActiveOnly[R Record](enabled bool) Filter[R] {
	f := newPredicate("active_only", nil, func(r R) bool {
		if reporter, ok := any(r).(activeReporter); ok {
			return reporter.IsActive()
		}
		return true
	})
	if !enabled {
		f.Disable(noConstraintMsg)
	}
	return f
}

// NewMinScore keeps scored records at or above floor.
func NewMinScore[R Record](floor *float64) Filter[R] {
	details := map[string]string{}
	var threshold float64
	if floor != nil {
		threshold = *score.Clamp(floor)
		details["minimum_score"] = fmt.Sprintf("%.2f", threshold)
	}

	f := newPredicate("min_score", details, func(r R) bool {
		return score.MeetsFloor(r.MatchScore(), threshold)
	})
	if floor == nil {
		f.Disable(noConstraintMsg)
	}
	return f
}

// NewExcludedIDs drops records listed in ids, e.g. from an exclude file.
func NewExcludedIDs[R Record](ids []int) Filter[R] {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	f := newPredicate("excluded_ids", map[string]string{"count": strconv.Itoa(len(set))}, func(r R) bool {
		_, excluded := set[r.RecordID()]
		return !excluded
	})
	if len(set) == 0 {
		f.Disable(noConstraintMsg)
	}
	return f
}
