package filtering

import (
	"slices"

	"go.uber.org/zap"
)

// Record is a scored item the pipeline can filter and rank.
type Record interface {
	RecordID() int
	// MatchScore returns nil for unscored records.
	MatchScore() *float64
	// StringField returns "" for unknown or missing fields.
	StringField(name string) string
}

// activeReporter is implemented by records that can be closed or archived.
// Records without it are treated as active.
type activeReporter interface {
	IsActive() bool
}

// Filter represents a single filtering step applied to records.
type Filter[R Record] interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Apply(records []R) ([]R, Step)
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

// statusProvider is implemented by filters that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// Filtering runs steps sequentially and ranks what is left.
// It keeps no state between runs and is safe for concurrent use.
type Filtering[R Record] struct {
	steps  []Filter[R]
	sort   SortKey
	logger *zap.Logger
}

func New[R Record](steps []Filter[R], sort SortKey, logger *zap.Logger) *Filtering[R] {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sort == "" {
		sort = SortByScore
	}

	return &Filtering[R]{
		steps:  steps,
		sort:   sort,
		logger: logger,
	}
}

// Run returns a new slice with the records kept by every enabled step,
// ordered by the configured sort key. The input is never modified.
func (f *Filtering[R]) Run(records []R) []R {
	current := make([]R, len(records))
	copy(current, records)

	for _, step := range f.steps {
		if !step.IsEnabled() {
			f.logger.Debug("filter disabled", zap.String("name", step.Name()))
			continue
		}

		next, info := step.Apply(current)

		f.logger.Info("filter step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)

		current = next
	}

	sortRecords(current, f.sort)
	return current
}

// Describe returns status entries for the configured steps.
func (f *Filtering[R]) Describe() []Status {
	return Describe(f.steps)
}

// Describe returns status entries for the provided filters.
func Describe[R Record](steps []Filter[R]) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}

// DisableByName marks a filter with the provided name as disabled while keeping it in the list.
func DisableByName[R Record](steps []Filter[R], name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// FilterAndSort applies every non-empty criterion and ranks the result.
func FilterAndSort[R Record](records []R, c Criteria, opts Options) []R {
	opts = opts.withDefaults()
	return New(FromCriteria[R](c, opts), opts.Sort, nil).Run(records)
}

// Sort returns a ranked copy of records.
func Sort[R Record](records []R, key SortKey) []R {
	sorted := slices.Clone(records)
	if sorted == nil {
		sorted = []R{}
	}
	sortRecords(sorted, key)
	return sorted
}
