package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/jobmatch/internal/filtering"
	"github.com/spigell/jobmatch/internal/report"
	"github.com/spigell/jobmatch/internal/score"
	"github.com/spigell/jobmatch/internal/tally"
)

func floatPtr(v float64) *float64 { return &v }

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{name: "minimal", config: Config{Input: "dump.json"}},
		{name: "input required", config: Config{}, wantErr: "Config.Input is required"},
		{name: "unknown domain", config: Config{Input: "d", Domain: "companies"}, wantErr: "oneof"},
		{name: "unknown sort", config: Config{Input: "d", Sort: "salary"}, wantErr: "Config.Sort"},
		{name: "unknown output", config: Config{Input: "d", Output: "xml"}, wantErr: "Config.Output"},
		{
			name:    "min score above one",
			config:  Config{Input: "d", Filter: &FilterConfig{MinimumScore: floatPtr(1.5)}},
			wantErr: "MinimumScore",
		},
		{
			name:   "min score zero is a real floor",
			config: Config{Input: "d", Filter: &FilterConfig{MinimumScore: floatPtr(0)}},
		},
		{
			name:    "threshold without tier",
			config:  Config{Input: "d", Thresholds: []ThresholdConfig{{Min: 0.5}}},
			wantErr: "Tier is required",
		},
		{
			name:    "duplicate threshold",
			config:  Config{Input: "d", Thresholds: []ThresholdConfig{{Min: 0.5, Tier: "good"}, {Min: 0.5, Tier: "fair"}}},
			wantErr: "thresholds",
		},
		{
			name:    "reserved tier",
			config:  Config{Input: "d", Thresholds: []ThresholdConfig{{Min: 0.5, Tier: "unclassified"}}},
			wantErr: "reserved",
		},
		{
			name:    "duplicate status",
			config:  Config{Input: "d", Statuses: []StatusConfig{{Key: "NEW", Label: "New"}, {Key: "NEW", Label: "Again"}}},
			wantErr: "declared twice",
		},
		{
			name:    "status without label",
			config:  Config{Input: "d", Statuses: []StatusConfig{{Key: "NEW"}}},
			wantErr: "Label is required",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigScoreThresholds(t *testing.T) {
	assert.Equal(t, score.DefaultThresholds, (&Config{}).ScoreThresholds())

	c := &Config{Thresholds: []ThresholdConfig{{Min: 0.5, Tier: "fair"}, {Min: 0.75, Tier: " Excellent "}}}
	want := score.Thresholds{{Min: 0.75, Tier: score.Excellent}, {Min: 0.5, Tier: score.Fair}}
	assert.Equal(t, want, c.ScoreThresholds())
	assert.NoError(t, c.ScoreThresholds().Validate())
}

func TestConfigCategories(t *testing.T) {
	assert.Equal(t, tally.ApplicationStatuses, (&Config{}).Categories())

	c := &Config{Statuses: []StatusConfig{{Key: "HIRED", Label: "Hired", Weight: 2}, {Key: "NEW", Label: "New"}}}
	cats := c.Categories()
	assert.Equal(t, []string{"HIRED", "NEW"}, cats.Keys())
	assert.Equal(t, []string{"NEW", "HIRED"}, cats.Sorted().Keys())
}

func TestConfigCriteria(t *testing.T) {
	assert.True(t, (&Config{}).Criteria(nil).IsEmpty())

	c := &Config{Filter: &FilterConfig{
		Keyword:      "go #remote",
		Location:     "Seoul",
		Experience:   "senior",
		Status:       "PENDING",
		ActiveOnly:   true,
		MinimumScore: floatPtr(0.7),
	}}

	got := c.Criteria([]int{4})
	assert.Equal(t, filtering.Criteria{
		Keyword:         "go #remote",
		Location:        "Seoul",
		ExperienceLevel: "senior",
		Status:          "PENDING",
		ActiveOnly:      true,
		MinScore:        floatPtr(0.7),
		ExcludeIDs:      []int{4},
	}, got)
}

func TestConfigDefaults(t *testing.T) {
	c := &Config{}
	assert.Equal(t, DomainPostings, c.DomainName())
	assert.Equal(t, filtering.SortByScore, c.SortKey())
	assert.Equal(t, report.FormatTable, c.Format())

	c = &Config{Domain: DomainMatches, Sort: "id", Output: "yaml"}
	assert.Equal(t, DomainMatches, c.DomainName())
	assert.Equal(t, filtering.SortByID, c.SortKey())
	assert.Equal(t, report.FormatYAML, c.Format())
}

func TestSearchFieldsOr(t *testing.T) {
	defaults := []string{"title"}
	assert.Equal(t, defaults, searchFieldsOr(nil, defaults))
	assert.Equal(t, defaults, searchFieldsOr([]string{" ", ""}, defaults))
	assert.Equal(t, []string{"skills", "company"}, searchFieldsOr([]string{" Skills", "company"}, defaults))
}
