package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/spigell/jobmatch/internal/filtering"
	"github.com/spigell/jobmatch/internal/report"
	"github.com/spigell/jobmatch/internal/score"
	"github.com/spigell/jobmatch/internal/tally"
)

// Record domains a dump can hold.
const (
	DomainPostings     = "postings"
	DomainMatches      = "matches"
	DomainResumes      = "resumes"
	DomainApplications = "applications"
)

type Config struct {
	Input        string            `mapstructure:"input" validate:"required"`
	ExcludeFile  string            `mapstructure:"exclude-file"`
	LogFile      string            `mapstructure:"log-file"`
	Output       string            `mapstructure:"output" validate:"omitempty,oneof=table json yaml"`
	NoColor      bool              `mapstructure:"no-color"`
	Domain       string            `mapstructure:"domain" validate:"omitempty,oneof=postings matches resumes applications"`
	Sort         string            `mapstructure:"sort" validate:"omitempty,oneof=score id none"`
	SearchFields []string          `mapstructure:"search-fields"`
	Filter       *FilterConfig     `mapstructure:"filter"`
	Thresholds   []ThresholdConfig `mapstructure:"thresholds" validate:"omitempty,dive"`
	Statuses     []StatusConfig    `mapstructure:"statuses" validate:"omitempty,dive"`
}

type FilterConfig struct {
	Keyword      string   `mapstructure:"keyword"`
	Location     string   `mapstructure:"location"`
	Experience   string   `mapstructure:"experience"`
	Status       string   `mapstructure:"status"`
	ActiveOnly   bool     `mapstructure:"active-only"`
	MinimumScore *float64 `mapstructure:"minimum-score" validate:"omitempty,gte=0,lte=1"`
}

type ThresholdConfig struct {
	Min  float64 `mapstructure:"min" validate:"gte=0,lte=1"`
	Tier string  `mapstructure:"tier" validate:"required"`
}

type StatusConfig struct {
	Key    string `mapstructure:"key" validate:"required"`
	Label  string `mapstructure:"label" validate:"required"`
	Weight int    `mapstructure:"weight" validate:"gte=0"`
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config == nil {
		config = &Config{}
	}

	if flag := rootCmd.PersistentFlags().Lookup(minScoreFlag); flag != nil && flag.Changed {
		floor, err := rootCmd.PersistentFlags().GetFloat64(minScoreFlag)
		if err != nil {
			return nil, err
		}
		if config.Filter == nil {
			config.Filter = &FilterConfig{}
		}
		config.Filter.MinimumScore = &floor
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks struct tags first, then the rules tags cannot express.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) {
			return fmt.Errorf("invalid config: %s", describeValidation(invalid))
		}
		return err
	}

	if len(c.Thresholds) > 0 {
		if err := c.ScoreThresholds().Validate(); err != nil {
			return fmt.Errorf("invalid config: thresholds: %w", err)
		}
	}

	seen := make(map[string]struct{}, len(c.Statuses))
	for _, s := range c.Statuses {
		if _, dup := seen[s.Key]; dup {
			return fmt.Errorf("invalid config: status %q is declared twice", s.Key)
		}
		seen[s.Key] = struct{}{}
	}
	return nil
}

func describeValidation(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		if e.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", e.Namespace(), e.Tag(), e.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s is %s", e.Namespace(), e.Tag()))
	}
	return strings.Join(parts, "; ")
}

// DomainName returns the configured domain, postings by default.
func (c *Config) DomainName() string {
	if c.Domain == "" {
		return DomainPostings
	}
	return c.Domain
}

// ScoreThresholds returns the configured buckets ordered high to low, or
// the defaults.
func (c *Config) ScoreThresholds() score.Thresholds {
	if len(c.Thresholds) == 0 {
		return score.DefaultThresholds
	}

	th := make(score.Thresholds, 0, len(c.Thresholds))
	for _, t := range c.Thresholds {
		th = append(th, score.Threshold{Min: t.Min, Tier: score.Tier(strings.ToUpper(strings.TrimSpace(t.Tier)))})
	}
	return th.Sorted()
}

// Categories returns the configured status set, or the application statuses.
func (c *Config) Categories() tally.Categories {
	if len(c.Statuses) == 0 {
		return tally.ApplicationStatuses
	}

	cats := make(tally.Categories, 0, len(c.Statuses))
	for _, s := range c.Statuses {
		cats = append(cats, tally.Category{Key: s.Key, Label: s.Label, Weight: s.Weight})
	}
	return cats
}

// Criteria converts the filter section. excluded come from the exclude file.
func (c *Config) Criteria(excluded []int) filtering.Criteria {
	criteria := filtering.Criteria{ExcludeIDs: excluded}
	if f := c.Filter; f != nil {
		criteria.Keyword = f.Keyword
		criteria.Location = f.Location
		criteria.ExperienceLevel = f.Experience
		criteria.Status = f.Status
		criteria.ActiveOnly = f.ActiveOnly
		criteria.MinScore = f.MinimumScore
	}
	return criteria
}

// SortKey returns the configured ordering. Validate already rejected
// unknown keys.
func (c *Config) SortKey() filtering.SortKey {
	key, err := filtering.ParseSortKey(c.Sort)
	if err != nil {
		return filtering.SortByScore
	}
	return key
}

// Format returns the configured output format.
func (c *Config) Format() report.Format {
	format, err := report.ParseFormat(c.Output)
	if err != nil {
		return report.FormatTable
	}
	return format
}
