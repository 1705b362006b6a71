package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/jobmatch/internal/apierr"
	"github.com/spigell/jobmatch/internal/filtering"
	"github.com/spigell/jobmatch/internal/jobs"
	"github.com/spigell/jobmatch/internal/logger"
)

// session holds everything a command needs after startup: the logger,
// the validated config and the loaded dump.
type session struct {
	logger   *zap.Logger
	config   *Config
	dump     *jobs.Dump
	excluded *jobs.ExcludedRecords
}

// startLogger builds the command logger, tagged with a fresh run id.
func startLogger() (*zap.Logger, func() error) {
	zl, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	closeLog := func() error { return nil }
	if path := viper.GetString("log-file"); path != "" {
		zl, closeLog = logger.WithFile(zl, path)
	}

	return zl.With(zap.String("run_id", uuid.NewString())), closeLog
}

func newSession(zl *zap.Logger) (*session, error) {
	config, err := getConfig()
	if err != nil {
		return nil, fmt.Errorf("getting a config: %w", err)
	}

	s := &session{logger: zl, config: config}

	s.logger.Info("starting the jobmatch", zap.String("version", version), zap.String("input", config.Input))

	s.dump, err = jobs.LoadFile(config.Input)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", config.Input, err)
	}
	if err := s.dump.Err(); err != nil {
		return nil, err
	}

	s.excluded = &jobs.ExcludedRecords{}
	if config.ExcludeFile != "" {
		s.excluded, err = jobs.LoadExcluded(config.ExcludeFile)
		if err != nil {
			return nil, fmt.Errorf("reading exclude file: %w", err)
		}
	}

	s.logger.Info("loaded dump",
		zap.Int("postings", len(s.dump.Postings)),
		zap.Int("resumes", len(s.dump.Resumes)),
		zap.Int("matches", len(s.dump.Matches)),
		zap.Int("applications", len(s.dump.Applications)),
		zap.Int("excluded", len(s.excluded.Items)),
	)

	return s, nil
}

// criteria is the current filter selection, owned by the command.
func (s *session) criteria() filtering.Criteria {
	return s.config.Criteria(s.excluded.IDs())
}

// fatal logs err the way users should read it and exits.
func fatal(log *zap.Logger, msg string, err error) {
	if log == nil {
		log = zap.NewNop()
	}

	classified := apierr.Wrap(err)
	fields := []zap.Field{zap.Error(err), zap.String("kind", classified.Kind.String())}
	if classified.Kind != apierr.KindUnknown {
		fields = append(fields, zap.String("hint", classified.UserMessage()))
	}
	log.Fatal(msg, fields...)
}

func searchFieldsOr(configured, defaults []string) []string {
	fields := make([]string, 0, len(configured))
	for _, f := range configured {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, strings.ToLower(f))
		}
	}
	if len(fields) == 0 {
		return defaults
	}
	return fields
}
