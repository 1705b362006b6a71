package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/jobmatch/internal/filtering"
	"github.com/spigell/jobmatch/internal/jobs"
	"github.com/spigell/jobmatch/internal/report"
	"github.com/spigell/jobmatch/internal/tally"
)

const (
	PromptSummary             = "Show summary"
	PromptStatuses            = "Tally statuses"
	PromptReportByCompany     = "Report by company"
	PromptRecordsToFile       = "Dump records to file"
	PromptAppendToExcludeFile = "Append all records to exclude file"
	PromptExit                = "Exit"

	excludeReason = "excluded from jobmatch rank"
)

var errExit = errors.New("exit requested")

// selector is satisfied by promptui.Select.
type selector interface {
	Run() (int, string, error)
}

var newSelector = func(items []string) selector {
	return &promptui.Select{Label: "Next?", Items: items}
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Filter and rank records of one domain of the dump",
	Run: func(cmd *cobra.Command, _ []string) {
		zl, closeLog := startLogger()
		defer closeLog()

		s, err := newSession(zl)
		if err != nil {
			fatal(zl, "starting", err)
		}

		interactive := !viper.GetBool("no-prompt") && s.config.Format() == report.FormatTable
		if err := rank(s, cmd.OutOrStdout(), interactive); err != nil && !errors.Is(err, errExit) {
			fatal(zl, "exiting", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().String("domain", "", "records to rank: postings, matches, resumes or applications")
	rankCmd.Flags().String("sort", "", "ordering: score, id or none")
	rankCmd.Flags().BoolP("no-prompt", "y", false, "print the ranking and exit without asking for actions")

	for _, name := range []string{"domain", "sort", "no-prompt"} {
		if err := viper.BindPFlag(name, rankCmd.Flags().Lookup(name)); err != nil {
			log.Fatalf("binding %s flag: %v", name, err)
		}
	}
}

func rank(s *session, out io.Writer, interactive bool) error {
	switch s.config.DomainName() {
	case DomainPostings:
		return rankDomain(s, postingsDomain(s.dump), out, interactive)
	case DomainMatches:
		return rankDomain(s, matchesDomain(s.dump), out, interactive)
	case DomainResumes:
		return rankDomain(s, resumesDomain(s.dump), out, interactive)
	case DomainApplications:
		return rankDomain(s, applicationsDomain(s.dump), out, interactive)
	default:
		return fmt.Errorf("unknown domain: %s", s.config.Domain)
	}
}

func rankDomain[R filtering.Record](s *session, d domain[R], out io.Writer, interactive bool) error {
	records := d.rank(s, s.criteria())
	if len(records) == 0 {
		s.logger.Info("exiting", zap.String("reason", "no records left after filters"))
		// Scripted callers still get a parseable document.
		if s.config.Format() != report.FormatTable {
			return d.render(s, out, records)
		}
		return nil
	}

	if err := d.render(s, out, records); err != nil {
		return err
	}

	if !interactive {
		return nil
	}

	for len(records) > 0 {
		_, action, err := newSelector(actionItems(s, d)).Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return errExit
			}
			return err
		}

		s.logger.Debug("current list of records", zap.Int("count", len(records)))

		records, err = handleAction(action, s, d, out, records)
		if err != nil {
			return err
		}
	}

	s.logger.Info("exiting", zap.String("reason", "no records left"))
	return nil
}

func actionItems[R filtering.Record](s *session, d domain[R]) []string {
	items := []string{PromptSummary}
	if d.hasStatus {
		items = append(items, PromptStatuses)
	}
	items = append(items, PromptReportByCompany, PromptRecordsToFile)
	if s.config.ExcludeFile != "" {
		items = append(items, PromptAppendToExcludeFile)
	}
	return append(items, PromptExit)
}

// handleAction runs one prompt action and returns the list to continue with.
func handleAction[R filtering.Record](action string, s *session, d domain[R], out io.Writer, records []R) ([]R, error) {
	switch action {
	case PromptSummary:
		return records, d.render(s, out, records)
	case PromptStatuses:
		cats := s.config.Categories()
		counts := tally.Statuses(records, cats, func(r R) string {
			return r.StringField(jobs.FieldStatus)
		})
		return records, report.NewTable(out, s.config.NoColor).Tally("STATUSES", counts, cats)
	case PromptReportByCompany:
		pretty, _ := json.MarshalIndent(jobs.ReportByCompany(records, s.config.ScoreThresholds()), "", "  ")
		s.logger.Info(string(pretty), zap.Int("records count", len(records)))
		return records, nil
	case PromptRecordsToFile:
		filename, err := jobs.DumpToTmpFile(records)
		if err != nil {
			return records, fmt.Errorf("dump results to file: %w", err)
		}
		s.logger.Info("dumping result to file", zap.String("filename", filename))
		return records, nil
	case PromptAppendToExcludeFile:
		s.excluded.Append(jobs.ToExcluded(records, excludeReason))
		if err := s.excluded.ToFile(s.config.ExcludeFile); err != nil {
			return records, err
		}
		s.logger.Info("appended to exclude file", zap.String("filename", s.config.ExcludeFile), zap.Int("count", len(records)))

		// The selection stays the same; only the exclude list grew.
		return filtering.FilterAndSort(records, filtering.Criteria{ExcludeIDs: s.excluded.IDs()}, d.options(s.config)), nil
	case PromptExit:
		s.logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return records, errExit
	default:
		return records, fmt.Errorf("invalid action: %s", action)
	}
}
