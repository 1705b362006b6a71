package jobs

import (
	"fmt"

	"github.com/spigell/jobmatch/internal/score"
	"github.com/spigell/jobmatch/internal/tally"
)

const (
	unknownCompany = "(unknown company)"

	// missingPostingID never matches a posting, so nil applications count as Other.
	missingPostingID = -1
)

// ReportByCompany groups records by company for a quick overview.
func ReportByCompany[R Record](records []R, th score.Thresholds) map[string][]map[string]string {
	groups := tally.Group(records, func(r R) string {
		if company := r.StringField(FieldCompany); company != "" {
			return company
		}
		return unknownCompany
	})

	report := make(map[string][]map[string]string, len(groups))
	for company, items := range groups {
		for _, r := range items {
			entry := map[string]string{
				"id":       fmt.Sprintf("%d", r.RecordID()),
				"title":    r.StringField(FieldTitle),
				"location": r.StringField(FieldLocation),
				"score":    score.ToPercentage(r.MatchScore()).String(),
			}
			if s := r.MatchScore(); s != nil {
				entry["tier"] = string(score.BucketOf(*s, th))
			}
			report[company] = append(report[company], entry)
		}
	}
	return report
}

// ApplicationsPerPosting counts applications for every given posting.
// Applications to postings outside the list end up in Other.
func ApplicationsPerPosting(postings []*Posting, applications []*Application) tally.Result[int] {
	return tally.Count(applications, IDs(postings), func(a *Application) int {
		if a == nil {
			return missingPostingID
		}
		return a.JobPostingID
	})
}

// ApplicationStatuses counts applications per status.
func ApplicationStatuses(applications []*Application, cats tally.Categories) tally.Result[string] {
	return tally.Statuses(applications, cats, func(a *Application) string {
		return a.StringField(FieldStatus)
	})
}
