package integrity

import (
	"fmt"
	"sort"
	"time"

	"github.com/jonathan/ats-engine/internal/types"
)

// datedPeriod is an employment period with resolved month boundaries.
type datedPeriod struct {
	start time.Time
	end   time.Time
}

// resolvePeriods parses employment periods into dated spans for gap
// arithmetic. Open-ended periods close against now. Periods whose start
// cannot be parsed are skipped; periods with an unparseable end are skipped
// as well since no gap boundary can be computed from them.
func resolvePeriods(periods []types.EmploymentPeriod, now time.Time) []datedPeriod {
	resolved := make([]datedPeriod, 0, len(periods))
	for _, period := range periods {
		start := parseDateToken(period.StartDate)
		if !start.parsed {
			continue
		}

		end := parseDateToken(period.EndDate)
		switch {
		case end.current:
			resolved = append(resolved, datedPeriod{start: start.time, end: monthStart(now.Year(), now.Month())})
		case end.parsed:
			resolved = append(resolved, datedPeriod{start: start.time, end: end.time})
		}
	}
	return resolved
}

// findGaps sorts periods by start date and flags every gap between one
// period's end and the next period's start that reaches thresholdMonths.
// Fewer than two datable periods means no gaps. Overlapping periods yield
// negative gaps, which are never flagged.
func findGaps(periods []types.EmploymentPeriod, thresholdMonths int, now time.Time) []types.Finding {
	resolved := resolvePeriods(periods, now)
	if len(resolved) < 2 {
		return nil
	}

	sort.Slice(resolved, func(i, j int) bool {
		return resolved[i].start.Before(resolved[j].start)
	})

	findings := make([]types.Finding, 0)
	for i := 0; i < len(resolved)-1; i++ {
		gapMonths := monthsBetween(resolved[i].end, resolved[i+1].start)
		if gapMonths >= thresholdMonths {
			findings = append(findings, types.Finding{
				Severity: types.SeverityWarning,
				Code:     "employment_gap",
				Message: fmt.Sprintf("%d-month employment gap (%s - %s)",
					gapMonths,
					resolved[i].end.Format("Jan 2006"),
					resolved[i+1].start.Format("Jan 2006")),
				Layer: types.LayerIntegrity,
			})
		}
	}
	return findings
}
