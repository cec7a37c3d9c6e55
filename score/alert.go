package score

import (
	"sort"

	"github.com/covid19india/district-dashboard/schema"
)

// AlertLimit is how many districts the dashboard's alert table shows.
const AlertLimit = 10

// Alert is one row of the severity-ranked table.
type Alert struct {
	District  string              `json:"district"`
	State     string              `json:"state"`
	Confirmed int64               `json:"confirmed"`
	Severity  schema.SeverityTier `json:"severity"`
}

// TopAlerts classifies every record, orders them most severe first with the
// highest confirmed count on top within a tier, and keeps the first limit
// rows. Ties keep their input order.
func TopAlerts(records []schema.CaseRecord, limit int) []Alert {
	alerts := make([]Alert, 0, len(records))
	for _, r := range records {
		alerts = append(alerts, Alert{
			District:  r.District,
			State:     r.State,
			Confirmed: r.Confirmed,
			Severity:  Classify(r.Confirmed),
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].Severity != alerts[j].Severity {
			return alerts[i].Severity < alerts[j].Severity
		}
		return alerts[i].Confirmed > alerts[j].Confirmed
	})

	if limit >= 0 && len(alerts) > limit {
		alerts = alerts[:limit]
	}
	return alerts
}
