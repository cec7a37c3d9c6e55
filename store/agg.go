package store

import (
	"github.com/covid19india/district-dashboard/schema"
)

// Summarize sums the four headline counters over the subset. Duplicated
// (District, Date) rows are deliberately not collapsed, so duplicates in the
// source data sum into the totals. An empty subset yields all zeroes.
func Summarize(records []schema.CaseRecord) schema.Summary {
	var summary schema.Summary
	for _, r := range records {
		summary.Confirmed += r.Confirmed
		summary.Recovered += r.Recovered
		summary.Deceased += r.Deceased
		summary.Tested += r.Tested
	}
	return summary
}
