package store

import (
	"github.com/covid19india/district-dashboard/schema"
)

// Filter returns the rows matching the criteria: exact calendar-date equality
// first, then state equality unless the selection is "All". Input order is
// preserved and an empty result is a normal outcome, not an error.
func (s *Snapshot) Filter(criteria schema.FilterCriteria) []schema.CaseRecord {
	matched := []schema.CaseRecord{}
	for _, record := range s.records {
		if !record.HasDate() || !record.Date.Equal(criteria.Date) {
			continue
		}
		if !criteria.WantsAllStates() && record.State != criteria.State {
			continue
		}
		matched = append(matched, record)
	}
	return matched
}
