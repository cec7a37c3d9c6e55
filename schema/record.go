package schema

import (
	"fmt"
	"time"
)

// StateAll is the sentinel state selection that disables state filtering.
const StateAll = "All"

// CaseRecord is one normalized row of the district case dataset. District and
// State are trimmed, the counters are never negative, and DtCode is empty when
// the district has no match in the boundary file.
type CaseRecord struct {
	Date      time.Time `json:"date"`
	District  string    `json:"district"`
	State     string    `json:"state"`
	Confirmed int64     `json:"confirmed"`
	Recovered int64     `json:"recovered"`
	Deceased  int64     `json:"deceased"`
	Other     int64     `json:"other"`
	Tested    int64     `json:"tested"`
	DtCode    string    `json:"dt_code,omitempty"`
}

// HasDate reports whether the record carries a parseable date. Rows whose date
// failed to parse stay in the dataset but never match a date filter.
func (r CaseRecord) HasDate() bool {
	return !r.Date.IsZero()
}

// Metric identifies one of the numeric case columns.
type Metric string

const (
	MetricConfirmed Metric = "Confirmed"
	MetricRecovered Metric = "Recovered"
	MetricDeceased  Metric = "Deceased"
	MetricOther     Metric = "Other"
	MetricTested    Metric = "Tested"
)

// Metrics lists the selectable metrics in display order.
var Metrics = []Metric{
	MetricConfirmed,
	MetricRecovered,
	MetricDeceased,
	MetricOther,
	MetricTested,
}

// ParseMetric validates a metric name coming from the UI.
func ParseMetric(name string) (Metric, error) {
	for _, m := range Metrics {
		if string(m) == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown metric %q", name)
}

// ValueOf returns the record's value for this metric.
func (m Metric) ValueOf(r CaseRecord) int64 {
	switch m {
	case MetricConfirmed:
		return r.Confirmed
	case MetricRecovered:
		return r.Recovered
	case MetricDeceased:
		return r.Deceased
	case MetricOther:
		return r.Other
	case MetricTested:
		return r.Tested
	}
	return 0
}

// FilterCriteria is one render cycle's selection. It is built fresh from the
// request on every interaction and never persisted.
type FilterCriteria struct {
	Date   time.Time
	State  string
	Metric Metric
}

// WantsAllStates reports whether state filtering is disabled.
func (c FilterCriteria) WantsAllStates() bool {
	return c.State == "" || c.State == StateAll
}

// Summary holds the dashboard totals for the current selection.
type Summary struct {
	Confirmed int64 `json:"confirmed"`
	Recovered int64 `json:"recovered"`
	Deceased  int64 `json:"deceased"`
	Tested    int64 `json:"tested"`
}
