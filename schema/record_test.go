package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMetric(t *testing.T) {
	for _, m := range Metrics {
		parsed, err := ParseMetric(string(m))
		assert.NoError(t, err)
		assert.Equal(t, m, parsed)
	}

	_, err := ParseMetric("Vaccinated")
	assert.Error(t, err)
	_, err = ParseMetric("confirmed")
	assert.Error(t, err, "metric names are case-sensitive")
}

func TestMetricValueOf(t *testing.T) {
	r := CaseRecord{
		Confirmed: 1,
		Recovered: 2,
		Deceased:  3,
		Other:     4,
		Tested:    5,
	}

	assert.Equal(t, int64(1), MetricConfirmed.ValueOf(r))
	assert.Equal(t, int64(2), MetricRecovered.ValueOf(r))
	assert.Equal(t, int64(3), MetricDeceased.ValueOf(r))
	assert.Equal(t, int64(4), MetricOther.ValueOf(r))
	assert.Equal(t, int64(5), MetricTested.ValueOf(r))
}

func TestWantsAllStates(t *testing.T) {
	assert.True(t, FilterCriteria{State: StateAll}.WantsAllStates())
	assert.True(t, FilterCriteria{}.WantsAllStates())
	assert.False(t, FilterCriteria{State: "Kerala"}.WantsAllStates())
}

func TestSeverityTierText(t *testing.T) {
	assert.Equal(t, "Severe", SeveritySevere.String())
	assert.Equal(t, "High", SeverityHigh.String())
	assert.Equal(t, "Moderate", SeverityModerate.String())

	var tier SeverityTier
	assert.NoError(t, tier.UnmarshalText([]byte("High")))
	assert.Equal(t, SeverityHigh, tier)
}
