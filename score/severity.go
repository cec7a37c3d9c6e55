package score

import "github.com/covid19india/district-dashboard/schema"

const (
	severeThreshold = 10000
	highThreshold   = 5000
)

// Classify buckets a district's confirmed count into a severity tier.
// Moderate is the catch-all, so zero and even a negative count land there.
func Classify(confirmed int64) schema.SeverityTier {
	if confirmed >= severeThreshold {
		return schema.SeveritySevere
	}
	if confirmed >= highThreshold {
		return schema.SeverityHigh
	}
	return schema.SeverityModerate
}
