package schema

// SeverityTier ranks a district's confirmed case load. Numerically lower is
// more severe so ascending sort puts the worst districts first.
type SeverityTier int

const (
	SeveritySevere SeverityTier = iota
	SeverityHigh
	SeverityModerate
)

func (t SeverityTier) String() string {
	switch t {
	case SeveritySevere:
		return "Severe"
	case SeverityHigh:
		return "High"
	case SeverityModerate:
		return "Moderate"
	}
	return "Unknown"
}

// MarshalText makes the tier render as its name in JSON responses.
func (t SeverityTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *SeverityTier) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Severe":
		*t = SeveritySevere
	case "High":
		*t = SeverityHigh
	default:
		*t = SeverityModerate
	}
	return nil
}
