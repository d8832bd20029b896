package analysis

// Zone is the Altman Z-Score bankruptcy-risk classification.
type Zone string

const (
	ZoneSafe     Zone = "Safe Zone"
	ZoneGray     Zone = "Gray Zone"
	ZoneDistress Zone = "Distress Zone"
	// ZoneUnknown is returned when the score itself could not be computed.
	ZoneUnknown Zone = "Unknown"
)

// Band is the Piotroski F-Score financial-health classification.
type Band string

const (
	BandStrong   Band = "Strong"
	BandModerate Band = "Moderate"
	BandWeak     Band = "Weak"
)

// ClassifyZScore maps a Z-Score to its risk zone. Both boundaries are
// closed on the gray side: Z=2.99 and Z=1.81 are Gray.
func ClassifyZScore(z Scalar) Zone {
	switch {
	case z.IsMissing():
		return ZoneUnknown
	case z > 2.99:
		return ZoneSafe
	case z >= 1.81:
		return ZoneGray
	default:
		return ZoneDistress
	}
}

// ClassifyFScore maps an F-Score to its health band.
func ClassifyFScore(score int) Band {
	switch {
	case score >= 7:
		return BandStrong
	case score >= 4:
		return BandModerate
	default:
		return BandWeak
	}
}
