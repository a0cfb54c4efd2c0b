package domain

import "time"

// DefaultPolicyStart is the first day the simulated congestion charge is in
// effect. Callers can override it per run; this is only the fallback.
var DefaultPolicyStart = time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)

// Period labels an observation relative to the policy start date.
type Period string

const (
	PeriodBefore Period = "Before"
	PeriodAfter  Period = "After"
)

// PeriodOf classifies a timestamp. The policy start itself counts as After.
func PeriodOf(ts, policyStart time.Time) Period {
	if ts.Before(policyStart) {
		return PeriodBefore
	}
	return PeriodAfter
}

// CongestionLevel buckets hourly vehicle volume into coarse bands.
type CongestionLevel string

const (
	CongestionLow    CongestionLevel = "Low"
	CongestionMedium CongestionLevel = "Medium"
	CongestionHigh   CongestionLevel = "High"
)

// CongestionLevelOf maps a stored volume count to its band. Boundaries
// stay with the lower band: 600 is Low, 1000 is Medium.
func CongestionLevelOf(volume int) CongestionLevel {
	switch {
	case volume > 1000:
		return CongestionHigh
	case volume > 600:
		return CongestionMedium
	default:
		return CongestionLow
	}
}
