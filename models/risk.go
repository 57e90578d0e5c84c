// ABOUTME: Risk bucket classification for estimated crack times
// ABOUTME: Fixed day/year boundaries; downstream consumers pin to these values

package models

// Time constants used for bucketing and threshold conversion.
const (
	SecondsPerMinute = 60.0
	SecondsPerHour   = 3600.0
	SecondsPerDay    = 86400.0
	// SecondsPerYear is the Julian year (365.25 days), matching the bucket
	// boundary the rest of the system is calibrated against.
	SecondsPerYear = 31557600.0
)

// Risk bucket labels, ordered weakest to strongest.
const (
	RiskWeak       = "Weak"
	RiskBorderline = "Borderline"
	RiskStrong     = "Strong"
)

// riskBuckets defines lower-inclusive, upper-exclusive ranges over seconds.
// Anything at or above the last lower bound is Strong.
var riskBuckets = []struct {
	name string
	lo   float64
	hi   float64
}{
	{RiskWeak, 0, SecondsPerDay},
	{RiskBorderline, SecondsPerDay, SecondsPerYear},
}

// Bucketize maps an estimated crack time in seconds to a risk bucket label.
// Every value falls in exactly one bucket; values not covered by a range
// (including anything >= one year) classify as Strong.
func Bucketize(seconds float64) string {
	for _, b := range riskBuckets {
		if seconds >= b.lo && seconds < b.hi {
			return b.name
		}
	}
	return RiskStrong
}
