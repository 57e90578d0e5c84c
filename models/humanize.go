// ABOUTME: Human-readable rendering of estimated crack times
// ABOUTME: Unit chosen by magnitude, two decimal digits, deterministic output

package models

import "fmt"

// HumanizeSeconds renders a duration in seconds with a magnitude-appropriate
// unit. The output is part of the observable contract: reports and tests
// depend on the exact formatting.
func HumanizeSeconds(s float64) string {
	switch {
	case s < 1:
		return fmt.Sprintf("%.2f ms", s*1000)
	case s < SecondsPerMinute:
		return fmt.Sprintf("%.2f s", s)
	case s < SecondsPerHour:
		return fmt.Sprintf("%.2f min", s/SecondsPerMinute)
	case s < SecondsPerDay:
		return fmt.Sprintf("%.2f h", s/SecondsPerHour)
	case s < SecondsPerYear:
		return fmt.Sprintf("%.2f days", s/SecondsPerDay)
	default:
		return fmt.Sprintf("%.2f years", s/SecondsPerYear)
	}
}
