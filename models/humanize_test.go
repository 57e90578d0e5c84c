package models

import "testing"

func TestHumanizeSeconds(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0.5, "500.00 ms"},
		{45, "45.00 s"},
		{90, "1.50 min"},
		{7200, "2.00 h"},
		// 90000 / 86400 = 1.0417
		{90000, "1.04 days"},
		// 70000000 / 31557600 = 2.218
		{70000000, "2.22 years"},
	}

	for _, tt := range tests {
		if got := HumanizeSeconds(tt.seconds); got != tt.want {
			t.Errorf("HumanizeSeconds(%g) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestHumanizeSecondsUnitBoundaries(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0.999, "999.00 ms"},
		{1, "1.00 s"},
		{60, "1.00 min"},
		{3600, "1.00 h"},
		{86400, "1.00 days"},
		{31557600, "1.00 years"},
	}

	for _, tt := range tests {
		if got := HumanizeSeconds(tt.seconds); got != tt.want {
			t.Errorf("HumanizeSeconds(%g) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
