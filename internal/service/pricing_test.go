package service

import (
	"math"
	"testing"
	"time"
)

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPsychologicalPrice(t *testing.T) {
	cases := []struct {
		name  string
		price float64
		want  float64
	}{
		{"large price rounds down to .99", 1234.40, 1233.99},
		{"large price rounds up to .99", 1234.60, 1234.99},
		{"small price becomes x.99", 45.30, 45.99},
		{"boundary at one hundred", 100.00, 99.99},
		{"just below one hundred", 99.99, 99.99},
		{"sub-dollar price", 0.50, 0.99},
		{"zero", 0, 0.99},
		{"exact dollar above threshold", 250.00, 249.99},
		{"half dollar above threshold", 250.50, 250.99},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PsychologicalPrice(tc.price)
			if !nearlyEqual(got, tc.want) {
				t.Errorf("PsychologicalPrice(%v) = %v, want %v", tc.price, got, tc.want)
			}
		})
	}
}

func TestPsychologicalPriceAlwaysEndsIn99(t *testing.T) {
	for price := 0.0; price < 500; price += 7.37 {
		got := PsychologicalPrice(price)
		cents := math.Round(math.Mod(got, 1) * 100)
		if cents != 99 {
			t.Fatalf("PsychologicalPrice(%v) = %v, cents = %v, want 99", price, got, cents)
		}
	}
}

func TestMarginPeriodKey(t *testing.T) {
	cases := []struct {
		name string
		at   time.Time
		want string
	}{
		{"mid-month", time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC), "March 2024"},
		{"start of month", time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), "March 2024"},
		{"january wraps to previous year", time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC), "December 2023"},
		{"thirty-one day month early in month", time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), "January 2024"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MarginPeriodKey(tc.at); got != tc.want {
				t.Errorf("MarginPeriodKey(%v) = %q, want %q", tc.at, got, tc.want)
			}
		})
	}
}
