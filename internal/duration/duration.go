package duration

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrFormat is returned by Parse for text that is not a valid HH:MM duration.
var ErrFormat = errors.New("invalid duration format")

// Duration is a billable amount of time in hours and minutes.
// Minutes is always in [0,59]; Hours is never negative.
type Duration struct {
	Hours   int
	Minutes int
}

// Parse converts an "HH:MM" string into a Duration. The text must contain
// exactly two colon-separated integers with non-negative hours and minutes
// in [0,59].
func Parse(text string) (Duration, error) {
	parts := strings.Split(text, ":")
	if len(parts) != 2 {
		return Duration{}, fmt.Errorf("%w: %q is not HH:MM", ErrFormat, text)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return Duration{}, fmt.Errorf("%w: hours in %q: %v", ErrFormat, text, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return Duration{}, fmt.Errorf("%w: minutes in %q: %v", ErrFormat, text, err)
	}
	if h < 0 || m < 0 || m >= 60 {
		return Duration{}, fmt.Errorf("%w: %q out of range", ErrFormat, text)
	}
	return Duration{Hours: h, Minutes: m}, nil
}

// FromMinutes builds a Duration from a total minute count.
// Negative totals clamp to zero.
func FromMinutes(total int) Duration {
	if total < 0 {
		total = 0
	}
	return Duration{Hours: total / 60, Minutes: total % 60}
}

// String renders the canonical zero-padded HH:MM form. Hours beyond
// two digits render at their natural width.
func (d Duration) String() string {
	return fmt.Sprintf("%02d:%02d", d.Hours, d.Minutes)
}

// TotalMinutes returns the duration as whole minutes.
func (d Duration) TotalMinutes() int {
	return d.Hours*60 + d.Minutes
}

// SumMinutes totals a sequence of durations in minutes. An empty
// sequence sums to zero.
func SumMinutes(ds []Duration) int {
	var total int
	for _, d := range ds {
		total += d.TotalMinutes()
	}
	return total
}

// Hours converts a minute total to fractional hours for display
// (callers format with two decimal places).
func Hours(totalMinutes int) float64 {
	return float64(totalMinutes) / 60.0
}
