package validate

import (
	"math"
	"strconv"
	"strings"
)

// MaxDecimals is the number of decimal places accepted by DecimalPrecision.
const MaxDecimals = 2

// precisionEpsilon absorbs binary representation noise when reconstructing
// a value rounded to MaxDecimals, so inputs like 2.50 never false-positive.
const precisionEpsilon = 1e-9

// Range is an inclusive bound pair. Min < Max is an invariant of the
// configuration, checked at load time by internal/config rather than on
// every call here.
type Range struct {
	Min float64
	Max float64
}

// Rules is the full validation rule set, one range per field category.
// PondDimension is shared by pond length, width and depth.
type Rules struct {
	ExcavatorCapacity Range
	CycleTime         Range
	TruckCapacity     Range
	RoundTripTime     Range
	WorkHours         Range
	PondDimension     Range
}

// ProjectInputs holds the eight numeric project fields as entered by the
// user. All must be strictly positive and within their configured range.
type ProjectInputs struct {
	ExcavatorCapacity float64
	CycleTime         float64
	TruckCapacity     float64
	RoundTripTime     float64
	WorkHours         float64
	PondLength        float64
	PondWidth         float64
	PondDepth         float64
}

// guidance returns the user-facing correction hint for a field.
func guidance(f Field) string {
	switch f {
	case FieldExcavatorCapacity:
		return "Enter the bucket capacity in cubic yards; compact excavators start around 0.5 yd³."
	case FieldCycleTime:
		return "Enter the dig-swing-dump cycle time in minutes; most excavators cycle in under 10 minutes."
	case FieldTruckCapacity:
		return "Enter the truck bed capacity in cubic yards; typical dump trucks carry 5-30 yd³."
	case FieldRoundTripTime:
		return "Enter the loaded round-trip time in minutes, including dumping."
	case FieldWorkHours:
		return "Enter the scheduled work hours per day, between 1 and 16."
	case FieldPondLength, FieldPondWidth, FieldPondDepth:
		return "Enter the pond dimension in feet."
	default:
		return "Enter a value inside the allowed range."
	}
}

// Value applies the generic range rule to one field: non-positive values are
// required-field failures, values outside [r.Min, r.Max] are too-low or
// too-high failures, and anything else is returned unchanged.
func Value(f Field, r Range, v float64) (float64, error) {
	if v <= 0 {
		return 0, &RequiredError{Field: f, Guidance: guidance(f)}
	}
	if v < r.Min {
		return 0, &TooLowError{Field: f, Actual: v, Min: r.Min, Guidance: guidance(f)}
	}
	if v > r.Max {
		return 0, &TooHighError{Field: f, Actual: v, Max: r.Max, Guidance: guidance(f)}
	}
	return v, nil
}

// ExcavatorCapacity validates a bucket capacity in cubic yards.
func ExcavatorCapacity(r Range, v float64) (float64, error) {
	return Value(FieldExcavatorCapacity, r, v)
}

// CycleTime validates an excavator cycle time in minutes.
func CycleTime(r Range, v float64) (float64, error) {
	return Value(FieldCycleTime, r, v)
}

// TruckCapacity validates a truck capacity in cubic yards.
func TruckCapacity(r Range, v float64) (float64, error) {
	return Value(FieldTruckCapacity, r, v)
}

// RoundTripTime validates a truck round-trip time in minutes.
func RoundTripTime(r Range, v float64) (float64, error) {
	return Value(FieldRoundTripTime, r, v)
}

// WorkHours validates the scheduled work hours per day.
func WorkHours(r Range, v float64) (float64, error) {
	return Value(FieldWorkHours, r, v)
}

// PondDimension validates one pond dimension (length, width or depth, all
// sharing one configured range); f records which dimension failed.
func PondDimension(f Field, r Range, v float64) (float64, error) {
	return Value(f, r, v)
}

// String parses raw form input and then applies the range rule for f.
// Empty or whitespace-only input is a required-field failure; input that
// does not parse as a number is a format failure carrying the raw text.
func String(f Field, r Range, raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, &RequiredError{Field: f, Guidance: guidance(f)}
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, &FormatError{Field: f, Input: raw, Guidance: guidance(f)}
	}
	return Value(f, r, v)
}

// DecimalPrecision rejects values needing more than MaxDecimals decimal
// digits. The check reconstructs the rounded value and compares within
// precisionEpsilon instead of inspecting formatted strings, so it is immune
// to binary representation artifacts.
func DecimalPrecision(v float64) (float64, error) {
	rounded := math.Round(v*100) / 100
	if math.Abs(v-rounded) > precisionEpsilon {
		return 0, &PrecisionError{
			Actual:      v,
			MaxDecimals: MaxDecimals,
			Guidance:    "Use at most two decimal places.",
		}
	}
	return v, nil
}

// WithEdgeCases applies the explicit edge-case policy before the range rule:
// negative values and exact zeros get their own diagnostics instead of the
// generic required-field failure.
func WithEdgeCases(f Field, r Range, v float64) (float64, error) {
	if v < 0 {
		return 0, &EdgeCaseError{
			Field:    f,
			Issue:    "Negative values are not allowed",
			Guidance: "Remove the minus sign and enter a positive value.",
		}
	}
	if v == 0 {
		return 0, &EdgeCaseError{
			Field:    f,
			Issue:    "Zero values are not practical",
			Guidance: guidance(f),
		}
	}
	return Value(f, r, v)
}

// Inputs validates all eight project fields against rules, fail-fast, in
// the fixed order: excavator capacity, cycle time, truck capacity,
// round-trip time, work hours, pond length, pond width, pond depth. The
// first failure is returned alone; on success the inputs come back
// unchanged.
func Inputs(rules Rules, in ProjectInputs) (ProjectInputs, error) {
	checks := []struct {
		f Field
		r Range
		v float64
	}{
		{FieldExcavatorCapacity, rules.ExcavatorCapacity, in.ExcavatorCapacity},
		{FieldCycleTime, rules.CycleTime, in.CycleTime},
		{FieldTruckCapacity, rules.TruckCapacity, in.TruckCapacity},
		{FieldRoundTripTime, rules.RoundTripTime, in.RoundTripTime},
		{FieldWorkHours, rules.WorkHours, in.WorkHours},
		{FieldPondLength, rules.PondDimension, in.PondLength},
		{FieldPondWidth, rules.PondDimension, in.PondWidth},
		{FieldPondDepth, rules.PondDimension, in.PondDepth},
	}
	for _, c := range checks {
		if _, err := Value(c.f, c.r, c.v); err != nil {
			return ProjectInputs{}, err
		}
	}
	return in, nil
}
