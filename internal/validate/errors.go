package validate

import "fmt"

// Field identifies one project input for error attribution.
type Field string

// The eight project fields, in the order Inputs validates them.
const (
	FieldExcavatorCapacity Field = "excavator_capacity"
	FieldCycleTime         Field = "cycle_time"
	FieldTruckCapacity     Field = "truck_capacity"
	FieldRoundTripTime     Field = "round_trip_time"
	FieldWorkHours         Field = "work_hours"
	FieldPondLength        Field = "pond_length"
	FieldPondWidth         Field = "pond_width"
	FieldPondDepth         Field = "pond_depth"
)

// TooLowError reports a value below the configured minimum.
type TooLowError struct {
	Field    Field
	Actual   float64
	Min      float64
	Guidance string
}

func (e *TooLowError) Error() string {
	return fmt.Sprintf("%s: %g is below the minimum of %g. %s", e.Field, e.Actual, e.Min, e.Guidance)
}

// TooHighError reports a value above the configured maximum.
type TooHighError struct {
	Field    Field
	Actual   float64
	Max      float64
	Guidance string
}

func (e *TooHighError) Error() string {
	return fmt.Sprintf("%s: %g is above the maximum of %g. %s", e.Field, e.Actual, e.Max, e.Guidance)
}

// RequiredError reports a missing or non-positive value.
type RequiredError struct {
	Field    Field
	Guidance string
}

func (e *RequiredError) Error() string {
	return fmt.Sprintf("%s is required. %s", e.Field, e.Guidance)
}

// FormatError reports raw input that could not be parsed as a number.
type FormatError struct {
	Field    Field
	Input    string
	Guidance string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %q is not a number. %s", e.Field, e.Input, e.Guidance)
}

// PrecisionError reports a value with more decimal digits than allowed.
type PrecisionError struct {
	Actual      float64
	MaxDecimals int
	Guidance    string
}

func (e *PrecisionError) Error() string {
	return fmt.Sprintf("%v has more than %d decimal places. %s", e.Actual, e.MaxDecimals, e.Guidance)
}

// EdgeCaseError reports input rejected by an explicit edge-case policy,
// distinguishing negative values from exact zeros.
type EdgeCaseError struct {
	Field    Field
	Issue    string
	Guidance string
}

func (e *EdgeCaseError) Error() string {
	return fmt.Sprintf("%s: %s. %s", e.Field, e.Issue, e.Guidance)
}

// ConfigError reports an invalid validation rule set. It is produced by the
// configuration loader, not by per-field checks: the engine itself assumes
// rule ranges are well-formed.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return "validation rules: " + e.Message
}
