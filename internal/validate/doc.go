// Package validate checks raw user input against configured ranges and
// produces typed, structured errors suitable for field-level UI feedback.
//
// Every check is the identity on success: the input value is returned
// unchanged, never clamped or coerced. Failures are one of the error
// variants in errors.go, each carrying the actual value, the violated
// limit and a human-readable guidance string; match them with errors.As.
//
// Two propagation policies coexist on purpose:
//
//   - Inputs validates a whole project form fail-fast, returning only the
//     first failure in a fixed field order (one error shown at a time).
//   - ExcavatorFleet and TruckFleet accumulate every failing field of every
//     unit, so each row of a fleet table gets independent feedback.
package validate
