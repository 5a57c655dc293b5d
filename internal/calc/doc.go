// Package calc turns equipment specifications and pond geometry into a
// productivity-based excavation timeline.
//
// rates.go provides the pure per-unit rate formulas (cycles per hour times
// capacity, derated by a fixed efficiency factor) and the active-only fleet
// sums. timeline.go combines an excavation rate and a hauling rate into a
// whole-day estimate: throughput is capped by the slower stage, total hours
// always round up to a full day, and ties classify as an excavation
// bottleneck.
//
// Every function is a pure function of its arguments; the package holds no
// state and is safe to call from any number of goroutines.
package calc
