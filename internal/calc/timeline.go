package calc

import (
	"fmt"
	"math"

	"github.com/pondplan/pondplan/internal/fleet"
)

// Bottleneck names the pipeline stage that caps overall throughput.
type Bottleneck string

const (
	BottleneckExcavation Bottleneck = "excavation"
	BottleneckHauling    Bottleneck = "hauling"
)

// Confidence qualifies how much weight to give an estimate.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Thresholds for the confidence heuristic.
const (
	// balancedRatio is the faster-to-slower rate ratio under which the two
	// stages are considered well matched.
	balancedRatio = 1.5
	// imbalanceWarnRatio is the ratio past which the faster stage sits idle
	// long enough to warrant a warning.
	imbalanceWarnRatio = 2.0
	// shortProjectDays and longProjectDays bound the high and low
	// confidence bands: short, balanced projects estimate well; anything
	// beyond a year compounds too many assumptions.
	shortProjectDays = 90
	longProjectDays  = 365
)

// Result is the complete timeline estimate handed back to the caller.
type Result struct {
	Days           int     // whole working days, always >= 1
	TotalHours     float64 // working hours at the effective rate
	ExcavationRate float64 // cubic yards per hour across active excavators
	HaulingRate    float64 // cubic yards per hour across active trucks
	Bottleneck     Bottleneck
	Confidence     Confidence
	Assumptions    []string
	Warnings       []string
}

// InsufficientEquipmentError reports a fleet with no usable unit of one or
// both types. A fleet whose units are all parked is indistinguishable from
// an empty one and is rejected identically.
type InsufficientEquipmentError struct {
	Missing string // "excavator", "truck", or "excavator and truck"
}

func (e *InsufficientEquipmentError) Error() string {
	return fmt.Sprintf("insufficient equipment: no active %s in the fleet", e.Missing)
}

// InvalidConfigurationError reports project parameters no schedule can be
// computed from.
type InvalidConfigurationError struct {
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return "invalid configuration: " + e.Reason
}

// Timeline estimates the schedule for a single excavator/truck pairing.
// Throughput is capped by the slower of the two rates, total hours divide
// by the work day and always round up to a whole day, and an exact rate tie
// classifies as an excavation bottleneck.
func Timeline(excCapacity, excCycle, truckCapacity, truckRoundTrip, pondVolume, workHours float64) (*Result, error) {
	return timelineFromRates(
		ExcavatorRate(excCapacity, excCycle),
		TruckRate(truckCapacity, truckRoundTrip),
		pondVolume, workHours,
	)
}

// Plan estimates the schedule for a heterogeneous fleet. At least one
// active excavator and one active truck are required; aggregation and
// rounding are otherwise identical to Timeline.
func Plan(excavators []fleet.Excavator, trucks []fleet.Truck, pondVolume, workHours float64) (*Result, error) {
	digs := countActive(excavators)
	hauls := 0
	for _, tr := range trucks {
		if tr.Active {
			hauls++
		}
	}

	switch {
	case digs == 0 && hauls == 0:
		return nil, &InsufficientEquipmentError{Missing: "excavator and truck"}
	case digs == 0:
		return nil, &InsufficientEquipmentError{Missing: "excavator"}
	case hauls == 0:
		return nil, &InsufficientEquipmentError{Missing: "truck"}
	}

	return timelineFromRates(ExcavatorFleetRate(excavators), TruckFleetRate(trucks), pondVolume, workHours)
}

func countActive(excavators []fleet.Excavator) int {
	n := 0
	for _, ex := range excavators {
		if ex.Active {
			n++
		}
	}
	return n
}

func timelineFromRates(excRate, haulRate, pondVolume, workHours float64) (*Result, error) {
	if pondVolume <= 0 {
		return nil, &InvalidConfigurationError{Reason: "pond volume must be positive"}
	}
	if workHours <= 0 {
		return nil, &InvalidConfigurationError{Reason: "work hours per day must be positive"}
	}

	effective := math.Min(excRate, haulRate)
	if effective <= 0 {
		return nil, &InvalidConfigurationError{Reason: "equipment rates must be positive"}
	}

	totalHours := pondVolume / effective
	days := int(math.Ceil(totalHours / workHours))
	if days < 1 {
		days = 1
	}

	// Ties favor excavation: when both stages move dirt equally fast the
	// excavator is still the unit doing the primary work.
	bottleneck := BottleneckHauling
	if excRate <= haulRate {
		bottleneck = BottleneckExcavation
	}

	res := &Result{
		Days:           days,
		TotalHours:     totalHours,
		ExcavationRate: excRate,
		HaulingRate:    haulRate,
		Bottleneck:     bottleneck,
		Confidence:     confidenceFor(excRate, haulRate, days),
		Assumptions:    assumptions(),
	}
	res.Warnings = warningsFor(excRate, haulRate, days, bottleneck)
	return res, nil
}

// confidenceFor grades the estimate: short projects with well-matched
// stages estimate well, anything past a year compounds too many unknowns.
func confidenceFor(excRate, haulRate float64, days int) Confidence {
	switch {
	case days > longProjectDays:
		return ConfidenceLow
	case rateImbalance(excRate, haulRate) <= balancedRatio && days <= shortProjectDays:
		return ConfidenceHigh
	default:
		return ConfidenceMedium
	}
}

// rateImbalance returns the faster rate divided by the slower one.
func rateImbalance(a, b float64) float64 {
	if a > b {
		return a / b
	}
	return b / a
}

func assumptions() []string {
	return []string{
		"Excavators operate at 85% efficiency to cover repositioning and spoil handling",
		"Trucks operate at 80% efficiency to cover loading, dumping and queueing",
		"Work proceeds continuously within the scheduled hours each day",
		"No allowance for weather delays, soil conditions or breakdowns",
	}
}

func warningsFor(excRate, haulRate float64, days int, bottleneck Bottleneck) []string {
	var warnings []string
	if rateImbalance(excRate, haulRate) > imbalanceWarnRatio {
		idle := BottleneckHauling
		if bottleneck == BottleneckHauling {
			idle = BottleneckExcavation
		}
		warnings = append(warnings, fmt.Sprintf(
			"Fleet is unbalanced: %s capacity is more than double %s capacity, so the %s side will sit idle",
			string(idle), string(bottleneck), string(idle)))
	}
	if days > longProjectDays {
		warnings = append(warnings, fmt.Sprintf(
			"Estimated timeline of %d days exceeds a year; consider adding equipment", days))
	}
	return warnings
}
