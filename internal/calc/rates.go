package calc

import "github.com/pondplan/pondplan/internal/fleet"

// Efficiency factors applied to the theoretical cycle throughput.
// Digging loses time to repositioning and spoil handling; hauling loses
// more to loading, dumping and queueing.
const (
	excavatorEfficiency = 0.85
	truckEfficiency     = 0.80
)

// cubicFeetPerCubicYard converts pond geometry in feet to volume in yards.
const cubicFeetPerCubicYard = 27.0

// ExcavatorRate returns the sustained dig rate in cubic yards per hour:
//
//	rate = (60 / cycleTime) * bucketCapacity * 0.85
//
// Cycle time must already be validated positive; a non-positive value
// yields 0 so Inf/NaN can never propagate into a timeline.
func ExcavatorRate(bucketCapacity, cycleTime float64) float64 {
	if cycleTime <= 0 {
		return 0
	}
	return 60 / cycleTime * bucketCapacity * excavatorEfficiency
}

// TruckRate returns the sustained haul rate in cubic yards per hour:
//
//	rate = (60 / roundTripTime) * capacity * 0.80
func TruckRate(capacity, roundTripTime float64) float64 {
	if roundTripTime <= 0 {
		return 0
	}
	return 60 / roundTripTime * capacity * truckEfficiency
}

// ExcavatorFleetRate sums ExcavatorRate over the active units. An empty or
// fully parked fleet digs nothing and returns 0. The sum is linear in the
// number of identical active units.
func ExcavatorFleetRate(excavators []fleet.Excavator) float64 {
	var total float64
	for _, ex := range excavators {
		if ex.Active {
			total += ExcavatorRate(ex.BucketCapacity, ex.CycleTime)
		}
	}
	return total
}

// TruckFleetRate sums TruckRate over the active units.
func TruckFleetRate(trucks []fleet.Truck) float64 {
	var total float64
	for _, tr := range trucks {
		if tr.Active {
			total += TruckRate(tr.Capacity, tr.RoundTripTime)
		}
	}
	return total
}

// PondVolume converts rectangular pond dimensions in feet to cubic yards.
func PondVolume(length, width, depth float64) float64 {
	return length * width * depth / cubicFeetPerCubicYard
}
