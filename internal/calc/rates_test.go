package calc

import (
	"math"
	"testing"

	"github.com/pondplan/pondplan/internal/fleet"
)

// almostEqual returns true if a and b are within epsilon of each other.
func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestExcavatorRate(t *testing.T) {
	tests := []struct {
		name              string
		capacity, cycle   float64
		want              float64
	}{
		// (60/2) * 2.5 * 0.85 = 30 * 2.125 = 63.75
		{"typical mid-size", 2.5, 2.0, 63.75},
		// (60/1) * 1 * 0.85
		{"one minute cycle", 1, 1, 51},
		// (60/3) * 0.5 * 0.85 = 20 * 0.425 = 8.5
		{"compact machine", 0.5, 3, 8.5},
		{"zero cycle guards division", 2.5, 0, 0},
		{"negative cycle guards division", 2.5, -1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ExcavatorRate(tc.capacity, tc.cycle)
			if !almostEqual(got, tc.want, 0.01) {
				t.Errorf("ExcavatorRate(%v, %v) = %v, want %v", tc.capacity, tc.cycle, got, tc.want)
			}
		})
	}
}

func TestTruckRate(t *testing.T) {
	tests := []struct {
		name                string
		capacity, roundTrip float64
		want                float64
	}{
		// (60/15) * 12 * 0.8 = 4 * 9.6 = 38.4
		{"typical dump truck", 12, 15, 38.4},
		// (60/30) * 20 * 0.8 = 2 * 16 = 32
		{"long haul", 20, 30, 32},
		{"zero round trip guards division", 12, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := TruckRate(tc.capacity, tc.roundTrip)
			if !almostEqual(got, tc.want, 0.01) {
				t.Errorf("TruckRate(%v, %v) = %v, want %v", tc.capacity, tc.roundTrip, got, tc.want)
			}
		})
	}
}

func TestExcavatorFleetRate_Linearity(t *testing.T) {
	// n identical active units must produce exactly n times the unit rate.
	unit := ExcavatorRate(2.5, 2)
	for n := 0; n <= 4; n++ {
		var excavators []fleet.Excavator
		for i := 0; i < n; i++ {
			excavators = append(excavators, fleet.Excavator{
				ID: string(rune('a' + i)), BucketCapacity: 2.5, CycleTime: 2, Active: true,
			})
		}
		got := ExcavatorFleetRate(excavators)
		want := float64(n) * unit
		if got != want {
			t.Errorf("n=%d: fleet rate = %v, want %v", n, got, want)
		}
	}
}

func TestExcavatorFleetRate_EmptyAndAllInactive(t *testing.T) {
	if got := ExcavatorFleetRate(nil); got != 0 {
		t.Errorf("empty fleet rate = %v, want 0", got)
	}
	parked := []fleet.Excavator{
		{ID: "a", BucketCapacity: 2.5, CycleTime: 2, Active: false},
		{ID: "b", BucketCapacity: 3, CycleTime: 1.5, Active: false},
	}
	if got := ExcavatorFleetRate(parked); got != 0 {
		t.Errorf("all-inactive fleet rate = %v, want 0", got)
	}
}

func TestFleetRate_InactiveUnitsExcluded(t *testing.T) {
	active := []fleet.Excavator{
		{ID: "ex-1", BucketCapacity: 2.5, CycleTime: 2, Active: true},
	}
	base := ExcavatorFleetRate(active)

	// Adding parked units, even with garbage values, must not move the sum.
	withParked := append(active,
		fleet.Excavator{ID: "junk-1", BucketCapacity: -50, CycleTime: 0, Active: false},
		fleet.Excavator{ID: "junk-2", BucketCapacity: 1e9, CycleTime: 0.001, Active: false},
	)
	if got := ExcavatorFleetRate(withParked); got != base {
		t.Errorf("fleet rate changed from %v to %v after adding inactive units", base, got)
	}
}

func TestTruckFleetRate(t *testing.T) {
	trucks := []fleet.Truck{
		{ID: "tr-1", Capacity: 12, RoundTripTime: 15, Active: true},
		{ID: "tr-2", Capacity: 12, RoundTripTime: 15, Active: true},
		{ID: "tr-3", Capacity: 20, RoundTripTime: 30, Active: false},
	}
	// 38.4 + 38.4, the parked 32 yd³/h truck excluded.
	if got := TruckFleetRate(trucks); !almostEqual(got, 76.8, 0.01) {
		t.Errorf("TruckFleetRate = %v, want 76.8", got)
	}
}

func TestPondVolume(t *testing.T) {
	// 54 * 27 * 1 ft³ = 1458 ft³ = 54 yd³
	if got := PondVolume(54, 27, 1); !almostEqual(got, 54, 0.001) {
		t.Errorf("PondVolume(54, 27, 1) = %v, want 54", got)
	}
	// 50 * 30 * 6 = 9000 ft³ = 333.33 yd³
	if got := PondVolume(50, 30, 6); !almostEqual(got, 333.333, 0.001) {
		t.Errorf("PondVolume(50, 30, 6) = %v, want 333.333", got)
	}
}
