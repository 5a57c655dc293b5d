package validate

import (
	"errors"
	"testing"

	"github.com/pondplan/pondplan/internal/fleet"
)

func TestExcavatorFleet_AllValid(t *testing.T) {
	excavators := []fleet.Excavator{
		{ID: "ex-1", BucketCapacity: 2.5, CycleTime: 2, Active: true},
		{ID: "ex-2", BucketCapacity: 1.5, CycleTime: 3, Active: false},
	}
	if errs := ExcavatorFleet(testRules(), excavators); errs != nil {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestExcavatorFleet_Empty(t *testing.T) {
	if errs := ExcavatorFleet(testRules(), nil); errs != nil {
		t.Errorf("empty fleet: expected nil, got %v", errs)
	}
}

func TestExcavatorFleet_AccumulatesEveryFailure(t *testing.T) {
	excavators := []fleet.Excavator{
		{ID: "ex-1", BucketCapacity: 0, CycleTime: 50, Active: true}, // both fields bad
		{ID: "ex-2", BucketCapacity: 2.5, CycleTime: 2, Active: true},
		{ID: "ex-3", BucketCapacity: 99, CycleTime: 2, Active: true}, // one field bad
	}
	errs := ExcavatorFleet(testRules(), excavators)
	if len(errs) != 3 {
		t.Fatalf("got %d errors, want 3: %v", len(errs), errs)
	}

	// ex-1 contributes two entries, one per failing field.
	if errs[0].UnitID != "ex-1" || errs[0].Field != FieldExcavatorCapacity {
		t.Errorf("errs[0] = %+v, want ex-1/%s", errs[0], FieldExcavatorCapacity)
	}
	var required *RequiredError
	if !errors.As(errs[0].Err, &required) {
		t.Errorf("errs[0].Err = %v, want RequiredError", errs[0].Err)
	}
	if errs[1].UnitID != "ex-1" || errs[1].Field != FieldCycleTime {
		t.Errorf("errs[1] = %+v, want ex-1/%s", errs[1], FieldCycleTime)
	}
	var tooHigh *TooHighError
	if !errors.As(errs[1].Err, &tooHigh) {
		t.Errorf("errs[1].Err = %v, want TooHighError", errs[1].Err)
	}
	if errs[2].UnitID != "ex-3" || errs[2].Field != FieldExcavatorCapacity {
		t.Errorf("errs[2] = %+v, want ex-3/%s", errs[2], FieldExcavatorCapacity)
	}
}

func TestExcavatorFleet_InactiveUnitsStillValidated(t *testing.T) {
	excavators := []fleet.Excavator{
		{ID: "parked", BucketCapacity: -1, CycleTime: 2, Active: false},
	}
	errs := ExcavatorFleet(testRules(), excavators)
	if len(errs) != 1 {
		t.Fatalf("inactive unit with bad capacity: got %d errors, want 1", len(errs))
	}
	if errs[0].UnitID != "parked" {
		t.Errorf("UnitID = %q, want %q", errs[0].UnitID, "parked")
	}
}

func TestTruckFleet_AccumulatesEveryFailure(t *testing.T) {
	trucks := []fleet.Truck{
		{ID: "tr-1", Capacity: 12, RoundTripTime: 15, Active: true},
		{ID: "tr-2", Capacity: 2, RoundTripTime: 500, Active: true}, // both fields bad
	}
	errs := TruckFleet(testRules(), trucks)
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), errs)
	}
	if errs[0].UnitID != "tr-2" || errs[0].Field != FieldTruckCapacity {
		t.Errorf("errs[0] = %+v, want tr-2/%s", errs[0], FieldTruckCapacity)
	}
	var tooLow *TooLowError
	if !errors.As(errs[0].Err, &tooLow) {
		t.Fatalf("errs[0].Err = %v, want TooLowError", errs[0].Err)
	}
	if tooLow.Actual != 2 || tooLow.Min != 5 {
		t.Errorf("TooLowError{Actual: %v, Min: %v}, want {2, 5}", tooLow.Actual, tooLow.Min)
	}
	if errs[1].UnitID != "tr-2" || errs[1].Field != FieldRoundTripTime {
		t.Errorf("errs[1] = %+v, want tr-2/%s", errs[1], FieldRoundTripTime)
	}
}

func TestTruckFleet_Empty(t *testing.T) {
	if errs := TruckFleet(testRules(), []fleet.Truck{}); errs != nil {
		t.Errorf("empty fleet: expected nil, got %v", errs)
	}
}
