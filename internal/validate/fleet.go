package validate

import "github.com/pondplan/pondplan/internal/fleet"

// UnitError ties one validation failure to the unit and field it occurred
// on, so a fleet table can annotate every bad cell at once.
type UnitError struct {
	UnitID string
	Field  Field
	Err    error
}

// ExcavatorFleet validates every excavator independently and returns every
// failure found; a unit with two bad fields contributes two entries. An
// empty or fully valid fleet returns nil. Inactive units are validated too:
// their fields stay editable while the machine is parked.
func ExcavatorFleet(rules Rules, excavators []fleet.Excavator) []UnitError {
	var errs []UnitError
	for _, ex := range excavators {
		if _, err := ExcavatorCapacity(rules.ExcavatorCapacity, ex.BucketCapacity); err != nil {
			errs = append(errs, UnitError{UnitID: ex.ID, Field: FieldExcavatorCapacity, Err: err})
		}
		if _, err := CycleTime(rules.CycleTime, ex.CycleTime); err != nil {
			errs = append(errs, UnitError{UnitID: ex.ID, Field: FieldCycleTime, Err: err})
		}
	}
	return errs
}

// TruckFleet validates every truck independently; see ExcavatorFleet for
// the accumulation contract.
func TruckFleet(rules Rules, trucks []fleet.Truck) []UnitError {
	var errs []UnitError
	for _, tr := range trucks {
		if _, err := TruckCapacity(rules.TruckCapacity, tr.Capacity); err != nil {
			errs = append(errs, UnitError{UnitID: tr.ID, Field: FieldTruckCapacity, Err: err})
		}
		if _, err := RoundTripTime(rules.RoundTripTime, tr.RoundTripTime); err != nil {
			errs = append(errs, UnitError{UnitID: tr.ID, Field: FieldRoundTripTime, Err: err})
		}
	}
	return errs
}
