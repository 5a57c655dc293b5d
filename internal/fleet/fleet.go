package fleet

import "fmt"

// Excavator describes one digging unit.
type Excavator struct {
	ID             string
	Name           string
	BucketCapacity float64 // cubic yards moved per cycle
	CycleTime      float64 // minutes per dig-swing-dump cycle
	Active         bool
}

// Truck describes one hauling unit.
type Truck struct {
	ID            string
	Name          string
	Capacity      float64 // cubic yards carried per load
	RoundTripTime float64 // minutes per loaded round trip
	Active        bool
}

// Fleet is an ID-keyed collection of excavators and trucks.
// Insertion order is preserved for display; it has no effect on any
// calculation. The zero value is not usable; construct with New.
type Fleet struct {
	excavators     map[string]Excavator
	trucks         map[string]Truck
	excavatorOrder []string
	truckOrder     []string
}

// New returns an empty fleet.
func New() *Fleet {
	return &Fleet{
		excavators: make(map[string]Excavator),
		trucks:     make(map[string]Truck),
	}
}

// AddExcavator inserts ex into the fleet. The ID must be non-empty and
// unique across the fleet's excavators.
func (f *Fleet) AddExcavator(ex Excavator) error {
	if ex.ID == "" {
		return fmt.Errorf("fleet: excavator id is required")
	}
	if _, ok := f.excavators[ex.ID]; ok {
		return fmt.Errorf("fleet: duplicate excavator id %q", ex.ID)
	}
	f.excavators[ex.ID] = ex
	f.excavatorOrder = append(f.excavatorOrder, ex.ID)
	return nil
}

// AddTruck inserts tr into the fleet. The ID must be non-empty and unique
// across the fleet's trucks.
func (f *Fleet) AddTruck(tr Truck) error {
	if tr.ID == "" {
		return fmt.Errorf("fleet: truck id is required")
	}
	if _, ok := f.trucks[tr.ID]; ok {
		return fmt.Errorf("fleet: duplicate truck id %q", tr.ID)
	}
	f.trucks[tr.ID] = tr
	f.truckOrder = append(f.truckOrder, tr.ID)
	return nil
}

// RemoveExcavator hard-removes the excavator with the given ID.
func (f *Fleet) RemoveExcavator(id string) error {
	if _, ok := f.excavators[id]; !ok {
		return fmt.Errorf("fleet: no excavator with id %q", id)
	}
	delete(f.excavators, id)
	f.excavatorOrder = removeID(f.excavatorOrder, id)
	return nil
}

// RemoveTruck hard-removes the truck with the given ID.
func (f *Fleet) RemoveTruck(id string) error {
	if _, ok := f.trucks[id]; !ok {
		return fmt.Errorf("fleet: no truck with id %q", id)
	}
	delete(f.trucks, id)
	f.truckOrder = removeID(f.truckOrder, id)
	return nil
}

// SetExcavatorActive flips the Active flag on one excavator, parking it
// (false) or returning it to service (true) without losing its settings.
func (f *Fleet) SetExcavatorActive(id string, active bool) error {
	ex, ok := f.excavators[id]
	if !ok {
		return fmt.Errorf("fleet: no excavator with id %q", id)
	}
	ex.Active = active
	f.excavators[id] = ex
	return nil
}

// SetTruckActive flips the Active flag on one truck.
func (f *Fleet) SetTruckActive(id string, active bool) error {
	tr, ok := f.trucks[id]
	if !ok {
		return fmt.Errorf("fleet: no truck with id %q", id)
	}
	tr.Active = active
	f.trucks[id] = tr
	return nil
}

// Excavators returns the excavators in insertion order. The returned slice
// is a copy; mutating it does not affect the fleet.
func (f *Fleet) Excavators() []Excavator {
	out := make([]Excavator, 0, len(f.excavatorOrder))
	for _, id := range f.excavatorOrder {
		out = append(out, f.excavators[id])
	}
	return out
}

// Trucks returns the trucks in insertion order.
func (f *Fleet) Trucks() []Truck {
	out := make([]Truck, 0, len(f.truckOrder))
	for _, id := range f.truckOrder {
		out = append(out, f.trucks[id])
	}
	return out
}

func removeID(order []string, id string) []string {
	out := order[:0]
	for _, v := range order {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
