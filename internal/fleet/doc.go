// Package fleet holds the equipment model: excavator and truck value types
// and the Fleet collection that keeps them keyed by unique ID.
//
// Units carry an Active flag so a machine can be parked without losing its
// configuration (soft delete); Remove* performs a hard removal. The
// collection preserves insertion order for display but imposes no minimum
// fleet size: a fleet with no usable units is rejected by the calculation
// engine, not here.
package fleet
