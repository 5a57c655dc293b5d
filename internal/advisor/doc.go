// Package advisor evaluates configurable threshold rules against a
// timeline result and produces extra advisory messages for display.
//
// Conditions use the form "field operator value", e.g. "days > 30" or
// "bottleneck == hauling". A condition that cannot be parsed never fires.
package advisor
