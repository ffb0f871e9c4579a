// Package partner implements the DeliveryPartner aggregate.
//
// A partner toggles an on-duty shift flag and carries at most one active
// delivery trip at a time, tracked by a busy flag that only trip closure clears.
package partner
