// Package order implements the Order aggregate for the grocery delivery domain.
//
// The package provides:
//   - Order: The aggregate root managing the order lifecycle
//   - Status: A state machine with a forward-only transition table
//   - Item: A value object for one cart line
//
// An order moves from placement through picker claim, packing, trip batching
// and delivery to closure. Partial fulfillment keeps the requested cart
// alongside the packed subset, and the payment-confirmed flag is one-way.
package order
