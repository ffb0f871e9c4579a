// Package services contains domain services that coordinate multiple
// aggregates. TripBatcher groups packed same-route orders under one delivery
// partner, enforcing the batching rules before any aggregate is mutated.
package services
