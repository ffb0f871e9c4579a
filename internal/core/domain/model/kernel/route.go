package kernel

import (
	"strings"

	"grocery/internal/pkg/errs"
)

// defaultRouteKey is the sentinel zone for orders whose address could not be
// mapped to a concrete delivery zone.
const defaultRouteKey = "DEFAULT_ROUTE"

// routeKeyPrefix is prepended to pincode-derived zone tags.
const routeKeyPrefix = "ZONE_"

// ErrRouteKeyIsRequired is returned when constructing a RouteKey from an empty string.
var ErrRouteKeyIsRequired = errs.NewValueIsRequiredError("routeKey")

// RouteKey is a value object representing the coarse delivery zone of an order.
// All orders batched into one delivery trip must share the same RouteKey,
// which keeps a single run geographically compatible.
//
// The zero value of RouteKey is invalid. Construct one with NewRouteKey,
// DefaultRouteKey, or RouteKeyForPincode.
//
// RouteKey is immutable and safe for concurrent use.
//
// Example usage:
//
//	route, err := kernel.NewRouteKey("ZONE_1100")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(route.String()) // "ZONE_1100"
type RouteKey struct {
	value string
}

// NewRouteKey creates a RouteKey from an explicit zone tag.
// The tag is trimmed of surrounding whitespace and must be non-empty.
//
// Returns:
//   - RouteKey: the constructed route key
//   - error: ErrRouteKeyIsRequired if the tag is empty or blank
func NewRouteKey(value string) (RouteKey, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return RouteKey{}, ErrRouteKeyIsRequired
	}
	return RouteKey{value: value}, nil
}

// DefaultRouteKey returns the sentinel route used when no zone can be derived.
// Orders on the default route may still be batched together.
func DefaultRouteKey() RouteKey {
	return RouteKey{value: defaultRouteKey}
}

// RouteKeyForPincode derives a delivery zone from an address pincode.
// The first four digits of the pincode identify the zone; shorter pincodes
// use the whole value. A blank pincode falls back to the default route.
//
// Example:
//
//	route := kernel.RouteKeyForPincode("110043")
//	fmt.Println(route.String()) // "ZONE_1100"
func RouteKeyForPincode(pincode string) RouteKey {
	pincode = strings.TrimSpace(pincode)
	if pincode == "" {
		return DefaultRouteKey()
	}
	if len(pincode) > 4 {
		pincode = pincode[:4]
	}
	return RouteKey{value: routeKeyPrefix + pincode}
}

// String returns the zone tag, or the default route tag for a zero value.
// Implements fmt.Stringer.
func (r RouteKey) String() string {
	if r.value == "" {
		return defaultRouteKey
	}
	return r.value
}

// IsDefault reports whether the route is the default sentinel zone.
func (r RouteKey) IsDefault() bool {
	return r.value == defaultRouteKey || r.value == ""
}

// IsEqual compares two route keys by zone tag.
func (r RouteKey) IsEqual(other RouteKey) bool {
	return r.String() == other.String()
}

// Validate checks that the route key was constructed with a non-empty zone tag.
// Returns ErrRouteKeyIsRequired for the zero value.
func (r RouteKey) Validate() error {
	if r.value == "" {
		return ErrRouteKeyIsRequired
	}
	return nil
}
