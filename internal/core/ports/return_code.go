package ports

import "context"

// ReturnCodeStore provides the shared store-return code a delivery partner
// must present to close a trip. Implementations lazily seed a default code
// when none is configured, so the first read always yields a value.
type ReturnCodeStore interface {
	Get(ctx context.Context) (string, error)
}
