// Package delivery defines the entry points through which the application
// serves traffic.
package delivery

import "context"

// Delivery is a servable transport. Serve blocks until the transport stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
