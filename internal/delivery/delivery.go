// Package delivery defines the contract shared by inbound transports.
package delivery

import "context"

// Delivery is implemented by every serving surface. Serve blocks until the
// context is cancelled or the transport fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
