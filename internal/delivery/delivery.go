// Package delivery defines the contract shared by all transport adapters.
package delivery

import "context"

// Delivery is implemented by every serving surface (HTTP today). Serve
// blocks until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
