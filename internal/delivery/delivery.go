// Package delivery defines the contract shared by all transport adapters.
package delivery

import "context"

// Delivery is implemented by every server the application can expose
// (HTTP today; other transports would plug in here).
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
