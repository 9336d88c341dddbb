// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a long-running transport server (HTTP today) started by main.
type Delivery interface {
	// Serve blocks, accepting requests until the context is cancelled or the
	// server is shut down.
	Serve(ctx context.Context) error
}
