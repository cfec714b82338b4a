// Package delivery defines the contract every transport front-end
// implements.
package delivery

import "context"

// Delivery is a serving surface started by the application runner.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
