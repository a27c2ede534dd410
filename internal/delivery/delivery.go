// Package delivery defines the contract shared by every inbound transport.
package delivery

import "context"

// Delivery is a long-running inbound server started by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}
