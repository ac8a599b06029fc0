package service

import (
	"context"

	"github.com/paulmach/orb"
)

// Device capability ports. The embedding app supplies implementations backed
// by the platform's location and geocoding facilities; this module only
// consumes them at suspension points (add-address sub-flow, discovery
// reference point).
type (
	// Locator resolves the device's current position.
	Locator interface {
		Current(ctx context.Context) (orb.Point, error)
	}

	// Geocoder converts between free-text addresses and coordinates.
	Geocoder interface {
		Forward(ctx context.Context, address string) (orb.Point, error)
		Reverse(ctx context.Context, point orb.Point) (string, error)
	}
)
