package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// earthRadiusKm is the mean Earth radius the product uses everywhere a
// distance is shown to the user.
const earthRadiusKm = 6371

// ParsePoint parses the backend's textual point value, a parenthesized
// longitude/latitude pair such as "(77.5946,12.9716)", into an orb.Point.
// The format is fixed by the gateway; anything else is an error.
func ParsePoint(s string) (orb.Point, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) < 2 || trimmed[0] != '(' || trimmed[len(trimmed)-1] != ')' {
		return orb.Point{}, fmt.Errorf("point %q: missing parentheses", s)
	}
	parts := strings.Split(trimmed[1:len(trimmed)-1], ",")
	if len(parts) != 2 {
		return orb.Point{}, fmt.Errorf("point %q: want 2 coordinates, got %d", s, len(parts))
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("point %q: longitude: %w", s, err)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("point %q: latitude: %w", s, err)
	}
	return orb.Point{lng, lat}, nil
}

// FormatPoint renders a point back into the gateway's textual form.
func FormatPoint(p orb.Point) string {
	return fmt.Sprintf("(%v,%v)", p.Lon(), p.Lat())
}

// Distance returns the great-circle distance between two points in
// kilometers using the haversine formula.
func Distance(a, b orb.Point) float64 {
	dLat := deg2rad(b.Lat() - a.Lat())
	dLon := deg2rad(b.Lon() - a.Lon())
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat()))*math.Cos(deg2rad(b.Lat()))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
