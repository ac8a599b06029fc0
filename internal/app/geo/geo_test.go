package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    orb.Point
		wantErr bool
	}{
		{
			name:  "Bengaluru point",
			input: "(77.5946,12.9716)",
			want:  orb.Point{77.5946, 12.9716},
		},
		{
			name:  "Spaces inside parentheses",
			input: "( 77.6412 , 12.9719 )",
			want:  orb.Point{77.6412, 12.9719},
		},
		{
			name:  "Negative coordinates",
			input: "(-0.1276,51.5072)",
			want:  orb.Point{-0.1276, 51.5072},
		},
		{
			name:    "Missing parentheses",
			input:   "77.5946,12.9716",
			wantErr: true,
		},
		{
			name:    "Single coordinate",
			input:   "(77.5946)",
			wantErr: true,
		},
		{
			name:    "Non-numeric longitude",
			input:   "(east,12.9716)",
			wantErr: true,
		},
		{
			name:    "Empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePoint(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want.Lon(), got.Lon(), 1e-9)
			assert.InDelta(t, tt.want.Lat(), got.Lat(), 1e-9)
		})
	}
}

func TestFormatPointRoundTrip(t *testing.T) {
	p := orb.Point{77.5946, 12.9716}
	got, err := ParsePoint(FormatPoint(p))
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestDistance(t *testing.T) {
	a := orb.Point{77.5946, 12.9716}
	b := orb.Point{77.6412, 12.9719}

	t.Run("identical points yield zero", func(t *testing.T) {
		assert.Zero(t, Distance(a, a))
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
	})

	t.Run("one degree of latitude near the equator", func(t *testing.T) {
		p1 := orb.Point{0, 0}
		p2 := orb.Point{0, 1}
		assert.InDelta(t, 111.19, Distance(p1, p2), 1.0)
	})

	t.Run("known city pair", func(t *testing.T) {
		bengaluru := orb.Point{77.5946, 12.9716}
		chennai := orb.Point{80.2707, 13.0827}
		// Road signs say ~290 km great-circle.
		assert.InDelta(t, 290, Distance(bengaluru, chennai), 5)
	})
}
