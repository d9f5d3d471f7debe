package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"arthive/shared/geo"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		wantKm                 float64
		tolerance              float64
	}{
		{
			name: "same point",
			lat1: 51.5074, lng1: -0.1278,
			lat2: 51.5074, lng2: -0.1278,
			wantKm:    0,
			tolerance: 0.001,
		},
		{
			name: "london to paris",
			lat1: 51.5074, lng1: -0.1278,
			lat2: 48.8566, lng2: 2.3522,
			wantKm:    343.5,
			tolerance: 1.0,
		},
		{
			name: "across the meridian",
			lat1: 51.5074, lng1: -0.1278,
			lat2: 51.5074, lng2: 0.1278,
			wantKm:    17.7,
			tolerance: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := geo.Distance(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			assert.InDelta(t, tt.wantKm, got, tt.tolerance)
		})
	}
}

func TestRoundKm(t *testing.T) {
	assert.Equal(t, 1.2, geo.RoundKm(1.24))
	assert.Equal(t, 1.3, geo.RoundKm(1.25))
	assert.Equal(t, 0.0, geo.RoundKm(0.04))
}

func TestValidCoordinate(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
		want     bool
	}{
		{name: "london", lat: 51.5074, lng: -0.1278, want: true},
		{name: "zero pair treated as unset", lat: 0, lng: 0, want: false},
		{name: "zero latitude with real longitude", lat: 0, lng: 100, want: true},
		{name: "latitude out of range", lat: 91, lng: 0, want: false},
		{name: "longitude out of range", lat: 45, lng: -181, want: false},
		{name: "extremes are valid", lat: -90, lng: 180, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, geo.ValidCoordinate(tt.lat, tt.lng))
		})
	}
}
