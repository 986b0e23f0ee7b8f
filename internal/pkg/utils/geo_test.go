package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeodesicDistance_KnownBaseline(t *testing.T) {
	// Vincenty's classic test line: Flinders Peak to Buninyong (Australia).
	// Published geodesic distance: 54972.271 m.
	got := GeodesicDistance(
		-37.95103342, 144.42486789,
		-37.65282114, 143.92649554,
	)
	assert.InDelta(t, 54972.271, got, 0.05)
}

func TestGeodesicDistance_SamePoint(t *testing.T) {
	got := GeodesicDistance(-6.1753924, 106.8271528, -6.1753924, 106.8271528)
	assert.Equal(t, 0.0, got)
}

func TestGeodesicDistance_StoreScale(t *testing.T) {
	// 0.001 degree of latitude at the equator is about 110.57 m. Store-scale
	// geofence checks live in this range.
	got := GeodesicDistance(0, 0, 0.001, 0)
	assert.InDelta(t, 110.57, got, 0.5)
}

func TestGeodesicDistance_Symmetric(t *testing.T) {
	a := GeodesicDistance(-6.2, 106.8, -6.21, 106.81)
	b := GeodesicDistance(-6.21, 106.81, -6.2, 106.8)
	assert.InDelta(t, a, b, 1e-6)
	assert.Greater(t, a, 0.0)
}
