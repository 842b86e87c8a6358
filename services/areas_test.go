package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearestServiceAreaExactMatch(t *testing.T) {
	// a coordinate sitting exactly on an area must resolve to that area,
	// not a neighbour
	for _, area := range ServiceAreas() {
		got := NearestServiceArea(area.Lat, area.Long)
		assert.Equal(t, area.Name, got.Name)
		assert.Equal(t, area.DeliveryCharge, got.DeliveryCharge)
	}
}

func TestNearestServiceAreaTieKeepsFirst(t *testing.T) {
	areas := ServiceAreas()
	first := areas[0]
	got := NearestServiceArea(first.Lat, first.Long)
	assert.Equal(t, first.Name, got.Name)
}

func TestAreaByName(t *testing.T) {
	area, ok := AreaByName("Maninagar")
	assert.True(t, ok)
	assert.Equal(t, 40.0, area.DeliveryCharge)

	_, ok = AreaByName("Nowhere")
	assert.False(t, ok)
}

func TestDeliveryChargeFor(t *testing.T) {
	lat, long := 22.9960, 72.6036

	// manual selection wins over coordinates
	assert.Equal(t, 40.0, DeliveryChargeFor("Maninagar", nil, nil))
	assert.Equal(t, 30.0, DeliveryChargeFor("Gandhi Nagar", &lat, &long))

	// coordinates when no area picked
	assert.Equal(t, 40.0, DeliveryChargeFor("", &lat, &long))

	// unknown area falls through to coordinates
	assert.Equal(t, 40.0, DeliveryChargeFor("Nowhere", &lat, &long))

	// nothing at all falls back to the default
	assert.Equal(t, float64(DefaultDeliveryCharge), DeliveryChargeFor("", nil, nil))
}

func TestHaversineDistanceKm(t *testing.T) {
	assert.Equal(t, 0.0, HaversineDistanceKm(23.0, 72.5, 23.0, 72.5))

	// one degree of latitude is roughly 111 km
	d := HaversineDistanceKm(23.0, 72.5, 24.0, 72.5)
	assert.InDelta(t, 111.2, d, 1.0)
}
