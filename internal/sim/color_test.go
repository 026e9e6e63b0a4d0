package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemperature(t *testing.T) {
	// speed*0.01 + 200/dist while the sum stays under the cap.
	assert.InDelta(t, 100*0.01+200.0/100, Temperature(100, 100), 1e-12)
	assert.InDelta(t, 200.0/80, Temperature(0, 80), 1e-12)
	assert.InDelta(t, 200.0/67, Temperature(0, 67), 1e-12, "just under the cap")

	// The distance term alone already reads 20 at the floor, so any
	// particle at or inside it saturates to the cap.
	assert.Equal(t, MaxTemperature, Temperature(0, 10), "at the floor")
	assert.Equal(t, MaxTemperature, Temperature(0, 1), "inside the floor")
	assert.Equal(t, MaxTemperature, Temperature(0, 0), "at the center")

	// Speed alone clamps too, even far away.
	assert.Equal(t, MaxTemperature, Temperature(1e6, 1000), "clamp at max")
	assert.LessOrEqual(t, Temperature(250, 200), MaxTemperature)
}

func TestColorTemperatureTiers(t *testing.T) {
	const disk = 80.0
	far := 500.0 // well outside the disk

	tests := []struct {
		name  string
		temp  float64
		wantR float64
		wantG float64
	}{
		{"very hot is white", 2.5, 1.0, 1.0},
		{"hot is the same white", 1.5, 1.0, 1.0},
		{"cool ramps green with temperature", 0.5, 1.0, 0.3 + 0.5*0.4},
		{"cold floor", 0.0, 1.0, 0.3},
	}
	for _, tt := range tests {
		r, g := Color(tt.temp, far, disk)
		assert.Equal(t, tt.wantR, r, tt.name)
		assert.InDelta(t, tt.wantG, g, 1e-12, tt.name)
	}
}

func TestColorAccretionDiskOverridesTemperature(t *testing.T) {
	const disk = 80.0

	// Inside the disk the tier wins regardless of temperature.
	for _, temp := range []float64{0, 1.5, 3.0} {
		r, g := Color(temp, 40, disk)
		assert.InDelta(t, 0.8+0.2*0.5, r, 1e-12, "disk red at temp=%g", temp)
		assert.InDelta(t, 0.9+0.1*0.5, g, 1e-12, "disk green at temp=%g", temp)
	}

	// The boundary is strict: exactly at the radius is outside.
	r, g := Color(0.5, disk, disk)
	assert.Equal(t, 1.0, r, "at the boundary the temperature tier applies")
	assert.InDelta(t, 0.5, g, 1e-12)

	// Just inside, the disk factor is nearly zero.
	r, g = Color(0.5, disk-1e-9, disk)
	assert.InDelta(t, 0.8, r, 1e-6)
	assert.InDelta(t, 0.9, g, 1e-6)
}
