package geo

import (
	"math"
	"testing"

	"skytaxi/internal/types"
)

func TestDistanceKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		a, b      types.Point
		wantKm    float64
		tolerance float64
	}{
		{
			name:      "same point",
			a:         types.Point{Lat: 12.9716, Lng: 77.5946},
			b:         types.Point{Lat: 12.9716, Lng: 77.5946},
			wantKm:    0,
			tolerance: 0,
		},
		{
			name:      "MG Road to Koramangala (~4.6km)",
			a:         types.Point{Lat: 12.9716, Lng: 77.5946},
			b:         types.Point{Lat: 12.9351, Lng: 77.6146},
			wantKm:    4.601,
			tolerance: 0.001,
		},
		{
			name:      "New York to Los Angeles (~3936km)",
			a:         types.Point{Lat: 40.7128, Lng: -74.0060},
			b:         types.Point{Lat: 34.0522, Lng: -118.2437},
			wantKm:    3935.7,
			tolerance: 1,
		},
		{
			name:      "quarter meridian",
			a:         types.Point{Lat: 0, Lng: 0},
			b:         types.Point{Lat: 90, Lng: 0},
			wantKm:    EarthRadiusKm * math.Pi / 2,
			tolerance: 0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.a, tt.b)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("DistanceKm() = %f, want %f (±%f)", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}

func TestDistanceKm_Symmetry(t *testing.T) {
	pairs := [][2]types.Point{
		{{Lat: 25.0, Lng: 121.0}, {Lat: 26.0, Lng: 122.0}},
		{{Lat: 12.9716, Lng: 77.5946}, {Lat: 12.9351, Lng: 77.6146}},
		{{Lat: -33.8688, Lng: 151.2093}, {Lat: 51.5074, Lng: -0.1278}},
	}
	for _, p := range pairs {
		d1 := DistanceKm(p[0], p[1])
		d2 := DistanceKm(p[1], p[0])
		if d1 != d2 {
			t.Errorf("DistanceKm not symmetric for %v: %f vs %f", p, d1, d2)
		}
	}
}

func TestDistanceKm_ZeroOnlyForSamePoint(t *testing.T) {
	a := types.Point{Lat: 12.9716, Lng: 77.5946}
	if d := DistanceKm(a, a); d != 0 {
		t.Fatalf("DistanceKm(a, a) = %f, want 0", d)
	}
	b := types.Point{Lat: 12.9717, Lng: 77.5946}
	if d := DistanceKm(a, b); d <= 0 {
		t.Fatalf("DistanceKm(a, b) = %f, want > 0", d)
	}
}
