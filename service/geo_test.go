package service

import (
	"math"
	"testing"
)

func TestHaversineSamePointIsZero(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{18.52, 73.85},
		{-33.86, 151.20},
		{89.9, -179.9},
	}
	for _, p := range points {
		if d := Haversine(p[0], p[1], p[0], p[1]); d != 0 {
			t.Errorf("Haversine(%v, %v, same) = %v, want 0", p[0], p[1], d)
		}
	}
}

func TestHaversineIsSymmetric(t *testing.T) {
	ab := Haversine(18.52, 73.85, 19.07, 72.87)
	ba := Haversine(19.07, 72.87, 18.52, 73.85)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("not symmetric: %v vs %v", ab, ba)
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// Pune to Mumbai, roughly 120 km.
	d := Haversine(18.5204, 73.8567, 19.0760, 72.8777)
	if d < 100 || d > 140 {
		t.Errorf("Pune-Mumbai: got %v km, want ~120", d)
	}
}

func TestHaversineGrowsWithSeparation(t *testing.T) {
	near := Haversine(18.52, 73.85, 18.53, 73.85)
	far := Haversine(18.52, 73.85, 18.60, 73.85)
	if near >= far {
		t.Errorf("distance not monotonic: near %v >= far %v", near, far)
	}
}

func TestHaversinePropagatesNaN(t *testing.T) {
	if d := Haversine(math.NaN(), 73.85, 18.52, 73.85); !math.IsNaN(d) {
		t.Errorf("NaN input: got %v, want NaN", d)
	}
}
