// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package geo

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		lat1, lon1 float64
		lat2, lon2 float64
		expectedKm float64
		tolerance  float64
	}{
		{
			name: "same point",
			lat1: 40.7128, lon1: -74.0060,
			lat2: 40.7128, lon2: -74.0060,
			expectedKm: 0,
			tolerance:  0.001,
		},
		{
			name: "new york to los angeles",
			lat1: 40.7128, lon1: -74.0060,
			lat2: 34.0522, lon2: -118.2437,
			expectedKm: 3936,
			tolerance:  50,
		},
		{
			name: "london to paris",
			lat1: 51.5074, lon1: -0.1278,
			lat2: 48.8566, lon2: 2.3522,
			expectedKm: 344,
			tolerance:  10,
		},
		{
			name: "across the antimeridian",
			lat1: 0, lon1: 179.5,
			lat2: 0, lon2: -179.5,
			expectedKm: 111,
			tolerance:  5,
		},
		{
			name: "pole to pole",
			lat1: 90, lon1: 0,
			lat2: -90, lon2: 0,
			expectedKm: 20015,
			tolerance:  50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dist := Distance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if diff := math.Abs(dist - tt.expectedKm); diff > tt.tolerance {
				t.Errorf("Distance = %.2f km, want ~%.2f km (diff: %.2f)", dist, tt.expectedKm, diff)
			}
		})
	}
}

func TestWithinRadius(t *testing.T) {
	t.Parallel()

	// Origin: central London. Points at increasing distance plus one
	// coordinate-exact duplicate pair for tie-breaking.
	origin := Point{Lat: 51.5074, Lon: -0.1278}
	points := []Point{
		{ID: "paris", Lat: 48.8566, Lon: 2.3522},
		{ID: "b-here", Lat: 51.5074, Lon: -0.1278},
		{ID: "a-here", Lat: 51.5074, Lon: -0.1278},
		{ID: "edinburgh", Lat: 55.9533, Lon: -3.1883},
		{ID: "new-york", Lat: 40.7128, Lon: -74.0060},
	}

	t.Run("orders by distance then id", func(t *testing.T) {
		t.Parallel()

		got := WithinRadius(origin.Lat, origin.Lon, 600, points)
		want := []string{"a-here", "b-here", "paris", "edinburgh"}
		if len(got) != len(want) {
			t.Fatalf("got %d neighbors, want %d", len(got), len(want))
		}
		for i, n := range got {
			if n.ID != want[i] {
				t.Errorf("neighbor[%d] = %q, want %q", i, n.ID, want[i])
			}
		}
		for i := 1; i < len(got); i++ {
			if got[i].DistanceKm < got[i-1].DistanceKm {
				t.Errorf("neighbors not sorted: %f before %f", got[i-1].DistanceKm, got[i].DistanceKm)
			}
		}
	})

	t.Run("zero radius keeps exact matches only", func(t *testing.T) {
		t.Parallel()

		got := WithinRadius(origin.Lat, origin.Lon, 0, points)
		if len(got) != 2 {
			t.Fatalf("got %d neighbors, want 2", len(got))
		}
		if got[0].ID != "a-here" || got[1].ID != "b-here" {
			t.Errorf("got %q, %q; want a-here, b-here", got[0].ID, got[1].ID)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		if got := WithinRadius(origin.Lat, origin.Lon, 100, nil); len(got) != 0 {
			t.Errorf("got %d neighbors, want 0", len(got))
		}
	})
}

func TestRoundKm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.004, 1.0},
		{1.006, 1.01},
		{343.554, 343.55},
	}
	for _, tt := range tests {
		if got := RoundKm(tt.in); got != tt.want {
			t.Errorf("RoundKm(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
