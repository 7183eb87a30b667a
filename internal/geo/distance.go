// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

// Package geo provides great-circle distance math and radius filtering
// for the event recommendation engine.
package geo

import (
	"math"
	"sort"
)

// Point is a named coordinate pair, typically an event venue.
type Point struct {
	ID  string
	Lat float64
	Lon float64
}

// Neighbor is a point annotated with its distance from a query origin.
type Neighbor struct {
	Point
	DistanceKm float64
}

// Distance calculates the great-circle distance between two points on
// Earth using the Haversine formula. Returns distance in kilometers.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371.0

	// Convert to radians
	lat1Rad := lat1 * math.Pi / 180.0
	lon1Rad := lon1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0
	lon2Rad := lon2 * math.Pi / 180.0

	// Haversine formula
	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// WithinRadius returns the points at most maxKm kilometers from the
// origin, sorted by ascending distance with ties broken by id. A maxKm
// of zero keeps only exact coordinate matches (distance 0).
func WithinRadius(lat, lon, maxKm float64, points []Point) []Neighbor {
	var out []Neighbor
	for _, p := range points {
		d := Distance(lat, lon, p.Lat, p.Lon)
		if d > maxKm {
			continue
		}
		out = append(out, Neighbor{Point: p, DistanceKm: d})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DistanceKm != out[j].DistanceKm {
			return out[i].DistanceKm < out[j].DistanceKm
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// RoundKm rounds a distance to two decimal places for presentation.
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
