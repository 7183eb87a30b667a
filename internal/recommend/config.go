// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

// Package recommend implements the event and connection recommendation
// engines. Both are pure per-call computations over the record store:
// no state is kept between requests, so concurrent calls are safe.
package recommend

import "fmt"

// Config carries the scoring weights and limits for both engines. The
// zero value is not usable; start from DefaultConfig.
type Config struct {
	// Event scoring: score = InterestWeight*overlap + ProximityWeight*proximity.
	InterestWeight  float64 `json:"interest_weight"  koanf:"interest_weight"`
	ProximityWeight float64 `json:"proximity_weight" koanf:"proximity_weight"`

	// Connection scoring: score = SharedInterestWeight*|shared interests|
	// + MutualConnectionWeight*|mutual accepted connections|
	// + SharedEventWeight*|shared attending events|.
	SharedInterestWeight   float64 `json:"shared_interest_weight"   koanf:"shared_interest_weight"`
	MutualConnectionWeight float64 `json:"mutual_connection_weight" koanf:"mutual_connection_weight"`
	SharedEventWeight      float64 `json:"shared_event_weight"      koanf:"shared_event_weight"`

	// DefaultLimit caps result lists when the caller does not pass one.
	DefaultLimit int `json:"default_limit" koanf:"default_limit"`

	// DefaultMaxDistanceKm bounds event searches when the caller does
	// not pass a distance.
	DefaultMaxDistanceKm float64 `json:"default_max_distance_km" koanf:"default_max_distance_km"`
}

// DefaultConfig returns the stock scoring configuration.
func DefaultConfig() Config {
	return Config{
		InterestWeight:         0.5,
		ProximityWeight:        0.5,
		SharedInterestWeight:   2,
		MutualConnectionWeight: 3,
		SharedEventWeight:      1,
		DefaultLimit:           10,
		DefaultMaxDistanceKm:   50,
	}
}

// Validate rejects configurations that would produce nonsense rankings.
func (c Config) Validate() error {
	if c.InterestWeight < 0 || c.ProximityWeight < 0 ||
		c.SharedInterestWeight < 0 || c.MutualConnectionWeight < 0 ||
		c.SharedEventWeight < 0 {
		return fmt.Errorf("recommend: weights must be non-negative")
	}
	if c.InterestWeight+c.ProximityWeight == 0 {
		return fmt.Errorf("recommend: event weights must not both be zero")
	}
	if c.DefaultLimit <= 0 {
		return fmt.Errorf("recommend: default_limit must be positive, got %d", c.DefaultLimit)
	}
	if c.DefaultMaxDistanceKm < 0 {
		return fmt.Errorf("recommend: default_max_distance_km must be non-negative, got %v", c.DefaultMaxDistanceKm)
	}
	return nil
}
