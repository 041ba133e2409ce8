// Package geocode resolves free-text locations to coordinates via the
// Google Maps API. Community reports submitted without coordinates get a
// best-effort fill from here.
package geocode

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"go-suraksha/types"
)

// Geocoder turns an address into coordinates. A nil Geocoder in the
// handler environment disables the fill entirely.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*types.Coordinates, error)
}

// MapsGeocoder is the Google Maps implementation.
type MapsGeocoder struct {
	client *maps.Client
}

// NewMapsGeocoder builds a geocoder from an API key.
func NewMapsGeocoder(apiKey string) (*MapsGeocoder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("maps API key not set")
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating maps client: %w", err)
	}
	return &MapsGeocoder{client: client}, nil
}

// Geocode forward-geocodes an address and returns the first result's
// coordinates, or nil when the API has no match.
func (g *MapsGeocoder) Geocode(ctx context.Context, address string) (*types.Coordinates, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return nil, fmt.Errorf("geocoding %q: %w", address, err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	loc := results[0].Geometry.Location
	return &types.Coordinates{Lat: loc.Lat, Lng: loc.Lng}, nil
}
