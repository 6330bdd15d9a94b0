package geocode

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go-ytlens/types"

	"googlemaps.github.io/maps"
)

// maxLookups bounds how many entities are geocoded per submission.
const maxLookups = 10

// locationTypes are the entity labels, across recognizers, that name places.
var locationTypes = map[string]bool{
	"GPE":      true,
	"LOC":      true,
	"LOCATION": true,
	"ADDRESS":  true,
}

// Geocoder resolves location entities with the Google Maps geocoding API.
type Geocoder struct {
	client *maps.Client
}

// NewGeocoder creates a geocoder from a Maps API key.
func NewGeocoder(apiKey string, opts ...maps.ClientOption) (*Geocoder, error) {
	if apiKey == "" {
		return nil, errors.New("MAPS_CREDENTIALS environment variable not set")
	}
	opts = append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)
	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Geocoder{client: client}, nil
}

// GeocodeAddress takes an address string and returns geocoding results.
func (g *Geocoder) GeocodeAddress(ctx context.Context, address string) ([]maps.GeocodingResult, error) {
	req := &maps.GeocodingRequest{
		Address: address,
	}

	results, err := g.client.Geocode(ctx, req)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GeocodeEntities geocodes the location-like entities among top, in order.
// Entity types are looked up from the comments' NER pairs. Lookups that fail
// or return nothing are logged and skipped.
func (g *Geocoder) GeocodeEntities(ctx context.Context, comments []types.Comment, top types.LabelCounts) []types.GeocodedEntity {
	entityTypes := LocationEntityTypes(comments)

	var out []types.GeocodedEntity
	lookups := 0
	for i, name := range top.Labels {
		entityType, ok := entityTypes[name]
		if !ok {
			continue
		}
		if lookups >= maxLookups {
			break
		}
		lookups++

		results, err := g.GeocodeAddress(ctx, name)
		if err != nil {
			log.Printf("Failed to geocode %s: %v", name, err)
			continue
		}
		if len(results) == 0 {
			log.Printf("No geocode results for %s", name)
			continue
		}

		loc := results[0].Geometry.Location
		out = append(out, types.GeocodedEntity{
			Name:             name,
			Type:             entityType,
			Count:            top.Counts[i],
			FormattedAddress: results[0].FormattedAddress,
			Lat:              loc.Lat,
			Long:             loc.Lng,
		})
	}
	return out
}

// LocationEntityTypes maps lower-cased entity text to the first location-like
// type it was detected with.
func LocationEntityTypes(comments []types.Comment) map[string]string {
	found := make(map[string]string)
	for _, c := range comments {
		for i, e := range c.NER {
			if !locationTypes[e.Type] {
				continue
			}
			key := e.Text
			if i < len(c.NERList) {
				key = c.NERList[i]
			}
			if _, ok := found[key]; !ok {
				found[key] = e.Type
			}
		}
	}
	return found
}
