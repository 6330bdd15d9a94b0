package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-ytlens/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

func newTestGeocoder(t *testing.T, handler http.HandlerFunc) *Geocoder {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	g, err := NewGeocoder("test-key", maps.WithBaseURL(server.URL))
	require.NoError(t, err)
	return g
}

func TestNewGeocoder_RequiresKey(t *testing.T) {
	_, err := NewGeocoder("")
	require.Error(t, err)
}

func TestLocationEntityTypes(t *testing.T) {
	comments := []types.Comment{
		{
			NER:     []types.NamedEntity{{Text: "Paris", Type: "GPE"}, {Text: "Alice", Type: "PERSON"}},
			NERList: []string{"paris", "alice"},
		},
		{
			NER:     []types.NamedEntity{{Text: "PARIS", Type: "LOCATION"}, {Text: "Main St", Type: "ADDRESS"}},
			NERList: []string{"paris", "main st"},
		},
	}

	got := LocationEntityTypes(comments)

	assert.Equal(t, map[string]string{"paris": "GPE", "main st": "ADDRESS"}, got)
}

func TestGeocodeEntities(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/geocode/json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Query().Get("address") {
		case "paris":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "OK",
				"results": []interface{}{
					map[string]interface{}{
						"formatted_address": "Paris, France",
						"geometry": map[string]interface{}{
							"location": map[string]interface{}{"lat": 48.8566, "lng": 2.3522},
						},
					},
				},
			})
		default:
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "ZERO_RESULTS",
				"results": []interface{}{},
			})
		}
	})

	comments := []types.Comment{
		{
			NER:     []types.NamedEntity{{Text: "Paris", Type: "GPE"}, {Text: "Alice", Type: "PERSON"}, {Text: "Atlantis", Type: "LOC"}},
			NERList: []string{"paris", "alice", "atlantis"},
		},
	}
	top := types.LabelCounts{Labels: []string{"alice", "paris", "atlantis"}, Counts: []int{4, 3, 1}}

	got := g.GeocodeEntities(context.Background(), comments, top)

	require.Len(t, got, 1)
	assert.Equal(t, "paris", got[0].Name)
	assert.Equal(t, "GPE", got[0].Type)
	assert.Equal(t, 3, got[0].Count)
	assert.Equal(t, "Paris, France", got[0].FormattedAddress)
	assert.InDelta(t, 48.8566, got[0].Lat, 1e-6)
	assert.InDelta(t, 2.3522, got[0].Long, 1e-6)
}

func TestGeocodeEntities_APIErrorSkipped(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":        "REQUEST_DENIED",
			"error_message": "bad key",
		})
	})

	comments := []types.Comment{{NER: []types.NamedEntity{{Text: "Paris", Type: "GPE"}}, NERList: []string{"paris"}}}
	top := types.LabelCounts{Labels: []string{"paris"}, Counts: []int{1}}

	assert.Empty(t, g.GeocodeEntities(context.Background(), comments, top))
}
