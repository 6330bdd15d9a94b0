package types

// Sentiment is the document sentiment returned by Cloud Natural Language.
type Sentiment struct {
	Magnitude float32 `json:"magnitude"`
	Score     float32 `json:"score"`
}

// NamedEntity is one detected entity span and its type label.
// Labels come from the recognizer's taxonomy (PERSON, ORG, GPE, LOCATION, ...).
type NamedEntity struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// GeocodedEntity is a location-like entity resolved to coordinates.
type GeocodedEntity struct {
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	Count            int     `json:"count"`
	FormattedAddress string  `json:"formattedAddress"`
	Lat              float64 `json:"lat"`
	Long             float64 `json:"long"`
}
