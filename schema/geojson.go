package schema

// Geometry is the raw GeoJSON geometry of a district polygon. Coordinates are
// kept opaque; the server never inspects them, it only hands them to the
// client-side renderer.
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates interface{} `json:"coordinates"`
}

// GeoFeature is one district shape from the boundary file. Properties carry at
// least the district name and its census code. ID is filled in once by the
// geojson index so the choropleth can join on it; it stays empty for features
// whose properties are incomplete.
type GeoFeature struct {
	Type       string                 `json:"type"`
	ID         string                 `json:"id,omitempty"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   Geometry               `json:"geometry"`
}

// FeatureCollection is the top-level GeoJSON document.
type FeatureCollection struct {
	Type     string        `json:"type"`
	Name     string        `json:"name,omitempty"`
	Features []*GeoFeature `json:"features"`
}
