package mapview

// FeatureCollection es el subconjunto de GeoJSON (RFC 7946) que consume el mapa.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string            `json:"type"`
	ID         string            `json:"id"`
	Geometry   Point             `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

type Point struct {
	Type string `json:"type"`
	// GeoJSON ordena [longitud, latitud].
	Coordinates [2]float64 `json:"coordinates"`
}

type FeatureProperties struct {
	Date    string `json:"date"`
	Species string `json:"species"`
	Kind    string `json:"kind"`
	Label   string `json:"label"`
	Color   string `json:"color"`
	Located bool   `json:"located"`
}

func ToGeoJSON(markers []Marker) FeatureCollection {
	fc := FeatureCollection{Type: "FeatureCollection", Features: make([]Feature, 0, len(markers))}
	for _, m := range markers {
		fc.Features = append(fc.Features, Feature{
			Type: "Feature",
			ID:   m.ID,
			Geometry: Point{
				Type:        "Point",
				Coordinates: [2]float64{m.Longitude, m.Latitude},
			},
			Properties: FeatureProperties{
				Date:    m.Date,
				Species: m.Species,
				Kind:    string(m.Kind),
				Label:   m.Label,
				Color:   m.Color,
				Located: m.Located,
			},
		})
	}
	return fc
}
