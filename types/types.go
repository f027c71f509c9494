package types

// Coordinate is a (latitude, longitude) pair in decimal degrees.
// Immutable once obtained from geocoding or facility extraction.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Category string

const (
	Medical Category = "Medical"
	Fire    Category = "Fire"
	Police  Category = "Police"
)

func (c Category) Valid() bool {
	switch c {
	case Medical, Fire, Police:
		return true
	}
	return false
}

// AmenityTag maps a category to the OSM amenity value used by the
// feature query.
func (c Category) AmenityTag() string {
	switch c {
	case Medical:
		return "hospital"
	case Fire:
		return "fire_station"
	case Police:
		return "police"
	}
	return ""
}

// Icon maps a category to its Font Awesome marker icon.
func (c Category) Icon() string {
	switch c {
	case Medical:
		return "hospital"
	case Fire:
		return "fire-extinguisher"
	case Police:
		return "building-shield"
	}
	return ""
}

// UnnamedLabel is the fallback name for facilities missing a name tag.
func (c Category) UnnamedLabel() string {
	return "Unnamed " + string(c)
}

type Facility struct {
	Name     string     `json:"name"`
	Location Coordinate `json:"location"`
	Category Category   `json:"category"`
}

// Route is an ordered driving polyline plus scalar summaries.
// Polyline order is always (lat, lon).
type Route struct {
	Polyline []Coordinate `json:"polyline"`
	Duration float64      `json:"duration"` // seconds
	Distance float64      `json:"distance"` // meters
}

// EmergencyQuery is the only user-supplied input; one pipeline run per
// submission, no retained history.
type EmergencyQuery struct {
	Source   string   `json:"location"`
	Category Category `json:"category"`
}
