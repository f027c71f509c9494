package facilities

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go-lifeline/types"
)

// latLon mirrors the point shape Overpass uses for way/relation geometry.
type latLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// element is a single feature from an Overpass JSON response. Nodes carry
// lat/lon directly; ways carry a geometry ring; relations carry members
// whose outer ways carry geometry rings.
type element struct {
	Type     string            `json:"type"`
	ID       int64             `json:"id"`
	Lat      float64           `json:"lat"`
	Lon      float64           `json:"lon"`
	Tags     map[string]string `json:"tags"`
	Geometry []latLon          `json:"geometry"`
	Members  []member          `json:"members"`
}

type member struct {
	Type     string   `json:"type"`
	Role     string   `json:"role"`
	Geometry []latLon `json:"geometry"`
}

type overpassResponse struct {
	Elements []element `json:"elements"`
}

// OverpassClient queries OSM features of a given amenity tag around a
// point. Single try, no retries.
type OverpassClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewOverpassClient(baseURL string) *OverpassClient {
	return &OverpassClient{BaseURL: baseURL, HTTPClient: http.DefaultClient}
}

func (c *OverpassClient) featuresAround(origin types.Coordinate, amenity string, radiusMeters float64) ([]element, error) {
	query := fmt.Sprintf(`[out:json][timeout:25];
(
  node["amenity"=%[1]q](around:%.0[2]f,%[3]f,%[4]f);
  way["amenity"=%[1]q](around:%.0[2]f,%[3]f,%[4]f);
  relation["amenity"=%[1]q](around:%.0[2]f,%[3]f,%[4]f);
);
out geom;`, amenity, radiusMeters, origin.Lat, origin.Lon)

	form := url.Values{}
	form.Set("data", query)

	resp, err := c.HTTPClient.Post(c.BaseURL, "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("feature query failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feature service returned status %d", resp.StatusCode)
	}

	var decoded overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding feature response: %w", err)
	}
	return decoded.Elements, nil
}
