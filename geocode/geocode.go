package geocode

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go-lifeline/types"
)

// RegionQualifier pins every lookup to the covered metropolitan area.
const RegionQualifier = ", Bangalore, India"

// nominatimResult is shaped for the Nominatim search API response.
type nominatimResult struct {
	PlaceID     int64  `json:"place_id"`
	OsmType     string `json:"osm_type"`
	OsmID       int64  `json:"osm_id"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Class       string `json:"class"`
	Type        string `json:"type"`
	DisplayName string `json:"display_name"`
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Region     string
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: http.DefaultClient,
		Region:     RegionQualifier,
	}
}

// Geocode resolves a free-text place description, scoped to the fixed
// region, into a coordinate. A single try; failures surface directly.
func (c *Client) Geocode(query string) (types.Coordinate, error) {
	params := url.Values{}
	params.Set("q", query+c.Region)
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("accept-language", "en")

	u := fmt.Sprintf("%s/search?%s", c.BaseURL, params.Encode())

	resp, err := c.HTTPClient.Get(u)
	if err != nil {
		return types.Coordinate{}, &types.LookupError{Query: query, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Coordinate{}, &types.LookupError{
			Query: query,
			Err:   fmt.Errorf("geocoding service returned status %d", resp.StatusCode),
		}
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return types.Coordinate{}, &types.LookupError{Query: query, Err: err}
	}
	if len(results) == 0 {
		return types.Coordinate{}, &types.LookupError{Query: query}
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return types.Coordinate{}, &types.LookupError{Query: query, Err: err}
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return types.Coordinate{}, &types.LookupError{Query: query, Err: err}
	}

	return types.Coordinate{Lat: lat, Lon: lon}, nil
}
