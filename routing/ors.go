package routing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"go-lifeline/types"
)

// Profile is the only routing profile the service requests.
const Profile = "driving-car"

// Client calls the OpenRouteService directions API. A missing API key is
// a hard error for every query.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{BaseURL: baseURL, APIKey: apiKey, HTTPClient: http.DefaultClient}
}

type directionsRequest struct {
	Coordinates [][2]float64 `json:"coordinates"`
}

// Route requests a driving route between two coordinates and returns the
// full ordered polyline plus duration (seconds) and distance (meters).
// The upstream GeoJSON (lon, lat) order is normalized to (lat, lon).
func (c *Client) Route(origin, destination types.Coordinate) (types.Route, error) {
	if c.APIKey == "" {
		return types.Route{}, &types.RoutingError{Reason: "API key is not configured"}
	}

	// ORS expects (lon, lat) pairs.
	body, err := json.Marshal(directionsRequest{
		Coordinates: [][2]float64{
			{origin.Lon, origin.Lat},
			{destination.Lon, destination.Lat},
		},
	})
	if err != nil {
		return types.Route{}, &types.RoutingError{Reason: "encoding request", Err: err}
	}

	u := fmt.Sprintf("%s/v2/directions/%s/geojson", c.BaseURL, Profile)
	req, err := http.NewRequest(http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return types.Route{}, &types.RoutingError{Reason: "building request", Err: err}
	}
	req.Header.Set("Authorization", c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return types.Route{}, &types.RoutingError{Reason: "routing service unreachable", Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.Route{}, &types.RoutingError{Reason: "reading response", Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return types.Route{}, &types.RoutingError{
			Reason: fmt.Sprintf("routing service returned status %d", resp.StatusCode),
		}
	}

	fc, err := geojson.UnmarshalFeatureCollection(payload)
	if err != nil {
		return types.Route{}, &types.RoutingError{Reason: "decoding response", Err: err}
	}
	if len(fc.Features) == 0 {
		return types.Route{}, &types.RoutingError{Reason: "no route between the two points"}
	}

	feature := fc.Features[0]
	line, ok := feature.Geometry.(orb.LineString)
	if !ok || len(line) == 0 {
		return types.Route{}, &types.RoutingError{Reason: "response contained no route geometry"}
	}

	polyline := make([]types.Coordinate, 0, len(line))
	for _, pt := range line {
		polyline = append(polyline, types.Coordinate{Lat: pt.Lat(), Lon: pt.Lon()})
	}

	duration, distance, err := summaryOf(feature)
	if err != nil {
		return types.Route{}, &types.RoutingError{Reason: "response contained no summary", Err: err}
	}

	return types.Route{Polyline: polyline, Duration: duration, Distance: distance}, nil
}

func summaryOf(feature *geojson.Feature) (duration, distance float64, err error) {
	summary, ok := feature.Properties["summary"].(map[string]interface{})
	if !ok {
		return 0, 0, fmt.Errorf("missing summary properties")
	}
	duration, ok = summary["duration"].(float64)
	if !ok {
		return 0, 0, fmt.Errorf("missing duration")
	}
	distance, ok = summary["distance"].(float64)
	if !ok {
		return 0, 0, fmt.Errorf("missing distance")
	}
	return duration, distance, nil
}
