package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-lifeline/alert"
	"go-lifeline/handlers"
	"go-lifeline/pipeline"
	"go-lifeline/types"
)

type stubGeocoder struct {
	coord types.Coordinate
	err   error
}

func (s stubGeocoder) Geocode(string) (types.Coordinate, error) { return s.coord, s.err }

type stubLocator struct {
	facility types.Facility
	err      error
}

func (s stubLocator) FindNearest(types.Coordinate, types.Category) (types.Facility, error) {
	return s.facility, s.err
}

type stubRouter struct {
	route types.Route
	err   error
}

func (s stubRouter) Route(types.Coordinate, types.Coordinate) (types.Route, error) {
	return s.route, s.err
}

type stubDispatcher struct{ result alert.Result }

func (s stubDispatcher) Dispatch() alert.Result { return s.result }

func post(t *testing.T, runner *pipeline.Runner, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/emergency", func(c *gin.Context) {
		handlers.RunEmergency(c, runner)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/emergency", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func happyRunner() *pipeline.Runner {
	return pipeline.NewRunner(
		stubGeocoder{coord: types.Coordinate{Lat: 12.9237, Lon: 77.4987}},
		stubLocator{facility: types.Facility{
			Name:     "Near Hospital",
			Location: types.Coordinate{Lat: 12.9309, Lon: 77.4987},
			Category: types.Medical,
		}},
		stubRouter{route: types.Route{
			Polyline: []types.Coordinate{
				{Lat: 12.9237, Lon: 77.4987},
				{Lat: 12.9309, Lon: 77.4987},
			},
			Duration: 180,
			Distance: 820,
		}},
		stubDispatcher{result: alert.Result{Skipped: true, Warning: "credentials missing"}},
	)
}

func TestRunEmergencySuccess(t *testing.T) {
	w := post(t, happyRunner(), `{"location": "RV College of Engineering", "category": "Medical"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Done", body["stage"])
	facility := body["facility"].(map[string]interface{})
	assert.Equal(t, "Near Hospital", facility["name"])
	assert.NotNil(t, body["map"])
	alertStatus := body["alert"].(map[string]interface{})
	assert.Equal(t, true, alertStatus["skipped"])
}

func TestRunEmergencyMissingLocation(t *testing.T) {
	w := post(t, happyRunner(), `{"category": "Medical"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRunEmergencyUnknownCategory(t *testing.T) {
	w := post(t, happyRunner(), `{"location": "somewhere", "category": "Earthquake"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRunEmergencyLookupFailure(t *testing.T) {
	runner := pipeline.NewRunner(
		stubGeocoder{err: &types.LookupError{Query: "gibberish"}},
		stubLocator{}, stubRouter{}, stubDispatcher{},
	)

	w := post(t, runner, `{"location": "gibberish", "category": "Medical"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Geocoding", body["failedStage"])
}

func TestRunEmergencyRoutingFailure(t *testing.T) {
	runner := pipeline.NewRunner(
		stubGeocoder{coord: types.Coordinate{Lat: 12.9237, Lon: 77.4987}},
		stubLocator{facility: types.Facility{Name: "Near Hospital", Category: types.Medical}},
		stubRouter{err: &types.RoutingError{Reason: "routing service returned status 403"}},
		stubDispatcher{},
	)

	w := post(t, runner, `{"location": "RV College of Engineering", "category": "Medical"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Routing", body["failedStage"])
}
