package pipeline

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"go-lifeline/alert"
	"go-lifeline/mapview"
	"go-lifeline/types"
)

// Stage names the steps of a single emergency submission. The run is
// linear: Idle → Geocoding → Locating → Routing → Rendering → Alerting →
// Done, with Failed(stage) terminal from the first four.
type Stage string

const (
	StageIdle      Stage = "Idle"
	StageGeocoding Stage = "Geocoding"
	StageLocating  Stage = "Locating"
	StageRouting   Stage = "Routing"
	StageRendering Stage = "Rendering"
	StageAlerting  Stage = "Alerting"
	StageDone      Stage = "Done"
)

type Geocoder interface {
	Geocode(query string) (types.Coordinate, error)
}

type Locator interface {
	FindNearest(origin types.Coordinate, category types.Category) (types.Facility, error)
}

type Router interface {
	Route(origin, destination types.Coordinate) (types.Route, error)
}

type Dispatcher interface {
	Dispatch() alert.Result
}

// Runner sequences one submission through every stage. Each run is
// independent and stateless relative to prior runs.
type Runner struct {
	Geocoder   Geocoder
	Locator    Locator
	Router     Router
	Dispatcher Dispatcher
}

func NewRunner(geocoder Geocoder, locator Locator, router Router, dispatcher Dispatcher) *Runner {
	return &Runner{Geocoder: geocoder, Locator: locator, Router: router, Dispatcher: dispatcher}
}

// Result is everything the interactive surface renders for one run.
type Result struct {
	QueryID     string               `json:"queryId"`
	Stage       Stage                `json:"stage"`
	Failed      bool                 `json:"failed"`
	FailedStage Stage                `json:"failedStage,omitempty"`
	Message     string               `json:"message,omitempty"`
	Origin      types.Coordinate     `json:"origin"`
	Facility    *types.Facility      `json:"facility,omitempty"`
	Duration    float64              `json:"duration,omitempty"` // seconds
	Distance    float64              `json:"distance,omitempty"` // meters
	Map         *mapview.RenderedMap `json:"map,omitempty"`
	Alert       *alert.Result        `json:"alert,omitempty"`
}

func failed(id string, stage Stage, err error) Result {
	log.Printf("query %s failed at %s: %v", id, stage, err)
	return Result{QueryID: id, Stage: stage, Failed: true, FailedStage: stage, Message: err.Error()}
}

// Run executes the full pipeline for one query. Failures in the first
// four stages short-circuit the rest; an alert failure still reaches Done
// with the call outcome surfaced alongside the result.
func (r *Runner) Run(query types.EmergencyQuery) Result {
	id := uuid.NewString()
	log.Printf("query %s: %q (%s)", id, query.Source, query.Category)

	if !query.Category.Valid() {
		return failed(id, StageIdle, fmt.Errorf("unknown emergency category %q", query.Category))
	}

	// 1. Geocode the source description.
	origin, err := r.Geocoder.Geocode(query.Source)
	if err != nil {
		return failed(id, StageGeocoding, err)
	}

	// 2. Find the nearest facility of the category.
	facility, err := r.Locator.FindNearest(origin, query.Category)
	if err != nil {
		return failed(id, StageLocating, err)
	}

	// 3. Compute the driving route.
	route, err := r.Router.Route(origin, facility.Location)
	if err != nil {
		return failed(id, StageRouting, err)
	}

	// 4. Compose the map document.
	rendered := mapview.Render(origin, facility, route)

	// 5. Place the alert call, only after rendering succeeded. Its
	// outcome never reverts the run.
	callResult := r.Dispatcher.Dispatch()

	log.Printf("query %s done: %s at %.0fm, %.0fs drive", id, facility.Name, route.Distance, route.Duration)
	return Result{
		QueryID:  id,
		Stage:    StageDone,
		Origin:   origin,
		Facility: &facility,
		Duration: route.Duration,
		Distance: route.Distance,
		Map:      &rendered,
		Alert:    &callResult,
	}
}
