package mapview

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"go-lifeline/types"
)

// Satellite basemap the interactive page tiles from.
const (
	TileURL     = "https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{z}/{y}/{x}"
	Attribution = "Esri World Imagery"
	DefaultZoom = 14
)

// RenderedMap is the render-ready document the page consumes: markers and
// the route as GeoJSON plus basemap/view configuration.
type RenderedMap struct {
	Center      types.Coordinate           `json:"center"`
	Zoom        int                        `json:"zoom"`
	TileURL     string                     `json:"tileUrl"`
	Attribution string                     `json:"attribution"`
	Features    *geojson.FeatureCollection `json:"features"`
}

// Render composes the origin marker, facility marker, and route polyline
// with directional decoration. Pure presentation; the caller guarantees a
// non-empty route.
func Render(origin types.Coordinate, facility types.Facility, route types.Route) RenderedMap {
	fc := geojson.NewFeatureCollection()

	originMarker := geojson.NewFeature(orb.Point{origin.Lon, origin.Lat})
	originMarker.Properties = geojson.Properties{
		"marker": "origin",
		"popup":  "Your Location",
		"color":  "blue",
		"icon":   "user",
	}
	fc.Append(originMarker)

	facilityMarker := geojson.NewFeature(orb.Point{facility.Location.Lon, facility.Location.Lat})
	facilityMarker.Properties = geojson.Properties{
		"marker": "facility",
		"popup":  facility.Name,
		"color":  "red",
		"icon":   facility.Category.Icon(),
	}
	fc.Append(facilityMarker)

	line := make(orb.LineString, 0, len(route.Polyline))
	for _, c := range route.Polyline {
		line = append(line, orb.Point{c.Lon, c.Lat})
	}
	routeFeature := geojson.NewFeature(line)
	routeFeature.Properties = geojson.Properties{
		"stroke":      "orange",
		"weight":      6,
		"opacity":     0.9,
		"tooltip":     fmt.Sprintf("Route to %s", facility.Name),
		"arrowSymbol": "➔ ",
		"arrowRepeat": true,
		"arrowOffset": 7,
	}
	fc.Append(routeFeature)

	return RenderedMap{
		Center:      origin,
		Zoom:        DefaultZoom,
		TileURL:     TileURL,
		Attribution: Attribution,
		Features:    fc,
	}
}
