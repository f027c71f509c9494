package facilities

import (
	"log"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"go-lifeline/geo"
	"go-lifeline/types"
)

// SearchRadiusMeters bounds every facility search around the origin.
const SearchRadiusMeters = 5000.0

// Locator finds the nearest emergency facility of a category.
type Locator struct {
	Features *OverpassClient
}

func NewLocator(features *OverpassClient) *Locator {
	return &Locator{Features: features}
}

// FindNearest queries all facilities of the category within the search
// radius and selects the minimum great-circle-distance one. Ties keep the
// first-encountered facility in result-set order.
func (l *Locator) FindNearest(origin types.Coordinate, category types.Category) (types.Facility, error) {
	elements, err := l.Features.featuresAround(origin, category.AmenityTag(), SearchRadiusMeters)
	if err != nil {
		return types.Facility{}, err
	}

	var (
		best     types.Facility
		bestDist = -1.0
	)
	for _, el := range elements {
		point, ok := representativePoint(el)
		if !ok {
			continue
		}

		name := el.Tags["name"]
		if name == "" {
			name = category.UnnamedLabel()
		}

		dist := geo.HaversineMeters(origin, point)
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = types.Facility{Name: name, Location: point, Category: category}
		}
	}

	if bestDist < 0 {
		return types.Facility{}, &types.NotFoundError{Category: category, RadiusMeters: SearchRadiusMeters}
	}

	log.Printf("Nearest %s facility: %s (%.0fm)", category, best.Name, bestDist)
	return best, nil
}

// representativePoint derives a single coordinate per feature: nodes are
// used directly, closed ways and multipolygon relations reduce to their
// centroid, anything else is skipped.
func representativePoint(el element) (types.Coordinate, bool) {
	switch el.Type {
	case "node":
		return types.Coordinate{Lat: el.Lat, Lon: el.Lon}, true

	case "way":
		ring := toRing(el.Geometry)
		if ring == nil {
			return types.Coordinate{}, false
		}
		centroid, _ := planar.CentroidArea(orb.Polygon{ring})
		return types.Coordinate{Lat: centroid.Lat(), Lon: centroid.Lon()}, true

	case "relation":
		var mp orb.MultiPolygon
		for _, m := range el.Members {
			if m.Type != "way" || m.Role != "outer" {
				continue
			}
			if ring := toRing(m.Geometry); ring != nil {
				mp = append(mp, orb.Polygon{ring})
			}
		}
		if len(mp) == 0 {
			return types.Coordinate{}, false
		}
		centroid, _ := planar.CentroidArea(mp)
		return types.Coordinate{Lat: centroid.Lat(), Lon: centroid.Lon()}, true
	}

	return types.Coordinate{}, false
}

// toRing builds a closed orb ring from way geometry, or nil when the way
// is linear rather than an area.
func toRing(points []latLon) orb.Ring {
	if len(points) < 4 {
		return nil
	}
	ring := make(orb.Ring, 0, len(points))
	for _, p := range points {
		ring = append(ring, orb.Point{p.Lon, p.Lat})
	}
	if !ring.Closed() {
		return nil
	}
	return ring
}
