package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
)

// IncidentsFeatureCollection строит слой происшествий для карты
func IncidentsFeatureCollection(incidents []*models.Incident) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, inc := range incidents {
		f := geojson.NewFeature(orb.Point{inc.Longitude, inc.Latitude})
		f.ID = inc.ID.String()
		f.Properties["type"] = string(inc.Type)
		f.Properties["description"] = inc.Description
		f.Properties["status"] = inc.Status
		f.Properties["radius_meters"] = inc.RadiusMeters
		f.Properties["created_at"] = inc.CreatedAt
		fc.Append(f)
	}
	return fc
}

// RouteFeature представляет маршрут линией GeoJSON
func RouteFeature(route *models.Route) *geojson.Feature {
	line := make(orb.LineString, len(route.Points))
	for i, p := range route.Points {
		line[i] = orb.Point{p.Lng, p.Lat}
	}
	f := geojson.NewFeature(line)
	f.Properties["mode"] = string(route.Mode)
	f.Properties["distance_meters"] = route.DistanceMeters
	f.Properties["duration_seconds"] = route.DurationSeconds
	f.Properties["safety_score"] = route.SafetyScore
	return f
}
