package provider

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/tidwall/gjson"

	"github.com/Geezkick/NjiaSafe-Drive/internal/geo"
	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
)

const overpassName = "overpass"

// Categories - соответствие категорий поиска тегам OSM
var Categories = map[string][2]string{
	"gas_station": {"amenity", "fuel"},
	"garage":      {"shop", "car_repair"},
	"supermarket": {"shop", "supermarket"},
	"hospital":    {"amenity", "hospital"},
	"police":      {"amenity", "police"},
}

// Overpass - клиент Overpass API для поиска объектов вокруг точки
type Overpass struct {
	endpoint string
	http     *httpClient
}

func NewOverpass(endpoint string, timeout time.Duration, userAgent string) *Overpass {
	return &Overpass{
		endpoint: endpoint,
		http:     newHTTPClient(timeout, userAgent),
	}
}

func buildOverpassQuery(key, value string, lat, lng float64, radiusMeters int) string {
	return fmt.Sprintf(`[out:json][timeout:15];
(
  node(around:%d,%f,%f)["%s"="%s"];
  way(around:%d,%f,%f)["%s"="%s"];
);
out center;`, radiusMeters, lat, lng, key, value, radiusMeters, lat, lng, key, value)
}

// Nearby возвращает ближайшие объекты категории, отсортированные по расстоянию
func (o *Overpass) Nearby(ctx context.Context, category string, lat, lng float64, radiusMeters, limit int) ([]models.Place, error) {
	tag, ok := Categories[category]
	if !ok {
		return nil, fmt.Errorf("%s: unknown category %q", overpassName, category)
	}

	query := buildOverpassQuery(tag[0], tag[1], lat, lng, radiusMeters)
	body, err := o.http.getBytes(ctx, overpassName, o.endpoint+"?data="+url.QueryEscape(query))
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%s: invalid JSON response", overpassName)
	}

	origin := geo.Point{Lat: lat, Lng: lng}
	places := make([]models.Place, 0)
	gjson.GetBytes(body, "elements").ForEach(func(_, el gjson.Result) bool {
		pLat, pLng := el.Get("lat"), el.Get("lon")
		if !pLat.Exists() {
			// у way координаты лежат в center
			pLat, pLng = el.Get("center.lat"), el.Get("center.lon")
		}
		if !pLat.Exists() || !pLng.Exists() {
			return true
		}

		point := geo.Point{Lat: pLat.Float(), Lng: pLng.Float()}
		name := el.Get("tags.name").String()
		if name == "" {
			name = el.Get("tags.brand").String()
		}
		if name == "" {
			name = category
		}

		places = append(places, models.Place{
			Name:           name,
			DisplayName:    name,
			Category:       category,
			Latitude:       point.Lat,
			Longitude:      point.Lng,
			DistanceMeters: geo.Distance(origin, point),
		})
		return true
	})

	sort.Slice(places, func(i, j int) bool {
		return places[i].DistanceMeters < places[j].DistanceMeters
	})
	if limit > 0 && len(places) > limit {
		places = places[:limit]
	}
	return places, nil
}
