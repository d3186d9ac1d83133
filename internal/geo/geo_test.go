package geo

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
)

var fallback = Point{Lat: 51.505, Lng: -0.09}

func ptr(v float64) *float64 { return &v }

func TestValid(t *testing.T) {
	assert.True(t, Valid(-1.2921, 36.8219))
	assert.True(t, Valid(90, 180))
	assert.False(t, Valid(91, 0))
	assert.False(t, Valid(0, -181))
	assert.False(t, Valid(0, 0))
	assert.False(t, Valid(math.NaN(), 10))
	assert.False(t, Valid(10, math.Inf(1)))
}

func TestResolve(t *testing.T) {
	p, usedFallback := Resolve(ptr(-1.2921), ptr(36.8219), fallback)
	assert.False(t, usedFallback)
	assert.Equal(t, Point{Lat: -1.2921, Lng: 36.8219}, p)

	p, usedFallback = Resolve(nil, ptr(36.8), fallback)
	assert.True(t, usedFallback)
	assert.Equal(t, fallback, p)

	p, usedFallback = Resolve(ptr(123), ptr(36.8), fallback)
	assert.True(t, usedFallback)
	assert.Equal(t, fallback, p)
}

func TestParseQuery(t *testing.T) {
	p, usedFallback := ParseQuery("-1.28", "36.82", fallback)
	assert.False(t, usedFallback)
	assert.Equal(t, Point{Lat: -1.28, Lng: 36.82}, p)

	p, usedFallback = ParseQuery("", "", fallback)
	assert.True(t, usedFallback)
	assert.Equal(t, fallback, p)

	p, usedFallback = ParseQuery("abc", "36.82", fallback)
	assert.True(t, usedFallback)
	assert.Equal(t, fallback, p)
}

func TestDistance(t *testing.T) {
	// Найроби - Момбаса, около 440 км по прямой
	d := Distance(Point{Lat: -1.2921, Lng: 36.8219}, Point{Lat: -4.0435, Lng: 39.6682})
	assert.InDelta(t, 440000, d, 10000)
	assert.Zero(t, Distance(fallback, fallback))
}

func TestInterpolate(t *testing.T) {
	a := Point{Lat: 0, Lng: 10}
	b := Point{Lat: 4, Lng: 14}

	points := Interpolate(a, b, 3)
	require.Len(t, points, 5)
	assert.Equal(t, a, points[0])
	assert.Equal(t, b, points[4])
	assert.InDelta(t, 2, points[2].Lat, 1e-9)
	assert.InDelta(t, 12, points[2].Lng, 1e-9)

	assert.Len(t, Interpolate(a, b, -1), 2)
}

func TestPathLength(t *testing.T) {
	a := Point{Lat: -1.0, Lng: 36.0}
	b := Point{Lat: -1.1, Lng: 36.1}
	points := Interpolate(a, b, 4)
	assert.InDelta(t, Distance(a, b), PathLength(points), 1)
}

func TestOffset(t *testing.T) {
	a := Point{Lat: 0, Lng: 0}
	b := Point{Lat: 0, Lng: 1}

	mid := Offset(a, b, 0.5, 0)
	assert.InDelta(t, 0.5, mid.Lng, 1e-9)
	assert.InDelta(t, 0, mid.Lat, 1e-9)

	// при движении на восток левая сторона - север
	left := Offset(a, b, 0.5, 0.2)
	assert.InDelta(t, 0.2, left.Lat, 1e-9)
	right := Offset(a, b, 0.5, -0.2)
	assert.InDelta(t, -0.2, right.Lat, 1e-9)
}

func TestOffset_StaysInRange(t *testing.T) {
	// у полюса объезд не уходит за 90 градусов
	polar := Offset(Point{Lat: 89.9, Lng: 0}, Point{Lat: 89.95, Lng: 10}, 0.5, 0.5)
	assert.Equal(t, 90.0, polar.Lat)

	// у антимеридиана долгота переносится на другую сторону
	east := Offset(Point{Lat: 0, Lng: 179}, Point{Lat: 1, Lng: 179.5}, 0.5, -1)
	assert.InDelta(t, -179.75, east.Lng, 1e-9)
	assert.InDelta(t, 0.0, east.Lat, 1e-9)

	west := Offset(Point{Lat: 1, Lng: -179.5}, Point{Lat: 0, Lng: -179}, 0.5, -1)
	assert.InDelta(t, 179.75, west.Lng, 1e-9)

	for _, p := range []Point{polar, east, west} {
		assert.True(t, p.Lat >= -90 && p.Lat <= 90, "lat %v", p.Lat)
		assert.True(t, p.Lng >= -180 && p.Lng <= 180, "lng %v", p.Lng)
	}
}

func TestPolylineRoundTrip(t *testing.T) {
	points := []Point{{Lat: 38.5, Lng: -120.2}, {Lat: 40.7, Lng: -120.95}, {Lat: 43.252, Lng: -126.453}}

	encoded := EncodePolyline(points)
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", encoded)

	decoded, err := DecodePolyline(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, 3)
	for i := range points {
		assert.InDelta(t, points[i].Lat, decoded[i].Lat, 1e-5)
		assert.InDelta(t, points[i].Lng, decoded[i].Lng, 1e-5)
	}
}

func TestIncidentsFeatureCollection(t *testing.T) {
	id := uuid.New()
	fc := IncidentsFeatureCollection([]*models.Incident{{
		ID:           id,
		Type:         models.IncidentAccident,
		Description:  "Collision near roundabout",
		Latitude:     -1.3,
		Longitude:    36.8,
		RadiusMeters: 500,
		Status:       models.StatusActive,
		CreatedAt:    time.Now(),
	}})

	require.Len(t, fc.Features, 1)
	raw, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"FeatureCollection"`)
	assert.Contains(t, string(raw), `"coordinates":[36.8,-1.3]`)
	assert.Contains(t, string(raw), id.String())
}

func TestRouteFeature(t *testing.T) {
	f := RouteFeature(&models.Route{
		Mode:   models.RouteSafest,
		Points: []models.RoutePoint{{Lat: 1, Lng: 2}, {Lat: 3, Lng: 4}},
	})

	raw, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"LineString"`)
	assert.Contains(t, string(raw), `[[2,1],[4,3]]`)
	assert.Equal(t, "safest", f.Properties["mode"])
}
