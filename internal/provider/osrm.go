package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Geezkick/NjiaSafe-Drive/internal/geo"
)

const osrmName = "osrm"

// ErrNoRoute - OSRM не нашел маршрут между точками
var ErrNoRoute = errors.New("osrm: no route found")

// OSRM - клиент сервиса маршрутизации OSRM
type OSRM struct {
	baseURL string
	http    *httpClient
}

func NewOSRM(baseURL string, timeout time.Duration, userAgent string) *OSRM {
	return &OSRM{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    newHTTPClient(timeout, userAgent),
	}
}

// RouteResult - геометрия и оценки маршрута OSRM
type RouteResult struct {
	Points          []geo.Point
	DistanceMeters  float64
	DurationSeconds float64
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		// Google Encoded Polyline, точность 1e-5
		Geometry string  `json:"geometry"`
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// Route строит автомобильный маршрут через заданные точки (минимум две)
func (o *OSRM) Route(ctx context.Context, waypoints []geo.Point) (*RouteResult, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("%s: at least two waypoints required", osrmName)
	}

	coords := make([]string, len(waypoints))
	for i, p := range waypoints {
		// OSRM ожидает порядок lng,lat
		coords[i] = fmt.Sprintf("%f,%f", p.Lng, p.Lat)
	}
	url := fmt.Sprintf("%s/route/v1/driving/%s?overview=full&geometries=polyline", o.baseURL, strings.Join(coords, ";"))

	var resp osrmResponse
	if err := o.http.getJSON(ctx, osrmName, url, &resp); err != nil {
		return nil, err
	}
	if resp.Code != "Ok" || len(resp.Routes) == 0 {
		return nil, ErrNoRoute
	}

	route := resp.Routes[0]
	points, err := geo.DecodePolyline(route.Geometry)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid route geometry: %w", osrmName, err)
	}
	if len(points) < 2 {
		return nil, ErrNoRoute
	}

	return &RouteResult{
		Points:          points,
		DistanceMeters:  route.Distance,
		DurationSeconds: route.Duration,
	}, nil
}
