// Package geo содержит вычисления над координатами: проверку, подстановку
// координат по умолчанию, расстояния, интерполяцию маршрута и GeoJSON.
package geo

import (
	"math"
	"strconv"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/twpayne/go-polyline"
)

// Point - координата в градусах WGS84
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p Point) orb() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// Valid проверяет диапазоны широты и долготы. Точка (0,0) считается
// результатом неудавшейся геолокации и отбрасывается.
func Valid(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return false
	}
	return !(lat == 0 && lng == 0)
}

// Resolve возвращает переданную точку, если обе координаты заданы и корректны,
// иначе fallback. Второй результат - признак того, что использован fallback.
func Resolve(lat, lng *float64, fallback Point) (Point, bool) {
	if lat == nil || lng == nil || !Valid(*lat, *lng) {
		return fallback, true
	}
	return Point{Lat: *lat, Lng: *lng}, false
}

// ParseQuery - то же, что Resolve, для строковых параметров запроса
func ParseQuery(latStr, lngStr string, fallback Point) (Point, bool) {
	lat, errLat := strconv.ParseFloat(latStr, 64)
	lng, errLng := strconv.ParseFloat(lngStr, 64)
	if errLat != nil || errLng != nil {
		return fallback, true
	}
	return Resolve(&lat, &lng, fallback)
}

// Distance возвращает расстояние между точками в метрах (гаверсинус)
func Distance(a, b Point) float64 {
	return orbgeo.DistanceHaversine(a.orb(), b.orb())
}

// PathLength - суммарная длина ломаной в метрах
func PathLength(points []Point) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += Distance(points[i-1], points[i])
	}
	return total
}

// Interpolate возвращает n промежуточных точек между a и b вместе с концами (n+2 точки)
func Interpolate(a, b Point, n int) []Point {
	if n < 0 {
		n = 0
	}
	points := make([]Point, 0, n+2)
	points = append(points, a)
	for i := 1; i <= n; i++ {
		ratio := float64(i) / float64(n+1)
		points = append(points, Point{
			Lat: a.Lat + (b.Lat-a.Lat)*ratio,
			Lng: a.Lng + (b.Lng-a.Lng)*ratio,
		})
	}
	return append(points, b)
}

// Offset сдвигает точку на fraction пути от a к b и на side долей длины отрезка
// перпендикулярно ему (положительное значение - влево по ходу движения).
// Результат всегда в допустимых диапазонах координат.
func Offset(a, b Point, fraction, side float64) Point {
	dLat := b.Lat - a.Lat
	dLng := b.Lng - a.Lng
	return normalize(Point{
		Lat: a.Lat + dLat*fraction + dLng*side,
		Lng: a.Lng + dLng*fraction - dLat*side,
	})
}

// normalize ограничивает широту полюсами и переносит долготу через антимеридиан
func normalize(p Point) Point {
	p.Lat = math.Max(-90, math.Min(90, p.Lat))
	if p.Lng < -180 || p.Lng > 180 {
		lng := math.Mod(p.Lng+180, 360)
		if lng < 0 {
			lng += 360
		}
		p.Lng = lng - 180
	}
	return p
}

// EncodePolyline кодирует точки в формат Google Encoded Polyline
func EncodePolyline(points []Point) string {
	coords := make([][]float64, len(points))
	for i, p := range points {
		coords[i] = []float64{p.Lat, p.Lng}
	}
	return string(polyline.EncodeCoords(coords))
}

// DecodePolyline - обратное преобразование для EncodePolyline
func DecodePolyline(encoded string) ([]Point, error) {
	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, err
	}
	points := make([]Point, len(coords))
	for i, c := range coords {
		points[i] = Point{Lat: c[0], Lng: c[1]}
	}
	return points, nil
}
