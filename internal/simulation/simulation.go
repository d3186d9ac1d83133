// Package simulation моделирует дорожную обстановку и сеть V2V.
// Реальной телеметрии нет, значения случайны в заданных диапазонах.
package simulation

import (
	"math/rand"
	"sync"
	"time"

	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
)

const (
	minVehicles = 3
	maxVehicles = 17
	minSignal   = 10
	maxSignal   = 99
)

var trafficAlerts = []string{
	"Heavy congestion on I-95 Northbound",
	"Accident reported on Main St",
	"Road work on Highway 101 - expect delays",
}

// Simulator безопасен для использования из нескольких горутин
type Simulator struct {
	mu    sync.Mutex
	rnd   *rand.Rand
	clock func() time.Time
}

func New(seed int64) *Simulator {
	return &Simulator{
		rnd:   rand.New(rand.NewSource(seed)),
		clock: time.Now,
	}
}

func (s *Simulator) intn(lo, hi int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + s.rnd.Intn(hi-lo+1)
}

// NetworkStatus - машины рядом 3..17, сигнал 10..99%
func (s *Simulator) NetworkStatus() models.V2VNetworkStatus {
	return models.V2VNetworkStatus{
		NearbyVehicles: s.intn(minVehicles, maxVehicles),
		SignalStrength: s.intn(minSignal, maxSignal),
		UpdatedAt:      s.clock().UTC(),
	}
}

// Traffic возвращает загруженность 0..100 и набор предупреждений
func (s *Simulator) Traffic(lat, lng float64) models.TrafficReport {
	level := s.intn(0, 100)

	var alerts []string
	for _, a := range trafficAlerts {
		if s.intn(0, 1) == 1 {
			alerts = append(alerts, a)
		}
	}
	if len(alerts) == 0 {
		alerts = append(alerts, trafficAlerts[s.intn(0, len(trafficAlerts)-1)])
	}

	return models.TrafficReport{
		CongestionLevel: level,
		Congestion:      congestionLabel(level),
		Alerts:          alerts,
		Latitude:        lat,
		Longitude:       lng,
	}
}

// Jitter возвращает случайное число в [0, max]
func (s *Simulator) Jitter(max int) int {
	if max <= 0 {
		return 0
	}
	return s.intn(0, max)
}

func congestionLabel(level int) string {
	switch {
	case level >= 70:
		return "heavy"
	case level >= 35:
		return "moderate"
	default:
		return "light"
	}
}
