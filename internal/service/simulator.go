package service

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"voiceplc/internal/models"
)

// ValueSource produces sensor values. The engine only ever sees values
// through this interface, so real acquisition could replace the simulation
// without touching the executor.
type ValueSource interface {
	Next(s *models.Sensor) float64
}

// SimulatedSource draws uniform values from each sensor's mock range and
// rounds them by kind, the way the original mock devices behaved.
type SimulatedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedSource seeds the generator. A non-positive seed uses the
// current time.
func NewSimulatedSource(seed int64) *SimulatedSource {
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}
	return &SimulatedSource{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next simulated value for the sensor.
func (s *SimulatedSource) Next(sensor *models.Sensor) float64 {
	s.mu.Lock()
	v := sensor.MockMin + s.rng.Float64()*(sensor.MockMax-sensor.MockMin)
	s.mu.Unlock()
	return roundForKind(sensor.Kind, v)
}

// roundForKind keeps readings at a precision that makes sense per quantity.
func roundForKind(kind models.ComponentKind, v float64) float64 {
	switch kind {
	case models.KindTemperature, models.KindPressure, models.KindLevel:
		return math.Round(v*100) / 100
	case models.KindFlow, models.KindPower:
		return math.Round(v*10) / 10
	case models.KindEnergy:
		return math.Round(v)
	default:
		return math.Round(v*100) / 100
	}
}
