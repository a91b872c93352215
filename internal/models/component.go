package models

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

// ComponentKind is an open-ended type tag. The constants below cover the
// kinds the simulated value source rounds specially; manifests may declare
// other kinds.
type ComponentKind string

const (
	KindTemperature ComponentKind = "temperature"
	KindPressure    ComponentKind = "pressure"
	KindLevel       ComponentKind = "level"
	KindFlow        ComponentKind = "flow"
	KindPower       ComponentKind = "power"
	KindEnergy      ComponentKind = "energy"
	KindPump        ComponentKind = "pump"
	KindValve       ComponentKind = "valve"
)

// ErrInvalidState is returned by Actuator.SetState for states outside the
// actuator's allowed set.
var ErrInvalidState = errors.New("invalid actuator state")

// Reading is the outcome of a single sensor observation. OutOfRange marks a
// data-quality warning; the value is still usable.
type Reading struct {
	Value      float64   `json:"value"`
	Unit       string    `json:"unit"`
	OutOfRange bool      `json:"out_of_range,omitempty"`
	ObservedAt time.Time `json:"observed_at"`
}

// Sensor is a read-only component. Values come from a pluggable source; the
// sensor itself only validates them against its range and caches the last
// observation.
type Sensor struct {
	ID          string
	Kind        ComponentKind
	Unit        string
	Min         float64
	Max         float64
	MockMin     float64
	MockMax     float64
	Description string

	mu       sync.RWMutex
	last     Reading
	observed bool
}

// NewSensor builds a sensor whose mock range defaults to the real range.
func NewSensor(id string, kind ComponentKind, unit string, min, max float64, description string) *Sensor {
	return &Sensor{
		ID:          id,
		Kind:        kind,
		Unit:        unit,
		Min:         min,
		Max:         max,
		MockMin:     min,
		MockMax:     max,
		Description: description,
	}
}

// Evaluate builds a reading for a value without caching it. Values outside
// [Min, Max] are flagged, never rejected.
func (s *Sensor) Evaluate(value float64, at time.Time) Reading {
	return Reading{
		Value:      value,
		Unit:       s.Unit,
		OutOfRange: value < s.Min || value > s.Max,
		ObservedAt: at.UTC(),
	}
}

// Observe records a value produced by the value source and returns the
// reading, caching it as the sensor's last observation.
func (s *Sensor) Observe(value float64, at time.Time) Reading {
	r := s.Evaluate(value, at)
	s.mu.Lock()
	s.last = r
	s.observed = true
	s.mu.Unlock()
	return r
}

// LastReading returns the most recent observation, if any.
func (s *Sensor) LastReading() (Reading, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.observed
}

// Actuator is a component with a discrete, manifest-defined state set. State
// only changes through SetState.
type Actuator struct {
	ID          string
	Kind        ComponentKind
	States      []string
	Description string

	mu        sync.RWMutex
	state     string
	changedAt time.Time
}

// NewActuator builds an actuator. initial selects the starting state; when
// empty, the first listed state is used. The caller (manifest validation)
// guarantees states is non-empty and initial, if set, is one of them.
func NewActuator(id string, kind ComponentKind, states []string, initial, description string) *Actuator {
	canonical := states[0]
	for _, s := range states {
		if strings.EqualFold(s, initial) {
			canonical = s
			break
		}
	}
	initial = canonical
	return &Actuator{
		ID:          id,
		Kind:        kind,
		States:      states,
		Description: description,
		state:       initial,
	}
}

// SetState transitions the actuator. Matching against the allowed set is
// case-insensitive and the manifest spelling is kept as canonical. Setting
// the already-current state succeeds and leaves the transition time alone.
func (a *Actuator) SetState(target string) (string, error) {
	canonical := ""
	for _, s := range a.States {
		if strings.EqualFold(s, target) {
			canonical = s
			break
		}
	}
	if canonical == "" {
		return "", fmt.Errorf("%w: %q, valid states: %s", ErrInvalidState, target, strings.Join(a.States, ", "))
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != canonical {
		a.state = canonical
		a.changedAt = time.Now().UTC()
	}
	return canonical, nil
}

// State returns the current state. It never fails.
func (a *Actuator) State() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

// ChangedAt returns when the last real transition happened (zero until the
// first one).
func (a *Actuator) ChangedAt() time.Time {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.changedAt
}
