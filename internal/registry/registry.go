package registry

import (
	"errors"
	"fmt"
	"strings"

	"voiceplc/internal/models"
)

// Lookup errors. FindSensor/FindActuator distinguish an unknown device from
// an unknown component so callers can report the right failure.
var (
	ErrDeviceNotFound    = errors.New("device not found")
	ErrComponentNotFound = errors.New("component not found")
	ErrDuplicateDevice   = errors.New("duplicate device")
)

// Registry holds every device for a session. It is built once at startup and
// immutable in shape afterwards; only component state mutates. Lookups are
// case-insensitive, listings follow registration order.
type Registry struct {
	devices map[string]*models.Device // key: lowercased name
	order   []string                  // canonical names, registration order
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{devices: make(map[string]*models.Device)}
}

// Register adds a device under its canonical name.
func (r *Registry) Register(d *models.Device) error {
	key := strings.ToLower(d.Name)
	if _, ok := r.devices[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateDevice, d.Name)
	}
	r.devices[key] = d
	r.order = append(r.order, d.Name)
	return nil
}

// Find resolves a device by name, ignoring case.
func (r *Registry) Find(name string) (*models.Device, error) {
	d, ok := r.devices[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDeviceNotFound, name)
	}
	return d, nil
}

// FindSensor resolves (device, sensor id), ignoring case on both parts.
func (r *Registry) FindSensor(device, id string) (*models.Device, *models.Sensor, error) {
	d, err := r.Find(device)
	if err != nil {
		return nil, nil, err
	}
	for _, s := range d.Sensors() {
		if strings.EqualFold(s.ID, strings.TrimSpace(id)) {
			return d, s, nil
		}
	}
	return nil, nil, fmt.Errorf("%w: sensor %q in device %q", ErrComponentNotFound, id, d.Name)
}

// FindActuator resolves (device, actuator id), ignoring case on both parts.
func (r *Registry) FindActuator(device, id string) (*models.Device, *models.Actuator, error) {
	d, err := r.Find(device)
	if err != nil {
		return nil, nil, err
	}
	for _, a := range d.Actuators() {
		if strings.EqualFold(a.ID, strings.TrimSpace(id)) {
			return d, a, nil
		}
	}
	return nil, nil, fmt.Errorf("%w: actuator %q in device %q", ErrComponentNotFound, id, d.Name)
}

// Devices returns the registered devices in registration order.
func (r *Registry) Devices() []*models.Device {
	out := make([]*models.Device, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.devices[strings.ToLower(name)])
	}
	return out
}

// ListAll returns device summaries in registration order.
func (r *Registry) ListAll() []models.DeviceSummary {
	out := make([]models.DeviceSummary, 0, len(r.order))
	for _, d := range r.Devices() {
		out = append(out, d.Summary())
	}
	return out
}

// Summary renders the compact device/component schema handed to the
// model-backed interpreter.
func (r *Registry) Summary() string {
	var sb strings.Builder
	for _, d := range r.Devices() {
		sb.WriteString("Device: " + d.Name + "\n")
		if d.Location != "" {
			sb.WriteString("Location: " + d.Location + "\n")
		}
		var sensors []string
		for _, s := range d.Sensors() {
			sensors = append(sensors, s.ID)
		}
		var actuators []string
		for _, a := range d.Actuators() {
			actuators = append(actuators, fmt.Sprintf("%s (states: %s)", a.ID, strings.Join(a.States, "|")))
		}
		sb.WriteString("Sensors: " + strings.Join(sensors, ", ") + "\n")
		sb.WriteString("Actuators: " + strings.Join(actuators, ", ") + "\n\n")
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}
