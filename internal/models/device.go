package models

// Device is a named subsystem (e.g. "WaterSystem") owning sensors and
// actuators. Component ids are unique within the device only; addressing a
// component always takes (device name, component id).
type Device struct {
	Name     string
	Location string

	sensors   map[string]*Sensor
	actuators map[string]*Actuator

	// insertion order, for deterministic listings
	sensorOrder   []string
	actuatorOrder []string
}

// NewDevice creates an empty device.
func NewDevice(name, location string) *Device {
	return &Device{
		Name:      name,
		Location:  location,
		sensors:   make(map[string]*Sensor),
		actuators: make(map[string]*Actuator),
	}
}

// AddSensor attaches a sensor. Id collisions are caught by manifest
// validation before devices are built.
func (d *Device) AddSensor(s *Sensor) {
	d.sensors[s.ID] = s
	d.sensorOrder = append(d.sensorOrder, s.ID)
}

// AddActuator attaches an actuator.
func (d *Device) AddActuator(a *Actuator) {
	d.actuators[a.ID] = a
	d.actuatorOrder = append(d.actuatorOrder, a.ID)
}

// Sensors returns the device's sensors in insertion order.
func (d *Device) Sensors() []*Sensor {
	out := make([]*Sensor, 0, len(d.sensorOrder))
	for _, id := range d.sensorOrder {
		out = append(out, d.sensors[id])
	}
	return out
}

// Actuators returns the device's actuators in insertion order.
func (d *Device) Actuators() []*Actuator {
	out := make([]*Actuator, 0, len(d.actuatorOrder))
	for _, id := range d.actuatorOrder {
		out = append(out, d.actuators[id])
	}
	return out
}

// DeviceSummary is the listing shape for a device.
type DeviceSummary struct {
	Name      string   `json:"name"`
	Location  string   `json:"location,omitempty"`
	Sensors   []string `json:"sensors"`
	Actuators []string `json:"actuators"`
}

// Summary renders the listing shape with component ids in insertion order.
func (d *Device) Summary() DeviceSummary {
	return DeviceSummary{
		Name:      d.Name,
		Location:  d.Location,
		Sensors:   append([]string(nil), d.sensorOrder...),
		Actuators: append([]string(nil), d.actuatorOrder...),
	}
}
