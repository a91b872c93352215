package service

import (
	"time"

	"voiceplc/internal/models"
	"voiceplc/internal/registry"
)

// MonitoringService serves status snapshots without touching history, for
// the REST reads and the websocket stream.
type MonitoringService struct {
	reg    *registry.Registry
	values ValueSource
}

func NewMonitoringService(reg *registry.Registry, values ValueSource) *MonitoringService {
	return &MonitoringService{reg: reg, values: values}
}

// Status returns a snapshot of one device. The error is
// registry.ErrDeviceNotFound when the name is unknown.
func (m *MonitoringService) Status(device string) (models.StatusReport, error) {
	d, err := m.reg.Find(device)
	if err != nil {
		return models.StatusReport{}, err
	}
	return snapshotDevice(d, m.values, time.Now()), nil
}

// Overview lists all devices in registration order.
func (m *MonitoringService) Overview() []models.DeviceSummary {
	return m.reg.ListAll()
}

// Snapshot reports every device, in registration order.
func (m *MonitoringService) Snapshot() []models.StatusReport {
	now := time.Now()
	devices := m.reg.Devices()
	out := make([]models.StatusReport, 0, len(devices))
	for _, d := range devices {
		out = append(out, snapshotDevice(d, m.values, now))
	}
	return out
}

// snapshotDevice renders one device's current state. Sensors report their
// cached last read when one exists; otherwise a value is drawn from the
// source without being cached, so snapshots never mutate component state.
func snapshotDevice(d *models.Device, values ValueSource, at time.Time) models.StatusReport {
	report := models.StatusReport{
		Device:   d.Name,
		Location: d.Location,
		At:       at.UTC(),
	}
	for _, a := range d.Actuators() {
		report.Actuators = append(report.Actuators, models.ActuatorStatus{ID: a.ID, State: a.State()})
	}
	for _, s := range d.Sensors() {
		reading, ok := s.LastReading()
		if !ok {
			reading = s.Evaluate(values.Next(s), at)
		}
		report.Sensors = append(report.Sensors, models.SensorStatus{ID: s.ID, Reading: reading})
	}
	return report
}
