package service

import (
	"errors"
	"testing"
	"time"

	"voiceplc/internal/registry"
)

func TestMonitoringStatus(t *testing.T) {
	reg := newTestRegistry(t)
	m := NewMonitoringService(reg, &fixedSource{v: 42.5})

	st, err := m.Status("watersystem")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if st.Device != "WaterSystem" || st.Location != "east wing" {
		t.Fatalf("unexpected header: %+v", st)
	}
	if len(st.Actuators) != 1 || st.Actuators[0].State != "off" {
		t.Fatalf("unexpected actuators: %+v", st.Actuators)
	}
	if len(st.Sensors) != 1 || st.Sensors[0].Reading.Value != 42.5 {
		t.Fatalf("unexpected sensors: %+v", st.Sensors)
	}

	_, err = m.Status("Reactor")
	if !errors.Is(err, registry.ErrDeviceNotFound) {
		t.Fatalf("want ErrDeviceNotFound, got %v", err)
	}
}

func TestMonitoringStatusDoesNotCacheReads(t *testing.T) {
	reg := newTestRegistry(t)
	m := NewMonitoringService(reg, &fixedSource{v: 42.5})

	if _, err := m.Status("WaterSystem"); err != nil {
		t.Fatalf("status: %v", err)
	}

	d, _ := reg.Find("WaterSystem")
	if _, ok := d.Sensors()[0].LastReading(); ok {
		t.Fatal("a monitoring snapshot must not become the sensor's last reading")
	}
}

func TestMonitoringStatusPrefersLastReading(t *testing.T) {
	reg := newTestRegistry(t)
	m := NewMonitoringService(reg, &fixedSource{v: 42.5})

	d, _ := reg.Find("WaterSystem")
	executed := d.Sensors()[0].Observe(60, time.Now())

	st, err := m.Status("WaterSystem")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if st.Sensors[0].Reading != executed {
		t.Fatalf("snapshot = %+v, want the executed reading %+v", st.Sensors[0].Reading, executed)
	}
}

func TestMonitoringSnapshotCoversAllDevices(t *testing.T) {
	reg := newTestRegistry(t)
	m := NewMonitoringService(reg, &fixedSource{v: 42.5})

	reports := m.Snapshot()
	if len(reports) != 2 {
		t.Fatalf("want 2 reports, got %d", len(reports))
	}
	if reports[0].Device != "WaterSystem" || reports[1].Device != "HVAC" {
		t.Fatalf("unexpected order: %q, %q", reports[0].Device, reports[1].Device)
	}
}

func TestMonitoringOverview(t *testing.T) {
	m := NewMonitoringService(newTestRegistry(t), &fixedSource{v: 0})

	list := m.Overview()
	if len(list) != 2 || list[0].Name != "WaterSystem" {
		t.Fatalf("unexpected overview: %+v", list)
	}
}
