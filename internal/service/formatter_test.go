package service

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"voiceplc/internal/models"
)

func TestParseMode(t *testing.T) {
	cases := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"natural", ModeNatural, true},
		{"structured", ModeStructured, true},
		{"NATURAL", ModeNatural, true},
		{"  structured ", ModeStructured, true},
		{"verbose", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParseMode(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("ParseMode(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Fatalf("ParseMode(%q) accepted", tc.in)
		}
	}
}

func TestRenderNatural(t *testing.T) {
	var f Formatter
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		res  models.Result
		want string
	}{
		{
			name: "device list",
			res: models.Result{Kind: models.ResultDeviceList, Devices: []models.DeviceSummary{
				{Name: "WaterSystem"}, {Name: "HVAC"},
			}},
			want: "Available devices: WaterSystem, HVAC.",
		},
		{
			name: "empty device list",
			res:  models.Result{Kind: models.ResultDeviceList},
			want: "No devices are registered.",
		},
		{
			name: "status report",
			res: models.Result{Kind: models.ResultStatusReport, Status: &models.StatusReport{
				Device:    "WaterSystem",
				Actuators: []models.ActuatorStatus{{ID: "MainPump", State: "on"}},
				Sensors: []models.SensorStatus{
					{ID: "WaterTemp", Reading: models.Reading{Value: 42.5, Unit: "°C", ObservedAt: at}},
				},
				At: at,
			}},
			want: "WaterSystem: MainPump is on, WaterTemp is 42.5 °C.",
		},
		{
			name: "read value",
			res: models.Result{Kind: models.ResultReadValue, Read: &models.ReadValue{
				Device: "WaterSystem", Sensor: "WaterTemp",
				Reading: models.Reading{Value: 42.5, Unit: "°C", ObservedAt: at},
			}},
			want: "WaterTemp reading is 42.5 °C.",
		},
		{
			name: "read value out of range",
			res: models.Result{Kind: models.ResultReadValue, Read: &models.ReadValue{
				Device: "WaterSystem", Sensor: "WaterTemp",
				Reading: models.Reading{Value: 120, Unit: "°C", OutOfRange: true, ObservedAt: at},
			}},
			want: "WaterTemp reading is 120 °C. Warning: value is outside the expected range.",
		},
		{
			name: "action ack changed",
			res: models.Result{Kind: models.ResultActionAck, Ack: &models.ActionAck{
				Device: "WaterSystem", Actuator: "MainPump", State: "on", Changed: true,
			}},
			want: "MainPump is now on.",
		},
		{
			name: "action ack unchanged",
			res: models.Result{Kind: models.ResultActionAck, Ack: &models.ActionAck{
				Device: "WaterSystem", Actuator: "MainPump", State: "on", Changed: false,
			}},
			want: "MainPump was already on.",
		},
		{
			name: "empty history",
			res:  models.Result{Kind: models.ResultHistory},
			want: "No commands in history yet.",
		},
		{
			name: "error",
			res:  models.FailureResult(models.ErrorDeviceNotFound, `device not found: "Reactor"`),
			want: `Could not process command: device not found: "Reactor".`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := f.Render(tc.res, ModeNatural)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q\nwant %q", got, tc.want)
			}
		})
	}
}

func TestRenderHistoryLines(t *testing.T) {
	var f Formatter
	res := models.Result{Kind: models.ResultHistory, History: []models.HistoryEntry{
		{RawInput: "turn on MainPump in WaterSystem", Result: models.Result{Kind: models.ResultActionAck}},
		{RawInput: "frobnicate", Result: models.FailureResult(models.ErrorUnrecognizedCommand, "no")},
	}}

	got, err := f.Render(res, ModeNatural)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %q", got)
	}
	if lines[0] != `1. "turn on MainPump in WaterSystem" -> action_ack` {
		t.Fatalf("line 1 = %q", lines[0])
	}
	if lines[1] != `2. "frobnicate" -> unrecognized_command` {
		t.Fatalf("line 2 = %q", lines[1])
	}
}

func TestRenderStructured(t *testing.T) {
	var f Formatter
	res := models.Result{Kind: models.ResultActionAck, Ack: &models.ActionAck{
		Device: "WaterSystem", Actuator: "MainPump", State: "on", Changed: true,
	}}

	got, err := f.Render(res, ModeStructured)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var back models.Result
	if err := json.Unmarshal([]byte(got), &back); err != nil {
		t.Fatalf("structured output is not valid JSON: %v", err)
	}
	if back.Kind != models.ResultActionAck || back.Ack == nil || back.Ack.State != "on" {
		t.Fatalf("round trip lost data: %+v", back)
	}

	// same input, same output
	again, _ := f.Render(res, ModeStructured)
	if got != again {
		t.Fatal("structured rendering must be deterministic")
	}
}
