package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"voiceplc/internal/models"
)

// Mode selects how Results are rendered for a session.
type Mode string

const (
	// ModeStructured serializes the Result as-is.
	ModeStructured Mode = "structured"
	// ModeNatural renders the Result as a short human sentence.
	ModeNatural Mode = "natural"
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeStructured:
		return ModeStructured, nil
	case ModeNatural:
		return ModeNatural, nil
	default:
		return "", fmt.Errorf("unknown response mode %q (want %q or %q)", s, ModeNatural, ModeStructured)
	}
}

// Formatter renders Results. It is pure: the same Result and mode always
// produce the same text.
type Formatter struct{}

// Render produces the session-facing text for a Result.
func (Formatter) Render(res models.Result, mode Mode) (string, error) {
	if mode == ModeStructured {
		b, err := json.Marshal(res)
		if err != nil {
			return "", fmt.Errorf("serializing result: %w", err)
		}
		return string(b), nil
	}

	switch res.Kind {
	case models.ResultDeviceList:
		if len(res.Devices) == 0 {
			return "No devices are registered.", nil
		}
		names := make([]string, 0, len(res.Devices))
		for _, d := range res.Devices {
			names = append(names, d.Name)
		}
		return "Available devices: " + strings.Join(names, ", ") + ".", nil

	case models.ResultStatusReport:
		return renderStatus(res.Status), nil

	case models.ResultReadValue:
		r := res.Read
		text := fmt.Sprintf("%s reading is %s %s.", r.Sensor, formatValue(r.Reading.Value), r.Reading.Unit)
		if r.Reading.OutOfRange {
			text += " Warning: value is outside the expected range."
		}
		return text, nil

	case models.ResultActionAck:
		a := res.Ack
		if !a.Changed {
			return fmt.Sprintf("%s was already %s.", a.Actuator, a.State), nil
		}
		return fmt.Sprintf("%s is now %s.", a.Actuator, a.State), nil

	case models.ResultHistory:
		if len(res.History) == 0 {
			return "No commands in history yet.", nil
		}
		lines := make([]string, 0, len(res.History))
		for i, e := range res.History {
			outcome := string(e.Result.Kind)
			if e.Result.IsError() {
				outcome = string(e.Result.Failure.Kind)
			}
			lines = append(lines, fmt.Sprintf("%d. %q -> %s", i+1, e.RawInput, outcome))
		}
		return strings.Join(lines, "\n"), nil

	case models.ResultError:
		return "Could not process command: " + res.Failure.Message + ".", nil

	default:
		return "Command processed.", nil
	}
}

func renderStatus(st *models.StatusReport) string {
	var parts []string
	for _, a := range st.Actuators {
		parts = append(parts, fmt.Sprintf("%s is %s", a.ID, a.State))
	}
	for _, s := range st.Sensors {
		part := fmt.Sprintf("%s is %s %s", s.ID, formatValue(s.Reading.Value), s.Reading.Unit)
		if s.Reading.OutOfRange {
			part += " (out of range)"
		}
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return st.Device + " has no components."
	}
	return st.Device + ": " + strings.Join(parts, ", ") + "."
}

// formatValue trims trailing zeros so the same value always prints the same
// way.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
