package models

import "fmt"

// IntentKind enumerates the structured requests the engine understands.
type IntentKind string

const (
	IntentListDevices  IntentKind = "list_devices"
	IntentDeviceStatus IntentKind = "device_status"
	IntentActuatorSet  IntentKind = "actuator_set"
	IntentSensorRead   IntentKind = "sensor_read"
	IntentShowHistory  IntentKind = "show_history"
)

// Intent is a parsed command, independent of its original phrasing. Device
// and Component are names, not resolved references: the executor re-resolves
// them against the registry on every call.
type Intent struct {
	Kind        IntentKind `json:"kind"`
	Device      string     `json:"device,omitempty"`
	Component   string     `json:"component,omitempty"`
	TargetState string     `json:"target_state,omitempty"`
	Limit       int        `json:"limit,omitempty"` // ShowHistory only; 0 means configured default
}

// Summary renders a one-line description used in history entries.
func (i Intent) Summary() string {
	switch i.Kind {
	case IntentListDevices:
		return "list devices"
	case IntentDeviceStatus:
		return fmt.Sprintf("status of %s", i.Device)
	case IntentActuatorSet:
		return fmt.Sprintf("set %s.%s to %s", i.Device, i.Component, i.TargetState)
	case IntentSensorRead:
		return fmt.Sprintf("read %s.%s", i.Device, i.Component)
	case IntentShowHistory:
		if i.Limit > 0 {
			return fmt.Sprintf("show history (last %d)", i.Limit)
		}
		return "show history"
	default:
		return string(i.Kind)
	}
}
