package models

import "time"

// ResultKind enumerates the outcome variants of an executed Intent.
type ResultKind string

const (
	ResultDeviceList   ResultKind = "device_list"
	ResultStatusReport ResultKind = "status_report"
	ResultReadValue    ResultKind = "read_value"
	ResultActionAck    ResultKind = "action_ack"
	ResultHistory      ResultKind = "history"
	ResultError        ResultKind = "error"
)

// ErrorKind classifies error Results for callers and the formatter.
type ErrorKind string

const (
	ErrorUnrecognizedCommand ErrorKind = "unrecognized_command"
	ErrorInterpreterTimeout  ErrorKind = "interpreter_timeout"
	ErrorDeviceNotFound      ErrorKind = "device_not_found"
	ErrorComponentNotFound   ErrorKind = "component_not_found"
	ErrorInvalidState        ErrorKind = "invalid_state"
	ErrorInternal            ErrorKind = "internal"
)

// ResultFailure is the payload of an error Result.
type ResultFailure struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// ActuatorStatus is one actuator line in a status report.
type ActuatorStatus struct {
	ID    string `json:"id"`
	State string `json:"state"`
}

// SensorStatus is one sensor line in a status report.
type SensorStatus struct {
	ID      string  `json:"id"`
	Reading Reading `json:"reading"`
}

// StatusReport is a point-in-time snapshot of one device.
type StatusReport struct {
	Device    string           `json:"device"`
	Location  string           `json:"location,omitempty"`
	Actuators []ActuatorStatus `json:"actuators"`
	Sensors   []SensorStatus   `json:"sensors"`
	At        time.Time        `json:"at"`
}

// ReadValue is the payload of a sensor read.
type ReadValue struct {
	Device  string  `json:"device"`
	Sensor  string  `json:"sensor"`
	Reading Reading `json:"reading"`
}

// ActionAck acknowledges an actuator transition. Changed is false when the
// requested state was already current.
type ActionAck struct {
	Device   string `json:"device"`
	Actuator string `json:"actuator"`
	State    string `json:"state"`
	Changed  bool   `json:"changed"`
}

// Result is the structured outcome of executing an Intent. Exactly one
// payload matching Kind is populated. Results are immutable once produced.
type Result struct {
	Kind    ResultKind      `json:"kind"`
	Devices []DeviceSummary `json:"devices,omitempty"`
	Status  *StatusReport   `json:"status,omitempty"`
	Read    *ReadValue      `json:"read,omitempty"`
	Ack     *ActionAck      `json:"ack,omitempty"`
	History []HistoryEntry  `json:"history,omitempty"`
	Failure *ResultFailure  `json:"failure,omitempty"`
}

// FailureResult builds an error Result.
func FailureResult(kind ErrorKind, message string) Result {
	return Result{Kind: ResultError, Failure: &ResultFailure{Kind: kind, Message: message}}
}

// IsError reports whether the Result is the error variant.
func (r Result) IsError() bool {
	return r.Kind == ResultError
}
