package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"voiceplc/internal/interpreter"
	"voiceplc/internal/logger"
	"voiceplc/internal/models"
	"voiceplc/internal/registry"
)

// Executor validates an Intent against the registry, performs the read or
// effect, and wraps the outcome as a Result. It is stateless across
// requests: device and component names are re-resolved on every call, never
// trusted from the Intent. It is also the sole history writer, and every
// terminal Result is appended before it reaches the caller.
type Executor struct {
	reg     *registry.Registry
	values  ValueSource
	history *HistoryLog
	log     *logger.Logger
}

// NewExecutor wires the executor's collaborators.
func NewExecutor(reg *registry.Registry, values ValueSource, history *HistoryLog, log *logger.Logger) *Executor {
	return &Executor{reg: reg, values: values, history: history, log: log}
}

// Execute runs one Intent to a terminal Result.
func (e *Executor) Execute(ctx context.Context, rawText string, in models.Intent) models.Result {
	res := e.perform(in)
	return e.record(rawText, in.Summary(), res)
}

// Fail wraps an interpretation failure as an error Result under the same
// logging invariant as Execute.
func (e *Executor) Fail(rawText string, err error) models.Result {
	kind := models.ErrorInternal
	switch {
	case errors.Is(err, interpreter.ErrUnrecognizedCommand):
		kind = models.ErrorUnrecognizedCommand
	case errors.Is(err, interpreter.ErrInterpreterTimeout):
		kind = models.ErrorInterpreterTimeout
	}
	res := models.FailureResult(kind, err.Error())
	return e.record(rawText, string(kind), res)
}

func (e *Executor) perform(in models.Intent) models.Result {
	switch in.Kind {
	case models.IntentListDevices:
		return models.Result{Kind: models.ResultDeviceList, Devices: e.reg.ListAll()}

	case models.IntentDeviceStatus:
		d, err := e.reg.Find(in.Device)
		if err != nil {
			return e.lookupFailure(err)
		}
		report := snapshotDevice(d, e.values, time.Now())
		return models.Result{Kind: models.ResultStatusReport, Status: &report}

	case models.IntentActuatorSet:
		d, a, err := e.reg.FindActuator(in.Device, in.Component)
		if err != nil {
			return e.lookupFailure(err)
		}
		prev := a.State()
		state, err := a.SetState(in.TargetState)
		if err != nil {
			return models.FailureResult(models.ErrorInvalidState, err.Error())
		}
		return models.Result{Kind: models.ResultActionAck, Ack: &models.ActionAck{
			Device:   d.Name,
			Actuator: a.ID,
			State:    state,
			Changed:  prev != state,
		}}

	case models.IntentSensorRead:
		d, s, err := e.reg.FindSensor(in.Device, in.Component)
		if err != nil {
			return e.lookupFailure(err)
		}
		reading := s.Observe(e.values.Next(s), time.Now())
		if reading.OutOfRange {
			e.log.Warnw("sensor_read_out_of_range",
				"device", d.Name, "sensor", s.ID,
				"value", reading.Value, "min", s.Min, "max", s.Max)
		}
		return models.Result{Kind: models.ResultReadValue, Read: &models.ReadValue{
			Device:  d.Name,
			Sensor:  s.ID,
			Reading: reading,
		}}

	case models.IntentShowHistory:
		// snapshot before this command's own entry is appended
		return models.Result{Kind: models.ResultHistory, History: e.history.Recent(in.Limit)}

	default:
		return models.FailureResult(models.ErrorInternal, fmt.Sprintf("unsupported intent kind %q", in.Kind))
	}
}

// lookupFailure maps a registry error to the matching error Result, keeping
// the device/component distinction for diagnostics.
func (e *Executor) lookupFailure(err error) models.Result {
	switch {
	case errors.Is(err, registry.ErrComponentNotFound):
		return models.FailureResult(models.ErrorComponentNotFound, err.Error())
	case errors.Is(err, registry.ErrDeviceNotFound):
		return models.FailureResult(models.ErrorDeviceNotFound, err.Error())
	default:
		return models.FailureResult(models.ErrorInternal, err.Error())
	}
}

// record appends the history entry and only then hands the Result back.
func (e *Executor) record(rawText, summary string, res models.Result) models.Result {
	e.history.Append(models.HistoryEntry{
		ID:            uuid.NewString(),
		Timestamp:     time.Now().UTC(),
		RawInput:      rawText,
		IntentSummary: summary,
		Result:        res,
	})
	if res.IsError() {
		e.log.Infow("command_failed", "input", rawText, "intent", summary, "error_kind", res.Failure.Kind)
	} else {
		e.log.Infow("command_executed", "input", rawText, "intent", summary, "result_kind", res.Kind)
	}
	return res
}
