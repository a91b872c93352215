package service

import (
	"context"

	"voiceplc/internal/interpreter"
	"voiceplc/internal/logger"
	"voiceplc/internal/models"
	"voiceplc/internal/registry"
)

// Commands runs the full pipeline for one line of text: interpret, execute,
// log, render. All post-startup failures come back as an error Result, never
// as a Go error.
type Commands interface {
	Process(ctx context.Context, text string, mode Mode) (models.Result, string)
}

// Monitoring exposes read-only status snapshots for the REST and websocket
// surfaces. It never writes history.
type Monitoring interface {
	Status(device string) (models.StatusReport, error)
	Overview() []models.DeviceSummary
	Snapshot() []models.StatusReport
}

// History exposes the append-only command log to readers.
type History interface {
	Recent(limit int) []models.HistoryEntry
	Size() int
}

// Service aggregates all sub-services behind one handle for the HTTP layer.
type Service struct {
	Commands
	Monitoring
	History
}

// NewService wires the registry, interpreter strategy, and value source into
// concrete services. historyLimit is the default for ShowHistory and the
// /history endpoint.
func NewService(reg *registry.Registry, interp interpreter.Interpreter, values ValueSource, historyLimit int, log *logger.Logger) *Service {
	hist := NewHistoryLog(historyLimit)
	exec := NewExecutor(reg, values, hist, log)
	return &Service{
		Commands:   NewCommandService(interp, exec, log),
		Monitoring: NewMonitoringService(reg, values),
		History:    hist,
	}
}
