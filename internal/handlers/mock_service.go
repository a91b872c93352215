package handlers

import (
	"context"

	"voiceplc/internal/models"
	"voiceplc/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockCommands struct {
	result models.Result
	reply  string

	lastText string
	lastMode service.Mode
	calls    int
}

func (m *mockCommands) Process(ctx context.Context, text string, mode service.Mode) (models.Result, string) {
	m.calls++
	m.lastText = text
	m.lastMode = mode
	return m.result, m.reply
}

type mockMonitoring struct {
	status   models.StatusReport
	err      error
	overview []models.DeviceSummary
	snapshot []models.StatusReport

	lastDevice string
}

func (m *mockMonitoring) Status(device string) (models.StatusReport, error) {
	m.lastDevice = device
	return m.status, m.err
}
func (m *mockMonitoring) Overview() []models.DeviceSummary { return m.overview }
func (m *mockMonitoring) Snapshot() []models.StatusReport  { return m.snapshot }

type mockHistory struct {
	entries []models.HistoryEntry

	lastLimit int
}

func (m *mockHistory) Recent(limit int) []models.HistoryEntry {
	m.lastLimit = limit
	return m.entries
}
func (m *mockHistory) Size() int { return len(m.entries) }

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, service.ModeNatural, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
