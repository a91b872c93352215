package service

import (
	"sync"

	"voiceplc/internal/models"
)

const defaultHistoryLimit = 10

// HistoryLog is the in-process command history: append-only, single writer
// (the executor), monotonically growing for the session. Readers get a
// consistent most-recent-first snapshot.
type HistoryLog struct {
	mu           sync.RWMutex
	entries      []models.HistoryEntry
	defaultLimit int
}

// NewHistoryLog creates an empty log. A non-positive defaultLimit falls back
// to 10.
func NewHistoryLog(defaultLimit int) *HistoryLog {
	if defaultLimit <= 0 {
		defaultLimit = defaultHistoryLimit
	}
	return &HistoryLog{defaultLimit: defaultLimit}
}

// Append records one entry. Only the executor calls this.
func (h *HistoryLog) Append(e models.HistoryEntry) {
	h.mu.Lock()
	h.entries = append(h.entries, e)
	h.mu.Unlock()
}

// Recent returns the min(limit, size) most recent entries, most recent
// first. A non-positive limit uses the configured default.
func (h *HistoryLog) Recent(limit int) []models.HistoryEntry {
	if limit <= 0 {
		limit = h.defaultLimit
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	n := len(h.entries)
	if limit > n {
		limit = n
	}
	out := make([]models.HistoryEntry, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, h.entries[i])
	}
	return out
}

// Size returns the number of entries logged so far.
func (h *HistoryLog) Size() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}
