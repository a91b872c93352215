package service

import (
	"fmt"
	"testing"

	"voiceplc/internal/models"
)

func filledLog(n int) *HistoryLog {
	h := NewHistoryLog(3)
	for i := 0; i < n; i++ {
		h.Append(models.HistoryEntry{ID: fmt.Sprintf("e%d", i), RawInput: fmt.Sprintf("command %d", i)})
	}
	return h
}

func TestHistoryRecentOrder(t *testing.T) {
	h := filledLog(5)

	got := h.Recent(2)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "e4" || got[1].ID != "e3" {
		t.Fatalf("want most recent first, got %q, %q", got[0].ID, got[1].ID)
	}
}

func TestHistoryRecentDefaultLimit(t *testing.T) {
	h := filledLog(5)

	got := h.Recent(0)
	if len(got) != 3 {
		t.Fatalf("non-positive limit must use default 3, got %d entries", len(got))
	}
	if got[0].ID != "e4" {
		t.Fatalf("unexpected first entry %q", got[0].ID)
	}
}

func TestHistoryRecentLimitBeyondSize(t *testing.T) {
	h := filledLog(2)

	got := h.Recent(10)
	if len(got) != 2 {
		t.Fatalf("len = %d, want all 2 entries", len(got))
	}
}

func TestHistoryRecentEmpty(t *testing.T) {
	h := NewHistoryLog(3)
	if got := h.Recent(5); len(got) != 0 {
		t.Fatalf("empty log returned %d entries", len(got))
	}
	if h.Size() != 0 {
		t.Fatalf("size = %d, want 0", h.Size())
	}
}
