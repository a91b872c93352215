package models

import "time"

// HistoryEntry records one processed command. Entries are appended in
// arrival order by the executor and never mutated afterwards.
type HistoryEntry struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	RawInput      string    `json:"raw_input"`
	IntentSummary string    `json:"intent_summary"`
	Result        Result    `json:"result"`
}
