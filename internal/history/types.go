package history

import (
	"time"

	"voice-commander/internal/command"
)

// Entry is one completed routing call, kept for the dashboard's recent
// commands view. Bounded in memory; never persisted.
type Entry struct {
	ID          string
	Timestamp   time.Time
	Translation string
	Intent      command.Intent
	BackendUsed command.Backend
	Response    string
	DurationMs  int64
	Error       string
}
