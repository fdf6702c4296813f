package usecase

import (
	"context"
	"time"

	"voice-commander/internal/backend"
	"voice-commander/internal/classifier"
	"voice-commander/internal/command"
	"voice-commander/internal/history"
	"voice-commander/pkg/log"
)

// DefaultTimeout bounds one routing call end to end. Generous enough for a
// cold-starting specialist behind the classifier round-trip.
const DefaultTimeout = 60 * time.Second

// Recorder receives completed routing calls. Optional collaborator.
type Recorder interface {
	Record(ctx context.Context, e history.Entry) history.Entry
}

// UseCase is the Intent Router. Stateless across requests: every routing call
// owns its classification and envelope, and shares only the adapter clients.
type UseCase struct {
	l          log.Logger
	classifier classifier.Classifier
	backends   *backend.Registry
	recorder   Recorder // may be nil
	timeout    time.Duration
}

// Ensure UseCase implements the domain interface
var _ command.UseCase = (*UseCase)(nil)

// New creates the command UseCase.
func New(l log.Logger, cl classifier.Classifier, backends *backend.Registry, recorder Recorder, timeout time.Duration) *UseCase {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &UseCase{
		l:          l,
		classifier: cl,
		backends:   backends,
		recorder:   recorder,
		timeout:    timeout,
	}
}
