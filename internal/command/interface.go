package command

import "context"

// UseCase defines the business logic interface for the command domain.
type UseCase interface {
	// Route runs the full pipeline for one request: transcription (if audio),
	// classification, intent dispatch, and envelope assembly. It never returns
	// an error; every failure path is folded into the Envelope.
	Route(ctx context.Context, req Request) Envelope
}
