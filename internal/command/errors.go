package command

import "errors"

// Domain-specific errors for the command package.
var (
	// ErrNoInput means the request carried neither text nor audio.
	ErrNoInput = errors.New("either audio or text input is required")

	// ErrTranscription wraps a failed speech-to-text call. Fatal for the request.
	ErrTranscription = errors.New("transcription failed")

	// ErrClassification wraps a classifier adapter failure (the call itself
	// failed, not merely returned unparsable text). Fatal for the request.
	ErrClassification = errors.New("classification failed")
)
