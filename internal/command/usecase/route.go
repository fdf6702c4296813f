package usecase

import (
	"context"
	"time"

	"voice-commander/internal/command"
	"voice-commander/internal/history"
)

// Route runs the full pipeline for one request. It never returns an error:
// fatal failures (no input, transcription, classifier call) are caught here
// and folded into an error envelope; specialist failures are handled further
// down in dispatch and degrade instead.
func (uc *UseCase) Route(ctx context.Context, req command.Request) command.Envelope {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	env, err := uc.route(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", LogPrefixRoute, err)
		env = command.Envelope{
			Translation: req.Text,
			Intent:      command.IntentGeneral,
			Confidence:  0,
			Response:    MsgProcessingError,
			BackendUsed: command.BackendNone,
			Error:       err.Error(),
		}
	}

	env.ProcessingTimeMs = time.Since(start).Milliseconds()
	uc.record(ctx, env)
	return env
}

func (uc *UseCase) route(ctx context.Context, req command.Request) (command.Envelope, error) {
	// Step 1: resolve input text
	text := req.Text
	if text == "" {
		if req.AudioBase64 == "" {
			return command.Envelope{}, command.ErrNoInput
		}
		transcribed, err := uc.classifier.Transcribe(ctx, req.AudioBase64, req.AudioMIME)
		if err != nil {
			return command.Envelope{}, err
		}
		text = transcribed
	}

	// Step 2: classify. A classifier call failure is fatal; unparsable output
	// already came back as a synthesized fallback classification.
	cls, err := uc.classifier.Classify(ctx, text)
	if err != nil {
		return command.Envelope{}, err
	}

	// Step 3: translate-only is a terminal path, not a dispatch-table row.
	if req.Mode == command.ModeTranslateOnly {
		return command.Envelope{
			Translation:  cls.NormalizedText,
			Intent:       command.IntentTranslateOnly,
			Confidence:   cls.Confidence,
			CulturalNote: cls.CulturalNote,
			Response:     cls.NormalizedText,
			BackendUsed:  command.BackendClassifier,
		}, nil
	}

	// Step 4: intent dispatch. Specialist failures never escape this call.
	return uc.dispatch(ctx, cls, text), nil
}

// record logs the completed call to the optional history collaborator. The
// caller may have vanished; recording still happens, delivery does not.
func (uc *UseCase) record(ctx context.Context, env command.Envelope) {
	if uc.recorder == nil {
		return
	}
	uc.recorder.Record(context.WithoutCancel(ctx), history.Entry{
		Translation: env.Translation,
		Intent:      env.Intent,
		BackendUsed: env.BackendUsed,
		Response:    env.Response,
		DurationMs:  env.ProcessingTimeMs,
		Error:       env.Error,
	})
}
