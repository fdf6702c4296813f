package usecase

import (
	"context"
	"errors"
	"fmt"

	"voice-commander/internal/backend"
	"voice-commander/internal/command"
)

// dispatch selects one row of the fixed intent table and assembles the
// envelope. The envelope starts as the classifier passthrough; specialist rows
// overwrite it only on success, so degradation is the default, not a branch.
func (uc *UseCase) dispatch(ctx context.Context, cls command.Classification, input string) command.Envelope {
	env := command.Envelope{
		Translation:  cls.NormalizedText,
		Intent:       cls.Intent,
		Confidence:   cls.Confidence,
		CulturalNote: cls.CulturalNote,
		Response:     cls.NormalizedText,
		BackendUsed:  command.BackendClassifier,
	}

	switch cls.Intent {
	case command.IntentCodingTask:
		prompt := fmt.Sprintf("%s\n\nOriginal request: %s", cls.NormalizedText, input)
		uc.invoke(ctx, &env, command.BackendCode, prompt, SystemCodingTask)

	case command.IntentDeepResearch:
		uc.invoke(ctx, &env, command.BackendResearch, cls.NormalizedText, SystemResearch)

	case command.IntentCreativeContent:
		uc.invoke(ctx, &env, command.BackendCreative, cls.NormalizedText, SystemCreative)

	case command.IntentImageGenerate:
		uc.invoke(ctx, &env, command.BackendCreative, cls.NormalizedText, SystemImagePrompt)

	case command.IntentEmailGenerate:
		uc.invoke(ctx, &env, command.BackendCreative, cls.NormalizedText, SystemEmailDraft)

	case command.IntentWebBuilding:
		prompt := fmt.Sprintf(PromptWebBuilder, cls.NormalizedText)
		if uc.invoke(ctx, &env, command.BackendCreative, prompt, SystemCreative) {
			env.BuilderPrompt = env.Response
			env.TargetPlatform = TargetPlatformBuilder
			env.BuilderURLPrimary = BuildPrimaryURL(env.BuilderPrompt)
			env.BuilderURLSecondary = BuildSecondaryURL(env.BuilderPrompt)
		}

	case command.IntentDomainUpdate, command.IntentDomainCheck:
		env.Response = fmt.Sprintf(TemplateDomainAction, cls.NormalizedText)

	case command.IntentSocialPost, command.IntentSocialAnalytics:
		env.Response = fmt.Sprintf(TemplateSocialAction, cls.NormalizedText)

	case command.IntentTranslateOnly, command.IntentCallContact, command.IntentOpenCamera,
		command.IntentOpenYouTube, command.IntentOpenApp, command.IntentGeneral:
		// Classifier passthrough: the client acts on the intent itself.
	}

	return env
}

// invoke runs a specialist and reports whether it produced the response.
// ErrUnavailable degrades silently (it was known before the call);
// *backend.CallError degrades too but is logged as a real failure. These are
// the two non-fatal scopes; neither reaches Route's top-level catch.
func (uc *UseCase) invoke(ctx context.Context, env *command.Envelope, b command.Backend, prompt, system string) bool {
	text, err := uc.backends.Generate(ctx, b, prompt, system)
	if err != nil {
		if errors.Is(err, backend.ErrUnavailable) {
			uc.l.Warnf(ctx, "%s: backend %s unavailable, using classifier response", LogPrefixDispatch, b)
		} else {
			uc.l.Errorf(ctx, "%s: backend %s failed, using classifier response: %v", LogPrefixDispatch, b, err)
		}
		return false
	}

	env.Response = text
	env.BackendUsed = b
	return true
}
