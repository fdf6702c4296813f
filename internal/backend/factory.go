package backend

import (
	"context"

	"voice-commander/config"
	"voice-commander/internal/command"
	"voice-commander/pkg/anthropic"
	"voice-commander/pkg/log"
	"voice-commander/pkg/openai"
	"voice-commander/pkg/perplexity"
)

// NewRegistryFromConfig builds the specialist registry from config. A backend
// that is disabled, has no API key, or fails client construction is skipped
// with a warning instead of failing the service: the Router degrades to
// classifier-only behavior for its intents.
func NewRegistryFromConfig(ctx context.Context, cfg config.BackendsConfig, l log.Logger) *Registry {
	registry := NewRegistry(l)

	if usable(cfg.Code) {
		client, err := anthropic.New(anthropic.Config{
			APIKey:  cfg.Code.APIKey,
			Model:   cfg.Code.Model,
			BaseURL: cfg.Code.BaseURL,
		})
		if err != nil {
			l.Warnf(ctx, "code backend disabled: %v", err)
		} else {
			registry.Register(command.BackendCode, NewAnthropicAdapter(client))
		}
	}

	if usable(cfg.Research) {
		client, err := perplexity.New(perplexity.Config{
			APIKey:  cfg.Research.APIKey,
			Model:   cfg.Research.Model,
			BaseURL: cfg.Research.BaseURL,
		})
		if err != nil {
			l.Warnf(ctx, "research backend disabled: %v", err)
		} else {
			registry.Register(command.BackendResearch, NewPerplexityAdapter(client))
		}
	}

	if usable(cfg.Creative) {
		client, err := openai.New(openai.Config{
			APIKey:  cfg.Creative.APIKey,
			Model:   cfg.Creative.Model,
			BaseURL: cfg.Creative.BaseURL,
		})
		if err != nil {
			l.Warnf(ctx, "creative backend disabled: %v", err)
		} else {
			registry.Register(command.BackendCreative, NewOpenAIAdapter(client))
		}
	}

	l.Infof(ctx, "backend registry: %d specialist(s) configured", len(registry.entries))
	return registry
}

func usable(cfg config.ProviderConfig) bool {
	return cfg.Enabled && cfg.APIKey != ""
}
