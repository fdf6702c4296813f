package backend

import (
	"context"
	"testing"

	"voice-commander/config"
	"voice-commander/internal/command"
)

func TestNewRegistryFromConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("all configured", func(t *testing.T) {
		r := NewRegistryFromConfig(ctx, config.BackendsConfig{
			Code:     config.ProviderConfig{Enabled: true, APIKey: "k1"},
			Research: config.ProviderConfig{Enabled: true, APIKey: "k2"},
			Creative: config.ProviderConfig{Enabled: true, APIKey: "k3"},
		}, &mockLogger{})

		for _, b := range []command.Backend{command.BackendCode, command.BackendResearch, command.BackendCreative} {
			if !r.Available(b) {
				t.Errorf("expected %s available", b)
			}
		}
	})

	t.Run("missing key skips backend", func(t *testing.T) {
		r := NewRegistryFromConfig(ctx, config.BackendsConfig{
			Code:     config.ProviderConfig{Enabled: true},
			Creative: config.ProviderConfig{Enabled: true, APIKey: "k"},
		}, &mockLogger{})

		if r.Available(command.BackendCode) {
			t.Error("keyless code backend must be skipped")
		}
		if !r.Available(command.BackendCreative) {
			t.Error("creative backend should be available")
		}
	})

	t.Run("disabled skips backend even with key", func(t *testing.T) {
		r := NewRegistryFromConfig(ctx, config.BackendsConfig{
			Research: config.ProviderConfig{Enabled: false, APIKey: "k"},
		}, &mockLogger{})

		if r.Available(command.BackendResearch) {
			t.Error("disabled research backend must be skipped")
		}
	})

	t.Run("empty config yields empty registry", func(t *testing.T) {
		r := NewRegistryFromConfig(ctx, config.BackendsConfig{}, &mockLogger{})
		if got := len(r.Configured()); got != 0 {
			t.Errorf("expected empty registry, got %d", got)
		}
	})
}
