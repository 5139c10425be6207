package auth

import (
	"context"

	"go.uber.org/zap"

	"dayboard/internal/config"
	"dayboard/internal/logging"
)

// BootstrapConfig is the explicit input to the bootstrap sequence. It is
// assembled once at process entry; the sequence reads nothing from the
// environment itself.
type BootstrapConfig struct {
	Provider     config.ProviderConfig
	InitialToken string
}

// BootstrapResult reports how the one-shot bootstrap sequence ended.
//
// Exactly one of the following holds:
//   - Blocked:  empty provider configuration; no client exists and the
//     listener was never registered. Message describes the block.
//   - Client set: the client handle was constructed, the listener is
//     registered, and the sign-in attempts have completed. The listener
//     has already observed the outcome, signed-in or not.
//
// Initialization failures (malformed configuration, client construction
// errors) surface as Blocked with a message rather than an error: the
// shell shows the message and stays on the loading screen.
type BootstrapResult struct {
	Blocked bool
	Message string
	Client  *Client
	Cancel  func() // releases the listener registration; non-nil when Client is
}

// Bootstrap runs the one-time identity bootstrap sequence:
//
//  1. An empty provider configuration halts permanently in the blocked
//     state.
//  2. A client handle is constructed and the listener registered before
//     any sign-in attempt, so the listener observes the eventual outcome
//     regardless of timing.
//  3. Sign-in uses the pre-issued token when present; on any failure the
//     error is logged and a single anonymous sign-in is attempted instead.
//
// There are no retries beyond the anonymous fallback and no timeout of its
// own; cancellation comes from ctx.
func Bootstrap(ctx context.Context, cfg BootstrapConfig, listener Listener) BootstrapResult {
	log := logging.Get(logging.CategoryBoot)

	if cfg.Provider.IsEmpty() {
		log.Warn("bootstrap blocked: no provider configuration")
		return BootstrapResult{
			Blocked: true,
			Message: "Identity provider is not configured. Supply a provider configuration and restart.",
		}
	}

	client, err := NewClient(cfg.Provider)
	if err != nil {
		log.Error("bootstrap failed to construct provider client", zap.Error(err))
		return BootstrapResult{
			Blocked: true,
			Message: "Identity provider configuration is invalid: " + err.Error(),
		}
	}

	cancel := client.Subscribe(listener)

	if cfg.InitialToken != "" {
		if _, err := client.SignInWithToken(ctx, cfg.InitialToken); err == nil {
			return BootstrapResult{Client: client, Cancel: cancel}
		}
		// Credential failure is absorbed here: the client already logged
		// it, the user never sees it, and we continue anonymously.
	}

	if _, err := client.SignInAnonymously(ctx); err != nil {
		log.Warn("anonymous sign-in failed", zap.Error(err))
	}
	return BootstrapResult{Client: client, Cancel: cancel}
}
