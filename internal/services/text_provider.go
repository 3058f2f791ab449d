package services

import "context"

// TextCompletionProvider is the capability interface for the generative
// language collaborator. Implementations are best-effort: a single failed
// round-trip routes the caller to its deterministic fallback, with no retry
// or queuing.
type TextCompletionProvider interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
