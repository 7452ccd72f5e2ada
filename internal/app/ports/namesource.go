package ports

import "context"

// NameSource is an optional external directory of display names. Failures
// here are absorbed by callers, never surfaced to the player.
type NameSource interface {
	Names(ctx context.Context) ([]string, error)
}
