package query

import (
	"context"

	"github.com/kailas-cloud/skysearch/internal/usecase/preference"
)

// Preferences resolves the simple-mode session of a client.
type Preferences interface {
	For(ctx context.Context, clientID string) (*preference.SimpleMode, error)
}
