package loader

import (
	"context"

	"github.com/bordhockey/statsboard/internal/matches"
)

// Loader defines the interface for fetching the match dataset. This allows
// for mock implementations to be used in tests.
type Loader interface {
	Load(ctx context.Context) ([]matches.Record, error)
}
