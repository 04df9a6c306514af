package ports

import (
	"context"

	"github.com/aretw0/spotlight/pkg/domain"
)

// SettingsStore defines the durable key → boolean mapping the engine uses to
// remember which tours were seen. Each store owns exactly one mapping, addressed
// by a fixed identifier distinct from other application storage.
//
// Implementations must treat unreadable or corrupt stored content as an empty
// mapping rather than returning it as an error.
type SettingsStore interface {
	// Get returns the flag value and whether it is present.
	Get(ctx context.Context, key string) (value bool, ok bool, err error)

	// Set writes a flag and persists the whole mapping.
	Set(ctx context.Context, key string, value bool) error

	// Load returns a copy of the whole mapping.
	Load(ctx context.Context) (domain.Settings, error)

	// Reset clears every stored flag.
	Reset(ctx context.Context) error
}
