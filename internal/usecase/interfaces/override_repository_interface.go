package interfaces

import (
	"context"
	"time"
)

// Persistence keys for the two independent override sets.
const (
	OverrideSetEmbarcados = "embarcados"
	OverrideSetExcluidos  = "excluidos"
)

// IOverrideRepository abstracts the opaque key-value persistence of the
// override sets. Each named set is stored whole: a load returns the full
// identity-to-timestamp map and a save rewrites it.

type IOverrideRepository interface {
	LoadSet(ctx context.Context, name string) (map[string]time.Time, error)
	SaveSet(ctx context.Context, name string, entries map[string]time.Time) error
}
