package storage

import "github.com/iudanet/ledgersync/internal/models"

// Notifier reports local writes per collection.
// Each subscription channel has capacity 1: signals are coalesced and
// writers never block on slow subscribers.
type Notifier interface {
	// Subscribe returns a signal channel and a cancel func that releases it
	Subscribe(entity models.EntityType) (<-chan struct{}, func())
}
