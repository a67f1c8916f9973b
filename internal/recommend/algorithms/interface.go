// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package algorithms

import (
	"context"
	"sync"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// BaseAlgorithm provides the fit state and locking shared by every
// component. Fit takes the exclusive lock; queries take the shared lock.
type BaseAlgorithm struct {
	name    string
	fitted  bool
	version int
	mu      sync.RWMutex
}

// NewBaseAlgorithm creates a new base with the given name.
func NewBaseAlgorithm(name string) BaseAlgorithm {
	return BaseAlgorithm{name: name}
}

// Name returns the component identifier.
func (b *BaseAlgorithm) Name() string {
	return b.name
}

// IsFitted returns whether Fit has completed.
func (b *BaseAlgorithm) IsFitted() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.fitted
}

// Version counts completed fits.
func (b *BaseAlgorithm) Version() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.version
}

// markFitted must be called while holding the fit lock.
func (b *BaseAlgorithm) markFitted() {
	b.fitted = true
	b.version++
}

// acquireFitLock acquires the exclusive fit lock.
func (b *BaseAlgorithm) acquireFitLock() {
	b.mu.Lock()
}

// releaseFitLock releases the exclusive fit lock.
func (b *BaseAlgorithm) releaseFitLock() {
	b.mu.Unlock()
}

// acquireQueryLock acquires the shared query lock.
func (b *BaseAlgorithm) acquireQueryLock() {
	b.mu.RLock()
}

// releaseQueryLock releases the shared query lock.
func (b *BaseAlgorithm) releaseQueryLock() {
	b.mu.RUnlock()
}

// ContextCancelled checks if the context has been canceled.
func ContextCancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// Ensure all components implement their engine interfaces.
var (
	_ recommend.TitleIndex       = (*TFIDFIndex)(nil)
	_ recommend.PopularityRanker = (*Popularity)(nil)
	_ recommend.SimilarFinder    = (*CoRating)(nil)
	_ recommend.Suggester        = (*CloseMatcher)(nil)
)
