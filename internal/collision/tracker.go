// Package collision detects xxhash64 collisions between distinct string
// keys hashed into a single map key (registry.Registry's type-name and
// symbolic-descriptor indices, spec §5.2 "Registry").
//
// Adapted from the teacher's metric-name collision tracker: the same
// hash-then-compare-on-collision shape, generalised from "metric name" to
// any named registry key.
package collision

import (
	"github.com/sousouindustries/amqptype/errs"
)

// Tracker tracks the names mapped to each hash value it has seen, so a
// second distinct name hashing to an already-seen value can be reported
// rather than silently overwriting the first registration.
type Tracker struct {
	names map[uint64]string
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{names: make(map[uint64]string)}
}

// Track records that name hashes to hash. It returns errs.ErrHashCollision
// if a different name was already tracked under the same hash; re-tracking
// the same (name, hash) pair is a no-op, not a collision.
func (t *Tracker) Track(name string, hash uint64) error {
	if existing, ok := t.names[hash]; ok && existing != name {
		return errs.ErrHashCollision
	}
	t.names[hash] = name
	return nil
}

// Count returns the number of distinct hashes tracked.
func (t *Tracker) Count() int {
	return len(t.names)
}
