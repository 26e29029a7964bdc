// Package ids supplies unique identifier generation for groups, split clips,
// and projects. The Generator interface exists so tests can substitute a
// deterministic sequence.
package ids

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces collision-free identifier strings within a session.
type Generator interface {
	// NewID returns a fresh globally unique identifier.
	NewID() string
	// NewSuffix returns a short token suitable for deriving child ids,
	// e.g. "<parent>-split-<suffix>".
	NewSuffix() string
}

// UUIDGenerator is the production Generator backed by random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

func (UUIDGenerator) NewSuffix() string {
	id := uuid.NewString()
	// The first segment is enough to keep derived ids readable.
	return id[:8]
}

// Sequence is a deterministic Generator for tests. Ids count up from 1 with
// the configured prefix.
type Sequence struct {
	Prefix  string
	counter atomic.Uint64
}

func (s *Sequence) NewID() string {
	return fmt.Sprintf("%s%d", s.Prefix, s.counter.Add(1))
}

func (s *Sequence) NewSuffix() string {
	return fmt.Sprintf("%d", s.counter.Add(1))
}
