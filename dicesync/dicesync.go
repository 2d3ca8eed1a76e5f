/*
Package dicesync implements a thread-safe wrapper for a dice.RandSource, for
servers that evaluate many chat messages concurrently against one source.
*/
package dicesync

import (
	"sync"

	"github.com/rollforge/dicechat"
)

// Source is a dice.RandSource wrapped with a sync.Mutex. Uniform calls the
// embedded source's Uniform method within the lock, since most RandSource
// implementations (crypto/rand- or math/rand-backed) are not safe for
// concurrent use on their own. A plain Mutex is used rather than an
// RWMutex: Uniform always mutates the embedded source's draw state, so
// there is no read-only path to split off.
type Source struct {
	l      sync.Mutex
	source dice.RandSource
}

// Wrap wraps source with a sync.Mutex, returning a dice.RandSource safe for
// concurrent use by multiple goroutines.
func Wrap(source dice.RandSource) *Source {
	return &Source{source: source}
}

// Uniform locks the embedded source and returns its draw.
func (s *Source) Uniform(low, high int) (int, error) {
	s.l.Lock()
	defer s.l.Unlock()
	return s.source.Uniform(low, high)
}
