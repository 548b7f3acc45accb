// Package window implements a concurrent, per-peer bounded FIFO store of
// duration samples. Each peer keeps only the most recent size samples;
// older samples are evicted oldest-first on insert.
package window

import (
	"sync"
	"time"

	"github.com/gammazero/deque"
	"github.com/libp2p/go-libp2p/core/peer"
)

// PeerSamples is one peer's window as observed by Snapshot.
type PeerSamples struct {
	Peer    peer.ID
	Samples []time.Duration
}

// Store maps peers to bounded sample windows. The zero value is not
// usable; construct with NewStore.
//
// The peer map is guarded by an RWMutex while each window carries its own
// mutex, so concurrent writers for different peers do not contend once
// their windows exist.
type Store struct {
	size int

	mu      sync.RWMutex
	windows map[peer.ID]*Window
}

// NewStore creates a Store whose windows hold at most size samples each.
// size must be positive; the caller validates it at construction.
func NewStore(size int) *Store {
	return &Store{
		size:    size,
		windows: make(map[peer.ID]*Window),
	}
}

// Record appends a sample to p's window, creating the window on first use
// and evicting the oldest sample if the window is full. It never fails and
// never blocks beyond the two mutexes involved.
func (s *Store) Record(p peer.ID, d time.Duration) {
	s.mu.RLock()
	w := s.windows[p]
	s.mu.RUnlock()

	if w == nil {
		s.mu.Lock()
		// Re-check: another writer may have created it meanwhile.
		w = s.windows[p]
		if w == nil {
			w = &Window{size: s.size}
			s.windows[p] = w
		}
		s.mu.Unlock()
	}

	w.push(d)
}

// Snapshot returns a copy of every peer's current window. Each window is
// copied as a coherent whole under its own lock; no atomicity is provided
// across peers, and the slice order follows map iteration order.
func (s *Store) Snapshot() []PeerSamples {
	s.mu.RLock()
	all := make([]PeerSamples, 0, len(s.windows))
	windows := make([]*Window, 0, len(s.windows))
	for p, w := range s.windows {
		all = append(all, PeerSamples{Peer: p})
		windows = append(windows, w)
	}
	s.mu.RUnlock()

	// Copy each window outside the map lock so writers to other peers
	// stay unblocked.
	for i, w := range windows {
		all[i].Samples = w.copySamples()
	}
	return all
}

// Len returns the number of peers with a window.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.windows)
}

// Window is a bounded FIFO sequence of duration samples.
type Window struct {
	mu      sync.Mutex
	size    int
	samples deque.Deque[time.Duration]
}

func (w *Window) push(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.samples.Len() >= w.size {
		w.samples.PopFront()
	}
	w.samples.PushBack(d)
}

func (w *Window) copySamples() []time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]time.Duration, w.samples.Len())
	for i := range out {
		out[i] = w.samples.At(i)
	}
	return out
}
