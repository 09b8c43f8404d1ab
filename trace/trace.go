// SPDX-License-Identifier: MIT
// Package: signaltl/trace
//
// trace.go — named signal collection and its synchronization.
//
// Contract:
//   • Names are unique and non-empty; signals are non-nil.
//   • A synchronized Trace exposes its merged basis through Times(); every
//     channel of it has exactly those sample times.
//   • Nothing here mutates a Trace after New/Synchronize returns.

package trace

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/signaltl/signal"
)

// Trace is an immutable mapping from channel name to Signal.
type Trace struct {
	channels map[string]*signal.Signal
	names    []string  // sorted, for deterministic iteration
	times    []float64 // merged basis; nil unless synchronized
}

// New builds a Trace from the given channels. The map is copied; the
// signals themselves are immutable and shared.
//
// Errors:
//   - signal.ErrInvalidSignal — empty channel name or nil signal.
func New(channels map[string]*signal.Signal) (*Trace, error) {
	own := make(map[string]*signal.Signal, len(channels))
	names := make([]string, 0, len(channels))
	for name, s := range channels {
		if name == "" {
			return nil, fmt.Errorf("%w: empty channel name", signal.ErrInvalidSignal)
		}
		if s == nil {
			return nil, fmt.Errorf("%w: channel %q is nil", signal.ErrInvalidSignal, name)
		}
		own[name] = s
		names = append(names, name)
	}
	sort.Strings(names)

	return &Trace{channels: own, names: names}, nil
}

// Synchronize builds a Trace from channels and synchronizes all of them.
// It is the "N named signals in, N aligned signals plus merged timestamps
// out" boundary call; read the basis back with Times().
func Synchronize(channels map[string]*signal.Signal) (*Trace, error) {
	tr, err := New(channels)
	if err != nil {
		return nil, err
	}

	return tr.Synchronize()
}

// Len returns the number of channels.
func (tr *Trace) Len() int { return len(tr.names) }

// Names returns the channel names in ascending order.
func (tr *Trace) Names() []string {
	out := make([]string, len(tr.names))
	copy(out, tr.names)

	return out
}

// Has reports whether the channel exists.
func (tr *Trace) Has(name string) bool {
	_, ok := tr.channels[name]

	return ok
}

// Get returns the signal of a channel.
//
// Errors:
//   - ErrUnknownChannel — no such channel.
func (tr *Trace) Get(name string) (*signal.Signal, error) {
	s, ok := tr.channels[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, name)
	}

	return s, nil
}

// Synchronized reports whether the Trace was produced by Synchronize.
func (tr *Trace) Synchronized() bool { return tr.times != nil }

// Times returns a copy of the merged timestamp basis, or nil if the Trace is
// not synchronized.
func (tr *Trace) Times() []float64 {
	if tr.times == nil {
		return nil
	}
	out := make([]float64, len(tr.times))
	copy(out, tr.times)

	return out
}

// Domain returns the common overlap [max t_first, min t_last] of all channels.
//
// Errors:
//   - signal.ErrInvalidSignal     — the Trace has no channels.
//   - signal.ErrEmptyIntersection — the channels do not overlap.
func (tr *Trace) Domain() (float64, float64, error) {
	if len(tr.names) == 0 {
		return 0, 0, fmt.Errorf("%w: trace has no channels", signal.ErrInvalidSignal)
	}
	begin, end := tr.channels[tr.names[0]].Domain()
	for _, name := range tr.names[1:] {
		b, e := tr.channels[name].Domain()
		begin = max(begin, b)
		end = min(end, e)
	}
	if begin > end {
		return 0, 0, fmt.Errorf("%w: overlap [%v, %v] is empty", signal.ErrEmptyIntersection, begin, end)
	}

	return begin, end, nil
}

// Synchronize returns a new synchronized Trace holding the named channels
// (every channel when names is empty), all resampled on one merged basis.
//
// Errors:
//   - ErrUnknownChannel           — a requested name is absent.
//   - signal.ErrInvalidSignal     — nothing to synchronize.
//   - signal.ErrEmptyIntersection — the selected channels do not overlap.
//
// Complexity: O(N log N) over the total sample count N of the selection.
func (tr *Trace) Synchronize(names ...string) (*Trace, error) {
	if len(names) == 0 {
		names = tr.names
	}
	selected := uniqueSorted(names)
	sigs := make([]*signal.Signal, len(selected))
	for i, name := range selected {
		s, err := tr.Get(name)
		if err != nil {
			return nil, err
		}
		sigs[i] = s
	}

	aligned, times, err := signal.Synchronize(sigs...)
	if err != nil {
		return nil, err
	}
	channels := make(map[string]*signal.Signal, len(selected))
	for i, name := range selected {
		channels[name] = aligned[i]
	}

	return &Trace{channels: channels, names: selected, times: times}, nil
}

// uniqueSorted returns a sorted copy of names without duplicates.
func uniqueSorted(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	sort.Strings(out)
	w := 0
	for r := range out {
		if w == 0 || out[r] != out[w-1] {
			out[w] = out[r]
			w++
		}
	}

	return out[:w]
}
