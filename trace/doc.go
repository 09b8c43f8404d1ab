// Package trace groups named signals into the evaluation context of a
// formula.
//
// A Trace maps unique channel names to *signal.Signal values. Synchronize
// produces a new Trace whose channels all share one merged, sorted timestamp
// sequence (the union of the original timestamps inside the common overlap),
// each channel resampled by its own interpolation policy. Traces are
// immutable; synchronizing never touches the receiver.
//
//	tr, err := trace.New(map[string]*signal.Signal{"speed": v, "rpm": w})
//	synced, err := tr.Synchronize("speed", "rpm")
//	ts := synced.Times() // shared basis
package trace
