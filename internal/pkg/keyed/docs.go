// Package keyed provides per-key concurrency primitives.
//
//   - Guard marks a key as having an operation in flight and rejects a second
//     acquisition instead of waiting. It backs the per-order busy check.
//   - Mutex serializes critical sections per key and can hold several keys at once,
//     acquiring them in sorted order so overlapping callers cannot deadlock.
//
// Both release their bookkeeping when the last holder leaves, so memory stays
// proportional to the number of keys currently in use.
package keyed
