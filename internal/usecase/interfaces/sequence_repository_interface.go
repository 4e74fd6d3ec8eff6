package interfaces

import "context"

// ISequenceRepository hands out document sequence numbers.
//
// Next atomically increments the counter stored under name (PR, PO, GR,
// INV) and returns the new value, starting at 1 for a fresh counter.
// Numbers are assigned once and never reused; there is no gap-filling.
type ISequenceRepository interface {
	Next(ctx context.Context, name string) (int, error)
}
