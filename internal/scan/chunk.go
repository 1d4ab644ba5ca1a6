package scan

import (
	"errors"
	"math"
)

// Partitioning errors. The CLI validates its flags before a scan starts,
// but the scan package revalidates so library callers get the same
// guarantees. Sentinel errors keep both paths errors.Is friendly.
var (
	// ErrInvalidRange is returned when the lower bound exceeds the upper bound.
	ErrInvalidRange = errors.New("invalid range: low must not exceed high")

	// ErrInvalidChunkSize is returned when the chunk size is not positive.
	ErrInvalidChunkSize = errors.New("invalid chunk size: must be positive")

	// ErrRangeTooLarge is returned when the range cannot be partitioned:
	// either its span does not fit in a uint64 (the full domain) or the
	// chunk count would not fit in an int.
	ErrRangeTooLarge = errors.New("invalid range: too large to partition")
)

// Chunk is a contiguous closed sub-range of a scan. Chunks are produced in
// ascending order, are mutually exclusive, and collectively cover the full
// scan range.
type Chunk struct {
	// Index is the position of the chunk in ascending range order.
	Index int

	// Low is the inclusive lower bound.
	Low uint64

	// High is the inclusive upper bound.
	High uint64
}

// Count returns how many integers the chunk contains.
func (c Chunk) Count() uint64 {
	return c.High - c.Low + 1
}

// Partition splits the inclusive range [low, high] into ascending,
// non-overlapping chunks of at most size numbers each. Every integer in
// the range belongs to exactly one chunk; the final chunk may be short.
// An inverted range is an error rather than an empty result, so a
// misconfigured scan fails fast instead of silently finding nothing.
func Partition(low, high uint64, size int) ([]Chunk, error) {
	if size <= 0 {
		return nil, ErrInvalidChunkSize
	}
	if low > high {
		return nil, ErrInvalidRange
	}

	// The span wraps to zero only for the full uint64 domain, whose
	// chunk slice could never be allocated anyway.
	span := high - low + 1
	if span == 0 {
		return nil, ErrRangeTooLarge
	}

	count := span / uint64(size)
	if span%uint64(size) != 0 {
		count++
	}
	if count > uint64(math.MaxInt) {
		return nil, ErrRangeTooLarge
	}

	chunks := make([]Chunk, 0, count)
	chunkLow := low
	for i := 0; ; i++ {
		chunkHigh := chunkLow + uint64(size) - 1
		// The first condition catches uint64 wraparound near the top
		// of the domain.
		if chunkHigh < chunkLow || chunkHigh > high {
			chunkHigh = high
		}

		chunks = append(chunks, Chunk{Index: i, Low: chunkLow, High: chunkHigh})

		if chunkHigh == high {
			break
		}
		chunkLow = chunkHigh + 1
	}

	return chunks, nil
}
