package pool

import "github.com/cockroachdb/errors"

// These sentinel errors describe why Init rejected a configuration. Init's
// public contract still returns a plain bool; the errors exist so the
// rejection reason can be logged via the Allocator's slog.Logger and
// inspected in tests without weakening that contract.
var (
	// ErrTooManyPools is returned when count is outside [1, MaxPools].
	ErrTooManyPools = errors.New("pool: block size count out of range")
	// ErrInvalidBlockSize is returned when a block size is not in
	// [1, maxBlockSize].
	ErrInvalidBlockSize = errors.New("pool: block size out of range")
	// ErrBlockSizeTooSmall is returned when a block size cannot hold the
	// intrusive free-list link written into every freed block.
	ErrBlockSizeTooSmall = errors.New("pool: block size smaller than free-list link")
	// ErrBlockExceedsPartition is returned when a block size exceeds the
	// equal-share partition computed from HeapSize/count.
	ErrBlockExceedsPartition = errors.New("pool: block size exceeds partition size")

	// errAllocatorNotReady is returned by Validate when called before a
	// successful Init.
	errAllocatorNotReady = errors.New("pool: allocator not initialized")
)

// errInvariant wraps an invariant violation with the offending pool's
// descriptor index.
func errInvariant(poolIndex int, reason string) error {
	return errors.Newf("pool %d: %s", poolIndex, reason)
}

// errInvariantPair is errInvariant for a violation spanning two pools.
func errInvariantPair(i, j int, reason string) error {
	return errors.Newf("pools %d and %d: %s", i, j, reason)
}
