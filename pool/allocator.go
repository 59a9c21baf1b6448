package pool

import (
	"io"
	"unsafe"

	"golang.org/x/exp/slog"
)

// Allocator is a fixed-footprint, segregated-fit block allocator: a single
// contiguous byte region partitioned at Init time into up to MaxPools pools,
// each dedicated to one configured block size. It carries its state
// explicitly (the backing region and the descriptor table are both fields,
// not package globals), so distinct Allocator values are fully isolated
// from one another. See Init, Allocate, and Release for the operation
// contracts and DefaultAllocator/Init/Allocate/Release for a package-level
// singleton built on top of this type.
//
// An Allocator is not safe for concurrent use. Init, Allocate, and Release
// must be externally synchronized if called from more than one goroutine;
// this type offers no internal locking.
type Allocator struct {
	heap     []byte
	heapSize int
	maxPools int

	pools []descriptor
	count int
	ready bool

	logger *slog.Logger
}

// NewAllocator constructs an Allocator with the given backing-region size
// and pool-count ceiling. It must still be configured with Init before use.
// A nil logger is replaced with a logger that discards everything.
func NewAllocator(heapSize, maxPools int, logger *slog.Logger) *Allocator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard))
	}

	return &Allocator{
		heap:     make([]byte, heapSize),
		heapSize: heapSize,
		maxPools: maxPools,
		pools:    make([]descriptor, maxPools),
		logger:   logger,
	}
}

// Init configures the pools from an ordered list of block sizes, discarding
// any prior configuration. sizes[i] is the block size served by the pool at
// descriptor index i; pools are ordered by the order sizes are given, not
// sorted by size.
//
// Init returns false, and leaves the allocator unready for Allocate/Release,
// if:
//   - len(sizes) is not in [1, a.maxPools]
//   - any size is not in [1, maxBlockSize]
//   - any size is smaller than the free-list link width
//   - any size exceeds the equal-share partition (a.heapSize / len(sizes))
//
// The rejection reason is logged at Debug level but is not otherwise
// surfaced — the boolean return is the only error signal Init gives.
func (a *Allocator) Init(sizes []int) bool {
	a.ready = false

	count := len(sizes)
	if count < 1 || count > a.maxPools {
		a.logger.Debug("pool init rejected", "error", ErrTooManyPools, "count", count)
		return false
	}

	partition := a.heapSize / count
	base := unsafe.Pointer(&a.heap[0])

	pools := make([]descriptor, a.maxPools)
	for i, size := range sizes {
		if err := validateBlockSize(size, partition); err != nil {
			a.logger.Debug("pool init rejected", "error", err, "index", i, "size", size)
			return false
		}

		start := unsafe.Add(base, i*partition)
		max := partition / size
		pools[i] = descriptor{
			blockSize: size,
			start:     start,
			end:       unsafe.Add(start, max*size),
			max:       max,
		}
	}

	a.pools = pools
	a.count = count
	a.ready = true
	DebugValidate(a)
	return true
}

func validateBlockSize(size, partition int) error {
	if size < 1 || size > maxBlockSize {
		return ErrInvalidBlockSize
	}
	if uintptr(size) < linkWidth {
		return ErrBlockSizeTooSmall
	}
	if size > partition {
		return ErrBlockExceedsPartition
	}
	return nil
}

// Allocate returns an address of at least n contiguous bytes taken from
// exactly one pool, or nil if no pool can serve the request.
//
// Selection is best-fit with implicit fallback: among pools
// whose block size is >= n and which have capacity (either below their
// high-water mark or holding a non-empty free list), the pool with the
// smallest block size is chosen; ties go to the lowest descriptor index. A
// full pool is simply not a candidate, so a request that would fit a
// smaller pool may be served by a larger one when the smaller is exhausted.
//
// Allocate never zeroes the returned bytes; they may hold prior contents.
func (a *Allocator) Allocate(n int) unsafe.Pointer {
	if !a.ready || n <= 0 {
		return nil
	}

	best := -1
	for i := 0; i < a.count; i++ {
		d := &a.pools[i]
		if d.blockSize < n || !d.hasCapacity() {
			continue
		}
		if best == -1 || d.blockSize < a.pools[best].blockSize {
			best = i
		}
	}

	if best == -1 {
		return nil
	}
	addr := a.pools[best].take()
	DebugValidate(a)
	return addr
}

// Release returns the block at address p to its owning pool's free list. A
// nil p is a no-op. If p does not fall within any pool's range at an offset
// congruent to that pool's block size, the call is a silent no-op: the
// pointer is either foreign or misaligned, and neither condition is
// recoverable. Release reports no errors by design, so it stays safe to
// call from cleanup paths.
func (a *Allocator) Release(p unsafe.Pointer) {
	if !a.ready || p == nil {
		return
	}

	for i := 0; i < a.count; i++ {
		d := &a.pools[i]
		if d.owns(p) {
			d.give(p)
			DebugValidate(a)
			return
		}
	}

	a.logger.Debug("release of unowned pointer ignored", "pointer", p)
}

// BlockSizeOf reports the block size of the pool that owns p, using the
// same owning-pool lookup Release performs. It returns false if p is not
// owned by any configured pool. This does not track any per-allocation
// metadata — it only reports the structural fact of which pool's range p
// falls within, which Release must already compute.
func (a *Allocator) BlockSizeOf(p unsafe.Pointer) (int, bool) {
	if !a.ready || p == nil {
		return 0, false
	}
	for i := 0; i < a.count; i++ {
		d := &a.pools[i]
		if d.owns(p) {
			return d.blockSize, true
		}
	}
	return 0, false
}

// Statistics returns an aggregate snapshot of the allocator's pools. See
// pool/stats.go.
func (a *Allocator) Statistics() Statistics {
	var stats Statistics
	for i := 0; i < a.count; i++ {
		d := &a.pools[i]
		stats.PoolCount++
		stats.BlockBytes += d.max * d.blockSize
		stats.AllocationCount += d.liveCount()
		stats.AllocationBytes += d.liveCount() * d.blockSize
	}
	return stats
}

// Ready reports whether Init has succeeded at least once since
// construction (or since the last failed Init, which resets readiness).
func (a *Allocator) Ready() bool {
	return a.ready
}
