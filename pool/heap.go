// Package pool implements a fixed-footprint, segregated-fit block allocator.
//
// A single contiguous byte region, whose size is fixed when the Allocator is
// constructed, is partitioned at initialization into a small number of pools, each dedicated to serving
// requests up to a given block size. Allocation and release calls service
// the caller from the appropriate pool in constant time after a bounded
// linear pool selection, without any dynamic growth of the underlying
// region and without touching the platform allocator.
package pool

import "unsafe"

// DefaultHeapSize is the total size in bytes of the backing region used by
// the package-level default Allocator.
const DefaultHeapSize = 65536

// DefaultMaxPools is the hard upper bound on the number of pools carried by
// the package-level default Allocator.
const DefaultMaxPools = 5

// linkWidth is the size in bytes of the intrusive free-list link stored in
// the first word of every free block. Init rejects any block size smaller
// than this.
var linkWidth = unsafe.Sizeof(unsafe.Pointer(nil))

// maxBlockSize is the largest value Init accepts for an individual block
// size. It is documented explicitly as a bounded range rather than caught
// implicitly by truncating to a narrower integer type, which would
// silently accept values congruent to a small negative number modulo the
// narrower type's range.
const maxBlockSize = 1<<31 - 1
