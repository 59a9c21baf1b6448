package pool

import "unsafe"

// Validatable is implemented by types that can check their own internal
// consistency. DebugValidate (validate_debug.go / validate_prod.go) calls
// it only in debug builds.
type Validatable interface {
	Validate() error
}

var _ Validatable = (*Allocator)(nil)

// Validate performs the allocator's invariant checks against its current
// state:
//
//  1. pool sub-ranges are pairwise disjoint and lie within the heap
//  2. (descriptor ordering is structural — Init never reorders by size)
//  3. allocated <= max and end-start == max*blockSize, for every pool
//  4. every address reachable from freeHead lies in range, is congruent to
//     blockSize, and was once handed out (index < allocated)
//  5. the free list has no duplicates or cycles, and its length plus the
//     live count equals allocated
//  6. no address appears in two pools' ranges (implied by 1, checked
//     directly here for belt-and-suspenders)
//
// This is expensive relative to Allocate/Release and is intended for tests
// and debug builds, not the allocation hot path — see DebugValidate.
func (a *Allocator) Validate() error {
	if !a.ready {
		return errAllocatorNotReady
	}

	var heapStart uintptr
	if len(a.heap) > 0 {
		heapStart = uintptr(unsafe.Pointer(&a.heap[0]))
	}
	heapEnd := heapStart + uintptr(len(a.heap))

	for i := 0; i < a.count; i++ {
		d := &a.pools[i]

		if uintptr(d.start) < heapStart || uintptr(d.end) > heapEnd {
			return errInvariant(i, "sub-range falls outside the backing heap")
		}
		if d.allocated > d.max {
			return errInvariant(i, "allocated exceeds max")
		}
		if uintptr(d.end)-uintptr(d.start) != uintptr(d.max*d.blockSize) {
			return errInvariant(i, "end-start does not equal max*blockSize")
		}

		for j := 0; j < a.count; j++ {
			if j == i {
				continue
			}
			o := &a.pools[j]
			if rangesOverlap(d.start, d.end, o.start, o.end) {
				return errInvariantPair(i, j, "pool ranges overlap")
			}
		}

		seen := make(map[unsafe.Pointer]bool)
		freeCount := 0
		for link := d.freeHead; link != nil; link = readLink(link) {
			if !d.owns(link) {
				return errInvariant(i, "free list contains an address outside its own pool")
			}
			idx := (uintptr(link) - uintptr(d.start)) / uintptr(d.blockSize)
			if int(idx) >= d.allocated {
				return errInvariant(i, "free list contains a block that was never allocated")
			}
			if seen[link] {
				return errInvariant(i, "free list contains a cycle or duplicate")
			}
			seen[link] = true
			freeCount++
		}

		if freeCount+d.liveCount() != d.allocated {
			return errInvariant(i, "free list length plus live count does not equal allocated")
		}
	}

	return nil
}

// rangesOverlap reports whether the half-open ranges [aStart, aEnd) and
// [bStart, bEnd) share any address.
func rangesOverlap(aStart, aEnd, bStart, bEnd unsafe.Pointer) bool {
	return uintptr(aStart) < uintptr(bEnd) && uintptr(bStart) < uintptr(aEnd)
}
