package pool

import "unsafe"

// descriptor is one pool's record: the sub-range of the backing region it
// owns, the block size it serves, and the state needed to hand out and
// reclaim blocks within that range.
//
// A block is, at any moment, in exactly one of three states:
// unborn (its index is >= allocated), live (handed out, not yet released),
// or freed (linked into freeHead). The free list is intrusive: a freed
// block's first machine word is overwritten with the address of the next
// freed block, so no side table of freed blocks is maintained. This keeps
// release and the free-list half of allocate both O(1).
type descriptor struct {
	blockSize int
	start     unsafe.Pointer
	end       unsafe.Pointer
	max       int
	allocated int
	freeHead  unsafe.Pointer
}

// hasCapacity reports whether d can serve one more allocation, either by
// bumping its high-water mark or by popping its free list.
func (d *descriptor) hasCapacity() bool {
	return d.allocated < d.max || d.freeHead != nil
}

// owns reports whether p falls within d's range at an offset that is a
// multiple of d's block size — i.e. whether p could only have originated
// from this pool.
func (d *descriptor) owns(p unsafe.Pointer) bool {
	if uintptr(p) < uintptr(d.start) || uintptr(p) >= uintptr(d.end) {
		return false
	}
	return (uintptr(p)-uintptr(d.start))%uintptr(d.blockSize) == 0
}

// take pops the next available block from d: the head of its free list if
// non-empty, otherwise the next never-handed-out slot at the high-water
// mark. The caller must have already verified d.hasCapacity().
func (d *descriptor) take() unsafe.Pointer {
	if d.freeHead != nil {
		addr := d.freeHead
		d.freeHead = readLink(addr)
		return addr
	}

	addr := unsafe.Add(d.start, d.allocated*d.blockSize)
	d.allocated++
	return addr
}

// give pushes p onto the head of d's free list. The caller must have
// already verified d.owns(p).
func (d *descriptor) give(p unsafe.Pointer) {
	writeLink(p, d.freeHead)
	d.freeHead = p
}

// readLink reads the free-list link stored in the first word at addr.
func readLink(addr unsafe.Pointer) unsafe.Pointer {
	return *(*unsafe.Pointer)(addr)
}

// writeLink stores next as the free-list link in the first word at addr.
func writeLink(addr, next unsafe.Pointer) {
	*(*unsafe.Pointer)(addr) = next
}

// liveCount returns the number of blocks currently handed out and not yet
// released: the high-water mark minus the length of the free list.
func (d *descriptor) liveCount() int {
	n := 0
	for link := d.freeHead; link != nil; link = readLink(link) {
		n++
	}
	return d.allocated - n
}
