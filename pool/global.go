package pool

import "unsafe"

// DefaultAllocator is the package-level singleton used by the free
// functions below, sized from DefaultHeapSize and DefaultMaxPools. Most
// callers that only need one allocator per process can use Init/Allocate/
// Release directly instead of constructing their own Allocator value.
var DefaultAllocator = NewAllocator(DefaultHeapSize, DefaultMaxPools, nil)

// Init configures DefaultAllocator. See (*Allocator).Init.
func Init(sizes []int) bool {
	return DefaultAllocator.Init(sizes)
}

// Allocate requests a block from DefaultAllocator. See (*Allocator).Allocate.
func Allocate(n int) unsafe.Pointer {
	return DefaultAllocator.Allocate(n)
}

// Release returns a block to DefaultAllocator. See (*Allocator).Release.
func Release(p unsafe.Pointer) {
	DefaultAllocator.Release(p)
}
