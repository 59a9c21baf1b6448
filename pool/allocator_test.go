package pool_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/sachinsulkunte/poolalloc/pool"
)

func newTestAllocator() *pool.Allocator {
	return pool.NewAllocator(pool.DefaultHeapSize, pool.DefaultMaxPools, nil)
}

// Init rejects malformed configurations: an empty pool count, a negative
// block size, too many pools, and a size that exceeds its partition.
func TestInitRejectedConfigs(t *testing.T) {
	a := newTestAllocator()

	// This API derives count from len(sizes), so there is no separate
	// count argument that could go negative; an empty/nil sizes slice is
	// the equivalent of an invalid count.
	require.False(t, a.Init(nil))
	require.False(t, a.Init([]int{32, -64}))
	require.False(t, a.Init([]int{32, 64, 256, 1024, 2048, 4096})) // 6 > MaxPools
	require.False(t, a.Init([]int{32, 64, 256, 1024, 14000}))      // 14000 > 65536/5

	require.True(t, a.Init([]int{32, 64, 256, 1024}))
	require.True(t, a.Ready())
}

func TestInitBlockSizeSmallerThanLink(t *testing.T) {
	a := newTestAllocator()
	require.False(t, a.Init([]int{1, 64, 256, 1024}))
}

func TestInitDoesNotSortBySize(t *testing.T) {
	a := newTestAllocator()
	require.True(t, a.Init([]int{1024, 32}))

	// A 40-byte request must be served from the 1024 pool (index 0) because
	// pools are ordered by caller-supplied order, and the 32-byte pool
	// (index 1) is too small for it.
	p := a.Allocate(40)
	require.NotNil(t, p)

	p2 := a.Allocate(16)
	require.NotNil(t, p2)
	// p2 must come from the 32-byte pool, which sits in the second
	// partition (index 1), strictly after the 1024-byte pool's partition.
	require.Greater(t, uint64(uintptr(p2)), uint64(uintptr(p)))
}

// A request that exceeds the capacity of the smallest pool that could
// serve it must spill into the next larger pool.
func TestAllocateOverflowsIntoLargerPool(t *testing.T) {
	a := newTestAllocator()
	require.True(t, a.Init([]int{32, 64, 256, 1024}))

	var last unsafe.Pointer
	for i := 0; i < 65; i++ {
		p := a.Allocate(240)
		require.NotNil(t, p, "allocation %d should succeed", i)
		last = p
	}

	// The 256-byte pool has max = 16384/256 = 64 blocks; the 65th
	// 240-byte request must spill into the 1024-byte pool.
	size, ok := a.BlockSizeOf(last)
	require.True(t, ok)
	require.Equal(t, 1024, size)
}

func TestReleaseNilIsNoOp(t *testing.T) {
	a := newTestAllocator()
	require.True(t, a.Init([]int{32, 64, 256, 1024}))

	before := a.Statistics()
	a.Release(nil)
	after := a.Statistics()
	require.Equal(t, before, after)
}

func TestAllocateReleaseIsLIFO(t *testing.T) {
	a := newTestAllocator()
	require.True(t, a.Init([]int{32, 64, 256, 1024}))

	p1 := a.Allocate(56)
	p2 := a.Allocate(56)
	require.NotNil(t, p1)
	require.NotNil(t, p2)
	require.NotEqual(t, p1, p2)

	a.Release(p1)
	p3 := a.Allocate(56)
	require.Equal(t, p1, p3)
}

// Releasing a block from one pool must not make capacity available in an
// unrelated pool.
func TestReleaseDoesNotCrossPools(t *testing.T) {
	a := newTestAllocator()
	require.True(t, a.Init([]int{32, 64, 256, 1024}))

	var q unsafe.Pointer
	for i := 0; i < 12; i++ {
		q = a.Allocate(63)
		require.NotNil(t, q)
	}
	a.Release(q)

	succeeded := 0
	failed := 0
	for i := 0; i < 18; i++ {
		if a.Allocate(1023) != nil {
			succeeded++
		} else {
			failed++
		}
	}

	require.Equal(t, 16, succeeded) // 16384/1024 == 16
	require.Equal(t, 2, failed)
}

func TestReleaseForeignPointerIsNoOp(t *testing.T) {
	a := newTestAllocator()
	require.True(t, a.Init([]int{32, 64, 256, 1024}))

	before := a.Statistics()

	var stray byte
	a.Release(unsafe.Pointer(&stray))

	after := a.Statistics()
	require.Equal(t, before, after)
}

func TestAllocateZeroFails(t *testing.T) {
	a := newTestAllocator()
	require.True(t, a.Init([]int{32, 64, 256, 1024}))
	require.Nil(t, a.Allocate(0))
}

// Requests at exactly the largest configured block size succeed; requests
// one byte over fail.
func TestAllocateAtAndAboveLargestBlockSize(t *testing.T) {
	a := newTestAllocator()
	require.True(t, a.Init([]int{32, 64, 256, 1024}))

	require.NotNil(t, a.Allocate(1024))
	require.Nil(t, a.Allocate(1025))
}

func TestAllocateBeforeInitIsNoOp(t *testing.T) {
	a := newTestAllocator()
	require.Nil(t, a.Allocate(32))
	a.Release(unsafe.Pointer(&struct{}{}))
}

func TestAllocateNegativeFails(t *testing.T) {
	a := newTestAllocator()
	require.True(t, a.Init([]int{32, 64, 256, 1024}))
	require.Nil(t, a.Allocate(-15))
}

func TestValidateAfterSequence(t *testing.T) {
	a := newTestAllocator()
	require.True(t, a.Init([]int{32, 64, 256, 1024}))

	p1 := a.Allocate(32)
	p2 := a.Allocate(1000)
	a.Release(p1)
	p3 := a.Allocate(10)
	_ = p2
	_ = p3

	require.NoError(t, a.Validate())
}
