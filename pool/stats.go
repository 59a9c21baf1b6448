package pool

// Statistics is an aggregate snapshot across all configured pools.
//
// This deliberately stops short of tracking a per-allocation size range:
// every live block in a given pool has exactly the pool's configured block
// size, so a min/max over allocation sizes would be degenerate, and nothing
// here tracks per-allocation metadata beyond what the pool structure itself
// implies.
type Statistics struct {
	// PoolCount is the number of configured pools.
	PoolCount int
	// BlockBytes is the total capacity, in bytes, across all pools
	// (sum of max*blockSize), regardless of how much is currently live.
	BlockBytes int
	// AllocationCount is the number of blocks currently live (handed out
	// and not yet released) across all pools.
	AllocationCount int
	// AllocationBytes is the number of bytes currently live across all
	// pools (sum of liveCount*blockSize per pool).
	AllocationBytes int
}
