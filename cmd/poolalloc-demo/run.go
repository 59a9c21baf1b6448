package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"github.com/sachinsulkunte/poolalloc/pool"
)

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the initialization, allocation, and release scenario battery",
		RunE: func(cmd *cobra.Command, args []string) error {
			runScenarios()
			return nil
		},
	}
}

func passed(ok, expected bool) string {
	if ok == expected {
		return "PASS"
	}
	return "FAIL"
}

func runScenarios() {
	logger := slog.New(slog.NewTextHandler(os.Stderr))
	a := pool.NewAllocator(pool.DefaultHeapSize, pool.DefaultMaxPools, logger)

	fmt.Println("-------------------------")
	fmt.Println("Initialization Tests")
	fmt.Println()

	fmt.Printf("Test Case 1a (negative count, mapped to empty sizes): %s\n",
		passed(a.Init(nil), false))
	fmt.Printf("Test Case 1b (negative size): %s\n",
		passed(a.Init([]int{32, -64}), false))
	fmt.Printf("Test Case 2 (too many pools): %s\n",
		passed(a.Init([]int{32, 64, 256, 1024, 2048, 4096}), false))
	fmt.Printf("Test Case 3 (size exceeds partition): %s\n",
		passed(a.Init([]int{32, 64, 256, 1024, 14000}), false))
	fmt.Printf("Test Case 4 (successful init): %s\n",
		passed(a.Init([]int{32, 64, 256, 1024}), true))

	fmt.Println()
	fmt.Println("-------------------------")
	fmt.Println("Allocation Tests")

	fmt.Printf("Test Case 5 (reject non-positive size): %s\n",
		passed(a.Allocate(-15) == nil, true))
	fmt.Printf("Test Case 6 (reject size above largest pool): %s\n",
		passed(a.Allocate(1030) == nil, true))
	p := a.Allocate(66)
	fmt.Printf("Test Case 7 (successful allocation): %s\n",
		passed(p != nil, true))

	fmt.Println()
	fmt.Println("-------------------------")
	fmt.Println("Release Tests")

	a.Release(p)
	fmt.Printf("Test Case 8 (release then reuse is LIFO): %s\n",
		passed(a.Allocate(66) == p, true))
	before := a.Statistics()
	a.Release(nil)
	fmt.Printf("Test Case 9 (nil release is a no-op): %s\n",
		passed(a.Statistics() == before, true))

	stats := a.Statistics()
	logger.Info("final allocator state",
		slog.Int("pools", stats.PoolCount),
		slog.Int("liveAllocations", stats.AllocationCount),
		slog.Int("liveBytes", stats.AllocationBytes),
	)
}
