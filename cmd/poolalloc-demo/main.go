// Command poolalloc-demo drives the pool package's Allocator through a
// battery of scenarios and prints pass/fail for each. It is not part of
// the allocator core and carries no invariants of its own.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "poolalloc-demo",
	Short: "Exercise the segregated-fit block allocator and print outcomes",
	Long: `poolalloc-demo drives the pool package's Allocator through a scenario
battery: rejected configurations, rejected and successful allocations, LIFO
reuse after release, and nil-pointer release.`,
	Version: "0.1.0",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
