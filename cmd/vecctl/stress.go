package main

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/joshuapare/rawvec/vec"
	"github.com/joshuapare/rawvec/workpool"
	"github.com/spf13/cobra"
)

var (
	stressN       int
	stressWorkers int
	stressElem    string
)

func init() {
	cmd := newStressCmd()
	cmd.Flags().IntVarP(&stressN, "n", "n", 100_000, "Elements to push into each Vec")
	cmd.Flags().IntVarP(&stressWorkers, "workers", "w", 1, "Vecs filled in parallel, one per worker")
	cmd.Flags().StringVar(&stressElem, "elem", "int", "Element type: int (off-heap) or string (heap)")
	rootCmd.AddCommand(cmd)
}

func newStressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Push many elements, dispose, and check nothing leaked",
		Long: `The stress command fills one Vec per worker with n elements, disposes
them, and compares the allocator counters before and after. It fails if any
block or byte is still live afterwards.

Example:
  vecctl stress
  vecctl stress --n 1000000 --workers 8
  vecctl stress --elem string --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStress(stressN, stressWorkers, stressElem)
		},
	}
	return cmd
}

// StressReport is the outcome of one stress run.
type StressReport struct {
	Elements int           `json:"elements"`
	Workers  int           `json:"workers"`
	ElemType string        `json:"elem_type"`
	OffHeap  bool          `json:"off_heap"`
	FinalCap int           `json:"final_cap"`
	Resizes  int           `json:"resizes"`
	Elapsed  time.Duration `json:"elapsed_ns"`
	Before   vec.MemStats  `json:"before"`
	After    vec.MemStats  `json:"after"`
	Leaked   bool          `json:"leaked"`
}

// fillResult is what one worker observed while filling its Vec.
type fillResult struct {
	offHeap  bool
	finalCap int
	resizes  int
	err      error
}

func runStress(n, workers int, elem string) error {
	if n < 0 {
		return fmt.Errorf("--n must be non-negative, got %d", n)
	}
	if workers < 1 {
		return fmt.Errorf("--workers must be at least 1, got %d", workers)
	}

	var fill func(n int) fillResult
	switch elem {
	case "int":
		fill = fillInts
	case "string":
		fill = fillStrings
	default:
		return fmt.Errorf("unknown --elem %q (want int or string)", elem)
	}

	printVerbose("Stressing %d Vec(s) with %d %s elements each\n", workers, n, elem)

	before := vec.ReadMemStats()
	start := time.Now()

	var (
		mu      sync.Mutex
		results []fillResult
	)
	pool := workpool.New(workers, &workpool.Options{QueueSize: workers})
	for range workers {
		if err := pool.Execute(func() {
			r := fill(n)
			mu.Lock()
			results = append(results, r)
			mu.Unlock()
		}); err != nil {
			pool.Close()
			return fmt.Errorf("schedule fill: %w", err)
		}
	}
	pool.Close()

	elapsed := time.Since(start)
	after := vec.ReadMemStats()

	if len(results) != workers {
		return fmt.Errorf("only %d of %d fills completed (%d panicked)", len(results), workers, pool.Panics())
	}

	report := StressReport{
		Elements: n,
		Workers:  workers,
		ElemType: elem,
		Elapsed:  elapsed,
		Before:   before,
		After:    after,
	}
	for _, r := range results {
		if r.err != nil {
			return r.err
		}
		report.OffHeap = r.offHeap
		report.FinalCap = r.finalCap
		report.Resizes = r.resizes
	}
	delta := after.Sub(before)
	report.Leaked = delta.LiveBlocks != 0 || delta.LiveBytes != 0 || delta.Allocs != delta.Frees

	if jsonOut {
		if err := printJSON(report); err != nil {
			return err
		}
	} else {
		printStressReport(report)
	}

	if report.Leaked {
		return fmt.Errorf("leak detected: %d live blocks, %d live bytes after dispose", delta.LiveBlocks, delta.LiveBytes)
	}
	return nil
}

func printStressReport(r StressReport) {
	d := r.After.Sub(r.Before)
	backing := "heap"
	if r.OffHeap {
		backing = "off-heap"
	}
	printInfo("Stress: %d x %d %s elements (%s)\n", r.Workers, r.Elements, r.ElemType, backing)
	printInfo("  final capacity: %d\n", r.FinalCap)
	printInfo("  resizes:        %d\n", r.Resizes)
	printInfo("  elapsed:        %s\n", r.Elapsed)
	printInfo("  blocks:         %d allocated, %d grown, %d freed\n", d.Allocs, d.Grows, d.Frees)
	printInfo("  live after:     %d blocks, %d bytes\n", d.LiveBlocks, d.LiveBytes)
	if r.Leaked {
		printInfo("  result:         LEAK\n")
	} else {
		printInfo("  result:         ok\n")
	}
}

func fillInts(n int) fillResult {
	v := vec.New[int]()
	res := fillResult{offHeap: v.OffHeap()}
	for i := range n {
		before := v.Cap()
		v.Push(i)
		if v.Cap() != before {
			res.resizes++
		}
	}
	res.finalCap = v.Cap()
	res.err = verify(v, func(i int) int { return i })
	v.Dispose()
	return res
}

func fillStrings(n int) fillResult {
	v := vec.New[string]()
	res := fillResult{offHeap: v.OffHeap()}
	for i := range n {
		before := v.Cap()
		v.Push(strconv.Itoa(i))
		if v.Cap() != before {
			res.resizes++
		}
	}
	res.finalCap = v.Cap()
	res.err = verify(v, strconv.Itoa)
	v.Dispose()
	return res
}

// verify checks every slot still holds what was pushed into it.
func verify[T comparable](v *vec.Vec[T], want func(int) T) error {
	for i, x := range v.Slice() {
		if x != want(i) {
			return fmt.Errorf("slot %d corrupted: got %v, want %v", i, x, want(i))
		}
	}
	return nil
}
