package main

import (
	"fmt"

	"github.com/joshuapare/rawvec/list"
	"github.com/joshuapare/rawvec/vec"
	"github.com/spf13/cobra"
)

var traceList bool

func init() {
	cmd := newTraceCmd()
	cmd.Flags().BoolVar(&traceList, "list", false, "Replay the push/pop trace on the linked stack as well")
	rootCmd.AddCommand(cmd)
}

func newTraceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace",
		Short: "Replay the reference operation traces",
		Long: `The trace command replays two fixed operation sequences and prints the
result of each step together with the length and capacity after it.

Example:
  vecctl trace
  vecctl trace --list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(traceList)
		},
	}
}

// TraceStep is one operation and what it produced.
type TraceStep struct {
	Op     string `json:"op"`
	Result string `json:"result,omitempty"`
	Len    int    `json:"len"`
	Cap    int    `json:"cap,omitempty"`
}

// Trace is a named sequence of steps and the final contents.
type Trace struct {
	Name  string      `json:"name"`
	Steps []TraceStep `json:"steps"`
	Final string      `json:"final"`
}

func runTrace(withList bool) error {
	traces := []Trace{pushPopTrace(), insertTrace()}
	if withList {
		traces = append(traces, listTrace())
	}

	if jsonOut {
		return printJSON(traces)
	}
	for _, tr := range traces {
		printInfo("%s\n", tr.Name)
		for _, s := range tr.Steps {
			line := fmt.Sprintf("  %-14s", s.Op)
			if s.Result != "" {
				line += fmt.Sprintf(" = %-6s", s.Result)
			} else {
				line += fmt.Sprintf("   %-6s", "")
			}
			printInfo("%s len=%d cap=%d\n", line, s.Len, s.Cap)
		}
		printInfo("  final: %s\n\n", tr.Final)
	}
	return nil
}

func popResult[T any](x T, ok bool) string {
	if !ok {
		return "empty"
	}
	return fmt.Sprint(x)
}

func pushPopTrace() Trace {
	v := vec.New[int]()
	defer v.Dispose()

	tr := Trace{Name: "vec push/pop"}
	step := func(op, result string) {
		tr.Steps = append(tr.Steps, TraceStep{Op: op, Result: result, Len: v.Len(), Cap: v.Cap()})
	}
	push := func(x int) {
		v.Push(x)
		step(fmt.Sprintf("push(%d)", x), "")
	}
	pop := func() {
		x, ok := v.Pop()
		step("pop()", popResult(x, ok))
	}

	push(1)
	push(2)
	push(3)
	pop()
	pop()
	push(4)
	push(5)
	pop()
	pop()
	pop()
	pop()

	tr.Final = fmt.Sprint(v.Slice())
	return tr
}

func insertTrace() Trace {
	v := vec.New[string]()
	defer v.Dispose()

	tr := Trace{Name: "vec insert"}
	for _, s := range []struct {
		idx  int
		elem string
	}{{0, "a"}, {1, "b"}, {1, "c"}} {
		v.Insert(s.idx, s.elem)
		tr.Steps = append(tr.Steps, TraceStep{
			Op:  fmt.Sprintf("insert(%d, %q)", s.idx, s.elem),
			Len: v.Len(),
			Cap: v.Cap(),
		})
	}
	tr.Final = fmt.Sprint(v.Slice())
	return tr
}

func listTrace() Trace {
	l := list.New[int]()
	tr := Trace{Name: "list push/pop"}
	step := func(op, result string) {
		tr.Steps = append(tr.Steps, TraceStep{Op: op, Result: result, Len: l.Len()})
	}
	for _, x := range []int{1, 2, 3} {
		l.Push(x)
		step(fmt.Sprintf("push(%d)", x), "")
	}
	for range 2 {
		x, ok := l.Pop()
		step("pop()", popResult(x, ok))
	}
	for _, x := range []int{4, 5} {
		l.Push(x)
		step(fmt.Sprintf("push(%d)", x), "")
	}
	for range 4 {
		x, ok := l.Pop()
		step("pop()", popResult(x, ok))
	}
	tr.Final = fmt.Sprintf("len=%d", l.Len())
	return tr
}
