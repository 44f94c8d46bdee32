// Package task defines the contract implemented by a unit of work that
// the executor package can run, either sequentially or across a bounded
// pool of goroutines, over a list of items of type T.
//
// A Task is deliberately small: it describes an item for reporting
// (DescribeItem, DescribeStart, DescribeEnd) and does the work
// (Process). Presentation is gated by a single Mode set once, before
// dispatch, by whichever executor drives the task — this lets both the
// sequential and the parallel executor share one Task implementation
// without either duplicating progress-printing logic or producing
// interleaved terminal output.
package task

import (
	"fmt"
	"io"
	"os"

	"github.com/tsrc-dev/tsrc/internal/uiterm"
	"github.com/tsrc-dev/tsrc/outcome"
)

// Mode describes whether a Task is being driven sequentially or in
// parallel. A Task consults its Mode to decide whether its own
// progress-printing helpers should write anything: in Sequential mode
// they print inline; in Parallel mode they are no-ops, because the
// executor owns progress printing to keep concurrent output from
// interleaving (see executor.Parallel).
type Mode int

const (
	// Sequential is the default zero value: a Task not yet bound to an
	// executor behaves as if run sequentially.
	Sequential Mode = iota
	Parallel
)

// Task is the polymorphic contract over an item type T. Concrete tasks
// (reposync.Syncer, reposync.RemoteSetter, ...) implement it.
type Task[T any] interface {
	// DescribeItem returns a stable short identifier for item, used as
	// the key in the executor's result map. Callers must pass item lists
	// whose DescribeItem values are unique.
	DescribeItem(item T) string

	// DescribeStart returns the presentation fragments shown while
	// processing begins. An empty slice suppresses the start update.
	DescribeStart(item T) []uiterm.Token

	// DescribeEnd returns the presentation fragments shown once
	// processing for item has finished, whether or not it succeeded.
	DescribeEnd(item T) []uiterm.Token

	// Process performs the work for item, which is the index-th of count
	// items being processed overall. It must not write to the terminal
	// directly when the task's Mode is Parallel.
	Process(index, count int, item T) outcome.Outcome

	// SetMode sets the task's mutable parallel/sequential flag. The
	// executor calls this exactly once, before dispatching any item, and
	// never mutates it concurrently with Process (see package doc).
	SetMode(Mode)

	// GetMode returns the mode last set by SetMode (Sequential if never
	// called).
	GetMode() Mode
}

// Base can be embedded by concrete Task implementations to get Mode
// storage and the no-op-when-parallel progress helpers described in the
// package doc. Embedders only need to implement DescribeItem,
// DescribeStart, DescribeEnd, and Process.
type Base struct {
	Mode Mode
	// Out is the writer progress helpers write to in Sequential mode.
	// Defaults to os.Stdout when nil.
	Out io.Writer
}

func (b *Base) out() io.Writer {
	if b.Out != nil {
		return b.Out
	}
	return os.Stdout
}

// SetMode implements Task.SetMode.
func (b *Base) SetMode(m Mode) {
	b.Mode = m
}

// GetMode implements Task.GetMode.
func (b *Base) GetMode() Mode {
	return b.Mode
}

// Info prints a single unindented progress line in Sequential mode; no-op
// in Parallel mode.
func (b *Base) Info(args ...interface{}) {
	if b.Mode == Parallel {
		return
	}
	fmt.Fprintln(b.out(), args...)
}

// Info2 prints a progress line indented two levels in Sequential mode.
func (b *Base) Info2(args ...interface{}) {
	if b.Mode == Parallel {
		return
	}
	fmt.Fprint(b.out(), "  ")
	fmt.Fprintln(b.out(), args...)
}

// Info3 prints a progress line indented three levels in Sequential mode.
func (b *Base) Info3(args ...interface{}) {
	if b.Mode == Parallel {
		return
	}
	fmt.Fprint(b.out(), "    ")
	fmt.Fprintln(b.out(), args...)
}

// InfoCount prints a "(index/count) <args>" progress line in Sequential
// mode; no-op in Parallel mode, where the executor itself owns progress
// printing.
func (b *Base) InfoCount(index, count int, args ...interface{}) {
	if b.Mode == Parallel {
		return
	}
	fmt.Fprintf(b.out(), "(%d/%d) ", index+1, count)
	fmt.Fprintln(b.out(), args...)
}
