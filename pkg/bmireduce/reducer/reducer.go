// Package reducer computes the average BMI of a file with one of three
// strategies: a sequential scan, goroutine workers sharing the process, or
// isolated worker processes reporting over pipes. Both parallel strategies use
// the same partition plan and combine partial aggregates the same way.
package reducer

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"pkg.jsn.cam/bmireduce/pkg/bmireduce"
)

var (
	ErrWorkerFailed = errors.New("worker failed")
	ErrSpawnWorker  = errors.New("failed to spawn worker")
)

// Options configures a Reducer. The zero value is usable.
type Options struct {
	// Policy decides where leftover lines go. Both parallel strategies use it.
	Policy bmireduce.Policy
	Logger *zap.Logger

	// Executable is the program started for each worker process. It must
	// dispatch to worker.Main when it sees the worker role in its environment.
	// Defaults to the running binary.
	Executable string
	Args       []string
	// Env entries are appended after the worker assignment, so they win.
	Env            []string
	WorkerLogLevel string
}

// Reducer runs reductions. It holds no per-run state and is safe for
// concurrent use.
type Reducer struct {
	opts Options
	log  *zap.Logger
}

// New creates a Reducer.
func New(opts Options) *Reducer {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Reducer{opts: opts, log: log.Named("reducer")}
}

// plan counts the lines of path and partitions them for numWorkers workers.
func (r *Reducer) plan(path string, numWorkers int) ([]bmireduce.Partition, int, error) {
	if numWorkers < 1 {
		return nil, 0, fmt.Errorf("%w: got %d", bmireduce.ErrInvalidWorkerCount, numWorkers)
	}

	total, err := bmireduce.CountLines(path)
	if err != nil {
		return nil, 0, err
	}

	return bmireduce.PlanWith(r.opts.Policy, total, numWorkers), total, nil
}

// processFile opens its own handle on path and aggregates part.
func processFile(path string, part bmireduce.Partition) (bmireduce.Partial, error) {
	if part.Length == 0 {
		return bmireduce.Partial{}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return bmireduce.Partial{}, fmt.Errorf("%w %q: %w", bmireduce.ErrOpenInput, path, err)
	}
	defer f.Close()

	return bmireduce.ProcessChunk(f, part.Start, part.Length)
}

func combine(parts []bmireduce.Partial) bmireduce.Partial {
	var total bmireduce.Partial
	for _, p := range parts {
		total = total.Merge(p)
	}
	return total
}
