// Command bmireduce computes the average BMI of a CSV file three ways
// (sequentially, with goroutine workers and with worker processes) and
// reports each result with its execution time.
//
//	bmireduce [flags] [threads] [processes]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"pkg.jsn.cam/bmireduce/internal/bench"
	"pkg.jsn.cam/bmireduce/internal/config"
	"pkg.jsn.cam/bmireduce/internal/logging"
	"pkg.jsn.cam/bmireduce/internal/worker"
	"pkg.jsn.cam/bmireduce/pkg/bmireduce"
	"pkg.jsn.cam/bmireduce/pkg/bmireduce/reducer"
)

func main() {
	// Worker processes are this same binary started by the process reducer.
	if worker.IsWorkerProcess() {
		os.Exit(worker.Main())
	}
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "bmireduce: %v\n", err)
		return 2
	}

	fs := flag.NewFlagSet("bmireduce", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Path, "path", cfg.Path, "Path to the input csv file")
	fs.IntVar(&cfg.Runs, "runs", cfg.Runs, "Number of timed runs per approach")
	fs.StringVar(&cfg.Policy, "policy", cfg.Policy, "Where leftover lines go: last or round-robin")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "Log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.Logging.Development, "log-dev", cfg.Logging.Development, "Human-readable logs")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: bmireduce [flags] [threads] [processes]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	cfg.ApplyArgs(fs.Args())

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "bmireduce: %v\n", err)
		return 2
	}

	log := logging.NewOrNop(cfg.Logger())
	defer log.Sync() //nolint:errcheck

	r := reducer.New(reducer.Options{
		Policy:         cfg.PlanPolicy(),
		Logger:         log,
		WorkerLogLevel: cfg.Logging.Level,
	})

	writeInputHeader(stdout, cfg.Path, log)

	naive := bench.Measure("Naive", cfg.Runs, func() (float64, error) {
		return r.Sequential(cfg.Path)
	})
	if naive.Err != nil {
		// The sequential path reports and carries on with the -1 sentinel.
		fmt.Fprintf(stderr, "Error: %v\n", naive.Err)
	}
	_ = bench.Write(stdout, naive)

	threaded := bench.Measure("Multithreading", cfg.Runs, func() (float64, error) {
		return r.Threaded(cfg.Path, cfg.Threads)
	})
	if threaded.Err != nil {
		fmt.Fprintf(stderr, "bmireduce: multithreading approach with %d threads: %v\n", cfg.Threads, threaded.Err)
		return 1
	}
	_ = bench.Write(stdout, threaded)

	processed := bench.Measure("Multiprocessing", cfg.Runs, func() (float64, error) {
		return r.Processes(cfg.Path, cfg.Processes)
	})
	if processed.Err != nil {
		fmt.Fprintf(stderr, "bmireduce: multiprocessing approach with %d processes: %v\n", cfg.Processes, processed.Err)
		return 1
	}
	_ = bench.Write(stdout, processed)

	return 0
}

// writeInputHeader describes the input when it can be inspected. A missing
// file is reported by the reducers themselves.
func writeInputHeader(w io.Writer, path string, log *zap.Logger) {
	info, err := os.Stat(path)
	if err != nil {
		log.Debug("input not inspectable", zap.String("path", path), zap.Error(err))
		return
	}
	lines, err := bmireduce.CountLines(path)
	if err != nil {
		log.Debug("input not countable", zap.String("path", path), zap.Error(err))
		return
	}
	_ = bench.WriteHeader(w, bench.Input{Path: path, Size: info.Size(), Lines: lines})
}
