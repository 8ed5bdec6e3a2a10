// Package worker is the child side of the multi-process reducer. A binary
// that may be started as a worker calls IsWorkerProcess first thing in main
// and, if it reports true, exits with the code returned by Main.
package worker

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"pkg.jsn.cam/bmireduce/internal/logging"
	"pkg.jsn.cam/bmireduce/pkg/bmireduce/protocol"
)

// Exit codes of a worker process.
const (
	ExitOK           = 0
	ExitFailed       = 1
	ExitBadSpec      = 2
	ExitIncompatible = 3
)

// IsWorkerProcess reports whether this process was started as a worker.
func IsWorkerProcess() bool {
	return os.Getenv(protocol.EnvRole) == protocol.RoleWorker
}

// LoadSpec reads the worker assignment from the environment.
func LoadSpec() (protocol.WorkerSpec, error) {
	var spec protocol.WorkerSpec
	if err := envconfig.Process(protocol.EnvPrefix, &spec); err != nil {
		return spec, fmt.Errorf("load worker spec: %w", err)
	}
	if spec.Start < 0 || spec.Lines < 0 {
		return spec, fmt.Errorf("load worker spec: negative range start=%d lines=%d", spec.Start, spec.Lines)
	}
	return spec, nil
}

// Main runs the worker and returns its exit code. The result record goes to
// descriptor protocol.ResultFD, diagnostics to stderr.
func Main() int {
	spec, err := LoadSpec()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bmireduce worker: %v\n", err)
		return ExitBadSpec
	}

	cfg := logging.DefaultConfig()
	cfg.Level = spec.LogLevel
	log := logging.NewOrNop(cfg).Named("worker").With(
		zap.String("run_id", spec.RunID),
		zap.Int("worker", spec.Index),
		zap.Int("pid", os.Getpid()))
	defer log.Sync() //nolint:errcheck

	out := os.NewFile(uintptr(protocol.ResultFD), "result")
	defer out.Close()

	if err := NewProcessor(log).ProcessPartition(spec, out); err != nil {
		log.Error("worker failed", zap.Error(err))
		if errors.Is(err, protocol.ErrIncompatibleVersion) {
			return ExitIncompatible
		}
		return ExitFailed
	}

	return ExitOK
}
