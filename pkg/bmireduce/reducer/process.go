package reducer

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"pkg.jsn.cam/bmireduce/pkg/bmireduce"
	"pkg.jsn.cam/bmireduce/pkg/bmireduce/protocol"
)

// procWorker is a started worker process and the read end of its result pipe.
type procWorker struct {
	cmd    *exec.Cmd
	result *os.File
	part   bmireduce.Partition
	index  int
}

// Processes runs one worker process per partition. Each worker opens the file
// itself and writes one fixed-size record to its own pipe before exiting.
// The coordinator waits for the workers in spawn order and reads each record
// after the worker has exited. A worker that exits non-zero or leaves a short
// record fails the whole reduction.
func (r *Reducer) Processes(path string, numWorkers int) (float64, error) {
	parts, totalLines, err := r.plan(path, numWorkers)
	if err != nil {
		return bmireduce.NoData, err
	}

	exe, err := r.executable()
	if err != nil {
		return bmireduce.NoData, fmt.Errorf("%w: %w", ErrSpawnWorker, err)
	}

	runID := uuid.NewString()
	log := r.log.With(zap.String("run_id", runID), zap.String("strategy", "processes"))
	log.Debug("starting workers", zap.Int("workers", len(parts)), zap.Int("lines", totalLines))

	workers := make([]*procWorker, 0, len(parts))
	for i, part := range parts {
		spec := protocol.NewWorkerSpec(path, i, part, runID, r.opts.WorkerLogLevel)
		w, err := r.spawn(exe, spec)
		if err != nil {
			log.Error("spawn failed", zap.Int("worker", i), zap.Error(err))
			abort(workers)
			return bmireduce.NoData, fmt.Errorf("%w %d: %w", ErrSpawnWorker, i, err)
		}
		log.Debug("worker started", zap.Int("worker", i), zap.Int("pid", w.cmd.Process.Pid))
		workers = append(workers, w)
	}

	var (
		total    bmireduce.Partial
		firstErr error
	)
	for _, w := range workers {
		p, err := w.collect()
		if err != nil {
			log.Error("worker failed", zap.Int("worker", w.index), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		log.Debug("worker done",
			zap.Int("worker", w.index),
			zap.Int("start", w.part.Start),
			zap.Int("lines", w.part.Length),
			zap.Int64("count", p.Count))
		total = total.Merge(p)
	}
	if firstErr != nil {
		return bmireduce.NoData, firstErr
	}

	log.Debug("reduction done", zap.Float64("sum", total.Sum), zap.Int64("count", total.Count))
	return total.Average(), nil
}

func (r *Reducer) executable() (string, error) {
	if r.opts.Executable != "" {
		return r.opts.Executable, nil
	}
	return os.Executable()
}

// spawn creates the worker's result pipe and starts it with the write end as
// descriptor protocol.ResultFD.
func (r *Reducer) spawn(exe string, spec protocol.WorkerSpec) (*procWorker, error) {
	rd, wr, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("create pipe: %w", err)
	}

	cmd := exec.Command(exe, r.opts.Args...)
	cmd.Env = append(append(os.Environ(), spec.Environ()...), r.opts.Env...)
	cmd.Stderr = os.Stderr
	cmd.ExtraFiles = []*os.File{wr}

	if err := cmd.Start(); err != nil {
		rd.Close()
		wr.Close()
		return nil, err
	}

	// The worker holds the only write end now, so its exit ends the stream.
	wr.Close()

	return &procWorker{cmd: cmd, result: rd, part: spec.Partition(), index: spec.Index}, nil
}

// collect waits for the worker to exit, then reads its record.
func (w *procWorker) collect() (bmireduce.Partial, error) {
	defer w.result.Close()

	if err := w.cmd.Wait(); err != nil {
		return bmireduce.Partial{}, fmt.Errorf("%w: worker %d: %w", ErrWorkerFailed, w.index, err)
	}

	p, err := protocol.ReadPartial(w.result)
	if err != nil {
		return bmireduce.Partial{}, fmt.Errorf("worker %d: %w", w.index, err)
	}
	return p, nil
}

// abort kills and reaps workers that were already started.
func abort(workers []*procWorker) {
	for _, w := range workers {
		_ = w.cmd.Process.Kill()
		_ = w.cmd.Wait()
		w.result.Close()
	}
}
