package reducer

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"pkg.jsn.cam/bmireduce/pkg/bmireduce"
)

// Threaded runs one goroutine per partition. Each worker opens its own file
// handle and owns one slot of the results slice, so nothing is shared while
// they run. Any worker failure fails the whole reduction; workers are never
// cancelled once started.
func (r *Reducer) Threaded(path string, numWorkers int) (float64, error) {
	parts, totalLines, err := r.plan(path, numWorkers)
	if err != nil {
		return bmireduce.NoData, err
	}

	log := r.log.With(zap.String("run_id", uuid.NewString()), zap.String("strategy", "threaded"))
	log.Debug("starting workers", zap.Int("workers", len(parts)), zap.Int("lines", totalLines))

	results := make([]bmireduce.Partial, len(parts))
	var g errgroup.Group

	for i, part := range parts {
		g.Go(func() error {
			p, err := processFile(path, part)
			if err != nil {
				log.Error("worker failed", zap.Int("worker", i), zap.Error(err))
				return fmt.Errorf("%w: worker %d: %w", ErrWorkerFailed, i, err)
			}
			log.Debug("worker done",
				zap.Int("worker", i),
				zap.Int("start", part.Start),
				zap.Int("lines", part.Length),
				zap.Int64("count", p.Count))
			results[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return bmireduce.NoData, err
	}

	total := combine(results)
	log.Debug("reduction done", zap.Float64("sum", total.Sum), zap.Int64("count", total.Count))
	return total.Average(), nil
}
