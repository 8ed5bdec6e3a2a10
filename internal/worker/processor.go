package worker

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"pkg.jsn.cam/bmireduce/pkg/bmireduce"
	"pkg.jsn.cam/bmireduce/pkg/bmireduce/protocol"
)

// Processor computes one partition's aggregate inside a worker process.
type Processor struct {
	log *zap.Logger
}

// NewProcessor creates a new partition processor
func NewProcessor(log *zap.Logger) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{log: log}
}

// ProcessPartition checks the protocol version, opens its own handle on the
// input, aggregates the assigned range and writes exactly one record to out.
// On error nothing is written.
func (p *Processor) ProcessPartition(spec protocol.WorkerSpec, out io.Writer) error {
	if err := protocol.CheckVersion(spec.Version, protocol.Version); err != nil {
		return err
	}

	part := spec.Partition()
	p.log.Debug("processing partition",
		zap.Int("start", part.Start),
		zap.Int("lines", part.Length))

	result, err := aggregate(spec.File, part)
	if err != nil {
		return err
	}

	if err := protocol.WritePartial(out, result); err != nil {
		return err
	}

	p.log.Debug("partition done",
		zap.Float64("sum", result.Sum),
		zap.Int64("count", result.Count))
	return nil
}

func aggregate(path string, part bmireduce.Partition) (bmireduce.Partial, error) {
	f, err := os.Open(path)
	if err != nil {
		return bmireduce.Partial{}, fmt.Errorf("%w %q: %w", bmireduce.ErrOpenInput, path, err)
	}
	defer f.Close()

	return bmireduce.ProcessChunk(f, part.Start, part.Length)
}
