package reducer

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"pkg.jsn.cam/bmireduce/pkg/bmireduce"
)

// Sequential scans path once, skipping the header line, and returns the
// average BMI. When the file cannot be opened it returns NoData along with
// the error so callers can report it and carry on.
func (r *Reducer) Sequential(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		r.log.Warn("unable to open input", zap.String("path", path), zap.Error(err))
		return bmireduce.NoData, fmt.Errorf("%w %q: %w", bmireduce.ErrOpenInput, path, err)
	}
	defer f.Close()

	lr := bmireduce.NewLineReader(f)
	if _, err := lr.Skip(1); err != nil {
		return bmireduce.NoData, fmt.Errorf("%w: header: %w", bmireduce.ErrReadInput, err)
	}

	var total bmireduce.Partial
	for {
		line, err := lr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return bmireduce.NoData, fmt.Errorf("%w: %w", bmireduce.ErrReadInput, err)
		}
		if rec, ok := bmireduce.ParseRecord(line); ok {
			total.Add(rec.BMI())
		}
	}

	r.log.Debug("sequential scan done", zap.Float64("sum", total.Sum), zap.Int64("count", total.Count))
	return total.Average(), nil
}
