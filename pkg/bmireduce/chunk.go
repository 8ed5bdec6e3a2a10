package bmireduce

import (
	"errors"
	"fmt"
	"io"
)

// ProcessChunk skips startLine lines of r, then aggregates the BMI of every
// valid record among the next numLines lines. Lines that do not parse are
// skipped without counting. Reaching end of input early is normal.
//
// The header line is not special here: a partition starting at line 0 feeds
// it to ParseRecord, which rejects it.
func ProcessChunk(r io.Reader, startLine, numLines int) (Partial, error) {
	var p Partial
	if numLines <= 0 {
		return p, nil
	}

	lr := NewLineReader(r)
	if _, err := lr.Skip(startLine); err != nil {
		return Partial{}, fmt.Errorf("%w: skip to line %d: %w", ErrReadInput, startLine, err)
	}

	for i := 0; i < numLines; i++ {
		line, err := lr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Partial{}, fmt.Errorf("%w: line %d: %w", ErrReadInput, startLine+i, err)
		}

		rec, ok := ParseRecord(line)
		if !ok {
			continue
		}
		p.Add(rec.BMI())
	}

	return p, nil
}
