// Package bench times reduction strategies and prints the comparison report.
package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/stat"
)

// Measurement is the outcome of running one strategy one or more times.
type Measurement struct {
	Name      string
	Average   float64
	Err       error
	Durations []time.Duration
}

// Measure runs fn runs times and records each wall time. It keeps the
// average of the last run and stops at the first error.
func Measure(name string, runs int, fn func() (float64, error)) Measurement {
	m := Measurement{Name: name}
	if runs < 1 {
		runs = 1
	}

	for i := 0; i < runs; i++ {
		start := time.Now()
		avg, err := fn()
		m.Durations = append(m.Durations, time.Since(start))
		m.Average = avg
		if err != nil {
			m.Err = err
			break
		}
	}
	return m
}

func (m Measurement) seconds() []float64 {
	s := make([]float64, len(m.Durations))
	for i, d := range m.Durations {
		s[i] = d.Seconds()
	}
	return s
}

// Mean returns the mean run time in seconds.
func (m Measurement) Mean() float64 {
	if len(m.Durations) == 0 {
		return 0
	}
	return stat.Mean(m.seconds(), nil)
}

// StdDev returns the sample standard deviation of the run times in seconds.
func (m Measurement) StdDev() float64 {
	if len(m.Durations) < 2 {
		return 0
	}
	return stat.StdDev(m.seconds(), nil)
}

// Input describes the file being reduced.
type Input struct {
	Path  string
	Size  int64
	Lines int
}

// WriteHeader prints a one-line description of the input.
func WriteHeader(w io.Writer, in Input) error {
	_, err := fmt.Fprintf(w, "Input: %s (%s, %s lines)\n\n",
		in.Path, humanize.IBytes(uint64(max(in.Size, 0))), humanize.Comma(int64(in.Lines)))
	return err
}

// Write prints the result and timing lines of one measurement.
func Write(w io.Writer, m Measurement) error {
	if _, err := fmt.Fprintf(w, "%s approach - Average BMI: %.2f\n", m.Name, m.Average); err != nil {
		return err
	}

	var err error
	if len(m.Durations) > 1 {
		_, err = fmt.Fprintf(w, "%s approach execution time: %.6f ± %.6f seconds (%d runs)\n\n",
			m.Name, m.Mean(), m.StdDev(), len(m.Durations))
	} else {
		_, err = fmt.Fprintf(w, "%s approach execution time: %.6f seconds\n\n", m.Name, m.Mean())
	}
	return err
}
