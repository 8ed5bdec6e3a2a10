// Package bmireduce holds the pieces shared by every reduction strategy:
// the record parser, the line reader, the partition planner and the chunk
// processor that turns a line range into a partial aggregate.
package bmireduce

// NoData is the average reported when no valid record was aggregated.
// It is a result, not an error.
const NoData = -1.0

// Record is one parsed input line.
type Record struct {
	Category string
	Height   float64 // centimeters
	Weight   float64
}

// BMI returns the derived metric for the record.
func (r Record) BMI() float64 {
	return BMI(r.Height, r.Weight)
}

// Partial is the running sum and count of BMI values over a line range.
type Partial struct {
	Sum   float64 `json:"sum"`
	Count int64   `json:"count"`
}

// Add accumulates one derived value.
func (p *Partial) Add(v float64) {
	p.Sum += v
	p.Count++
}

// Merge returns the combination of p and other.
func (p Partial) Merge(other Partial) Partial {
	return Partial{Sum: p.Sum + other.Sum, Count: p.Count + other.Count}
}

// Average returns Sum/Count, or NoData when nothing was counted.
func (p Partial) Average() float64 {
	if p.Count <= 0 {
		return NoData
	}
	return p.Sum / float64(p.Count)
}

// Partition is the half-open line range [Start, Start+Length) owned by one worker.
type Partition struct {
	Start  int `json:"start"`
	Length int `json:"length"`
}

// End returns the first line index past the partition.
func (p Partition) End() int {
	return p.Start + p.Length
}
