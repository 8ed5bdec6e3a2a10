package bmireduce

import (
	"fmt"
	"strings"
)

// Policy decides which workers absorb the lines left over by integer division.
type Policy int

const (
	// PolicyLastWorker gives every leftover line to the last worker.
	PolicyLastWorker Policy = iota
	// PolicyRoundRobin gives one leftover line to each of the first workers.
	PolicyRoundRobin
)

func (p Policy) String() string {
	switch p {
	case PolicyLastWorker:
		return "last"
	case PolicyRoundRobin:
		return "round-robin"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy maps a configuration string to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "last", "last-worker":
		return PolicyLastWorker, nil
	case "round-robin", "roundrobin", "balanced":
		return PolicyRoundRobin, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Plan splits totalLines into numWorkers contiguous partitions, the last
// worker taking the remainder.
func Plan(totalLines, numWorkers int) []Partition {
	return PlanWith(PolicyLastWorker, totalLines, numWorkers)
}

// PlanWith splits totalLines into numWorkers contiguous, non-overlapping
// partitions covering [0, totalLines). When there are fewer lines than workers
// some partitions are empty. numWorkers must be positive.
func PlanWith(policy Policy, totalLines, numWorkers int) []Partition {
	if numWorkers < 1 {
		panic(fmt.Sprintf("bmireduce: PlanWith called with %d workers", numWorkers))
	}
	if totalLines < 0 {
		totalLines = 0
	}

	base := totalLines / numWorkers
	remainder := totalLines % numWorkers
	parts := make([]Partition, numWorkers)

	for i := range parts {
		switch policy {
		case PolicyRoundRobin:
			length := base
			if i < remainder {
				length++
			}
			parts[i] = Partition{Start: i*base + min(i, remainder), Length: length}
		default:
			length := base
			if i == numWorkers-1 {
				length += remainder
			}
			parts[i] = Partition{Start: i * base, Length: length}
		}
	}

	return parts
}
