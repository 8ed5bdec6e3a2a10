package generator

import (
	"fmt"
	"sort"
)

// Registry maps generator names to generator factory functions
var Registry = map[string]func() Generator{
	"bmi":       func() Generator { return &BMIGenerator{} },
	"bmi-dirty": func() Generator { return &BMIGenerator{MalformedRate: 0.05} },
}

// Get returns a generator by name
func Get(name string) (Generator, error) {
	factory, exists := Registry[name]
	if !exists {
		return nil, fmt.Errorf("unknown generator: %s", name)
	}
	return factory(), nil
}

// List returns all available generator names, sorted
func List() []string {
	var names []string
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetMalformedRate updates the share of malformed rows a generator injects
func SetMalformedRate(name string, rate float64) {
	if name == "bmi" || name == "bmi-dirty" {
		Registry[name] = func() Generator { return &BMIGenerator{MalformedRate: rate} }
	}
}
