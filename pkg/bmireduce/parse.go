package bmireduce

import (
	"bytes"
	"strconv"
)

// maxCategoryLen bounds the category field; longer labels do not match the
// record shape.
const maxCategoryLen = 9

// BMI computes weight / height² with the height given in centimeters.
func BMI(heightCM, weight float64) float64 {
	h := heightCM / 100.0
	return weight / (h * h)
}

// ParseRecord parses a "<category>,<height>,<weight>" line.
// Columns after the weight are ignored. It reports false when the line does not
// have that shape, which callers treat as "skip this line".
func ParseRecord(line []byte) (Record, bool) {
	line = bytes.TrimSuffix(line, []byte{'\r'})

	category, rest, ok := bytes.Cut(line, []byte{','})
	if !ok || len(category) == 0 || len(category) > maxCategoryLen {
		return Record{}, false
	}

	heightField, rest, ok := bytes.Cut(rest, []byte{','})
	if !ok {
		return Record{}, false
	}
	weightField, _, _ := bytes.Cut(rest, []byte{','})

	height, ok := parseFloat(heightField)
	if !ok {
		return Record{}, false
	}
	weight, ok := parseFloat(weightField)
	if !ok {
		return Record{}, false
	}

	return Record{Category: string(category), Height: height, Weight: weight}, true
}

func parseFloat(field []byte) (float64, bool) {
	field = bytes.TrimSpace(field)
	if len(field) == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(string(field), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
