package generator

import (
	"fmt"
	"io"
	"math/rand/v2"
)

// BMIGenerator writes "Gender,Height,Weight" rows with plausible adult
// measurements. A MalformedRate share of rows is replaced by lines the
// record parser rejects.
type BMIGenerator struct {
	MalformedRate float64
	rand          *rand.Rand
}

const header = "Gender,Height,Weight\n"

var genders = []string{"Male", "Female"}

var malformed = []string{
	"X,notanumber,70\n",
	"Male,,\n",
	"Female,170\n",
	"Unspecified,180,80\n",
	"\n",
}

func (g *BMIGenerator) Init(r *rand.Rand) {
	g.rand = r
}

func (g *BMIGenerator) WriteHeader(w io.Writer) error {
	_, err := io.WriteString(w, header)
	return err
}

func (g *BMIGenerator) WriteLine(w io.Writer) error {
	if g.MalformedRate > 0 && g.rand.Float64() < g.MalformedRate {
		_, err := io.WriteString(w, malformed[g.rand.IntN(len(malformed))])
		return err
	}

	gender := genders[g.rand.IntN(len(genders))]
	// Heights 150-200 cm, BMI roughly 17-35
	height := 150 + g.rand.Float64()*50
	bmi := 17 + g.rand.Float64()*18
	weight := bmi * (height / 100) * (height / 100)

	_, err := fmt.Fprintf(w, "%s,%.1f,%.1f\n", gender, height, weight)
	return err
}

func (g *BMIGenerator) Description() string {
	if g.MalformedRate > 0 {
		return fmt.Sprintf("BMI rows: gender,height_cm,weight_kg (%.0f%% malformed)", g.MalformedRate*100)
	}
	return "BMI rows: gender,height_cm,weight_kg"
}

func (g *BMIGenerator) DefaultCount() int64 {
	return 1e6 // 1,000,000 lines
}
