package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"pkg.jsn.cam/bmireduce/cmd/testdata/generator"
)

/*generates a BMI dataset: a header line followed by gender,height,weight rows*/

var (
	Generator     = flag.String("generator", "bmi", "Generator to use ("+strings.Join(generator.List(), ", ")+")")
	TotalCount    = flag.Int64("total_count", 0, "Total number of rows to generate (0 = generator default)")
	OutputPath    = flag.String("output", "bmi.csv", "Output CSV file path")
	MalformedRate = flag.Float64("malformed_rate", -1, "Share of malformed rows (overrides the generator default)")
	Seed          = flag.Uint64("seed", 0, "Random seed (0 = random)")
)

func main() {
	flag.Parse()

	if *MalformedRate >= 0 {
		generator.SetMalformedRate(*Generator, *MalformedRate)
	}

	gen, err := generator.Get(*Generator)
	if err != nil {
		log.Fatal(err)
	}

	total := *TotalCount
	if total <= 0 {
		total = gen.DefaultCount()
	}

	seed := *Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	gen.Init(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))

	if err := os.MkdirAll(filepath.Dir(*OutputPath), 0755); err != nil {
		log.Fatal(err)
	}
	file, err := os.Create(*OutputPath)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	w := bufio.NewWriterSize(file, 1<<20)
	if err := gen.WriteHeader(w); err != nil {
		log.Fatal(err)
	}

	bar := progressbar.Default(total, "generating")
	for i := int64(0); i < total; i++ {
		if err := gen.WriteLine(w); err != nil {
			log.Fatal(err)
		}
		if i%4096 == 0 {
			_ = bar.Set64(i)
		}
	}
	_ = bar.Finish()

	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}

	info, err := file.Stat()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Wrote %s rows (%s) to %s\n  Format: %s\n",
		humanize.Comma(total), humanize.IBytes(uint64(info.Size())), *OutputPath, gen.Description())
}
