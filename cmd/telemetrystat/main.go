// telemetrystat prints a per-column summary of a MechJeb telemetry CSV,
// useful for checking what a recording contains before graphing it.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/al2me6/ksp-telemetry/src/telemetry"
)

func main() {
	var file string
	flag.StringVar(&file, "file", "telemetry.csv", "Path to Mechjeb telemetry CSV")
	flag.Parse()

	tbl, err := telemetry.LoadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rows: %d\n", tbl.Rows())
	for _, name := range tbl.Headers() {
		col, err := tbl.Column(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if len(col) == 0 {
			fmt.Printf("%s: count=0\n", name)
			continue
		}
		min, max, sum := math.MaxFloat64, -math.MaxFloat64, 0.0
		for _, v := range col {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
			sum += v
		}
		fmt.Printf("%s: count=%d min=%.3f max=%.3f mean=%.3f\n",
			name, len(col), min, max, sum/float64(len(col)))
	}
}
