// Command heat1d solves the reference conduction problem and prints the
// nodal temperature profile in tab-separated form, optionally rendering it
// as a PNG line chart.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"heat1d"
	"heat1d/quad"
)

func main() {
	n := flag.Int("n", 10, "number of mesh elements (clamped to 2-50)")
	order := flag.Int("q", quad.DefaultOrder, "quadrature order")
	out := flag.String("o", "", "write a PNG line chart to this path")
	flag.Parse()

	// The solver core accepts any n >= 1; the range clamp is a UI concern.
	if *n < 2 {
		*n = 2
	} else if *n > 50 {
		*n = 50
	}

	rule, err := quad.New(*order)
	if err != nil {
		log.Fatal(err)
	}
	p := heat1d.DefaultProblem()
	p.Rule = rule

	soln, err := p.Solve(*n)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for i, x := range soln.Positions {
		fmt.Printf("%v\t%v\n", x, soln.Values[i])
	}

	if *out != "" {
		if err := writeChart(soln, *out); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func writeChart(s *heat1d.Solution, path string) error {
	pl := plot.New()
	pl.Title.Text = "Steady-state temperature"
	pl.X.Label.Text = "x"
	pl.Y.Label.Text = "u(x)"

	pts := make(plotter.XYs, len(s.Positions))
	for i := range pts {
		pts[i].X = s.Positions[i]
		pts[i].Y = s.Values[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	pl.Add(plotter.NewGrid(), line)
	return pl.Save(14*vg.Centimeter, 10*vg.Centimeter, path)
}
