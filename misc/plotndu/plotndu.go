// plotndu creates a plot of an NDU spectrum for a sequence.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"bitbucket.org/nrtlab/ndu/bio"
	"bitbucket.org/nrtlab/ndu/ndu"
)

func main() {
	fastaFN := flag.String("fasta", "", "FASTA file with nucleotide sequences")
	period := flag.Int("period", 0, "periodicity for the window walk (0: whole-sequence spectrum)")
	window := flag.Int("window", 0, "window size (default 5 times the periodicity)")
	maxPeriod := flag.Int("maxperiod", 0, "periodicity limit for the spectrum")
	out := flag.String("out", "ndu.png", "output file")
	flag.Parse()

	if *fastaFN == "" {
		log.Fatal("no FASTA file given")
	}
	f, err := os.Open(*fastaFN)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	seqs, err := bio.ParseFasta(f)
	if err != nil {
		log.Fatal(err)
	}
	if len(seqs) == 0 {
		log.Fatal("no sequences in the input")
	}
	seq := seqs[0]

	var scores []float64
	var label string
	if *period > 0 {
		scores, err = ndu.WindowWalk(seq.Sequence, *period, *window)
		label = fmt.Sprintf("p=%d window walk", *period)
	} else {
		scores, err = ndu.AllNDU(seq.Sequence, *maxPeriod)
		label = "NDU spectrum"
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(scores)

	p, err := plot.New()
	if err != nil {
		panic(err)
	}
	p.Title.Text = seq.Name

	pts := make(plotter.XYs, len(scores))
	for i, v := range scores {
		pts[i].X = float64(i)
		pts[i].Y = v
	}

	err = plotutil.AddLinePoints(p,
		label, pts)
	if err != nil {
		panic(err)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, *out); err != nil {
		panic(err)
	}
}
