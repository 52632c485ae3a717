package pyclone

import (
	"github.com/vertgenlab/gonomics/exception"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"log"
)

// PlotVaf saves a histogram of variant allele frequencies as a png. Records
// with zero total depth have no defined frequency and are left out.
func PlotVaf(records []Record, filename string) {
	var vals plotter.Values
	for i := range records {
		if vaf, ok := records[i].Vaf(); ok {
			vals = append(vals, vaf)
		}
	}
	if len(vals) == 0 {
		log.Printf("no records with nonzero depth, skipping vaf plot\n")
		return
	}

	h, err := plotter.NewHist(vals, 40)
	exception.PanicOnErr(err)
	p := plot.New()
	p.Title.Text = "VAF distribution"
	p.X.Label.Text = "Variant allele frequency"
	p.Y.Label.Text = "Mutations"
	p.X.Min = 0
	p.X.Max = 1
	p.Add(h)
	err = p.Save(6*vg.Inch, 4*vg.Inch, filename)
	exception.PanicOnErr(err)
}
