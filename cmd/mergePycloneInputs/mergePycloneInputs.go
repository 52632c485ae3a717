package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/pycloneTools/pyclone"
	"log"
)

func usage() {
	fmt.Print(
		"mergePycloneInputs - Concatenate primary and metastatic pyclone-vi input files\n" +
			"into a single table for joint pyclone analysis.\n" +
			"Usage:\n" +
			"mergePycloneInputs [options] -p primary.tsv -m metastatic.tsv > merged.tsv\n\n")
	flag.PrintDefaults()
}

func main() {
	primary := flag.String("p", "", "Pyclone-vi input TSV for the primary sample.")
	met := flag.String("m", "", "Pyclone-vi input TSV for the metastatic sample.")
	output := flag.String("o", "stdout", "Output TSV.")
	plotFile := flag.String("plot", "", "Optional png file for a VAF histogram over the merged table.")
	flag.Parse()

	if *primary == "" || *met == "" {
		usage()
		log.Fatalln("ERROR: must have inputs for -p and -m")
	}

	pyclone.Merge(*primary, *met, *output, *plotFile)
}
