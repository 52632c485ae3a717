package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/pycloneTools/pyclone"
	"github.com/vertgenlab/gonomics/exception"
)

func mergeUsage(mergeFlags *flag.FlagSet) {
	fmt.Print(
		"merge - Concatenate primary and metastatic pyclone-vi input files into a single table\n\n" +
			"Usage:\n" +
			"  pycloneprep merge [options] -p primary.tsv -m metastatic.tsv > merged.tsv\n\n" +
			"Options:\n")
	mergeFlags.PrintDefaults()
}

func runMerge(args []string) {
	var err error
	mergeFlags := flag.NewFlagSet("merge", flag.ExitOnError)

	primary := mergeFlags.String("p", "", "Pyclone-vi input TSV for the primary sample.")
	met := mergeFlags.String("m", "", "Pyclone-vi input TSV for the metastatic sample.")
	output := mergeFlags.String("o", "stdout", "Output TSV.")
	plotFile := mergeFlags.String("plot", "", "Optional png file for a VAF histogram over the merged table.")

	err = mergeFlags.Parse(args)
	exception.PanicOnErr(err)
	mergeFlags.Usage = func() { mergeUsage(mergeFlags) }

	if *primary == "" || *met == "" {
		mergeFlags.Usage()
		errExit("\nERROR: must have inputs for -p and -m")
	}

	pyclone.Merge(*primary, *met, *output, *plotFile)
}
