package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/pycloneTools/pyclone"
	"github.com/vertgenlab/gonomics/exception"
)

func inputUsage(inputFlags *flag.FlagSet) {
	fmt.Print(
		"input - Join a single sample's somatic mutations (MAF) with FACETS copy number\n" +
			"segments and purity, producing a pyclone-vi input TSV\n\n" +
			"Usage:\n" +
			"  pycloneprep input [options] -patient p1 -sample primary -vcf facets.vcf.gz -maf muts.maf -cna segments.csv > out.tsv\n\n" +
			"Options:\n")
	inputFlags.PrintDefaults()
}

func runInput(args []string) {
	var err error
	inputFlags := flag.NewFlagSet("input", flag.ExitOnError)

	patient := inputFlags.String("patient", "", "Patient ID, prefixed to every mutation id.")
	sample := inputFlags.String("sample", "", "Sample ID (e.g. primary, metastatic), written to the sample_id column.")
	vcfFile := inputFlags.String("vcf", "", "FACETS VCF file with ##purity and ##ploidy header lines. May be gzipped.")
	mafFile := inputFlags.String("maf", "", "MAF file with somatic mutation calls for this sample.")
	cnaFile := inputFlags.String("cna", "", "FACETS csv file with copy number segments.")
	output := inputFlags.String("o", "stdout", "Output pyclone-vi input TSV.")

	err = inputFlags.Parse(args)
	exception.PanicOnErr(err)
	inputFlags.Usage = func() { inputUsage(inputFlags) }

	if *patient == "" || *sample == "" || *vcfFile == "" || *mafFile == "" || *cnaFile == "" {
		inputFlags.Usage()
		errExit("\nERROR: must have inputs for -patient, -sample, -vcf, -maf, and -cna")
	}

	pyclone.MakeInput(*patient, *sample, *vcfFile, *mafFile, *cnaFile, *output)
}
