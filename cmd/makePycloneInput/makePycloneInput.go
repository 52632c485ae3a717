package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/pycloneTools/pyclone"
	"log"
)

func usage() {
	fmt.Print(
		"makePycloneInput - Join a single sample's somatic mutations (MAF) with FACETS copy number\n" +
			"segments and purity, producing a pyclone-vi input TSV.\n" +
			"The MAF must be from a single sample. For patients with multiple tumor samples, run once\n" +
			"per sample and concatenate with mergePycloneInputs.\n" +
			"Usage:\n" +
			"makePycloneInput [options] -patient p1 -sample primary -vcf facets.vcf.gz -maf muts.maf -cna segments.csv\n\n")
	flag.PrintDefaults()
}

func main() {
	patient := flag.String("patient", "", "Patient ID, prefixed to every mutation id.")
	sample := flag.String("sample", "", "Sample ID (e.g. primary, metastatic), written to the sample_id column.")
	vcfFile := flag.String("vcf", "", "FACETS VCF file with ##purity and ##ploidy header lines. May be gzipped.")
	mafFile := flag.String("maf", "", "MAF file with somatic mutation calls for this sample.")
	cnaFile := flag.String("cna", "", "FACETS csv file with copy number segments.")
	output := flag.String("o", "stdout", "Output pyclone-vi input TSV.")
	flag.Parse()

	if *patient == "" || *sample == "" || *vcfFile == "" || *mafFile == "" || *cnaFile == "" {
		usage()
		log.Fatalln("ERROR: must have inputs for -patient, -sample, -vcf, -maf, and -cna")
	}

	pyclone.MakeInput(*patient, *sample, *vcfFile, *mafFile, *cnaFile, *output)
}
