package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/pycloneTools/reconcile"
	"github.com/vertgenlab/gonomics/exception"
)

func prepUsage(prepFlags *flag.FlagSet) {
	fmt.Print(
		"prep - Reconcile mutation calls between paired primary and metastatic MAF files.\n" +
			"Mutations private to one sample gain a zero-alt row in the other sample's MAF\n" +
			"with reference depth queried from that sample's bam\n\n" +
			"Usage:\n" +
			"  pycloneprep prep [options] -pmaf primary.maf -pbam primary.bam -mmaf met.maf -mbam met.bam -dir outdir\n\n" +
			"Options:\n")
	prepFlags.PrintDefaults()
}

func runPrep(args []string) {
	var err error
	prepFlags := flag.NewFlagSet("prep", flag.ExitOnError)

	pMaf := prepFlags.String("pmaf", "", "MAF file for the primary sample.")
	pBam := prepFlags.String("pbam", "", "BAM file for the primary sample. Must be indexed (.bai).")
	mMaf := prepFlags.String("mmaf", "", "MAF file for the metastatic sample.")
	mBam := prepFlags.String("mbam", "", "BAM file for the metastatic sample. Must be indexed (.bai).")
	outDir := prepFlags.String("dir", "", "Output directory for the augmented MAF files.")
	hist := prepFlags.Bool("hist", false, "Print a terminal histogram of read depth at added sites.")
	verbose := prepFlags.Int("v", 0, "Verbose output by setting to >0.")

	err = prepFlags.Parse(args)
	exception.PanicOnErr(err)
	prepFlags.Usage = func() { prepUsage(prepFlags) }

	if *pMaf == "" || *pBam == "" || *mMaf == "" || *mBam == "" || *outDir == "" {
		prepFlags.Usage()
		errExit("\nERROR: must have inputs for -pmaf, -pbam, -mmaf, -mbam, and -dir")
	}

	reconcile.Prep(*pMaf, *pBam, *mMaf, *mBam, *outDir, *hist, *verbose)
}
