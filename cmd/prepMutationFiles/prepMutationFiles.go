package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/pycloneTools/reconcile"
	"log"
)

func usage() {
	fmt.Print(
		"prepMutationFiles - Reconcile mutation calls between paired primary and metastatic MAF files.\n" +
			"Mutations private to one sample are added to the other sample's MAF with an alt count of 0\n" +
			"and the reference read depth queried from that sample's bam, so every site observed in either\n" +
			"sample has truthful counts in both tables. Run before makePycloneInput.\n" +
			"Usage:\n" +
			"prepMutationFiles [options] -pmaf primary.maf -pbam primary.bam -mmaf met.maf -mbam met.bam -dir outdir\n\n")
	flag.PrintDefaults()
}

func main() {
	pMaf := flag.String("pmaf", "", "MAF file for the primary sample.")
	pBam := flag.String("pbam", "", "BAM file for the primary sample. Must be indexed (.bai).")
	mMaf := flag.String("mmaf", "", "MAF file for the metastatic sample.")
	mBam := flag.String("mbam", "", "BAM file for the metastatic sample. Must be indexed (.bai).")
	outDir := flag.String("dir", "", "Output directory for the augmented MAF files.")
	hist := flag.Bool("hist", false, "Print a terminal histogram of read depth at added sites.")
	verbose := flag.Int("v", 0, "Verbose output by setting to >0.")
	flag.Parse()

	if *pMaf == "" || *pBam == "" || *mMaf == "" || *mBam == "" || *outDir == "" {
		usage()
		log.Fatalln("ERROR: must have inputs for -pmaf, -pbam, -mmaf, -mbam, and -dir")
	}

	reconcile.Prep(*pMaf, *pBam, *mMaf, *mBam, *outDir, *hist, *verbose)
}
