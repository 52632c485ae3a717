package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/pycloneTools/convert"
	"github.com/vertgenlab/gonomics/exception"
	"os"
)

func eps2TiffUsage(convertFlags *flag.FlagSet) {
	fmt.Print(
		"eps2tiff - Convert every eps file in a directory to tiff with magick.\n" +
			"magick must be installed and on PATH (https://imagemagick.org)\n\n" +
			"Usage:\n" +
			"  pycloneprep eps2tiff [options] -i epsDir -o tiffDir\n\n" +
			"Options:\n")
	convertFlags.PrintDefaults()
}

func runEps2Tiff(args []string) {
	var err error
	convertFlags := flag.NewFlagSet("eps2tiff", flag.ExitOnError)

	inDir := convertFlags.String("i", "", "Input directory with eps files.")
	outDir := convertFlags.String("o", "", "Output directory for tiff files.")
	inExt := convertFlags.String("from", ".eps", "Input file extension.")
	outExt := convertFlags.String("to", ".tiff", "Output file extension.")
	tool := convertFlags.String("magick", "magick", "Converter command to run as: command input output.")
	verbose := convertFlags.Int("v", 0, "Verbose output by setting to >0.")

	err = convertFlags.Parse(args)
	exception.PanicOnErr(err)
	convertFlags.Usage = func() { eps2TiffUsage(convertFlags) }

	if *inDir == "" || *outDir == "" {
		convertFlags.Usage()
		errExit("\nERROR: must have inputs for -i and -o")
	}

	converted, failures := convert.Batch(*inDir, *outDir, *inExt, *outExt, *tool, *verbose)
	if convert.Report(converted, failures) {
		os.Exit(1)
	}
}
