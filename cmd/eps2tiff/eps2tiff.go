package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/pycloneTools/convert"
	"log"
	"os"
)

func usage() {
	fmt.Print(
		"eps2tiff - Convert every eps file in a directory to tiff with magick.\n" +
			"magick must be installed and on PATH (https://imagemagick.org).\n" +
			"Failed conversions are reported at the end; the whole directory is always attempted.\n" +
			"Usage:\n" +
			"eps2tiff [options] -i epsDir -o tiffDir\n\n")
	flag.PrintDefaults()
}

func main() {
	inDir := flag.String("i", "", "Input directory with eps files.")
	outDir := flag.String("o", "", "Output directory for tiff files.")
	inExt := flag.String("from", ".eps", "Input file extension.")
	outExt := flag.String("to", ".tiff", "Output file extension.")
	tool := flag.String("magick", "magick", "Converter command to run as: command input output.")
	verbose := flag.Int("v", 0, "Verbose output by setting to >0.")
	flag.Parse()

	if *inDir == "" || *outDir == "" {
		usage()
		log.Fatalln("ERROR: must have inputs for -i and -o")
	}

	converted, failures := convert.Batch(*inDir, *outDir, *inExt, *outExt, *tool, *verbose)
	if convert.Report(converted, failures) {
		os.Exit(1)
	}
}
