// Package convert runs an external converter tool over every matching file
// in a directory, collecting per-file failures instead of aborting the batch.
package convert

import (
	"github.com/vertgenlab/gonomics/exception"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Failure records one file the converter could not process.
type Failure struct {
	File   string
	Err    error
	Output string
}

// Batch converts every file in inDir ending in inExt, skipping dotfiles, by
// running tool with the input and output paths as its two arguments. Output
// files keep the input basename with inExt swapped for outExt and are
// written to outDir. The exit status of every invocation is checked; failed
// files are collected and returned after the whole directory has been
// attempted.
func Batch(inDir, outDir, inExt, outExt, tool string, verbose int) (converted int, failures []Failure) {
	entries, err := os.ReadDir(inDir)
	exception.PanicOnErr(err)

	var name, outName string
	for _, entry := range entries {
		name = entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, inExt) {
			continue
		}
		outName = strings.TrimSuffix(name, inExt) + outExt
		if verbose > 0 {
			log.Printf("converting %s to %s\n", name, outName)
		}
		cmd := exec.Command(tool, filepath.Join(inDir, name), filepath.Join(outDir, outName))
		output, cmdErr := cmd.CombinedOutput()
		if cmdErr != nil {
			failures = append(failures, Failure{File: name, Err: cmdErr, Output: strings.TrimSpace(string(output))})
			continue
		}
		converted++
	}
	return converted, failures
}

// Report logs a summary of a finished batch and returns true if any file
// failed to convert.
func Report(converted int, failures []Failure) bool {
	for i := range failures {
		log.Printf("failed to convert %s: %s\t%s\n", failures[i].File, failures[i].Err, failures[i].Output)
	}
	log.Printf("converted %d files, %d failures\n", converted, len(failures))
	return len(failures) > 0
}
