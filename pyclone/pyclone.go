// Package pyclone builds and manipulates pyclone-vi input tables: the join
// of somatic mutation calls with copy number segments and tumor purity.
package pyclone

import (
	"fmt"
	"github.com/dasnellings/pycloneTools/facets"
	"github.com/dasnellings/pycloneTools/maf"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"log"
	"strconv"
	"strings"
)

// Column order of a pyclone-vi input file.
var Columns = []string{"mutation_id", "sample_id", "ref_counts", "alt_counts", "major_cn", "minor_cn", "normal_cn", "tumour_content"}

// Record is one row of a pyclone-vi input table. TumourContent carries the
// FACETS purity estimate verbatim, with no numeric parsing.
type Record struct {
	MutationID    string
	SampleID      string
	RefCounts     int
	AltCounts     int
	MajorCN       int
	MinorCN       int
	NormalCN      int
	TumourContent string
}

// String formats r as one tab-separated line in the order of Columns.
func (r Record) String() string {
	return fmt.Sprintf("%s\t%s\t%d\t%d\t%d\t%d\t%d\t%s",
		r.MutationID, r.SampleID, r.RefCounts, r.AltCounts, r.MajorCN, r.MinorCN, r.NormalCN, r.TumourContent)
}

// Vaf returns the variant allele frequency alt/(ref+alt). The second return
// is false for records with zero total depth.
func (r Record) Vaf() (float64, bool) {
	total := r.RefCounts + r.AltCounts
	if total == 0 {
		return 0, false
	}
	return float64(r.AltCounts) / float64(total), true
}

// Read parses a pyclone-vi input tsv. Columns are located by name so tables
// using the tumor_content spelling read the same as tumour_content.
func Read(filename string) []Record {
	in := fileio.EasyOpen(filename)
	var ans []Record
	var colIdx map[string]int
	var line string
	var done bool
	for line, done = fileio.EasyNextRealLine(in); !done; line, done = fileio.EasyNextRealLine(in) {
		if colIdx == nil {
			colIdx = header(filename, line)
			continue
		}
		ans = append(ans, parseLine(line, colIdx))
	}
	err := in.Close()
	exception.PanicOnErr(err)
	return ans
}

func header(filename, line string) map[string]int {
	colIdx := make(map[string]int)
	for i, name := range strings.Split(line, "\t") {
		if name == "tumor_content" {
			name = "tumour_content"
		}
		colIdx[name] = i
	}
	for _, col := range Columns {
		if _, ok := colIdx[col]; !ok {
			log.Fatalf("ERROR: %s is missing required column %s", filename, col)
		}
	}
	return colIdx
}

func parseLine(line string, colIdx map[string]int) Record {
	words := strings.Split(line, "\t")
	var err error
	var ans Record
	ans.MutationID = words[colIdx["mutation_id"]]
	ans.SampleID = words[colIdx["sample_id"]]
	ans.RefCounts, err = strconv.Atoi(words[colIdx["ref_counts"]])
	exception.PanicOnErr(err)
	ans.AltCounts, err = strconv.Atoi(words[colIdx["alt_counts"]])
	exception.PanicOnErr(err)
	ans.MajorCN, err = strconv.Atoi(words[colIdx["major_cn"]])
	exception.PanicOnErr(err)
	ans.MinorCN, err = strconv.Atoi(words[colIdx["minor_cn"]])
	exception.PanicOnErr(err)
	ans.NormalCN, err = strconv.Atoi(words[colIdx["normal_cn"]])
	exception.PanicOnErr(err)
	ans.TumourContent = words[colIdx["tumour_content"]]
	return ans
}

// Write writes records as a pyclone-vi input tsv with the fixed column order.
func Write(filename string, records []Record) {
	out := fileio.EasyCreate(filename)
	fmt.Fprintln(out, strings.Join(Columns, "\t"))
	for i := range records {
		fmt.Fprintln(out, records[i].String())
	}
	err := out.Close()
	exception.PanicOnErr(err)
}

// MakeInput joins a single sample's MAF with its FACETS segment table and
// purity, writing a pyclone-vi input tsv. Mutations with no containing copy
// number segment are skipped and counted rather than failing the batch;
// segmentation gaps are expected in real FACETS output.
func MakeInput(patientId, sampleId, vcfFile, mafFile, cnaFile, output string) {
	purity, ploidy, err := facets.PurityPloidy(vcfFile)
	if err != nil {
		log.Fatalf("ERROR: %s", err)
	}
	log.Printf("purity: %s\tploidy: %s\n", purity, ploidy)

	muts := maf.Read(mafFile)
	segments := facets.ReadSegments(cnaFile)
	lookup := facets.BuildLookup(segments)
	log.Printf("read %d mutations and %d copy number segments\n", len(muts.Rows), len(segments))

	records := make([]Record, 0, len(muts.Rows))
	var excluded int
	for i := range muts.Rows {
		seg, found := lookup.Find(muts.Chrom(i), muts.Start(i), muts.End(i))
		if !found {
			log.Printf("no containing segment for %s\n", muts.MutationID(i))
			excluded++
			continue
		}
		records = append(records, Record{
			MutationID:    patientId + ":" + muts.MutationID(i),
			SampleID:      sampleId,
			RefCounts:     muts.RefCount(i),
			AltCounts:     muts.AltCount(i),
			MajorCN:       seg.MajorCN,
			MinorCN:       seg.MinorCN,
			NormalCN:      seg.NormalCN,
			TumourContent: purity,
		})
	}
	Write(output, records)
	log.Printf("excluded %d mutations with no containing segment\n", excluded)
}

// Merge concatenates the primary and metastatic pyclone-vi input tables into
// a single table for joint analysis, primary rows first. If plotFile is
// non-empty, a histogram of variant allele frequencies over the merged table
// is saved there as a png.
func Merge(primaryFile, metFile, output, plotFile string) {
	records := Read(primaryFile)
	records = append(records, Read(metFile)...)
	Write(output, records)
	log.Printf("wrote %d records\n", len(records))
	if plotFile != "" {
		PlotVaf(records, plotFile)
	}
}
