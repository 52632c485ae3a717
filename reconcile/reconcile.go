// Package reconcile makes paired tumor sample mutation tables comparable for
// clonal analysis. Mutations called in only one sample are added to the other
// sample's table with an alt count of zero and the reference read depth
// observed at that position in the other sample's alignments, so that every
// site has truthful counts in both tables.
package reconcile

import (
	"fmt"
	"github.com/dasnellings/pycloneTools/maf"
	"github.com/guptarohit/asciigraph"
	"github.com/vertgenlab/gonomics/exception"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
	"log"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DepthSource reports total read depth at a single 1-based position. The
// second return is false when the source has no coverage information at the
// position at all.
type DepthSource interface {
	Depth(chrom string, pos int) (int, bool)
}

// ExclusiveIDs partitions the mutation identity keys of two paired sample
// tables into those private to a and those private to b. Both answers are
// sorted so downstream output is deterministic.
func ExclusiveIDs(a, b *maf.Table) (aOnly, bOnly []string) {
	aIds := idSet(a)
	bIds := idSet(b)
	for id := range aIds {
		if !bIds[id] {
			aOnly = append(aOnly, id)
		}
	}
	for id := range bIds {
		if !aIds[id] {
			bOnly = append(bOnly, id)
		}
	}
	slices.Sort(aOnly)
	slices.Sort(bOnly)
	return aOnly, bOnly
}

func idSet(t *maf.Table) map[string]bool {
	ans := make(map[string]bool)
	for i := range t.Rows {
		id := t.MutationID(i)
		if ans[id] {
			log.Fatalf("ERROR: duplicate mutation id %s", id)
		}
		ans[id] = true
	}
	return ans
}

// AddAbsent appends one row per absent mutation to t, with the mutation's
// coordinates and alleles, t_ref_count set to the depth queried from src at
// the mutation's start position, and t_alt_count set to zero. All other
// columns are left empty. Mutations with no coverage information are skipped
// and counted, not fatal. Returns the queried depths of the appended rows
// and the skip count.
func AddAbsent(t *maf.Table, absent []string, src DepthSource, verbose int) (depths []int, skipped int) {
	var chrom, start, end, ref, alt string
	for i := range absent {
		if verbose > 0 && i > 0 && i%1000 == 0 {
			log.Printf("queried %d of %d absent mutations\n", i, len(absent))
		}
		chrom, start, end, ref, alt = parseID(absent[i])
		pos, err := strconv.Atoi(start)
		if err != nil {
			log.Fatalf("ERROR: malformed position in mutation id %s", absent[i])
		}
		depth, covered := src.Depth(chrom, pos)
		if !covered {
			skipped++
			continue
		}
		t.AppendRow(map[string]string{
			maf.ChromCol:    chrom,
			maf.StartCol:    start,
			maf.EndCol:      end,
			maf.RefCol:      ref,
			maf.AltCol:      alt,
			maf.RefCountCol: strconv.Itoa(depth),
			maf.AltCountCol: "0",
		})
		depths = append(depths, depth)
	}
	return depths, skipped
}

// parseID splits a mutation identity key of the form chrom:start:end:ref>alt.
func parseID(id string) (chrom, start, end, ref, alt string) {
	words := strings.SplitN(id, ":", 4)
	if len(words) != 4 {
		log.Fatalf("ERROR: malformed mutation id %s", id)
	}
	alleles := strings.Split(words[3], ">")
	if len(alleles) != 2 {
		log.Fatalf("ERROR: malformed alleles in mutation id %s", id)
	}
	return words[0], words[1], words[2], alleles[0], alleles[1]
}

// Prep reconciles the mutation tables of a paired primary and metastatic
// sample. Each table gains a zero-alt row for every mutation private to the
// other sample, backed by the reference depth in this sample's bam, and is
// written to outDir as <base>.<label>.with_absent_mutations.maf.
func Prep(pMafFile, pBamFile, mMafFile, mBamFile, outDir string, hist bool, verbose int) {
	primary := maf.Read(pMafFile)
	met := maf.Read(mMafFile)
	pOnly, mOnly := ExclusiveIDs(primary, met)
	log.Printf("found %d primary-specific and %d metastatic-specific mutations\n", len(pOnly), len(mOnly))

	pBam := OpenBam(pBamFile)
	pDepths, pSkipped := AddAbsent(primary, mOnly, pBam, verbose)
	err := pBam.Close()
	exception.PanicOnErr(err)
	summarize("primary", pDepths, pSkipped, hist)

	mBam := OpenBam(mBamFile)
	mDepths, mSkipped := AddAbsent(met, pOnly, mBam, verbose)
	err = mBam.Close()
	exception.PanicOnErr(err)
	summarize("metastatic", mDepths, mSkipped, hist)

	primary.Write(outputName(pMafFile, "primary", outDir))
	met.Write(outputName(mMafFile, "metastatic", outDir))
}

func outputName(mafFile, label, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(mafFile), ".maf")
	return filepath.Join(outDir, base+"."+label+".with_absent_mutations.maf")
}

func summarize(label string, depths []int, skipped int, hist bool) {
	log.Printf("%s: added %d absent mutations, skipped %d with no coverage\n", label, len(depths), skipped)
	if len(depths) == 0 {
		return
	}
	vals := make([]float64, len(depths))
	for i := range depths {
		vals[i] = float64(depths[i])
	}
	sort.Float64s(vals)
	log.Printf("%s: mean depth at added sites %.1f, median %.1f\n",
		label, stat.Mean(vals, nil), stat.Quantile(0.5, stat.Empirical, vals, nil))
	if hist {
		fmt.Println(asciigraph.Plot(depthHist(vals, 30), asciigraph.Height(10), asciigraph.Precision(0),
			asciigraph.Caption(label+" depth at added sites (binned low to high)")))
	}
}

// depthHist bins sorted depth values into equal width bins for a terminal plot.
func depthHist(sorted []float64, bins int) []float64 {
	min := sorted[0]
	max := sorted[len(sorted)-1]
	if max == min {
		return []float64{float64(len(sorted))}
	}
	width := (max - min) / float64(bins)
	counts := make([]float64, bins)
	var bin int
	for _, v := range sorted {
		bin = int((v - min) / width)
		if bin == bins {
			bin--
		}
		counts[bin]++
	}
	return counts
}
