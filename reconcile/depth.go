package reconcile

import (
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/sam"
	"sort"
)

// BamSource answers single-position depth queries against an indexed bam.
// Not safe for concurrent use; the read slice is recycled between queries.
type BamSource struct {
	bam    *sam.BamReader
	bai    sam.Bai
	header sam.Header
	reads  []sam.Sam
}

// OpenBam opens filename for depth queries. A bai index must exist at
// filename + ".bai".
func OpenBam(filename string) *BamSource {
	var ans BamSource
	ans.bam, ans.header = sam.OpenBam(filename)
	ans.bai = sam.ReadBai(filename + ".bai")
	return &ans
}

func (b *BamSource) Close() error {
	return b.bam.Close()
}

// Depth returns the total read depth at the 1-based position pos, counting
// every read in the pileup including those with a deletion spanning the
// position. The second return is false when no read covers the position.
func (b *BamSource) Depth(chrom string, pos int) (int, bool) {
	b.reads = sam.SeekBamRegionRecycle(b.bam, b.bai, chrom, uint32(pos-1), uint32(pos), b.reads)
	if len(b.reads) == 0 {
		return 0, false
	}
	sort.Slice(b.reads, func(i, j int) bool { return b.reads[i].Pos < b.reads[j].Pos })
	for _, p := range pileup(b.reads, b.header) {
		if int(p.Pos) == pos {
			return pileDepth(p), true
		}
	}
	return 0, false
}

func pileup(reads []sam.Sam, header sam.Header) []sam.Pile {
	samChan := make(chan sam.Sam, len(reads))
	for i := range reads {
		samChan <- reads[i]
	}
	close(samChan)

	ans := make([]sam.Pile, 0, 100)
	pileChan := sam.GoPileup(samChan, header, false, nil, nil)
	for p := range pileChan {
		ans = append(ans, p)
	}
	return ans
}

func pileDepth(p sam.Pile) int {
	var ans int
	for _, base := range []dna.Base{dna.A, dna.C, dna.G, dna.T, dna.N, dna.Gap} {
		ans += p.CountF[base] + p.CountR[base]
	}
	return ans
}
