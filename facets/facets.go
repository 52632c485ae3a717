// Package facets parses FACETS copy number output: the comma-separated
// segment table and the purity/ploidy metadata lines from the gzipped FACETS
// VCF header. It also provides a per-chromosome containment lookup from
// mutation coordinates to segments.
package facets

import (
	"fmt"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"github.com/vertgenlab/gonomics/interval"
	"log"
	"strconv"
	"strings"
)

// missingLcn is the placeholder FACETS writes when the lesser copy number
// could not be estimated. Treated as zero, matching the Van Allen Lab
// handling of FACETS output on Terra.
const missingLcn string = "."

// Segment is one copy number segment. Start and End are 1-based inclusive
// coordinates. MajorCN is derived as tcn_em - lcn_em and MinorCN as lcn_em,
// so the major_cn column in the input file is ignored. NormalCN is 1 for
// chrY and 2 for every other chromosome.
type Segment struct {
	Chrom    string
	Start    int
	End      int
	SvType   string
	MajorCN  int
	MinorCN  int
	NormalCN int
	row      int
}

func (s Segment) GetChrom() string {
	return s.Chrom
}

func (s Segment) GetChromStart() int {
	return s.Start - 1
}

func (s Segment) GetChromEnd() int {
	return s.End
}

// ReadSegments parses a FACETS segment csv with a header line naming at
// least the chrom, start, end, svtype, lcn_em, and tcn_em columns.
func ReadSegments(filename string) []Segment {
	in := fileio.EasyOpen(filename)
	var ans []Segment
	var colIdx map[string]int
	var line string
	var done bool
	for line, done = fileio.EasyNextRealLine(in); !done; line, done = fileio.EasyNextRealLine(in) {
		if colIdx == nil {
			colIdx = segmentHeader(filename, line)
			continue
		}
		ans = append(ans, parseSegment(line, colIdx))
	}
	err := in.Close()
	exception.PanicOnErr(err)
	return ans
}

func segmentHeader(filename, line string) map[string]int {
	colIdx := make(map[string]int)
	for i, name := range strings.Split(line, ",") {
		colIdx[name] = i
	}
	for _, col := range []string{"chrom", "start", "end", "svtype", "lcn_em", "tcn_em"} {
		if _, ok := colIdx[col]; !ok {
			log.Fatalf("ERROR: %s is missing required column %s", filename, col)
		}
	}
	return colIdx
}

func parseSegment(line string, colIdx map[string]int) Segment {
	words := strings.Split(line, ",")
	var err error
	var ans Segment
	ans.Chrom = words[colIdx["chrom"]]
	ans.Start, err = strconv.Atoi(words[colIdx["start"]])
	exception.PanicOnErr(err)
	ans.End, err = strconv.Atoi(words[colIdx["end"]])
	exception.PanicOnErr(err)
	ans.SvType = words[colIdx["svtype"]]
	lcn := words[colIdx["lcn_em"]]
	if lcn == missingLcn {
		lcn = "0"
	}
	ans.MinorCN, err = strconv.Atoi(lcn)
	exception.PanicOnErr(err)
	var tcn int
	tcn, err = strconv.Atoi(words[colIdx["tcn_em"]])
	exception.PanicOnErr(err)
	ans.MajorCN = tcn - ans.MinorCN
	if ans.Chrom == "chrY" {
		ans.NormalCN = 1
	} else {
		ans.NormalCN = 2
	}
	return ans
}

// Lookup answers segment containment queries for mutation coordinates.
type Lookup struct {
	tree map[string]*interval.IntervalNode
}

// BuildLookup indexes segments by chromosome for containment queries.
// Segments are assumed non-overlapping within a chromosome; if they do
// overlap, Find returns the segment appearing first in the input slice.
func BuildLookup(segments []Segment) *Lookup {
	ivs := make([]interval.Interval, len(segments))
	for i := range segments {
		s := segments[i]
		s.row = i
		ivs[i] = s
	}
	return &Lookup{tree: interval.BuildTree(ivs)}
}

type region struct {
	chrom string
	start int // 1-based inclusive
	end   int
}

func (r region) GetChrom() string {
	return r.chrom
}

func (r region) GetChromStart() int {
	return r.start - 1
}

func (r region) GetChromEnd() int {
	return r.end
}

// Find returns the first segment fully containing the 1-based inclusive
// query interval, i.e. start >= segment start and end <= segment end. The
// second return is false when the chromosome is absent from the index or no
// segment contains the query.
func (l *Lookup) Find(chrom string, start, end int) (Segment, bool) {
	if _, ok := l.tree[chrom]; !ok {
		return Segment{}, false
	}
	var best Segment
	var found bool
	for _, hit := range interval.Query(l.tree, region{chrom: chrom, start: start, end: end}, "any") {
		s := hit.(Segment)
		if start < s.Start || end > s.End {
			continue
		}
		if !found || s.row < best.row {
			best = s
			found = true
		}
	}
	return best, found
}

// PurityPloidy scans the header of a FACETS VCF, which may be gzipped, for
// the ##purity= and ##ploidy= metadata lines and returns both values as
// unparsed strings. The scan stops at the first non-header line or at end of
// file; a missing tag is an error naming the file and tag rather than an
// unbounded search.
func PurityPloidy(filename string) (purity, ploidy string, err error) {
	in := fileio.EasyOpen(filename)
	var line string
	var done bool
	for line, done = fileio.EasyNextLine(in); !done; line, done = fileio.EasyNextLine(in) {
		if !strings.HasPrefix(line, "#") {
			break
		}
		switch {
		case strings.HasPrefix(line, "##purity="):
			purity = strings.TrimPrefix(line, "##purity=")
		case strings.HasPrefix(line, "##ploidy="):
			ploidy = strings.TrimPrefix(line, "##ploidy=")
		}
		if purity != "" && ploidy != "" {
			break
		}
	}
	cerr := in.Close()
	exception.PanicOnErr(cerr)
	switch {
	case purity == "" && ploidy == "":
		err = fmt.Errorf("no ##purity or ##ploidy line in header of %s", filename)
	case purity == "":
		err = fmt.Errorf("no ##purity line in header of %s", filename)
	case ploidy == "":
		err = fmt.Errorf("no ##ploidy line in header of %s", filename)
	}
	return purity, ploidy, err
}
