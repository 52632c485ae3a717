package facets

import (
	"strings"
	"testing"
)

func TestReadSegments(t *testing.T) {
	segments := ReadSegments("testdata/segments.csv")
	if len(segments) != 4 {
		t.Fatalf("expected 4 segments, got %d", len(segments))
	}
	// tcn_em 4, lcn_em 1: major is derived as tcn - lcn, input major_cn column ignored
	if segments[0].MajorCN != 3 || segments[0].MinorCN != 1 {
		t.Error("problem deriving copy numbers", segments[0].MajorCN, segments[0].MinorCN)
	}
	if segments[0].SvType != "DUP" || segments[0].Chrom != "chr1" || segments[0].Start != 1 || segments[0].End != 200 {
		t.Error("problem parsing segment fields", segments[0])
	}
	// lcn_em of "." coerces to 0, so major equals tcn
	if segments[2].MinorCN != 0 || segments[2].MajorCN != 2 {
		t.Error("missing lcn_em should coerce to 0", segments[2].MajorCN, segments[2].MinorCN)
	}
	for i := range segments {
		if segments[i].Chrom == "chrY" && segments[i].NormalCN != 1 {
			t.Error("chrY should have normal copy number 1", segments[i])
		}
		if segments[i].Chrom != "chrY" && segments[i].NormalCN != 2 {
			t.Error("non-chrY should have normal copy number 2", segments[i])
		}
	}
}

func TestLookup(t *testing.T) {
	lookup := BuildLookup(ReadSegments("testdata/segments.csv"))

	seg, found := lookup.Find("chr1", 100, 100)
	if !found {
		t.Fatal("chr1:100 should fall in chr1:1-200")
	}
	if seg.MajorCN != 3 || seg.MinorCN != 1 || seg.NormalCN != 2 {
		t.Error("wrong copy numbers for contained mutation", seg.MajorCN, seg.MinorCN, seg.NormalCN)
	}

	if _, found = lookup.Find("chr1", 250, 250); found {
		t.Error("chr1:250 lies between segments and should not be found")
	}
	if _, found = lookup.Find("chr2", 100, 100); found {
		t.Error("chromosome absent from the table should not be found")
	}
	// query overlapping but not contained in a segment
	if _, found = lookup.Find("chr1", 150, 250); found {
		t.Error("partially overlapping query should not be found")
	}

	seg, found = lookup.Find("chrY", 1000, 1000)
	if !found || seg.NormalCN != 1 {
		t.Error("chrY lookup should return normal copy number 1", found, seg.NormalCN)
	}
}

func TestLookupFirstMatchWins(t *testing.T) {
	// overlapping segments are a documented edge case: row order breaks the tie
	segments := []Segment{
		{Chrom: "chr3", Start: 1, End: 1000, SvType: "DEL", MajorCN: 1, MinorCN: 0, NormalCN: 2},
		{Chrom: "chr3", Start: 500, End: 2000, SvType: "DUP", MajorCN: 3, MinorCN: 1, NormalCN: 2},
	}
	lookup := BuildLookup(segments)
	seg, found := lookup.Find("chr3", 600, 600)
	if !found {
		t.Fatal("chr3:600 should be contained")
	}
	if seg.SvType != "DEL" {
		t.Error("expected the first segment in input order to win", seg.SvType)
	}
}

func TestPurityPloidy(t *testing.T) {
	purity, ploidy, err := PurityPloidy("testdata/facets.vcf.gz")
	if err != nil {
		t.Fatal(err)
	}
	if purity != "0.65" || ploidy != "2.1" {
		t.Errorf("expected purity 0.65 and ploidy 2.1, got %s and %s", purity, ploidy)
	}
}

func TestPurityPloidyMissing(t *testing.T) {
	_, _, err := PurityPloidy("testdata/noPloidy.vcf")
	if err == nil {
		t.Fatal("expected an error for a header without a ploidy line")
	}
	if !strings.Contains(err.Error(), "ploidy") || !strings.Contains(err.Error(), "noPloidy.vcf") {
		t.Error("error should name the missing tag and the file", err)
	}
}
