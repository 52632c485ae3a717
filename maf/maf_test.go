package maf

import (
	"path/filepath"
	"testing"
)

func TestRead(t *testing.T) {
	tbl := Read("testdata/test.maf")
	if len(tbl.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(tbl.Rows))
	}
	if tbl.Chrom(0) != "chr17" || tbl.Start(0) != 7675088 || tbl.End(0) != 7675088 {
		t.Error("problem with coordinate fields", tbl.Chrom(0), tbl.Start(0), tbl.End(0))
	}
	if tbl.Ref(0) != "C" || tbl.Alt(0) != "T" {
		t.Error("problem with allele fields", tbl.Ref(0), tbl.Alt(0))
	}
	if tbl.RefCount(1) != 30 || tbl.AltCount(1) != 15 {
		t.Error("problem with count fields", tbl.RefCount(1), tbl.AltCount(1))
	}
	if tbl.MutationID(0) != "chr17:7675088:7675088:C>T" {
		t.Error("problem with mutation id", tbl.MutationID(0))
	}
	if tbl.Field(2, "Hugo_Symbol") != "BRAF" {
		t.Error("carried columns should survive reading", tbl.Field(2, "Hugo_Symbol"))
	}
}

func TestAppendRow(t *testing.T) {
	tbl := NewTable([]string{"Hugo_Symbol", ChromCol, StartCol, EndCol, RefCol, AltCol, RefCountCol, AltCountCol})
	tbl.AppendRow(map[string]string{
		ChromCol:    "chr2",
		StartCol:    "500",
		EndCol:      "500",
		RefCol:      "G",
		AltCol:      "C",
		RefCountCol: "12",
		AltCountCol: "0",
	})
	if len(tbl.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(tbl.Rows))
	}
	if tbl.MutationID(0) != "chr2:500:500:G>C" {
		t.Error("problem with appended row id", tbl.MutationID(0))
	}
	if tbl.Field(0, "Hugo_Symbol") != "" {
		t.Error("columns not in the value map should be empty", tbl.Field(0, "Hugo_Symbol"))
	}
	if tbl.RefCount(0) != 12 || tbl.AltCount(0) != 0 {
		t.Error("problem with appended counts", tbl.RefCount(0), tbl.AltCount(0))
	}
}

func TestWriteRead(t *testing.T) {
	tbl := Read("testdata/test.maf")
	out := filepath.Join(t.TempDir(), "out.maf")
	tbl.Write(out)
	again := Read(out)
	if len(again.Rows) != len(tbl.Rows) {
		t.Fatalf("expected %d rows after round trip, got %d", len(tbl.Rows), len(again.Rows))
	}
	for i := range tbl.Rows {
		if again.MutationID(i) != tbl.MutationID(i) {
			t.Error("mutation id changed after round trip", tbl.MutationID(i), again.MutationID(i))
		}
	}
}
