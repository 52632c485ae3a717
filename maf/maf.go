// Package maf reads and writes MAF-like tab-separated mutation tables,
// keeping every input column so that augmented tables can be written back
// without loss.
package maf

import (
	"fmt"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"log"
	"strconv"
	"strings"
)

// Column names required for mutation identity and read counts. All other
// columns are carried through untouched.
const (
	ChromCol    = "Chromosome"
	StartCol    = "Start_Position"
	EndCol      = "End_Position"
	RefCol      = "Reference_Allele"
	AltCol      = "Tumor_Seq_Allele2"
	RefCountCol = "t_ref_count"
	AltCountCol = "t_alt_count"
)

// Table is an in-memory MAF-like table. Rows hold the raw string fields in
// input column order.
type Table struct {
	Columns []string
	Rows    [][]string
	colIdx  map[string]int
}

// NewTable returns an empty Table with the given column header.
func NewTable(columns []string) *Table {
	t := &Table{Columns: columns, colIdx: make(map[string]int)}
	for i := range columns {
		t.colIdx[columns[i]] = i
	}
	return t
}

// Read parses a tab-separated MAF-like file. A leading comment line beginning
// with '#' (e.g. a version pragma) is skipped. The first non-comment line is
// the column header.
func Read(filename string) *Table {
	in := fileio.EasyOpen(filename)
	var t *Table
	var line string
	var done bool
	for line, done = fileio.EasyNextRealLine(in); !done; line, done = fileio.EasyNextRealLine(in) {
		if t == nil {
			t = NewTable(strings.Split(line, "\t"))
			continue
		}
		t.Rows = append(t.Rows, strings.Split(line, "\t"))
	}
	err := in.Close()
	exception.PanicOnErr(err)
	if t == nil {
		log.Fatalf("ERROR: %s has no header line", filename)
	}
	for _, col := range []string{ChromCol, StartCol, EndCol, RefCol, AltCol} {
		if _, ok := t.colIdx[col]; !ok {
			log.Fatalf("ERROR: %s is missing required column %s", filename, col)
		}
	}
	return t
}

// Write writes the table as tab-separated text. The comment line skipped by
// Read, if any, is not restored.
func (t *Table) Write(filename string) {
	out := fileio.EasyCreate(filename)
	fmt.Fprintln(out, strings.Join(t.Columns, "\t"))
	for i := range t.Rows {
		fmt.Fprintln(out, strings.Join(t.Rows[i], "\t"))
	}
	err := out.Close()
	exception.PanicOnErr(err)
}

// Field returns the raw string value of the named column in row i, or the
// empty string if the row is short or the column does not exist.
func (t *Table) Field(i int, col string) string {
	idx, ok := t.colIdx[col]
	if !ok || idx >= len(t.Rows[i]) {
		return ""
	}
	return t.Rows[i][idx]
}

func (t *Table) Chrom(i int) string {
	return t.Field(i, ChromCol)
}

func (t *Table) Start(i int) int {
	return t.intField(i, StartCol)
}

func (t *Table) End(i int) int {
	return t.intField(i, EndCol)
}

func (t *Table) Ref(i int) string {
	return t.Field(i, RefCol)
}

func (t *Table) Alt(i int) string {
	return t.Field(i, AltCol)
}

func (t *Table) RefCount(i int) int {
	return t.intField(i, RefCountCol)
}

func (t *Table) AltCount(i int) int {
	return t.intField(i, AltCountCol)
}

func (t *Table) intField(i int, col string) int {
	val, err := strconv.Atoi(t.Field(i, col))
	exception.PanicOnErr(err)
	return val
}

// MutationID returns the identity key for row i, formatted as
// chrom:start:end:ref>alt. Positions are taken verbatim from the input so the
// key survives a write/read round trip.
func (t *Table) MutationID(i int) string {
	return t.Field(i, ChromCol) + ":" + t.Field(i, StartCol) + ":" + t.Field(i, EndCol) + ":" +
		t.Field(i, RefCol) + ">" + t.Field(i, AltCol)
}

// AppendRow adds a row built from the given column values. Columns absent
// from the map are left empty.
func (t *Table) AppendRow(values map[string]string) {
	row := make([]string, len(t.Columns))
	for col, val := range values {
		idx, ok := t.colIdx[col]
		if !ok {
			log.Fatalf("ERROR: cannot append value for unknown column %s", col)
		}
		row[idx] = val
	}
	t.Rows = append(t.Rows, row)
}
