package gnssdist

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
)

var bins = []string{"0-10", "10-20", "20-30", "30-40", "40-50"}

// elevTable is a small CN0 summary with two GPS and one GAL column.
func elevTable(t *testing.T) *Table {
	tbl := NewTable("cn0", bins)
	cols := []struct {
		name   string
		values []float64
	}{
		{"GPS_10", []float64{31, 35, 40, 44, 47}},
		{"GPS_20", []float64{28, 33, 38, 41, 45}},
		{"GAL_10", []float64{33, 36, 41, 45, math.NaN()}},
	}
	for _, c := range cols {
		if err := tbl.AddColumn(c.name, c.values); err != nil {
			t.Fatalf("Unexpected error %s", err)
		}
	}
	return tbl
}

func TestNewTable(t *testing.T) {
	tbl := elevTable(t)
	if tbl.N() != 5 {
		t.Errorf("Got %d rows, want 5", tbl.N())
	}
	if names := tbl.FieldNames(); !equalStrings(names, []string{"GPS_10", "GPS_20", "GAL_10"}) {
		t.Errorf("Got fields %v", names)
	}
	if !tbl.Has("GAL_10") || tbl.Has("GAL_20") {
		t.Errorf("Has is broken")
	}
	if c := tbl.Column("GPS_20"); len(c) != 5 || c[2] != 38 {
		t.Errorf("Got column %v", c)
	}
	if c := tbl.Column("nope"); c != nil {
		t.Errorf("Got column %v for missing name", c)
	}
}

func TestAddColumnErrors(t *testing.T) {
	tbl := NewTable("bad", []string{"a", "b"})
	if err := tbl.AddColumn("GPS_1", []float64{1, 2}); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if err := tbl.AddColumn("GPS_1", []float64{3, 4}); !errors.Is(err, ErrDuplicateColumn) {
		t.Errorf("Got %v, want ErrDuplicateColumn", err)
	}
	if err := tbl.AddColumn("GPS_2", []float64{3}); !errors.Is(err, ErrColumnLength) {
		t.Errorf("Got %v, want ErrColumnLength", err)
	}
	if len(tbl.FieldNames()) != 1 {
		t.Errorf("Failed AddColumn changed the table: %v", tbl.FieldNames())
	}
}

func TestAddColumnCopies(t *testing.T) {
	values := []float64{1, 2}
	tbl := NewTable("copy", []string{"a", "b"})
	tbl.AddColumn("GPS_1", values)
	values[0] = 99
	if tbl.Column("GPS_1")[0] != 1 {
		t.Errorf("Column shares memory with caller")
	}
}

func TestColumnsWithPrefix(t *testing.T) {
	tbl := elevTable(t)
	tests := []struct {
		prefix string
		want   []string
	}{
		{"GPS", []string{"GPS_10", "GPS_20"}},
		{"GAL", []string{"GAL_10"}},
		{"BDS", nil},
		{"", []string{"GPS_10", "GPS_20", "GAL_10"}},
	}
	for _, tc := range tests {
		got := ColumnsWithPrefix(tbl, tc.prefix)
		if !equalStrings(got, tc.want) {
			t.Errorf("prefix %q: got %v, want %v", tc.prefix, got, tc.want)
		}
	}
}

func TestPrint(t *testing.T) {
	tbl := elevTable(t)
	var buf bytes.Buffer
	tbl.Print(&buf)
	out := buf.String()
	if lines := strings.Count(out, "\n"); lines != 6 {
		t.Errorf("Got %d lines, want 6:\n%s", lines, out)
	}
	for _, s := range []string{"GPS_10", "40-50", "NaN", "47.00"} {
		if !strings.Contains(out, s) {
			t.Errorf("Missing %q in\n%s", s, out)
		}
	}
}

func TestHeadTail(t *testing.T) {
	tbl := elevTable(t)
	full := tbl.HeadTail(5)
	if strings.Contains(full, "...") {
		t.Errorf("Small table got elided:\n%s", full)
	}
	short := tbl.HeadTail(1)
	if !strings.Contains(short, "...") || !strings.Contains(short, "0-10") || !strings.Contains(short, "40-50") {
		t.Errorf("Bad head/tail:\n%s", short)
	}
	if strings.Contains(short, "20-30") {
		t.Errorf("Middle row printed:\n%s", short)
	}
}
