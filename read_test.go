package gnssdist

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/simplifiedchinese"
)

const elevCSV = `elev,GPS_10,GPS_20,GAL_10
0-10,41.5,40,38
10-20,43.25,44,
20-30,45,NaN,46
30-40,47,48
`

func TestReadCSV(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(elevCSV), ReadOptions{})
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if tbl.N() != 4 {
		t.Errorf("Got %d rows, want 4", tbl.N())
	}
	if !equalStrings(tbl.Index, []string{"0-10", "10-20", "20-30", "30-40"}) {
		t.Errorf("Index %v", tbl.Index)
	}
	if !equalStrings(tbl.FieldNames(), []string{"GPS_10", "GPS_20", "GAL_10"}) {
		t.Errorf("Fields %v", tbl.FieldNames())
	}
	if got := tbl.Column("GPS_10")[1]; got != 43.25 {
		t.Errorf("GPS_10[1] = %g", got)
	}

	// Empty, NaN and missing trailing cells are missing values.
	for _, tc := range []struct {
		col string
		row int
	}{
		{"GAL_10", 1}, {"GPS_20", 2}, {"GAL_10", 3},
	} {
		if v := tbl.Column(tc.col)[tc.row]; !math.IsNaN(v) {
			t.Errorf("%s[%d] = %g, want NaN", tc.col, tc.row, v)
		}
	}
}

func TestReadCSVSemicolon(t *testing.T) {
	in := "elev; GPS_10\n0-10; 1.5\n"
	tbl, err := ReadCSV(strings.NewReader(in), ReadOptions{Comma: ';'})
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if !tbl.Has("GPS_10") || tbl.Column("GPS_10")[0] != 1.5 {
		t.Errorf("Got %s", tbl.HeadTail(5))
	}
}

func TestReadCSVGBK(t *testing.T) {
	in, err := simplifiedchinese.GBK.NewEncoder().String("高度角,GPS_10\n低,30\n高,50\n")
	if err != nil {
		t.Fatalf("Cannot encode: %s", err)
	}

	tbl, err := ReadCSV(strings.NewReader(in), ReadOptions{Charset: "GBK"})
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if !equalStrings(tbl.Index, []string{"低", "高"}) {
		t.Errorf("Index %q", tbl.Index)
	}

	if _, err := ReadCSV(strings.NewReader(in), ReadOptions{Charset: "latin-7"}); err == nil {
		t.Errorf("Missing error for unknown charset")
	}
}

func TestReadCSVErrors(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader(""), ReadOptions{}); !errors.Is(err, ErrEmptyHeader) {
		t.Errorf("Empty input: got %v", err)
	}
	if _, err := ReadCSV(strings.NewReader("elev,GPS_10\n0-10,abc\n"), ReadOptions{}); err == nil {
		t.Errorf("Missing error for bad number")
	}
	if _, err := ReadCSV(strings.NewReader("elev,GPS_10,GPS_10\n0-10,1,2\n"), ReadOptions{}); !errors.Is(err, ErrDuplicateColumn) {
		t.Errorf("Duplicate column: got %v", err)
	}
}

func TestXLSXRoundTrip(t *testing.T) {
	tbl := elevTable(t)
	dir := t.TempDir()

	for _, sheet := range []string{"", "elevation"} {
		path := filepath.Join(dir, "elev"+sheet+".xlsx")
		if err := WriteXLSX(tbl, path, sheet); err != nil {
			t.Fatalf("Cannot write %s: %s", path, err)
		}
		got, err := ReadTableFile(path, ReadOptions{Sheet: sheet})
		if err != nil {
			t.Fatalf("Cannot read %s: %s", path, err)
		}
		if !equalStrings(got.Index, tbl.Index) || !equalStrings(got.FieldNames(), tbl.FieldNames()) {
			t.Errorf("Sheet %q: got %v %v", sheet, got.Index, got.FieldNames())
			continue
		}
		for _, name := range tbl.FieldNames() {
			want, have := tbl.Column(name), got.Column(name)
			for i := range want {
				if math.IsNaN(want[i]) != math.IsNaN(have[i]) ||
					(!math.IsNaN(want[i]) && math.Abs(want[i]-have[i]) > 1e-9) {
					t.Errorf("Sheet %q: %s[%d] = %g, want %g", sheet, name, i, have[i], want[i])
				}
			}
		}
	}

	if _, err := ReadXLSX(filepath.Join(dir, "elev.xlsx"), "nosuchsheet"); err == nil {
		t.Errorf("Missing error for unknown sheet")
	}
}

func TestReadTableFileCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elev.csv")
	if err := os.WriteFile(path, []byte(elevCSV), 0644); err != nil {
		t.Fatalf("Cannot write %s: %s", path, err)
	}
	tbl, err := ReadTableFile(path, ReadOptions{})
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if tbl.Name != "elev.csv" || len(ColumnsWithPrefix(tbl, "GPS")) != 2 {
		t.Errorf("Got %q with %v", tbl.Name, tbl.FieldNames())
	}

	if _, err := ReadTableFile(filepath.Join(t.TempDir(), "missing.csv"), ReadOptions{}); err == nil {
		t.Errorf("Missing error for missing file")
	}
}
