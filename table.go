package gnssdist

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
)

var (
	ErrDuplicateColumn = errors.New("gnssdist: duplicate column")
	ErrColumnLength    = errors.New("gnssdist: column length differs from index length")
	ErrEmptyHeader     = errors.New("gnssdist: table has no header")
)

// Table is the aggregated input of a distribution plot: one row per
// elevation bin, one column per constellation and observable.
//
// The zero value is not usable, use NewTable.
type Table struct {
	// Name is used in log messages only.
	Name string

	// Index holds the row labels (the elevation bins) in plotting order.
	Index []string

	names   []string
	columns map[string][]float64
}

// NewTable returns an empty table with the given row labels.
func NewTable(name string, index []string) *Table {
	idx := make([]string, len(index))
	copy(idx, index)
	return &Table{
		Name:    name,
		Index:   idx,
		columns: make(map[string][]float64),
	}
}

// AddColumn appends a column. The values are copied.
func (t *Table) AddColumn(name string, values []float64) error {
	if _, ok := t.columns[name]; ok {
		return fmt.Errorf("%w %q in %s", ErrDuplicateColumn, name, t.Name)
	}
	if len(values) != len(t.Index) {
		return fmt.Errorf("%w: column %q has %d values, index has %d",
			ErrColumnLength, name, len(values), len(t.Index))
	}
	v := make([]float64, len(values))
	copy(v, values)
	t.names = append(t.names, name)
	t.columns[name] = v
	return nil
}

// N is the number of rows.
func (t *Table) N() int { return len(t.Index) }

// FieldNames returns the column names in insertion order.
func (t *Table) FieldNames() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// Has reports whether t has a column name.
func (t *Table) Has(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Column returns the values of column name or nil if there is no such
// column. The returned slice must not be modified.
func (t *Table) Column(name string) []float64 {
	return t.columns[name]
}

// ColumnsWithPrefix returns the names of all columns starting with prefix,
// in table order.
func ColumnsWithPrefix(t *Table, prefix string) []string {
	var cols []string
	for _, name := range t.names {
		if strings.HasPrefix(name, prefix) {
			cols = append(cols, name)
		}
	}
	return cols
}

// printRows writes the rows from to to-1 of t as an aligned text table to w.
func (t *Table) printRows(w io.Writer, from, to int) {
	tw := tabwriter.NewWriter(w, 4, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "\t")
	for _, name := range t.names {
		fmt.Fprintf(tw, "%s\t", name)
	}
	fmt.Fprintln(tw)
	for i := from; i < to; i++ {
		fmt.Fprintf(tw, "%s\t", t.Index[i])
		for _, name := range t.names {
			v := t.columns[name][i]
			if math.IsNaN(v) {
				fmt.Fprint(tw, "NaN\t")
			} else {
				fmt.Fprintf(tw, "%.2f\t", v)
			}
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

// Print writes t as an aligned text table to w.
func (t *Table) Print(w io.Writer) {
	t.printRows(w, 0, t.N())
}

// HeadTail formats the first and last n rows of t. Small tables are
// printed completely.
func (t *Table) HeadTail(n int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d rows x %d columns\n", t.Name, t.N(), len(t.names))
	if t.N() <= 2*n {
		t.Print(&b)
		return b.String()
	}
	t.printRows(&b, 0, n)
	b.WriteString("...\n")
	t.printRows(&b, t.N()-n, t.N())
	return b.String()
}
