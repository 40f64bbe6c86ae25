package gnssdist

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// Table files use the same layout in CSV and XLSX: a header row whose
// first cell names the index (may be empty) followed by the column names,
// then one row per elevation bin with the bin label in the first cell.
// Empty cells and "NaN" are missing values.

// ReadOptions control reading table files.
type ReadOptions struct {
	// Comma is the CSV field delimiter, ',' if zero.
	Comma rune

	// Charset of CSV files: "" or "utf-8", "gbk" or "gb18030".
	Charset string

	// Sheet of XLSX files; the first sheet if empty.
	Sheet string
}

// ReadTableFile reads a table from a .csv, .txt or .xlsx file.
func ReadTableFile(path string, opts ReadOptions) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadXLSX(path, opts.Sheet)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	t, err := ReadCSV(fh, opts)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	t.Name = filepath.Base(path)
	return t, nil
}

// ReadCSV reads a table in CSV format from r.
func ReadCSV(r io.Reader, opts ReadOptions) (*Table, error) {
	switch strings.ToLower(opts.Charset) {
	case "", "utf-8", "utf8":
	case "gbk":
		r = transform.NewReader(r, simplifiedchinese.GBK.NewDecoder())
	case "gb18030":
		r = transform.NewReader(r, simplifiedchinese.GB18030.NewDecoder())
	default:
		return nil, fmt.Errorf("unsupported charset %q", opts.Charset)
	}

	cr := csv.NewReader(r)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return tableFromRecords("csv", records)
}

// ReadXLSX reads a table from sheet of the Excel file path.
func ReadXLSX(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q of %s: %w", sheet, path, err)
	}
	return tableFromRecords(filepath.Base(path), rows)
}

// WriteXLSX writes t to sheet of a new Excel file path.
func WriteXLSX(t *Table, path, sheet string) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != "Sheet1" {
		idx, err := f.NewSheet(sheet)
		if err != nil {
			return err
		}
		f.SetActiveSheet(idx)
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return err
		}
	}

	header := make([]interface{}, 0, len(t.names)+1)
	header = append(header, "elev")
	for _, name := range t.names {
		header = append(header, name)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, label := range t.Index {
		row := make([]interface{}, 0, len(t.names)+1)
		row = append(row, label)
		for _, name := range t.names {
			v := t.columns[name][i]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				row = append(row, "")
			} else {
				row = append(row, v)
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

func tableFromRecords(name string, records [][]string) (*Table, error) {
	if len(records) == 0 || len(records[0]) < 1 {
		return nil, ErrEmptyHeader
	}
	header := records[0]
	rows := records[1:]

	index := make([]string, len(rows))
	for i, rec := range rows {
		if len(rec) > 0 {
			index[i] = strings.TrimSpace(rec[0])
		}
	}

	t := NewTable(name, index)
	for j := 1; j < len(header); j++ {
		colName := strings.TrimSpace(header[j])
		values := make([]float64, len(rows))
		for i, rec := range rows {
			v, err := parseCell(rec, j)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %q: %w", i+2, colName, err)
			}
			values[i] = v
		}
		if err := t.AddColumn(colName, values); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func parseCell(rec []string, j int) (float64, error) {
	if j >= len(rec) {
		return math.NaN(), nil
	}
	s := strings.TrimSpace(rec[j])
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}
