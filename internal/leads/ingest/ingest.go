// Package ingest parses uploaded lead sheets (CSV or XLSX) into rows.
package ingest

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"leadscore_backend/platform/sanitize"
)

// maxFieldRunes caps a single cell so one bad row cannot bloat the table.
const maxFieldRunes = 4000

var (
	// ErrUnsupportedFormat is returned for extensions other than .csv and .xlsx.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrNoHeader is returned when the first row names none of the lead columns.
	ErrNoHeader = errors.New("no recognised lead columns in header row")
)

// Format is the sheet encoding of an upload.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Row is one lead as read from a sheet, sanitized and trimmed.
type Row struct {
	Name        string
	Role        string
	Company     string
	Industry    string
	Location    string
	LinkedInBio string
}

// Blank reports whether every field is empty.
func (r Row) Blank() bool {
	return r.Name == "" && r.Role == "" && r.Company == "" &&
		r.Industry == "" && r.Location == "" && r.LinkedInBio == ""
}

// DetectFormat picks the parser from the file extension. Files without an
// extension are treated as CSV.
func DetectFormat(fileName string) (Format, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv", ".txt", "":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(fileName))
	}
}

// Parse reads all lead rows from r in the given format. Entirely blank
// rows are dropped.
func Parse(format Format, r io.Reader) ([]Row, error) {
	var (
		records [][]string
		err     error
	)
	switch format {
	case FormatCSV:
		records, err = readCSV(r)
	case FormatXLSX:
		records, err = readXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	return mapRecords(records)
}

type column int

const (
	colName column = iota
	colRole
	colCompany
	colIndustry
	colLocation
	colBio
	colCount
)

var headerAliases = map[string]column{
	"name":         colName,
	"full_name":    colName,
	"role":         colRole,
	"title":        colRole,
	"job_title":    colRole,
	"company":      colCompany,
	"industry":     colIndustry,
	"location":     colLocation,
	"linkedin_bio": colBio,
	"linkedinbio":  colBio,
	"bio":          colBio,
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(sanitize.StripControl(h)))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(h)
}

func mapRecords(records [][]string) ([]Row, error) {
	if len(records) == 0 {
		return nil, nil
	}

	var index [colCount]int
	for i := range index {
		index[i] = -1
	}
	found := false
	for i, h := range records[0] {
		col, ok := headerAliases[normalizeHeader(h)]
		if ok && index[col] == -1 {
			index[col] = i
			found = true
		}
	}
	if !found {
		return nil, ErrNoHeader
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		cell := func(c column) string {
			i := index[c]
			if i < 0 || i >= len(rec) {
				return ""
			}
			return sanitize.Truncate(sanitize.Text(rec[i]), maxFieldRunes)
		}
		row := Row{
			Name:        cell(colName),
			Role:        cell(colRole),
			Company:     cell(colCompany),
			Industry:    cell(colIndustry),
			Location:    cell(colLocation),
			LinkedInBio: cell(colBio),
		}
		if row.Blank() {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
