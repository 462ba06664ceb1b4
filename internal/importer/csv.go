// Package importer is the CSV boundary for bulk student inclusion. The file
// must have a header row with a "Nome" column; every other column is
// ignored. Parsing never partially imports: any structural failure aborts
// before a single row is handed to the roster.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrEmptyFile         = errors.New("csv file is empty")
	ErrMissingNameColumn = errors.New(`csv file must contain a "Nome" column`)
)

// nameColumn is the only contractually required header.
const nameColumn = "Nome"

// ParseStudentNames reads a delimited file with a header row and returns the
// trimmed, non-blank values of the Nome column, in file order. Blank-name
// rows are silently skipped; a missing column or a malformed file is an
// error and nothing is returned.
func ParseStudentNames(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// Rows with trailing empty cells are common in spreadsheet exports.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	nameIdx := -1
	for i, col := range header {
		if strings.TrimSpace(col) == nameColumn {
			nameIdx = i
			break
		}
	}
	if nameIdx < 0 {
		return nil, ErrMissingNameColumn
	}

	var names []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv row: %w", err)
		}
		if nameIdx >= len(record) {
			continue
		}
		name := strings.TrimSpace(record[nameIdx])
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
