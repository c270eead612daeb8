package importer

import (
	"strings"
)

// Row is one data row of a sheet. Number is the 1-based spreadsheet row.
type Row struct {
	Sheet  string
	Number int
	Cells  []string
}

func (r Row) Get(columns ColumnMap, role Role) string {
	return columns.Value(r.Cells, role)
}

func (r Row) IsBlank() bool {
	for _, cell := range r.Cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// normalizeHeader lower-cases a header cell and collapses inner whitespace,
// so wrapped titles like "Name of the\nEquipment" still match.
func normalizeHeader(input string) string {
	return strings.Join(strings.Fields(strings.ToLower(input)), " ")
}
