package importer

import "strings"

// Role is the semantic meaning assigned to a spreadsheet column.
type Role string

const (
	RoleName          Role = "name"
	RoleQuantity      Role = "quantity"
	RolePurchaseOrder Role = "purchase_order"
	RoleSupplier      Role = "supplier"
	RoleInvoice       Role = "invoice"
	RolePurchaseValue Role = "purchase_value"
	RoleLocation      Role = "location"
	RoleSerialNumber  Role = "serial_number"
	RoleBarcode       Role = "barcode"
	RoleStatus        Role = "status"
	RoleRemarks       Role = "remarks"
)

type columnRule struct {
	role     Role
	exact    []string
	contains []string
}

// columnRules are evaluated in order; the first rule matching a header cell
// decides its role.
var columnRules = []columnRule{
	{role: RoleName, contains: []string{"name of the equipment", "particulars"}},
	{role: RoleQuantity, exact: []string{"qty"}, contains: []string{"quantity"}},
	{role: RolePurchaseOrder, contains: []string{"purchase order", "po no"}},
	{role: RoleSupplier, contains: []string{"supplier"}},
	{role: RoleInvoice, contains: []string{"invoice"}},
	{role: RolePurchaseValue, contains: []string{"purchase value", "value"}},
	{role: RoleLocation, contains: []string{"location"}},
	{role: RoleSerialNumber, contains: []string{"sl.no", "serial"}},
	{role: RoleBarcode, contains: []string{"barcode", "ams"}},
	{role: RoleStatus, contains: []string{"status"}},
	{role: RoleRemarks, contains: []string{"remark"}},
}

func (r columnRule) matches(header string) bool {
	for _, candidate := range r.exact {
		if header == candidate {
			return true
		}
	}
	for _, candidate := range r.contains {
		if strings.Contains(header, candidate) {
			return true
		}
	}
	return false
}

// ColumnMap resolves roles to zero-based column indices.
type ColumnMap map[Role]int

// Value returns the raw cell for role, or "" when the role has no column or
// the row is shorter than the column index.
func (c ColumnMap) Value(row []string, role Role) string {
	idx, ok := c[role]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func (c ColumnMap) Has(role Role) bool {
	_, ok := c[role]
	return ok
}

// LocateHeader returns the index of the first row with a cell containing
// marker. Case and line wrapping inside the cell are ignored.
func LocateHeader(rows [][]string, marker string) (int, bool) {
	marker = normalizeHeader(marker)
	if marker == "" {
		return 0, false
	}
	for i, row := range rows {
		for _, cell := range row {
			if strings.Contains(normalizeHeader(cell), marker) {
				return i, true
			}
		}
	}
	return 0, false
}

// ResolveColumns assigns roles to header cells. When more than one column
// resolves to the same role, the right-most column is used.
func ResolveColumns(header []string) ColumnMap {
	columns := make(ColumnMap, len(columnRules))
	for idx, cell := range header {
		normalized := normalizeHeader(cell)
		if normalized == "" {
			continue
		}
		for _, rule := range columnRules {
			if rule.matches(normalized) {
				columns[rule.role] = idx
				break
			}
		}
	}
	return columns
}
