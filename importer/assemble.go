package importer

import (
	"assetseed/asset"
	"fmt"
	"strings"
)

// SheetSpec describes how rows of one sheet are tagged.
type SheetSpec struct {
	Name      string
	AssetType asset.Type
	BranchID  int
}

// AssembleRow builds the record for one data row. The boolean is false when
// the row carries no equipment name or is a total line.
func AssembleRow(spec SheetSpec, columns ColumnMap, row Row) (asset.Record, bool) {
	name, ok := CleanText(row.Get(columns, RoleName))
	if !ok || strings.EqualFold(name, "total") {
		return asset.Record{}, false
	}

	branchID := spec.BranchID
	if branchID <= 0 {
		branchID = asset.DefaultBranchID
	}

	record := asset.Record{
		AssetType:     spec.AssetType,
		Name:          name,
		Quantity:      asset.MinQuantity,
		BranchID:      branchID,
		Location:      optionalText(row.Get(columns, RoleLocation)),
		SerialNumber:  optionalText(row.Get(columns, RoleSerialNumber)),
		AMSBarcode:    optionalText(row.Get(columns, RoleBarcode)),
		SupplierName:  optionalText(row.Get(columns, RoleSupplier)),
		CurrentStatus: ClassifyStatus(row.Get(columns, RoleStatus)),
		Remarks:       optionalText(row.Get(columns, RoleRemarks)),
	}

	if columns.Has(RoleQuantity) {
		record.Quantity = ParseQuantity(row.Get(columns, RoleQuantity))
	}

	number, hasNumber, poDate, hasPODate := ParsePurchaseOrder(row.Get(columns, RolePurchaseOrder))
	if hasNumber {
		record.PONumber = &number
	}
	if hasPODate {
		record.PODate = &poDate
	}

	if invoiceDate, ok := ParseDate(row.Get(columns, RoleInvoice)); ok {
		record.InvoiceDate = &invoiceDate
	}

	if amount, ok := ParseAmount(row.Get(columns, RolePurchaseValue)); ok {
		record.PurchaseValue = &amount
	}

	return record, true
}

type assembleFunc func(spec SheetSpec, columns ColumnMap, row Row) (asset.Record, bool)

// assembleRowSafe contains a failure to one row: a panic while assembling is
// turned into an error carrying the sheet and row number.
func assembleRowSafe(assemble assembleFunc, spec SheetSpec, columns ColumnMap, row Row) (record asset.Record, ok bool, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			record, ok = asset.Record{}, false
			err = fmt.Errorf("sheet %s row %d: %v", row.Sheet, row.Number, recovered)
		}
	}()

	record, ok = assemble(spec, columns, row)
	return record, ok, nil
}

func optionalText(raw string) *string {
	value, ok := CleanText(raw)
	if !ok {
		return nil
	}
	return &value
}
