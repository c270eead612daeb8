package asset

import (
	"fmt"
	"strings"
)

const (
	MinQuantity     = 1
	MaxQuantity     = 9999
	DefaultBranchID = 1
)

// Type is the asset category derived from the sheet a row was read from.
type Type string

const (
	TypeHSDC         Type = "HSDC"
	TypeComputer     Type = "COMPUTER"
	TypeElectrical   Type = "ELECTRICAL"
	TypeOffice       Type = "OFFICE"
	TypeFurniture    Type = "FURNITURE"
	TypeFireFighting Type = "FIREFIGHTING"
	TypeBuilding     Type = "BUILDING"
	TypeOther        Type = "OTHER"
)

func SupportedTypes() []Type {
	return []Type{
		TypeHSDC,
		TypeComputer,
		TypeElectrical,
		TypeOffice,
		TypeFurniture,
		TypeFireFighting,
		TypeBuilding,
		TypeOther,
	}
}

func ParseType(value string) (Type, error) {
	normalized := Type(strings.ToUpper(strings.TrimSpace(value)))
	for _, t := range SupportedTypes() {
		if t == normalized {
			return t, nil
		}
	}
	return "", fmt.Errorf("unsupported asset type: %s", value)
}

type Status string

const (
	StatusWorking    Status = "Working"
	StatusNotWorking Status = "Not Working"
	StatusObsolete   Status = "Obsolete"
)

// Record is one normalized inventory row as written to the seed file.
// Optional values are nil when the source cell was empty or unusable.
type Record struct {
	AssetType     Type     `json:"asset_type"`
	Name          string   `json:"name"`
	Quantity      int      `json:"quantity"`
	BranchID      int      `json:"branch_id"`
	Location      *string  `json:"location"`
	SerialNumber  *string  `json:"serial_number"`
	AMSBarcode    *string  `json:"ams_barcode"`
	SupplierName  *string  `json:"supplier_name"`
	PONumber      *string  `json:"po_number"`
	PODate        *string  `json:"po_date"`
	InvoiceDate   *string  `json:"invoice_date"`
	PurchaseValue *float64 `json:"purchase_value"`
	CurrentStatus Status   `json:"current_status"`
	Remarks       *string  `json:"remarks"`
}

// FieldNames lists the serialized field names in output order.
func FieldNames() []string {
	return []string{
		"asset_type",
		"name",
		"quantity",
		"branch_id",
		"location",
		"serial_number",
		"ams_barcode",
		"supplier_name",
		"po_number",
		"po_date",
		"invoice_date",
		"purchase_value",
		"current_status",
		"remarks",
	}
}
