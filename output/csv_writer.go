package output

import (
	"assetseed/asset"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

type CSVWriter struct{}

func (w *CSVWriter) Write(path string, records []asset.Record) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(asset.FieldNames()); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, record := range records {
		if err := writer.Write(recordValues(record)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}

// recordValues flattens a record in asset.FieldNames order; absent values
// become empty strings.
func recordValues(record asset.Record) []string {
	return []string{
		string(record.AssetType),
		record.Name,
		strconv.Itoa(record.Quantity),
		strconv.Itoa(record.BranchID),
		deref(record.Location),
		deref(record.SerialNumber),
		deref(record.AMSBarcode),
		deref(record.SupplierName),
		deref(record.PONumber),
		deref(record.PODate),
		deref(record.InvoiceDate),
		formatAmount(record.PurchaseValue),
		string(record.CurrentStatus),
		deref(record.Remarks),
	}
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func formatAmount(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}
