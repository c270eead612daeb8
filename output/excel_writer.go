package output

import (
	"assetseed/asset"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const excelSheetName = "Assets"

type ExcelWriter struct{}

func (w *ExcelWriter) Write(path string, records []asset.Record) error {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName(file.GetSheetName(0), excelSheetName); err != nil {
		return fmt.Errorf("rename excel sheet: %w", err)
	}

	headerStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create excel header style: %w", err)
	}

	for col, header := range asset.FieldNames() {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(excelSheetName, cell, header); err != nil {
			return fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(asset.FieldNames()), 1)
	if err := file.SetCellStyle(excelSheetName, "A1", lastHeader, headerStyle); err != nil {
		return fmt.Errorf("style excel header: %w", err)
	}

	for i, record := range records {
		row := i + 2
		for col, value := range excelValues(record) {
			if value == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := file.SetCellValue(excelSheetName, cell, value); err != nil {
				return fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	if err := file.SetPanes(excelSheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze excel header: %w", err)
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}

	return nil
}

// excelValues keeps numbers typed; nil leaves the cell empty.
func excelValues(record asset.Record) []any {
	values := []any{
		string(record.AssetType),
		record.Name,
		record.Quantity,
		record.BranchID,
		nil, nil, nil, nil, nil, nil, nil, nil,
		string(record.CurrentStatus),
		nil,
	}
	optional := map[int]*string{
		4:  record.Location,
		5:  record.SerialNumber,
		6:  record.AMSBarcode,
		7:  record.SupplierName,
		8:  record.PONumber,
		9:  record.PODate,
		10: record.InvoiceDate,
		13: record.Remarks,
	}
	for idx, value := range optional {
		if value != nil {
			values[idx] = *value
		}
	}
	if record.PurchaseValue != nil {
		values[11] = *record.PurchaseValue
	}
	return values
}
