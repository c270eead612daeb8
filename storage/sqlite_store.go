package storage

import (
	"assetseed/asset"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore holds extracted asset records in a standalone SQLite seed file.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS assets (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	asset_type TEXT NOT NULL CHECK(asset_type IN ('HSDC','COMPUTER','ELECTRICAL','OFFICE','FURNITURE','FIREFIGHTING','BUILDING','OTHER')),
	name TEXT NOT NULL CHECK(name <> ''),
	quantity INTEGER NOT NULL CHECK(quantity BETWEEN 1 AND 9999),
	branch_id INTEGER NOT NULL,
	location TEXT,
	serial_number TEXT,
	ams_barcode TEXT,
	supplier_name TEXT,
	po_number TEXT,
	po_date TEXT,
	invoice_date TEXT,
	purchase_value REAL,
	current_status TEXT NOT NULL CHECK(current_status IN ('Working','Not Working','Obsolete')),
	remarks TEXT
);
CREATE INDEX IF NOT EXISTS idx_assets_asset_type ON assets(asset_type);
CREATE INDEX IF NOT EXISTS idx_assets_current_status ON assets(current_status);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// InsertAssets stores records in one transaction, preserving their order in
// the id sequence.
func (s *SQLiteStore) InsertAssets(records []asset.Record) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}

	const insertStmt = `
INSERT INTO assets (
	asset_type,
	name,
	quantity,
	branch_id,
	location,
	serial_number,
	ams_barcode,
	supplier_name,
	po_number,
	po_date,
	invoice_date,
	purchase_value,
	current_status,
	remarks
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	stmt, err := tx.Prepare(insertStmt)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("prepare insert statement: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, record := range records {
		if _, err := stmt.Exec(
			string(record.AssetType),
			record.Name,
			record.Quantity,
			record.BranchID,
			nullString(record.Location),
			nullString(record.SerialNumber),
			nullString(record.AMSBarcode),
			nullString(record.SupplierName),
			nullString(record.PONumber),
			nullString(record.PODate),
			nullString(record.InvoiceDate),
			nullFloat(record.PurchaseValue),
			string(record.CurrentStatus),
			nullString(record.Remarks),
		); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("insert asset %q: %w", record.Name, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	return inserted, nil
}

func (s *SQLiteStore) ListAssets() ([]asset.Record, error) {
	const query = `
SELECT
	asset_type,
	name,
	quantity,
	branch_id,
	location,
	serial_number,
	ams_barcode,
	supplier_name,
	po_number,
	po_date,
	invoice_date,
	purchase_value,
	current_status,
	remarks
FROM assets
ORDER BY id;
`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query assets: %w", err)
	}
	defer rows.Close()

	records := make([]asset.Record, 0, 256)
	for rows.Next() {
		var (
			record        asset.Record
			assetType     string
			status        string
			location      sql.NullString
			serialNumber  sql.NullString
			amsBarcode    sql.NullString
			supplierName  sql.NullString
			poNumber      sql.NullString
			poDate        sql.NullString
			invoiceDate   sql.NullString
			purchaseValue sql.NullFloat64
			remarks       sql.NullString
		)

		if err := rows.Scan(
			&assetType,
			&record.Name,
			&record.Quantity,
			&record.BranchID,
			&location,
			&serialNumber,
			&amsBarcode,
			&supplierName,
			&poNumber,
			&poDate,
			&invoiceDate,
			&purchaseValue,
			&status,
			&remarks,
		); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}

		record.AssetType = asset.Type(assetType)
		record.CurrentStatus = asset.Status(status)
		record.Location = stringPtr(location)
		record.SerialNumber = stringPtr(serialNumber)
		record.AMSBarcode = stringPtr(amsBarcode)
		record.SupplierName = stringPtr(supplierName)
		record.PONumber = stringPtr(poNumber)
		record.PODate = stringPtr(poDate)
		record.InvoiceDate = stringPtr(invoiceDate)
		record.Remarks = stringPtr(remarks)
		if purchaseValue.Valid {
			value := purchaseValue.Float64
			record.PurchaseValue = &value
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assets: %w", err)
	}

	return records, nil
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func nullFloat(value *float64) sql.NullFloat64 {
	if value == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *value, Valid: true}
}

func stringPtr(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	v := value.String
	return &v
}
