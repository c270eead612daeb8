package output

import (
	"assetseed/asset"
	"fmt"
	"io"
	"sort"
)

type TypeTotal struct {
	AssetType asset.Type
	Records   int
	Quantity  int
}

type Summary struct {
	Records       int
	TotalQuantity int
	ByType        []TypeTotal
}

// BuildSummary sums quantity per asset type, sorted by type name.
func BuildSummary(records []asset.Record) Summary {
	summary := Summary{Records: len(records), ByType: []TypeTotal{}}

	byType := make(map[asset.Type]*TypeTotal)
	for _, record := range records {
		summary.TotalQuantity += record.Quantity

		total, ok := byType[record.AssetType]
		if !ok {
			total = &TypeTotal{AssetType: record.AssetType}
			byType[record.AssetType] = total
		}
		total.Records++
		total.Quantity += record.Quantity
	}

	for _, total := range byType {
		summary.ByType = append(summary.ByType, *total)
	}
	sort.Slice(summary.ByType, func(i, j int) bool {
		return summary.ByType[i].AssetType < summary.ByType[j].AssetType
	})

	return summary
}

// PrintSummary writes the totals block shown at the end of a run.
func PrintSummary(w io.Writer, summary Summary) {
	fmt.Fprintf(w, "Parsed %d asset entries\n", summary.Records)
	fmt.Fprintf(w, "Total quantity: %d\n", summary.TotalQuantity)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Breakdown by type:")
	for _, total := range summary.ByType {
		fmt.Fprintf(w, "  %s: %d\n", total.AssetType, total.Quantity)
	}
}

// PrintSample dumps one record the way it appears in the seed file.
func PrintSample(w io.Writer, record asset.Record) error {
	fmt.Fprintln(w, "Sample asset:")
	return EncodeJSON(w, []asset.Record{record})
}
