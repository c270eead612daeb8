package importer

import (
	"assetseed/asset"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

const isoDateLayout = "2006-01-02"

var (
	dateLayouts = []string{
		"2006-1-2",
		"2-1-2006",
		"2/1/2006",
		"2006-1-2 15:04:05",
	}

	isoDatePattern      = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`)
	poNumberPattern     = regexp.MustCompile(`(?i)Po\s*No[:\s]*(\d+)`)
	embeddedDatePattern = regexp.MustCompile(`(\d{1,2}[-/]\d{1,2}[-/]\d{4})`)
	currencyPrefixes    = []string{"rs.", "rs", "inr", "₹"}
	absentPlaceholders  = map[string]struct{}{
		"":    {},
		"nil": {},
		"na":  {},
		"n/a": {},
		"nan": {},
	}
)

// CleanText trims a cell and treats spreadsheet placeholders as absent.
func CleanText(raw string) (string, bool) {
	cleaned := strings.TrimSpace(norm.NFKC.String(raw))
	if _, placeholder := absentPlaceholders[strings.ToLower(cleaned)]; placeholder {
		return "", false
	}
	return cleaned, true
}

// ParseDate normalizes a date cell to YYYY-MM-DD.
func ParseDate(raw string) (string, bool) {
	value, ok := CleanText(raw)
	if !ok {
		return "", false
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.Format(isoDateLayout), true
		}
	}

	match := isoDatePattern.FindString(value)
	if match == "" {
		return "", false
	}
	if _, err := time.Parse(isoDateLayout, match); err != nil {
		return "", false
	}
	return match, true
}

// ParsePurchaseOrder splits a purchase-order cell into its order number and
// an embedded day-month-year date. Either part may be absent.
func ParsePurchaseOrder(raw string) (number string, hasNumber bool, date string, hasDate bool) {
	value, ok := CleanText(raw)
	if !ok {
		return "", false, "", false
	}

	number, hasNumber = value, true
	if match := poNumberPattern.FindStringSubmatch(value); match != nil {
		number = match[1]
	}

	if match := embeddedDatePattern.FindString(value); match != "" {
		if parsed, err := time.Parse("2-1-2006", strings.ReplaceAll(match, "/", "-")); err == nil {
			date, hasDate = parsed.Format(isoDateLayout), true
		}
	}

	return number, hasNumber, date, hasDate
}

// ParseQuantity returns a quantity in [asset.MinQuantity, asset.MaxQuantity].
// Narrative or corrupted cells fall back to 1.
func ParseQuantity(raw string) int {
	value, ok := CleanText(raw)
	if !ok {
		return asset.MinQuantity
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || !(parsed > 0 && parsed < asset.MaxQuantity+1) {
		return asset.MinQuantity
	}

	quantity := int(parsed)
	if quantity < asset.MinQuantity {
		return asset.MinQuantity
	}
	return quantity
}

// ParseAmount reads a monetary cell, tolerating thousands separators and a
// rupee prefix.
func ParseAmount(raw string) (float64, bool) {
	value, ok := CleanText(raw)
	if !ok {
		return 0, false
	}

	lowered := strings.ToLower(value)
	for _, prefix := range currencyPrefixes {
		if strings.HasPrefix(lowered, prefix) {
			value = strings.TrimSpace(value[len(prefix):])
			break
		}
	}
	value = strings.ReplaceAll(value, ",", "")
	value = strings.ReplaceAll(value, " ", "")

	amount, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, false
	}
	return amount, true
}

// ClassifyStatus maps free-text condition notes to an asset status.
func ClassifyStatus(raw string) asset.Status {
	value, ok := CleanText(raw)
	if !ok {
		return asset.StatusWorking
	}

	lowered := strings.ToLower(value)
	switch {
	case strings.Contains(lowered, "obsolete"):
		return asset.StatusObsolete
	case strings.Contains(lowered, "not"):
		return asset.StatusNotWorking
	default:
		return asset.StatusWorking
	}
}
