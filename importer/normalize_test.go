package importer

import (
	"assetseed/asset"
	"regexp"
	"testing"
)

func TestCleanText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "trims", input: "  Room 101 ", want: "Room 101", wantOK: true},
		{name: "empty", input: "", wantOK: false},
		{name: "spaces only", input: "   ", wantOK: false},
		{name: "nil", input: "Nil", wantOK: false},
		{name: "na", input: "NA", wantOK: false},
		{name: "n/a", input: " n/a ", wantOK: false},
		{name: "nan", input: "NaN", wantOK: false},
		{name: "non breaking space", input: "\u00a0UPS\u00a0", want: "UPS", wantOK: true},
		{name: "keeps non ascii", input: "Café stand", want: "Café stand", wantOK: true},
		{name: "na inside text", input: "Nashik", want: "Nashik", wantOK: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := CleanText(tc.input)
			if ok != tc.wantOK {
				t.Fatalf("unexpected ok for %q: want %v, got %v", tc.input, tc.wantOK, ok)
			}
			if got != tc.want {
				t.Fatalf("unexpected value for %q: want %q, got %q", tc.input, tc.want, got)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "iso", input: "2020-06-05", want: "2020-06-05", wantOK: true},
		{name: "day month year dash", input: "05-06-2020", want: "2020-06-05", wantOK: true},
		{name: "day month year slash", input: "05/06/2020", want: "2020-06-05", wantOK: true},
		{name: "iso with time", input: "2002-09-02 00:00:00", want: "2002-09-02", wantOK: true},
		{name: "single digit day month dash", input: "5-6-2020", want: "2020-06-05", wantOK: true},
		{name: "single digit day month slash", input: "5/6/2020", want: "2020-06-05", wantOK: true},
		{name: "single digit iso", input: "2020-6-5", want: "2020-06-05", wantOK: true},
		{name: "mixed digits", input: "15-6-2020", want: "2020-06-15", wantOK: true},
		{name: "embedded iso", input: "Inv 77 dt 2019-11-30", want: "2019-11-30", wantOK: true},
		{name: "embedded invalid iso", input: "ref 2019-13-45", wantOK: false},
		{name: "empty", input: "", wantOK: false},
		{name: "placeholder", input: "NA", wantOK: false},
		{name: "text", input: "not available", wantOK: false},
		{name: "impossible day", input: "31-02-2020", wantOK: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseDate(tc.input)
			if ok != tc.wantOK {
				t.Fatalf("unexpected ok for %q: want %v, got %v", tc.input, tc.wantOK, ok)
			}
			if got != tc.want {
				t.Fatalf("unexpected date for %q: want %q, got %q", tc.input, tc.want, got)
			}
		})
	}
}

func TestParsePurchaseOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		wantNumber string
		wantHasNum bool
		wantDate   string
		wantHasDt  bool
	}{
		{name: "number and date", input: "Po No: 1234 dated 05-06-2020", wantNumber: "1234", wantHasNum: true, wantDate: "2020-06-05", wantHasDt: true},
		{name: "case insensitive no colon", input: "PO NO 998 dt. 01/12/2015", wantNumber: "998", wantHasNum: true, wantDate: "2015-12-01", wantHasDt: true},
		{name: "number only", input: "Po No:45", wantNumber: "45", wantHasNum: true},
		{name: "single digit date", input: "Po No: 310 dt 5/6/2020", wantNumber: "310", wantHasNum: true, wantDate: "2020-06-05", wantHasDt: true},
		{name: "free text passes through", input: " STPI/HYD/2019/11 ", wantNumber: "STPI/HYD/2019/11", wantHasNum: true},
		{name: "free text with date", input: "Order ref 12-03-2018", wantNumber: "Order ref 12-03-2018", wantHasNum: true, wantDate: "2018-03-12", wantHasDt: true},
		{name: "invalid embedded date", input: "Po No: 7 dated 45-13-2020", wantNumber: "7", wantHasNum: true},
		{name: "empty", input: ""},
		{name: "placeholder", input: "nil"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			number, hasNumber, date, hasDate := ParsePurchaseOrder(tc.input)
			if number != tc.wantNumber || hasNumber != tc.wantHasNum {
				t.Fatalf("unexpected number for %q: want (%q,%v), got (%q,%v)", tc.input, tc.wantNumber, tc.wantHasNum, number, hasNumber)
			}
			if date != tc.wantDate || hasDate != tc.wantHasDt {
				t.Fatalf("unexpected date for %q: want (%q,%v), got (%q,%v)", tc.input, tc.wantDate, tc.wantHasDt, date, hasDate)
			}
		})
	}
}

func TestParseQuantity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "integer", input: "12", want: 12},
		{name: "float truncates", input: "3.7", want: 3},
		{name: "empty", input: "", want: 1},
		{name: "zero", input: "0", want: 1},
		{name: "negative", input: "-4", want: 1},
		{name: "upper bound", input: "9999", want: 9999},
		{name: "above bound", input: "10000", want: 1},
		{name: "just below bound", input: "9999.9", want: 9999},
		{name: "fraction below one", input: "0.5", want: 1},
		{name: "narrative", input: "as per list", want: 1},
		{name: "nan", input: "NaN", want: 1},
		{name: "inf", input: "Inf", want: 1},
		{name: "padded", input: " 4 ", want: 4},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ParseQuantity(tc.input)
			if got != tc.want {
				t.Fatalf("unexpected quantity for %q: want %d, got %d", tc.input, tc.want, got)
			}
			if got < asset.MinQuantity || got > asset.MaxQuantity {
				t.Fatalf("quantity %d out of range for %q", got, tc.input)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		want   float64
		wantOK bool
	}{
		{name: "plain", input: "45000", want: 45000, wantOK: true},
		{name: "decimal", input: "1234.50", want: 1234.5, wantOK: true},
		{name: "indian grouping", input: "1,23,456.00", want: 123456, wantOK: true},
		{name: "rupee prefix", input: "Rs. 5,000", want: 5000, wantOK: true},
		{name: "rupee symbol", input: "₹750", want: 750, wantOK: true},
		{name: "empty", input: "", wantOK: false},
		{name: "text", input: "included in AMC", wantOK: false},
		{name: "nan", input: "nan", wantOK: false},
		{name: "infinity", input: "+Inf", wantOK: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseAmount(tc.input)
			if ok != tc.wantOK {
				t.Fatalf("unexpected ok for %q: want %v, got %v", tc.input, tc.wantOK, ok)
			}
			if got != tc.want {
				t.Fatalf("unexpected amount for %q: want %v, got %v", tc.input, tc.want, got)
			}
		})
	}
}

func TestClassifyStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  asset.Status
	}{
		{input: "Obsolete", want: asset.StatusObsolete},
		{input: "not working / obsolete", want: asset.StatusObsolete},
		{input: "NOT WORKING", want: asset.StatusNotWorking},
		{input: "Not in use", want: asset.StatusNotWorking},
		{input: "Working", want: asset.StatusWorking},
		{input: "good condition", want: asset.StatusWorking},
		{input: "", want: asset.StatusWorking},
		{input: "NA", want: asset.StatusWorking},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			if got := ClassifyStatus(tc.input); got != tc.want {
				t.Fatalf("unexpected status for %q: want %q, got %q", tc.input, tc.want, got)
			}
		})
	}
}

func TestParseDate_OutputAlwaysISO(t *testing.T) {
	t.Parallel()

	iso := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	inputs := []string{"2020-06-05", "05-06-2020", "05/06/2020", "2002-09-02 00:00:00", "x 2011-01-31 y", "garbage", "1/1/20", "5-6-2020", "2020-6-5"}
	for _, input := range inputs {
		if got, ok := ParseDate(input); ok && !iso.MatchString(got) {
			t.Fatalf("date for %q is not YYYY-MM-DD: %q", input, got)
		}
	}
}
