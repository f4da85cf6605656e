package export

import (
	"strings"
	"testing"

	"github.com/rhartono/fitout-tracker/internal/model"
)

func TestItemsCSVEmpty(t *testing.T) {
	got := ItemsCSV(nil)
	if strings.Count(got, "\n") != 0 {
		t.Fatalf("empty export should be a single header line, got %q", got)
	}
	if !strings.HasPrefix(got, `"Item#","Spec #"`) {
		t.Errorf("unexpected header start: %q", got)
	}
	if len(strings.Split(got, ",")) != len(Header) {
		t.Errorf("header has %d columns, want %d", len(strings.Split(got, ",")), len(Header))
	}
}

func TestItemsCSVRow(t *testing.T) {
	items := []model.Item{{
		ID:               1,
		ItemNumber:       "BD-200",
		SpecNumber:       "SP-01",
		ItemName:         `Drapery "Sheer"`,
		Vendor:           "Harmony Home",
		ShipTo:           "Hotel Aurora",
		Qty:              3,
		Phase:            "2",
		Price:            1999.5,
		POApprovalDate:   "2025-01-10",
		ExpectedDelivery: "2025-02-01",
	}}

	got := ItemsCSV(items)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}

	row := lines[1]
	checks := []string{
		`"BD-200"`,
		`"Drapery ""Sheer"""`, // internal quotes doubled
		`"$1999.50"`,
		`"01/10/2025"`,
		`"02/01/2025"`,
		`"3"`,
	}
	for _, want := range checks {
		if !strings.Contains(row, want) {
			t.Errorf("row missing %s: %s", want, row)
		}
	}

	if n := len(strings.Split(row, `","`)); n != len(Header) {
		t.Errorf("row has %d columns, want %d", n, len(Header))
	}
}

func TestItemsCSVAbsentDatesEmpty(t *testing.T) {
	got := ItemsCSV([]model.Item{{ID: 2, ItemNumber: "X-1"}})
	row := strings.Split(got, "\n")[1]
	// Absent dates export as empty cells, not a sentinel.
	if strings.Contains(row, "No date set") {
		t.Errorf("export must not contain the display sentinel: %s", row)
	}
	if !strings.Contains(row, `"$0.00"`) {
		t.Errorf("absent price should render as $0.00: %s", row)
	}
}
