package model

import "testing"

func TestSetField(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
		ok    bool
		check func(*Item) bool
	}{
		{"string field", "vendor", "Harmony Home", true,
			func(i *Item) bool { return i.Vendor == "Harmony Home" }},
		{"date field", "expectedDelivery", "2025-03-10", true,
			func(i *Item) bool { return i.ExpectedDelivery == "2025-03-10" }},
		{"qty parses", "qty", "12", true,
			func(i *Item) bool { return i.Qty == 12 }},
		{"qty rejects text", "qty", "dozen", false, nil},
		{"price parses", "price", "149.99", true,
			func(i *Item) bool { return i.Price == 149.99 }},
		{"price rejects text", "price", "cheap", false, nil},
		{"unknown field", "warehouseCode", "A1", false, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var it Item
			if got := it.SetField(tc.field, tc.value); got != tc.ok {
				t.Fatalf("SetField(%q) = %v, want %v", tc.field, got, tc.ok)
			}
			if tc.check != nil && !tc.check(&it) {
				t.Errorf("value not applied: %+v", it)
			}
		})
	}
}

func TestDateField(t *testing.T) {
	it := Item{OrderedDate: "2025-01-05", DeliveredDate: "2025-02-01"}
	if got := it.DateField("orderedDate"); got != "2025-01-05" {
		t.Errorf("orderedDate = %q", got)
	}
	if got := it.DateField("vendor"); got != "" {
		t.Errorf("non-date field should read empty, got %q", got)
	}
}
