package tracking

import "testing"

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		target string
		actual string
		want   Lateness
	}{
		{"both absent", "", "", Lateness{}},
		{"target absent", "", "2025-01-10", Lateness{}},
		{"actual absent", "2025-01-10", "", Lateness{}},
		{"same day", "2025-01-10", "2025-01-10", Lateness{}},
		{"two days late", "2025-01-10", "2025-01-12", Lateness{IsLate: true, LateByDays: 2}},
		{"early", "2025-01-12", "2025-01-10", Lateness{}},
		{"one day late", "2025-01-10", "2025-01-11", Lateness{IsLate: true, LateByDays: 1}},
		{"late across month boundary", "2025-01-30", "2025-02-02", Lateness{IsLate: true, LateByDays: 3}},
		{"display form target", "01/10/2025", "2025-01-12", Lateness{IsLate: true, LateByDays: 2}},
		{"display form both", "01/10/2025", "01/12/2025", Lateness{IsLate: true, LateByDays: 2}},
		{"time of day stripped", "2025-01-10T23:00:00Z", "2025-01-10T01:00:00Z", Lateness{}},
		{"timestamp one day late", "2025-01-10T01:00:00Z", "2025-01-11T23:59:00Z", Lateness{IsLate: true, LateByDays: 1}},
		{"malformed target", "whenever", "2025-01-10", Lateness{}},
		{"malformed actual", "2025-01-10", "later", Lateness{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.target, tt.actual); got != tt.want {
				t.Errorf("Evaluate(%q, %q) = %+v, want %+v", tt.target, tt.actual, got, tt.want)
			}
		})
	}
}

func TestIsTrackingField(t *testing.T) {
	for _, f := range DateFields() {
		if !IsTrackingField(f) {
			t.Errorf("IsTrackingField(%q) = false, want true", f)
		}
	}
	for _, f := range []string{"shipFrom", "vendor", "notes", "shipNotes", "shippingNotes", ""} {
		if IsTrackingField(f) {
			t.Errorf("IsTrackingField(%q) = true, want false", f)
		}
	}
}

func TestDateFieldsCopy(t *testing.T) {
	fields := DateFields()
	if len(fields) != 9 {
		t.Fatalf("DateFields() returned %d fields, want 9", len(fields))
	}
	fields[0] = "mutated"
	if DateFields()[0] != "poApprovalDate" {
		t.Error("DateFields() must return a copy")
	}
}
