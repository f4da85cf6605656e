package view

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rhartono/fitout-tracker/internal/model"
)

func TestBuildPricing(t *testing.T) {
	vm := Build(model.Item{Price: 100, Qty: 3})

	if got := vm.UnitPrice.StringFixed(2); got != "120.00" {
		t.Errorf("UnitPrice = %s, want 120.00", got)
	}
	if got := vm.TotalPrice.StringFixed(2); got != "360.00" {
		t.Errorf("TotalPrice = %s, want 360.00", got)
	}
	if vm.Markup != 20 {
		t.Errorf("Markup = %d, want 20", vm.Markup)
	}
}

func TestBuildTotalZeroWhenQtyOrPriceAbsent(t *testing.T) {
	for _, it := range []model.Item{{Price: 100}, {Qty: 3}, {}} {
		vm := Build(it)
		if !vm.TotalPrice.IsZero() {
			t.Errorf("TotalPrice for %+v = %s, want 0", it, vm.TotalPrice)
		}
	}
}

func TestBuildDates(t *testing.T) {
	vm := Build(model.Item{
		POApprovalDate:   "2025-01-10",
		ExpectedDelivery: "2025-02-01",
	})

	if vm.POApprovalDate != "01/10/2025" {
		t.Errorf("POApprovalDate = %q", vm.POApprovalDate)
	}
	if vm.ExpectedDelivery != "02/01/2025" {
		t.Errorf("ExpectedDelivery = %q", vm.ExpectedDelivery)
	}
	for _, got := range []string{vm.HotelNeedByDate, vm.CFAShopsSend, vm.DeliveredDate} {
		if got != NoDateSentinel {
			t.Errorf("absent date = %q, want %q", got, NoDateSentinel)
		}
	}
}

func TestBuildLateness(t *testing.T) {
	vm := Build(model.Item{
		HotelNeedByDate:   "2025-01-10",
		ExpectedDelivery:  "2025-01-12",
		CFAShopsApproved:  "2025-03-01",
		CFAShopsDelivered: "2025-03-01",
		DeliveredDate:     "2025-01-11",
	})

	if !vm.Planning.IsLate || vm.Planning.LateByDays != 2 {
		t.Errorf("Planning = %+v, want late by 2", vm.Planning)
	}
	if vm.Production.IsLate {
		t.Errorf("Production = %+v, want on time", vm.Production)
	}
	// Shipping compares delivered against expected delivery.
	if vm.Shipping.IsLate {
		t.Errorf("Shipping = %+v, want not late (1 day early)", vm.Shipping)
	}
}

func TestBuildFallbacks(t *testing.T) {
	vm := Build(model.Item{Vendor: "Harmony Home"})

	if vm.ShipFrom != "Harmony Home" {
		t.Errorf("ShipFrom = %q, want vendor fallback", vm.ShipFrom)
	}
	if vm.Notes != "Check fabric when modifying" {
		t.Errorf("Notes = %q", vm.Notes)
	}
	if vm.Location != "Guest Room" || vm.Category != "Drapery" {
		t.Errorf("Location/Category = %q/%q", vm.Location, vm.Category)
	}

	// Provided values win over fallbacks.
	vm = Build(model.Item{Vendor: "V", ShipFrom: "Warehouse 9", Location: "Lobby"})
	if vm.ShipFrom != "Warehouse 9" || vm.Location != "Lobby" {
		t.Errorf("fallbacks overrode provided values: %q/%q", vm.ShipFrom, vm.Location)
	}
}

func TestBuildPure(t *testing.T) {
	it := model.Item{
		ItemNumber:       "BD-1",
		Vendor:           "V",
		Qty:              2,
		Price:            50,
		HotelNeedByDate:  "2025-01-10",
		ExpectedDelivery: "2025-01-15",
	}
	if !reflect.DeepEqual(Build(it), Build(it)) {
		t.Error("Build is not deterministic for identical input")
	}
}

func TestDateOptions(t *testing.T) {
	now := time.Date(2025, 11, 12, 15, 30, 0, 0, time.UTC)
	opts := DateOptions(now, 3)
	want := []string{"11/12/2025", "11/13/2025", "11/14/2025"}
	if !reflect.DeepEqual(opts, want) {
		t.Errorf("DateOptions = %v, want %v", opts, want)
	}
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"2400", "$2,400.00"},
		{"1234567.891", "$1,234,567.89"},
		{"-55.5", "-$55.50"},
	}
	for _, tt := range tests {
		d, _ := decimal.NewFromString(tt.in)
		if got := Currency(d); got != tt.want {
			t.Errorf("Currency(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
