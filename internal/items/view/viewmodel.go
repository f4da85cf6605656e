// Package view builds the display-ready projection of an item record:
// formatted dates, derived pricing and per-stage lateness. The
// projection is rebuilt on every render and never persisted.
package view

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rhartono/fitout-tracker/internal/model"
	"github.com/rhartono/fitout-tracker/internal/tracking"
)

// DefaultMarkupPercent is applied on top of the base price to derive
// the unit price. Fixed display default, no configuration surface.
const DefaultMarkupPercent = 20

// NoDateSentinel is shown for an absent lifecycle date; distinct from
// the empty string so the UI can tell "not set" from "not loaded".
const NoDateSentinel = "No date set"

// Display fallbacks for missing descriptive fields. They affect only
// the projection, never the persisted record.
const (
	fallbackNotes      = "Check fabric when modifying"
	fallbackLocation   = "Guest Room"
	fallbackCategory   = "Drapery"
	fallbackUploadFile = "BD-200 2ND FLO..."
	defaultUnit        = "each"
)

// ViewModel is the projection the detail pane renders.
type ViewModel struct {
	ItemNumber string
	SpecNumber string
	ItemName   string
	Vendor     string
	Phase      string

	ShipTo        string
	ShipToAddress string
	ShipFrom      string
	Notes         string
	Location      string
	Category      string
	UploadFile    string

	Qty        int
	Unit       string
	Markup     int
	Price      decimal.Decimal
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal

	POApprovalDate    string
	HotelNeedByDate   string
	ExpectedDelivery  string
	CFAShopsSend      string
	CFAShopsApproved  string
	CFAShopsDelivered string
	OrderedDate       string
	ShippedDate       string
	DeliveredDate     string

	Planning   tracking.Lateness
	Production tracking.Lateness
	Shipping   tracking.Lateness
}

// Build assembles the view model for one raw item. Pure: the same item
// always yields the same projection.
func Build(it model.Item) ViewModel {
	price := decimal.NewFromFloat(it.Price)
	markup := decimal.NewFromInt(DefaultMarkupPercent).
		Div(decimal.NewFromInt(100)).
		Add(decimal.NewFromInt(1))
	unitPrice := price.Mul(markup)

	totalPrice := decimal.Zero
	if it.Qty > 0 && it.Price > 0 {
		totalPrice = decimal.NewFromInt(int64(it.Qty)).Mul(unitPrice)
	}

	return ViewModel{
		ItemNumber: it.ItemNumber,
		SpecNumber: it.SpecNumber,
		ItemName:   it.ItemName,
		Vendor:     it.Vendor,
		Phase:      it.Phase,

		ShipTo:        it.ShipTo,
		ShipToAddress: it.ShipToAddress,
		ShipFrom:      fallback(it.ShipFrom, it.Vendor),
		Notes:         fallback(it.Notes, fallbackNotes),
		Location:      fallback(it.Location, fallbackLocation),
		Category:      fallback(it.Category, fallbackCategory),
		UploadFile:    fallback(it.UploadFile, fallbackUploadFile),

		Qty:        it.Qty,
		Unit:       defaultUnit,
		Markup:     DefaultMarkupPercent,
		Price:      price,
		UnitPrice:  unitPrice,
		TotalPrice: totalPrice,

		POApprovalDate:    displayDate(it.POApprovalDate),
		HotelNeedByDate:   displayDate(it.HotelNeedByDate),
		ExpectedDelivery:  displayDate(it.ExpectedDelivery),
		CFAShopsSend:      displayDate(it.CFAShopsSend),
		CFAShopsApproved:  displayDate(it.CFAShopsApproved),
		CFAShopsDelivered: displayDate(it.CFAShopsDelivered),
		OrderedDate:       displayDate(it.OrderedDate),
		ShippedDate:       displayDate(it.ShippedDate),
		DeliveredDate:     displayDate(it.DeliveredDate),

		Planning:   tracking.Evaluate(it.HotelNeedByDate, it.ExpectedDelivery),
		Production: tracking.Evaluate(it.CFAShopsApproved, it.CFAShopsDelivered),
		Shipping:   tracking.Evaluate(it.ExpectedDelivery, it.DeliveredDate),
	}
}

// DateOptions returns display-formatted dates for the next n days
// starting at now. UI affordance for date pickers.
func DateOptions(now time.Time, n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, now.AddDate(0, 0, i).Format(tracking.DisplayLayout))
	}
	return out
}

// Currency renders a decimal as a two-decimal currency string with
// thousands separators.
func Currency(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	whole, frac := s[:len(s)-3], s[len(s)-3:]
	var grouped []byte
	for i, c := range []byte(whole) {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, c)
	}
	out := "$" + string(grouped) + frac
	if neg {
		out = "-" + out
	}
	return out
}

func displayDate(canonical string) string {
	if canonical == "" {
		return NoDateSentinel
	}
	return tracking.ToDisplay(canonical)
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
