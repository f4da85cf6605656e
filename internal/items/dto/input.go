package dto

import (
	"strings"

	"github.com/rhartono/fitout-tracker/internal/tracking"
)

// BulkEditInput is the POST /items/bulk-edit body minus the id list.
// Empty fields are left out of the request.
type BulkEditInput struct {
	Location string
	Category string
	ShipFrom string
	Notes    string
}

// Fields returns the non-empty bulk-edit fields keyed by wire name.
func (in *BulkEditInput) Fields() map[string]string {
	out := make(map[string]string)
	set := func(key, val string) {
		if v := strings.TrimSpace(val); v != "" {
			out[key] = v
		}
	}
	set("location", in.Location)
	set("category", in.Category)
	set("shipFrom", in.ShipFrom)
	set("notes", in.Notes)
	return out
}

// TrackingInput is the POST /items/update-tracking body minus the id
// list. Dates may be in display or canonical form; conversion to the
// canonical wire form happens in the repository.
type TrackingInput struct {
	POApprovalDate    string
	HotelNeedByDate   string
	ExpectedDelivery  string
	CFAShopsSend      string
	CFAShopsApproved  string
	CFAShopsDelivered string
	OrderedDate       string
	ShippedDate       string
	DeliveredDate     string
	ShippingNotes     string
}

// Fields returns the non-empty tracking fields keyed by wire name. Note
// the shipping-notes wire key differs from the item record's local
// shipNotes name.
func (in *TrackingInput) Fields() map[string]string {
	out := make(map[string]string)
	set := func(key, val string) {
		if v := strings.TrimSpace(val); v != "" {
			out[key] = v
		}
	}
	set("poApprovalDate", in.POApprovalDate)
	set("hotelNeedByDate", in.HotelNeedByDate)
	set("expectedDelivery", in.ExpectedDelivery)
	set("cfaShopsSend", in.CFAShopsSend)
	set("cfaShopsApproved", in.CFAShopsApproved)
	set("cfaShopsDelivered", in.CFAShopsDelivered)
	set("orderedDate", in.OrderedDate)
	set("shippedDate", in.ShippedDate)
	set("deliveredDate", in.DeliveredDate)
	set(tracking.WireShippingNotes, in.ShippingNotes)
	return out
}
