package tracking

// Wire field names for the shipping-notes rename: the item record and
// the UI know the field as shipNotes, but the update-tracking endpoint
// expects shippingNotes.
const (
	FieldShipNotes    = "shipNotes"
	WireShippingNotes = "shippingNotes"
)

// dateFields is the closed set of lifecycle date fields persisted
// through the update-tracking endpoint rather than the generic item
// update. Order matters for display and payload assembly.
var dateFields = []string{
	"poApprovalDate",
	"hotelNeedByDate",
	"expectedDelivery",
	"cfaShopsSend",
	"cfaShopsApproved",
	"cfaShopsDelivered",
	"orderedDate",
	"shippedDate",
	"deliveredDate",
}

var dateFieldSet = func() map[string]struct{} {
	s := make(map[string]struct{}, len(dateFields))
	for _, f := range dateFields {
		s[f] = struct{}{}
	}
	return s
}()

// IsTrackingField reports whether the named field is one of the nine
// lifecycle dates.
func IsTrackingField(name string) bool {
	_, ok := dateFieldSet[name]
	return ok
}

// DateFields returns the lifecycle date field names in display order.
func DateFields() []string {
	out := make([]string, len(dateFields))
	copy(out, dateFields)
	return out
}
