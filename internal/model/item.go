package model

import "strconv"

// Item is the raw record as served by the backend. Lifecycle dates are
// kept in their wire form (canonical YYYY-MM-DD strings, empty when not
// set); display formatting is always derived, never stored.
type Item struct {
	ID                int64   `json:"id"`
	ItemNumber        string  `json:"itemNumber"`
	SpecNumber        string  `json:"specNumber"`
	ItemName          string  `json:"itemName"`
	Vendor            string  `json:"vendor"`
	ShipTo            string  `json:"shipTo"`
	ShipToAddress     string  `json:"shipToAddress,omitempty"`
	ShipFrom          string  `json:"shipFrom,omitempty"`
	Qty               int     `json:"qty"`
	Phase             string  `json:"phase"`
	Price             float64 `json:"price"`
	ShipNotes         string  `json:"shipNotes,omitempty"`
	Notes             string  `json:"notes,omitempty"`
	Location          string  `json:"location,omitempty"`
	Category          string  `json:"category,omitempty"`
	UploadFile        string  `json:"uploadFile,omitempty"`
	POApprovalDate    string  `json:"poApprovalDate,omitempty"`
	HotelNeedByDate   string  `json:"hotelNeedByDate,omitempty"`
	ExpectedDelivery  string  `json:"expectedDelivery,omitempty"`
	CFAShopsSend      string  `json:"cfaShopsSend,omitempty"`
	CFAShopsApproved  string  `json:"cfaShopsApproved,omitempty"`
	CFAShopsDelivered string  `json:"cfaShopsDelivered,omitempty"`
	OrderedDate       string  `json:"orderedDate,omitempty"`
	ShippedDate       string  `json:"shippedDate,omitempty"`
	DeliveredDate     string  `json:"deliveredDate,omitempty"`
	CreatedAt         string  `json:"createdAt,omitempty"`
	UpdatedAt         string  `json:"updatedAt,omitempty"`
}

// ItemsPage is the paginated list response of GET /items.
type ItemsPage struct {
	Items      []Item `json:"items"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"totalPages"`
}

// SetField assigns a value to the field identified by its wire name.
// Used for the optimistic local merge after a per-field save. Returns
// false when the name does not identify an editable field.
func (i *Item) SetField(name, value string) bool {
	switch name {
	case "itemNumber":
		i.ItemNumber = value
	case "specNumber":
		i.SpecNumber = value
	case "itemName":
		i.ItemName = value
	case "vendor":
		i.Vendor = value
	case "shipTo":
		i.ShipTo = value
	case "shipToAddress":
		i.ShipToAddress = value
	case "shipFrom":
		i.ShipFrom = value
	case "qty":
		n, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		i.Qty = n
	case "phase":
		i.Phase = value
	case "price":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return false
		}
		i.Price = f
	case "shipNotes":
		i.ShipNotes = value
	case "notes":
		i.Notes = value
	case "location":
		i.Location = value
	case "category":
		i.Category = value
	case "uploadFile":
		i.UploadFile = value
	case "poApprovalDate":
		i.POApprovalDate = value
	case "hotelNeedByDate":
		i.HotelNeedByDate = value
	case "expectedDelivery":
		i.ExpectedDelivery = value
	case "cfaShopsSend":
		i.CFAShopsSend = value
	case "cfaShopsApproved":
		i.CFAShopsApproved = value
	case "cfaShopsDelivered":
		i.CFAShopsDelivered = value
	case "orderedDate":
		i.OrderedDate = value
	case "shippedDate":
		i.ShippedDate = value
	case "deliveredDate":
		i.DeliveredDate = value
	default:
		return false
	}
	return true
}

// DateField returns the lifecycle date stored under the given wire name.
func (i *Item) DateField(name string) string {
	switch name {
	case "poApprovalDate":
		return i.POApprovalDate
	case "hotelNeedByDate":
		return i.HotelNeedByDate
	case "expectedDelivery":
		return i.ExpectedDelivery
	case "cfaShopsSend":
		return i.CFAShopsSend
	case "cfaShopsApproved":
		return i.CFAShopsApproved
	case "cfaShopsDelivered":
		return i.CFAShopsDelivered
	case "orderedDate":
		return i.OrderedDate
	case "shippedDate":
		return i.ShippedDate
	case "deliveredDate":
		return i.DeliveredDate
	}
	return ""
}
