// Package export renders the loaded item list as the dashboard's CSV
// download. Pure transform, no I/O.
package export

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rhartono/fitout-tracker/internal/model"
	"github.com/rhartono/fitout-tracker/internal/tracking"
)

// Header is the fixed column set of the export file.
var Header = []string{
	"Item#", "Spec #", "Item Name", "Vendor", "Qty", "Phase", "Price",
	"Ship To", "Ship To Address", "Ship From", "Ship Notes",
	"PO Approval Date", "Hotel Need by Date", "Expected Delivery",
	"CFA/Shops Send", "CFA/Shops Approved", "CFA/Shops Delivered",
	"Ordered Date", "Shipped Date", "Delivered Date",
	"Location", "Category", "Notes", "Upload File",
}

// ItemsCSV renders one row per item under the fixed header. Every field
// is double-quoted with internal quotes doubled; dates are in display
// form and prices as two-decimal currency strings.
func ItemsCSV(list []model.Item) string {
	rows := make([][]string, 0, len(list)+1)
	rows = append(rows, Header)
	for i := range list {
		rows = append(rows, itemRow(&list[i]))
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		quoted := make([]string, len(row))
		for j, cell := range row {
			quoted[j] = `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
		}
		lines[i] = strings.Join(quoted, ",")
	}
	return strings.Join(lines, "\n")
}

func itemRow(it *model.Item) []string {
	return []string{
		it.ItemNumber,
		it.SpecNumber,
		it.ItemName,
		it.Vendor,
		strconv.Itoa(it.Qty),
		it.Phase,
		"$" + decimal.NewFromFloat(it.Price).StringFixed(2),
		it.ShipTo,
		it.ShipToAddress,
		it.ShipFrom,
		it.ShipNotes,
		tracking.ToDisplay(it.POApprovalDate),
		tracking.ToDisplay(it.HotelNeedByDate),
		tracking.ToDisplay(it.ExpectedDelivery),
		tracking.ToDisplay(it.CFAShopsSend),
		tracking.ToDisplay(it.CFAShopsApproved),
		tracking.ToDisplay(it.CFAShopsDelivered),
		tracking.ToDisplay(it.OrderedDate),
		tracking.ToDisplay(it.ShippedDate),
		tracking.ToDisplay(it.DeliveredDate),
		it.Location,
		it.Category,
		it.Notes,
		it.UploadFile,
	}
}
