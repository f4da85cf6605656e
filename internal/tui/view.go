package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rhartono/fitout-tracker/internal/items/view"
	"github.com/rhartono/fitout-tracker/internal/model"
	"github.com/rhartono/fitout-tracker/internal/tracking"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.initialized {
		return m.spin.View() + " loading items..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Fit-Out Tracker"))
	b.WriteString("\n")
	b.WriteString(m.renderFilters())
	b.WriteString("\n\n")

	switch m.mode {
	case modeDetail:
		b.WriteString(m.renderDetail())
	case modeEditPick:
		b.WriteString(m.renderEditPick())
	case modeEditValue:
		b.WriteString(m.renderEditValue())
	case modeForm:
		b.WriteString(m.renderForm())
	case modeConfirmDelete:
		b.WriteString(m.renderConfirm())
	default:
		b.WriteString(m.renderTable())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

func (m Model) renderFilters() string {
	parts := []string{}
	if m.mode == modeSearch {
		parts = append(parts, "Search: "+m.search.View())
	} else if q := m.search.Value(); q != "" {
		parts = append(parts, filterStyle.Render("search: "+q))
	}
	if p := m.phaseFilter(); p != "" {
		parts = append(parts, filterStyle.Render("phase: "+p))
	}
	if v := m.vendorFilter(); v != "" {
		parts = append(parts, filterStyle.Render("vendor: "+v))
	}
	if n := m.uc.SelectedCount(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", n))
	}
	if len(parts) == 0 {
		return helpStyle.Render("all items")
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderTable() string {
	page := m.uc.PageItems()
	if len(page) == 0 {
		return helpStyle.Render("no items")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-3s %-10s %-28s %-20s %5s %-6s %10s",
		"", "Item#", "Name", "Vendor", "Qty", "Phase", "Unit $")))
	b.WriteString("\n")

	for i, it := range page {
		vm := view.Build(it)
		check := "[ ]"
		if m.uc.IsSelected(it.ID) {
			check = "[x]"
		}
		line := fmt.Sprintf("%s %-10s %-28s %-20s %5d %-6s %10s",
			check,
			truncate(vm.ItemNumber, 10),
			truncate(vm.ItemName, 28),
			truncate(vm.Vendor, 20),
			vm.Qty,
			truncate(vm.Phase, 6),
			view.Currency(vm.UnitPrice),
		)
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> ") + selectedRowStyle.Render(line))
		} else {
			b.WriteString("  " + rowStyle.Render(line))
		}
		if late := lateSummary(vm); late != "" {
			b.WriteString(" " + late)
		}
		b.WriteString("\n")
	}

	start, end, total := m.uc.PageBounds()
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("items %d-%d of %d  page %d/%d",
		start+1, end, total, m.uc.Page(), m.uc.TotalPages())))
	return b.String()
}

func (m Model) renderDetail() string {
	var it model.Item
	if m.detailItem != nil {
		it = *m.detailItem
	} else if cur, ok := m.currentItem(); ok {
		it = cur
	} else {
		return helpStyle.Render("no item")
	}
	vm := view.Build(it)

	row := func(label, value string) string {
		return labelStyle.Render(label) + value + "\n"
	}
	var b strings.Builder
	b.WriteString(row("Item#", vm.ItemNumber))
	b.WriteString(row("Spec #", vm.SpecNumber))
	b.WriteString(row("Name", vm.ItemName))
	b.WriteString(row("Vendor", vm.Vendor))
	b.WriteString(row("Phase", vm.Phase))
	b.WriteString(row("Qty", fmt.Sprintf("%d", vm.Qty)))
	b.WriteString(row("Price", view.Currency(vm.Price)))
	b.WriteString(row("Unit Price", fmt.Sprintf("%s (markup %d%%)", view.Currency(vm.UnitPrice), vm.Markup)))
	b.WriteString(row("Total", view.Currency(vm.TotalPrice)))
	b.WriteString(row("Ship To", vm.ShipTo))
	b.WriteString(row("Ship From", vm.ShipFrom))
	b.WriteString(row("Location", vm.Location))
	b.WriteString(row("Category", vm.Category))
	b.WriteString(row("Notes", vm.Notes))
	b.WriteString(row("Upload File", vm.UploadFile))
	b.WriteString("\n")
	b.WriteString(row("PO Approval", vm.POApprovalDate))
	b.WriteString(row("Hotel Need By", vm.HotelNeedByDate))
	b.WriteString(row("Expected Delivery", vm.ExpectedDelivery))
	b.WriteString(row("CFA/Shops Send", vm.CFAShopsSend))
	b.WriteString(row("CFA/Shops Approved", vm.CFAShopsApproved))
	b.WriteString(row("CFA/Shops Delivered", vm.CFAShopsDelivered))
	b.WriteString(row("Ordered", vm.OrderedDate))
	b.WriteString(row("Shipped", vm.ShippedDate))
	b.WriteString(row("Delivered", vm.DeliveredDate))
	b.WriteString("\n")
	b.WriteString(row("Planning", lateBadge(vm.Planning)))
	b.WriteString(row("Production", lateBadge(vm.Production)))
	b.WriteString(row("Shipping", lateBadge(vm.Shipping)))

	return paneStyle.Render(b.String())
}

func (m Model) renderEditPick() string {
	var b strings.Builder
	b.WriteString("Edit which field?\n\n")
	for i, f := range editableFields {
		if i == m.editFieldIdx {
			b.WriteString(cursorStyle.Render("> "+f) + "\n")
		} else {
			b.WriteString("  " + f + "\n")
		}
	}
	b.WriteString("\n" + helpStyle.Render("enter: edit  esc: cancel"))
	return b.String()
}

func (m Model) renderEditValue() string {
	field := editableFields[m.editFieldIdx]
	hint := ""
	if tracking.IsTrackingField(field) {
		hint = helpStyle.Render("  MM/DD/YYYY or YYYY-MM-DD")
	}
	return fmt.Sprintf("New value for %s:%s\n\n%s\n\n%s",
		field, hint, m.editInput.View(),
		helpStyle.Render("enter: save  esc: cancel"))
}

func (m Model) renderForm() string {
	f := m.activeForm
	var b strings.Builder
	b.WriteString(titleStyle.Render(f.title))
	b.WriteString("\n")
	for i, fld := range f.fields {
		marker := "  "
		if i == f.focus {
			marker = cursorStyle.Render("> ")
		}
		b.WriteString(marker + labelStyle.Render(fld.label) + fld.input.View() + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("tab: next  enter on last field: apply  esc: cancel  (empty fields are skipped)"))
	return b.String()
}

func (m Model) renderConfirm() string {
	return fmt.Sprintf("Delete %d selected item(s)? %s",
		m.uc.SelectedCount(),
		toastErrStyle.Render("y/n"))
}

func (m Model) renderStatus() string {
	var parts []string
	if m.loading {
		parts = append(parts, m.spin.View()+" loading")
	}
	if m.toast != "" {
		style := toastOKStyle
		if m.toastErr {
			style = toastErrStyle
		}
		parts = append(parts, style.Render(m.toast))
	}
	help := "/: search  f: phase  v: vendor  space: select  a/A: page select  e: edit  b: bulk edit  t: tracking  d: delete  x: export  q: quit"
	parts = append(parts, helpStyle.Render(help))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// lateBadge renders one stage's lateness for the detail pane.
func lateBadge(l tracking.Lateness) string {
	if !l.IsLate {
		return onTimeStyle.Render("on time")
	}
	return lateBadgeStyle.Render(fmt.Sprintf("Late by %d days", l.LateByDays))
}

// lateSummary marks a table row whose shipping stage is overdue.
func lateSummary(vm view.ViewModel) string {
	if vm.Shipping.IsLate {
		return lateBadgeStyle.Render(fmt.Sprintf("late %dd", vm.Shipping.LateByDays))
	}
	return ""
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
