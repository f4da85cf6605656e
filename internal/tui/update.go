package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/rhartono/fitout-tracker/internal/items/dto"
	"github.com/rhartono/fitout-tracker/internal/model"
	"github.com/rhartono/fitout-tracker/internal/tracking"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case itemsLoadedMsg:
		m.loading = false
		m.initialized = true
		if msg.err != nil {
			m.logger.Error("list fetch failed", zap.Error(msg.err))
			return m.showError(msg.err.Error())
		}
		m.uc.SetItems(msg.items)
		m.clampCursor()
		return m, nil

	case fieldSavedMsg:
		if msg.err != nil {
			return m.showError("failed to update " + msg.field + ": " + msg.err.Error())
		}
		m.uc.ApplyFieldSaved(msg.id, msg.field, msg.stored)
		if m.detailItem != nil && m.detailItem.ID == msg.id {
			m.detailItem.SetField(msg.field, msg.stored)
		}
		// Refresh the list in the background; the merged row shows
		// until the fetch lands. Fire-and-forget, no loading state.
		next, cmd := m.showToast("saved " + msg.field)
		return next, tea.Batch(cmd, fetchItems(next.uc, next.uc.Query()))

	case itemLoadedMsg:
		if msg.err != nil {
			m.logger.Debug("item fetch failed, keeping cached row", zap.Error(msg.err))
			return m, nil
		}
		if m.mode == modeDetail && msg.item != nil &&
			m.detailItem != nil && m.detailItem.ID == msg.item.ID {
			m.detailItem = msg.item
		}
		return m, nil

	case bulkDoneMsg:
		if msg.err != nil {
			return m.showError(msg.action + " failed: " + msg.err.Error())
		}
		m.uc.ClearSelection()
		m.loading = true
		next, cmd := m.showToast(fmt.Sprintf("%s applied to %d item(s)", msg.action, msg.count))
		return next, tea.Batch(cmd, fetchItems(m.uc, m.uc.Query()), m.spin.Tick)

	case exportDoneMsg:
		if msg.err != nil {
			return m.showError("export failed: " + msg.err.Error())
		}
		return m.showToast("exported to " + msg.path)

	case debounceMsg:
		if msg.seq != m.searchSeq {
			return m, nil
		}
		m.uc.SetSearch(m.search.Value())
		m.loading = true
		return m, tea.Batch(fetchItems(m.uc, m.uc.Query()), m.spin.Tick)

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	switch m.mode {
	case modeSearch:
		return m.handleSearchKey(msg)
	case modeDetail:
		return m.handleDetailKey(msg)
	case modeEditPick:
		return m.handleEditPickKey(msg)
	case modeEditValue:
		return m.handleEditValueKey(msg)
	case modeForm:
		return m.handleFormKey(msg)
	case modeConfirmDelete:
		return m.handleConfirmKey(msg)
	}
	return m.handleBrowseKey(msg)
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "/":
		m.mode = modeSearch
		m.search.Focus()
		return m, textinput.Blink

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.uc.PageItems())-1 {
			m.cursor++
		}
		return m, nil

	case "left", "h":
		m.uc.SetPage(m.uc.Page() - 1)
		m.clampCursor()
		return m, nil

	case "right", "l":
		m.uc.SetPage(m.uc.Page() + 1)
		m.clampCursor()
		return m, nil

	case " ":
		if it, ok := m.currentItem(); ok {
			m.uc.ToggleSelect(it.ID)
		}
		return m, nil

	case "a":
		m.uc.SetPageSelected(true)
		return m, nil

	case "A":
		m.uc.SetPageSelected(false)
		return m, nil

	case "c":
		m.uc.ClearSelection()
		return m, nil

	case "f":
		m.phaseIdx = (m.phaseIdx + 1) % (len(m.uc.Phases()) + 1)
		m.uc.SetPhase(m.phaseFilter())
		m.loading = true
		return m, tea.Batch(fetchItems(m.uc, m.uc.Query()), m.spin.Tick)

	case "v":
		m.vendorIdx = (m.vendorIdx + 1) % (len(m.uc.Vendors()) + 1)
		m.uc.SetVendor(m.vendorFilter())
		m.loading = true
		return m, tea.Batch(fetchItems(m.uc, m.uc.Query()), m.spin.Tick)

	case "r":
		m.loading = true
		return m, tea.Batch(fetchItems(m.uc, m.uc.Query()), m.spin.Tick)

	case "enter":
		if it, ok := m.currentItem(); ok {
			m.mode = modeDetail
			m.detailItem = &it
			return m, fetchItem(m.uc, it.ID)
		}
		return m, nil

	case "e":
		if it, ok := m.currentItem(); ok {
			m.mode = modeEditPick
			m.editItemID = it.ID
			m.editFieldIdx = 0
		}
		return m, nil

	case "b":
		if m.uc.SelectedCount() == 0 {
			return m.showError("no items selected")
		}
		m.activeForm = m.newBulkEditForm()
		m.mode = modeForm
		return m, textinput.Blink

	case "t":
		if m.uc.SelectedCount() == 0 {
			return m.showError("no items selected")
		}
		m.activeForm = m.newTrackingForm()
		m.mode = modeForm
		return m, textinput.Blink

	case "d":
		if m.uc.SelectedCount() == 0 {
			return m.showError("no items selected")
		}
		m.mode = modeConfirmDelete
		return m, nil

	case "x":
		return m, exportCSV(m.uc.ExportCSV(), m.exportPath)
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.search.Blur()
		return m, nil
	case "enter":
		m.mode = modeBrowse
		m.search.Blur()
		m.searchSeq++ // invalidate pending debounce ticks
		m.uc.SetSearch(m.search.Value())
		m.loading = true
		return m, tea.Batch(fetchItems(m.uc, m.uc.Query()), m.spin.Tick)
	}
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.searchSeq++
		cmd = tea.Batch(cmd, debounceTick(m.searchSeq, m.debounce))
	}
	return m, cmd
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.mode = modeBrowse
		m.detailItem = nil
	case "e":
		if it, ok := m.currentItem(); ok {
			m.mode = modeEditPick
			m.editItemID = it.ID
			m.editFieldIdx = 0
		}
	}
	return m, nil
}

func (m Model) handleEditPickKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		return m, nil
	case "up", "k":
		if m.editFieldIdx > 0 {
			m.editFieldIdx--
		}
		return m, nil
	case "down", "j":
		if m.editFieldIdx < len(editableFields)-1 {
			m.editFieldIdx++
		}
		return m, nil
	case "enter":
		it, ok := m.itemByID(m.editItemID)
		if !ok {
			m.mode = modeBrowse
			return m, nil
		}
		field := editableFields[m.editFieldIdx]
		input := textinput.New()
		input.CharLimit = 200
		input.Width = 40
		input.SetValue(fieldValue(it, field))
		input.Focus()
		m.editInput = input
		m.mode = modeEditValue
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) handleEditValueKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		return m, nil
	case "enter":
		field := editableFields[m.editFieldIdx]
		m.mode = modeBrowse
		return m, saveField(m.uc, m.editItemID, field, m.editInput.Value())
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.activeForm
	switch msg.String() {
	case "esc":
		m.activeForm = nil
		m.mode = modeBrowse
		return m, nil
	case "tab", "down":
		f.setFocus((f.focus + 1) % len(f.fields))
		return m, textinput.Blink
	case "shift+tab", "up":
		f.setFocus((f.focus - 1 + len(f.fields)) % len(f.fields))
		return m, textinput.Blink
	case "enter":
		if f.focus < len(f.fields)-1 {
			f.setFocus(f.focus + 1)
			return m, textinput.Blink
		}
		values := make(map[string]string, len(f.fields))
		for _, fld := range f.fields {
			values[fld.key] = fld.input.Value()
		}
		cmd := f.submit(values)
		m.activeForm = nil
		m.mode = modeBrowse
		return m, cmd
	}
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		ids := m.uc.SelectedIDs()
		m.mode = modeBrowse
		return m, bulkDelete(m.uc, ids)
	case "n", "N", "esc":
		m.mode = modeBrowse
	}
	return m, nil
}

func (f *form) setFocus(i int) {
	f.fields[f.focus].input.Blur()
	f.focus = i
	f.fields[f.focus].input.Focus()
}

func (m *Model) newBulkEditForm() *form {
	f := &form{title: fmt.Sprintf("Bulk edit %d item(s)", m.uc.SelectedCount())}
	for _, def := range []struct{ label, key string }{
		{"Location", "location"},
		{"Category", "category"},
		{"Ship From", "shipFrom"},
		{"Notes", "notes"},
	} {
		f.fields = append(f.fields, newFormField(def.label, def.key))
	}
	f.fields[0].input.Focus()
	uc := m.uc
	f.submit = func(values map[string]string) tea.Cmd {
		in := &dto.BulkEditInput{
			Location: values["location"],
			Category: values["category"],
			ShipFrom: values["shipFrom"],
			Notes:    values["notes"],
		}
		return bulkEdit(uc, uc.SelectedIDs(), in)
	}
	return f
}

func (m *Model) newTrackingForm() *form {
	f := &form{title: fmt.Sprintf("Update tracking for %d item(s)", m.uc.SelectedCount())}
	labels := map[string]string{
		"poApprovalDate":    "PO Approval",
		"hotelNeedByDate":   "Hotel Need By",
		"expectedDelivery":  "Expected Delivery",
		"cfaShopsSend":      "CFA/Shops Send",
		"cfaShopsApproved":  "CFA/Shops Approved",
		"cfaShopsDelivered": "CFA/Shops Delivered",
		"orderedDate":       "Ordered",
		"shippedDate":       "Shipped",
		"deliveredDate":     "Delivered",
	}
	for _, key := range tracking.DateFields() {
		f.fields = append(f.fields, newFormField(labels[key], key))
	}
	f.fields = append(f.fields, newFormField("Shipping Notes", "shippingNotes"))
	f.fields[0].input.Focus()
	uc := m.uc
	f.submit = func(values map[string]string) tea.Cmd {
		in := &dto.TrackingInput{
			POApprovalDate:    values["poApprovalDate"],
			HotelNeedByDate:   values["hotelNeedByDate"],
			ExpectedDelivery:  values["expectedDelivery"],
			CFAShopsSend:      values["cfaShopsSend"],
			CFAShopsApproved:  values["cfaShopsApproved"],
			CFAShopsDelivered: values["cfaShopsDelivered"],
			OrderedDate:       values["orderedDate"],
			ShippedDate:       values["shippedDate"],
			DeliveredDate:     values["deliveredDate"],
			ShippingNotes:     values["shippingNotes"],
		}
		return bulkTracking(uc, uc.SelectedIDs(), in)
	}
	return f
}

func newFormField(label, key string) formField {
	in := textinput.New()
	in.CharLimit = 200
	in.Width = 32
	return formField{label: label, key: key, input: in}
}

func (m *Model) clampCursor() {
	if n := len(m.uc.PageItems()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) currentItem() (model.Item, bool) {
	page := m.uc.PageItems()
	if m.cursor < 0 || m.cursor >= len(page) {
		return model.Item{}, false
	}
	return page[m.cursor], true
}

func (m Model) itemByID(id int64) (model.Item, bool) {
	for _, it := range m.uc.Items() {
		if it.ID == id {
			return it, true
		}
	}
	return model.Item{}, false
}

func (m Model) showToast(text string) (Model, tea.Cmd) {
	m.toast = text
	m.toastErr = false
	m.toastSeq++
	return m, toastTick(m.toastSeq)
}

func (m Model) showError(text string) (Model, tea.Cmd) {
	m.toast = text
	m.toastErr = true
	m.toastSeq++
	return m, toastTick(m.toastSeq)
}

// fieldValue reads the current value of an editable field for prefill.
// Dates come back in display form.
func fieldValue(it model.Item, name string) string {
	if tracking.IsTrackingField(name) {
		return tracking.ToDisplay(it.DateField(name))
	}
	switch name {
	case "itemName":
		return it.ItemName
	case "vendor":
		return it.Vendor
	case "qty":
		return strconv.Itoa(it.Qty)
	case "phase":
		return it.Phase
	case "price":
		return strconv.FormatFloat(it.Price, 'f', -1, 64)
	case "shipTo":
		return it.ShipTo
	case "shipToAddress":
		return it.ShipToAddress
	case "shipFrom":
		return it.ShipFrom
	case "shipNotes":
		return it.ShipNotes
	case "notes":
		return it.Notes
	case "location":
		return it.Location
	case "category":
		return it.Category
	}
	return ""
}
