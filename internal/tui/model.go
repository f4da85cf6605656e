package tui

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rhartono/fitout-tracker/internal/items"
	"github.com/rhartono/fitout-tracker/internal/logger"
	"github.com/rhartono/fitout-tracker/internal/model"
)

// uiMode identifies which surface owns the keyboard.
type uiMode int

const (
	modeBrowse uiMode = iota
	modeSearch
	modeDetail
	modeEditPick  // choosing which field to edit
	modeEditValue // typing the new value
	modeForm      // bulk edit or tracking form
	modeConfirmDelete
)

// editableFields are the per-row fields offered by the inline editor,
// in wire-name form. Dates accept MM/DD/YYYY or YYYY-MM-DD.
var editableFields = []string{
	"itemName", "vendor", "qty", "phase", "price",
	"shipTo", "shipToAddress", "shipFrom", "shipNotes",
	"notes", "location", "category",
	"poApprovalDate", "hotelNeedByDate", "expectedDelivery",
	"cfaShopsSend", "cfaShopsApproved", "cfaShopsDelivered",
	"orderedDate", "shippedDate", "deliveredDate",
}

// formField is one labeled input of the bulk-edit or tracking form.
type formField struct {
	label string
	key   string
	input textinput.Model
}

// form is a vertical stack of inputs with a submit handler.
type form struct {
	title  string
	fields []formField
	focus  int
	submit func(values map[string]string) tea.Cmd
}

// Model is the dashboard's bubbletea model. All state mutation happens
// on the Update loop; commands only perform IO and report back.
type Model struct {
	uc     items.UseCase
	logger logger.ZapLogger

	mode     uiMode
	width    int
	height   int
	cursor   int // row index within the current page
	quitting bool

	search      textinput.Model
	searchSeq   int
	debounce    time.Duration
	phaseIdx    int // 0 = all, then 1..len(phases)
	vendorIdx   int
	loading     bool
	spin        spinner.Model
	initialized bool

	editFieldIdx int
	editInput    textinput.Model
	editItemID   int64

	// detailItem is the row shown by the detail pane: the cached row at
	// first, replaced by the backend's copy when the item fetch lands.
	detailItem *model.Item

	activeForm *form

	toast    string
	toastErr bool
	toastSeq int

	exportPath string
}

// New builds the dashboard model around an item controller.
func New(uc items.UseCase, debounce time.Duration, exportPath string, log logger.ZapLogger) Model {
	search := textinput.New()
	search.Placeholder = "search items"
	search.CharLimit = 120
	search.Width = 32

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = cursorStyle

	return Model{
		uc:         uc,
		logger:     log,
		search:     search,
		debounce:   debounce,
		spin:       sp,
		exportPath: exportPath,
		loading:    true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		fetchItems(m.uc, m.uc.Query()),
		m.spin.Tick,
	)
}

// phaseFilter resolves the cycling index against the distinct phases of
// the cached list. Index zero means no filter.
func (m Model) phaseFilter() string {
	phases := m.uc.Phases()
	if m.phaseIdx <= 0 || m.phaseIdx > len(phases) {
		return ""
	}
	return phases[m.phaseIdx-1]
}

func (m Model) vendorFilter() string {
	vendors := m.uc.Vendors()
	if m.vendorIdx <= 0 || m.vendorIdx > len(vendors) {
		return ""
	}
	return vendors[m.vendorIdx-1]
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
