package items

import (
	"context"

	"github.com/rhartono/fitout-tracker/internal/items/dto"
	"github.com/rhartono/fitout-tracker/internal/model"
)

// UseCase is the item collection controller: it owns the cached item
// list, the active query, the pagination window and the multi-select
// set, and routes per-field edits to the correct persistence path.
//
// The controller is single-threaded by design: state methods must only
// be called from the owning event loop. The context-taking calls do
// network I/O and touch no controller state, so an event loop may run
// them in the background against a snapshot (Query, SelectedIDs) taken
// up front and apply the result afterwards (SetItems, ApplyFieldSaved,
// ClearSelection).
type UseCase interface {
	// Network I/O, stateless.
	List(ctx context.Context, filters *dto.ListFilters) (*model.ItemsPage, error)
	Get(ctx context.Context, id int64) (*model.Item, error)
	// SaveField routes a single-field edit: lifecycle dates and the
	// shipNotes field go through the tracking-update call (the latter
	// under the shippingNotes wire key), everything else through the
	// generic item update. Returns the value as persisted (dates in
	// canonical form), for the optimistic local merge.
	SaveField(ctx context.Context, id int64, field, value string) (string, error)
	BulkEdit(ctx context.Context, ids []int64, in *dto.BulkEditInput) (int, error)
	BulkUpdateTracking(ctx context.Context, ids []int64, in *dto.TrackingInput) (int, error)
	BulkDelete(ctx context.Context, ids []int64) (int, error)

	// Fetch runs List with the current query and replaces the cached
	// list. Convenience for synchronous callers (CLI); the TUI issues
	// List and SetItems separately.
	Fetch(ctx context.Context) ([]model.Item, error)

	// Query state.
	Query() *dto.ListFilters
	SetSearch(q string)
	SetPhase(p string)
	SetVendor(v string)

	// Cached list.
	Items() []model.Item
	SetItems(items []model.Item)
	ApplyFieldSaved(id int64, field, value string) bool
	Phases() []string
	Vendors() []string

	// Pagination window over the cached list. Never refetches.
	SetRowsPerPage(n int)
	RowsPerPage() int
	SetPage(n int)
	Page() int
	TotalPages() int
	PageItems() []model.Item
	PageBounds() (start, end, total int)

	// Multi-select.
	ToggleSelect(id int64)
	SetPageSelected(selected bool)
	IsSelected(id int64) bool
	SelectedIDs() []int64
	SelectedCount() int
	ClearSelection()

	// ExportCSV renders the cached list as the export file contents.
	// No network I/O.
	ExportCSV() string
}
