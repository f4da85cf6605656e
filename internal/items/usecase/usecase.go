package usecase

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/rhartono/fitout-tracker/internal/export"
	"github.com/rhartono/fitout-tracker/internal/items"
	"github.com/rhartono/fitout-tracker/internal/items/dto"
	"github.com/rhartono/fitout-tracker/internal/logger"
	"github.com/rhartono/fitout-tracker/internal/model"
	"github.com/rhartono/fitout-tracker/internal/tracking"
)

// fetchLimit: the list is fetched in one window and paginated locally,
// matching the dashboard's client-side paging.
const fetchLimit = 1000

type itemUseCase struct {
	repo   items.Repository
	logger logger.ZapLogger

	// Query and cache state. Single control thread, no locking.
	search string
	phase  string
	vendor string

	cached      []model.Item
	page        int
	rowsPerPage int
	selected    map[int64]struct{}
}

func NewItemUseCase(repo items.Repository, rowsPerPage int, log logger.ZapLogger) items.UseCase {
	if rowsPerPage <= 0 {
		rowsPerPage = 5
	}
	return &itemUseCase{
		repo:        repo,
		logger:      log,
		phase:       dto.FilterAll,
		vendor:      dto.FilterAll,
		page:        1,
		rowsPerPage: rowsPerPage,
		selected:    make(map[int64]struct{}),
	}
}

// --- Network I/O ---

func (uc *itemUseCase) List(ctx context.Context, filters *dto.ListFilters) (*model.ItemsPage, error) {
	return uc.repo.List(ctx, filters)
}

func (uc *itemUseCase) Get(ctx context.Context, id int64) (*model.Item, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *itemUseCase) SaveField(ctx context.Context, id int64, field, value string) (string, error) {
	var (
		stored string
		err    error
	)
	switch {
	case tracking.IsTrackingField(field):
		// A cleared date converts to ""; the repository drops empty
		// values from the payload, so clearing only takes effect
		// locally (source behavior).
		stored, _ = tracking.ToCanonical(value)
		_, err = uc.repo.UpdateTracking(ctx, []int64{id}, map[string]string{field: stored})
	case field == tracking.FieldShipNotes:
		stored = strings.TrimSpace(value)
		_, err = uc.repo.UpdateTracking(ctx, []int64{id}, map[string]string{tracking.WireShippingNotes: stored})
	default:
		stored = value
		_, err = uc.repo.Update(ctx, id, map[string]any{field: value})
	}
	if err != nil {
		uc.logger.Error("failed to save field",
			zap.Int64("item_id", id),
			zap.String("field", field),
			zap.Error(err))
		return "", err
	}
	return stored, nil
}

func (uc *itemUseCase) BulkEdit(ctx context.Context, ids []int64, in *dto.BulkEditInput) (int, error) {
	n, err := uc.repo.BulkEdit(ctx, ids, in)
	if err != nil {
		uc.logger.Error("bulk edit failed", zap.Int("count", len(ids)), zap.Error(err))
		return 0, err
	}
	return n, nil
}

func (uc *itemUseCase) BulkUpdateTracking(ctx context.Context, ids []int64, in *dto.TrackingInput) (int, error) {
	n, err := uc.repo.UpdateTracking(ctx, ids, in.Fields())
	if err != nil {
		uc.logger.Error("bulk tracking update failed", zap.Int("count", len(ids)), zap.Error(err))
		return 0, err
	}
	return n, nil
}

func (uc *itemUseCase) BulkDelete(ctx context.Context, ids []int64) (int, error) {
	n, err := uc.repo.BulkDelete(ctx, ids)
	if err != nil {
		uc.logger.Error("bulk delete failed", zap.Int("count", len(ids)), zap.Error(err))
		return 0, err
	}
	return n, nil
}

func (uc *itemUseCase) Fetch(ctx context.Context) ([]model.Item, error) {
	page, err := uc.List(ctx, uc.Query())
	if err != nil {
		return nil, err
	}
	uc.SetItems(page.Items)
	return page.Items, nil
}

// --- Query state ---

func (uc *itemUseCase) Query() *dto.ListFilters {
	return &dto.ListFilters{
		Search: uc.search,
		Phase:  uc.phase,
		Vendor: uc.vendor,
		Page:   1,
		Limit:  fetchLimit,
	}
}

func (uc *itemUseCase) SetSearch(q string) {
	uc.search = q
	uc.page = 1
}

func (uc *itemUseCase) SetPhase(p string) {
	if p == "" {
		p = dto.FilterAll
	}
	uc.phase = p
	uc.page = 1
}

func (uc *itemUseCase) SetVendor(v string) {
	if v == "" {
		v = dto.FilterAll
	}
	uc.vendor = v
	uc.page = 1
}

// --- Cached list ---

func (uc *itemUseCase) Items() []model.Item {
	return uc.cached
}

// SetItems replaces the whole cached list. Whichever fetch resolves
// last wins; out-of-order resolution is accepted.
func (uc *itemUseCase) SetItems(list []model.Item) {
	uc.cached = list
	if uc.page > uc.TotalPages() {
		uc.page = uc.TotalPages()
	}
}

func (uc *itemUseCase) ApplyFieldSaved(id int64, field, value string) bool {
	for i := range uc.cached {
		if uc.cached[i].ID == id {
			return uc.cached[i].SetField(field, value)
		}
	}
	return false
}

func (uc *itemUseCase) Phases() []string {
	return uc.distinct(func(it *model.Item) string { return it.Phase })
}

func (uc *itemUseCase) Vendors() []string {
	return uc.distinct(func(it *model.Item) string { return it.Vendor })
}

func (uc *itemUseCase) distinct(key func(*model.Item) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for i := range uc.cached {
		k := key(&uc.cached[i])
		if k == "" {
			continue
		}
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// --- Pagination window ---

func (uc *itemUseCase) SetRowsPerPage(n int) {
	if n <= 0 {
		return
	}
	uc.rowsPerPage = n
	uc.page = 1
}

func (uc *itemUseCase) RowsPerPage() int {
	return uc.rowsPerPage
}

func (uc *itemUseCase) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	if total := uc.TotalPages(); n > total {
		n = total
	}
	uc.page = n
}

func (uc *itemUseCase) Page() int {
	return uc.page
}

func (uc *itemUseCase) TotalPages() int {
	pages := (len(uc.cached) + uc.rowsPerPage - 1) / uc.rowsPerPage
	if pages < 1 {
		return 1
	}
	return pages
}

func (uc *itemUseCase) PageItems() []model.Item {
	start, end, _ := uc.PageBounds()
	return uc.cached[start:end]
}

// PageBounds returns the half-open [start, end) window of the current
// page and the total item count.
func (uc *itemUseCase) PageBounds() (int, int, int) {
	total := len(uc.cached)
	start := (uc.page - 1) * uc.rowsPerPage
	if start > total {
		start = total
	}
	end := start + uc.rowsPerPage
	if end > total {
		end = total
	}
	return start, end, total
}

// --- Multi-select ---

func (uc *itemUseCase) ToggleSelect(id int64) {
	if _, ok := uc.selected[id]; ok {
		delete(uc.selected, id)
	} else {
		uc.selected[id] = struct{}{}
	}
}

// SetPageSelected adds or removes the current page's items; selections
// on other pages are untouched.
func (uc *itemUseCase) SetPageSelected(selected bool) {
	for _, it := range uc.PageItems() {
		if selected {
			uc.selected[it.ID] = struct{}{}
		} else {
			delete(uc.selected, it.ID)
		}
	}
}

func (uc *itemUseCase) IsSelected(id int64) bool {
	_, ok := uc.selected[id]
	return ok
}

func (uc *itemUseCase) SelectedIDs() []int64 {
	out := make([]int64, 0, len(uc.selected))
	for id := range uc.selected {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (uc *itemUseCase) SelectedCount() int {
	return len(uc.selected)
}

func (uc *itemUseCase) ClearSelection() {
	uc.selected = make(map[int64]struct{})
}

// --- Export ---

func (uc *itemUseCase) ExportCSV() string {
	return export.ItemsCSV(uc.cached)
}
