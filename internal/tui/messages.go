package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rhartono/fitout-tracker/internal/items"
	"github.com/rhartono/fitout-tracker/internal/items/dto"
	"github.com/rhartono/fitout-tracker/internal/model"
)

// itemsLoadedMsg carries a resolved list fetch. Whichever fetch lands
// last overwrites the cache (last-resolved-wins).
type itemsLoadedMsg struct {
	items []model.Item
	err   error
}

// itemLoadedMsg carries a single-item refresh for the detail pane. On
// error the pane keeps showing the cached row.
type itemLoadedMsg struct {
	item *model.Item
	err  error
}

// fieldSavedMsg reports a single-field save; stored is the value as the
// backend received it, merged locally on success.
type fieldSavedMsg struct {
	id     int64
	field  string
	stored string
	err    error
}

// bulkDoneMsg reports a bulk edit, tracking update, or delete.
type bulkDoneMsg struct {
	action string
	count  int
	err    error
}

// exportDoneMsg reports a CSV write.
type exportDoneMsg struct {
	path string
	err  error
}

// debounceMsg fires after the search debounce interval; stale sequences
// are dropped so only the latest keystroke triggers a fetch.
type debounceMsg struct {
	seq int
}

// toastExpiredMsg clears the status line.
type toastExpiredMsg struct {
	seq int
}

const opTimeout = 30 * time.Second

func fetchItems(uc items.UseCase, filters *dto.ListFilters) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		page, err := uc.List(ctx, filters)
		if err != nil {
			return itemsLoadedMsg{err: err}
		}
		return itemsLoadedMsg{items: page.Items}
	}
}

func fetchItem(uc items.UseCase, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		it, err := uc.Get(ctx, id)
		return itemLoadedMsg{item: it, err: err}
	}
}

func saveField(uc items.UseCase, id int64, field, value string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		stored, err := uc.SaveField(ctx, id, field, value)
		return fieldSavedMsg{id: id, field: field, stored: stored, err: err}
	}
}

func bulkEdit(uc items.UseCase, ids []int64, in *dto.BulkEditInput) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		n, err := uc.BulkEdit(ctx, ids, in)
		return bulkDoneMsg{action: "edit", count: n, err: err}
	}
}

func bulkTracking(uc items.UseCase, ids []int64, in *dto.TrackingInput) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		n, err := uc.BulkUpdateTracking(ctx, ids, in)
		return bulkDoneMsg{action: "tracking", count: n, err: err}
	}
}

func bulkDelete(uc items.UseCase, ids []int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		n, err := uc.BulkDelete(ctx, ids)
		return bulkDoneMsg{action: "delete", count: n, err: err}
	}
}

func exportCSV(content, path string) tea.Cmd {
	return func() tea.Msg {
		err := writeFile(path, content)
		return exportDoneMsg{path: path, err: err}
	}
}

func debounceTick(seq int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

func toastTick(seq int) tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}
