package items

import (
	"context"

	"github.com/rhartono/fitout-tracker/internal/items/dto"
	"github.com/rhartono/fitout-tracker/internal/model"
)

// Repository is the backend REST contract for items. All bodies are
// JSON; mutating calls return the backend's view of the result.
type Repository interface {
	List(ctx context.Context, filters *dto.ListFilters) (*model.ItemsPage, error)
	FindByID(ctx context.Context, id int64) (*model.Item, error)
	Create(ctx context.Context, fields map[string]any) (*model.Item, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*model.Item, error)
	Delete(ctx context.Context, id int64) error

	// UpdateTracking persists lifecycle dates and shipping notes for the
	// given ids. Values are raw field input; dates are converted to the
	// canonical wire form, empty values are dropped.
	UpdateTracking(ctx context.Context, ids []int64, fields map[string]string) (int, error)

	BulkEdit(ctx context.Context, ids []int64, in *dto.BulkEditInput) (int, error)
	BulkDelete(ctx context.Context, ids []int64) (int, error)
}
