package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rhartono/fitout-tracker/internal/items"
	"github.com/rhartono/fitout-tracker/internal/items/dto"
	"github.com/rhartono/fitout-tracker/internal/logger"
	"github.com/rhartono/fitout-tracker/internal/model"
	"github.com/rhartono/fitout-tracker/internal/tracking"
)

// RESTRepository talks to the items backend over its HTTP/JSON
// contract. No retries and no timeout beyond the client's own.
type RESTRepository struct {
	baseURL string
	client  *http.Client
	logger  logger.ZapLogger
}

func NewRESTRepository(baseURL string, timeout time.Duration, log logger.ZapLogger) *RESTRepository {
	return &RESTRepository{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  log,
	}
}

func (r *RESTRepository) List(ctx context.Context, filters *dto.ListFilters) (*model.ItemsPage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(filters.Page))
	params.Set("limit", strconv.Itoa(filters.Limit))
	if filters.Search != "" {
		params.Set("search", filters.Search)
	}
	if filters.HasPhase() {
		params.Set("phase", filters.Phase)
	}
	if filters.HasVendor() {
		params.Set("vendor", filters.Vendor)
	}

	var page model.ItemsPage
	if err := r.do(ctx, http.MethodGet, "/items?"+params.Encode(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *RESTRepository) FindByID(ctx context.Context, id int64) (*model.Item, error) {
	var item model.Item
	if err := r.do(ctx, http.MethodGet, fmt.Sprintf("/items/%d", id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *RESTRepository) Create(ctx context.Context, fields map[string]any) (*model.Item, error) {
	var item model.Item
	if err := r.do(ctx, http.MethodPost, "/items", fields, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *RESTRepository) Update(ctx context.Context, id int64, fields map[string]any) (*model.Item, error) {
	var item model.Item
	if err := r.do(ctx, http.MethodPatch, fmt.Sprintf("/items/%d", id), fields, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *RESTRepository) Delete(ctx context.Context, id int64) error {
	return r.do(ctx, http.MethodDelete, fmt.Sprintf("/items/%d", id), nil, nil)
}

// UpdateTracking assembles the update-tracking payload: empty values
// are dropped, lifecycle dates are converted to the canonical form, and
// shipping notes travel under the shippingNotes key. Unknown field
// names are dropped with a warning rather than sent.
func (r *RESTRepository) UpdateTracking(ctx context.Context, ids []int64, fields map[string]string) (int, error) {
	payload := map[string]any{"itemIds": ids}
	for name, value := range fields {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		switch {
		case tracking.IsTrackingField(name):
			canonical, ok := tracking.ToCanonical(value)
			if !ok {
				continue
			}
			payload[name] = canonical
		case name == tracking.WireShippingNotes:
			payload[name] = value
		default:
			r.logger.Warn("dropping unknown tracking field", zap.String("field", name))
		}
	}

	var out struct {
		Updated int `json:"updated"`
	}
	if err := r.do(ctx, http.MethodPost, "/items/update-tracking", payload, &out); err != nil {
		return 0, err
	}
	return out.Updated, nil
}

func (r *RESTRepository) BulkEdit(ctx context.Context, ids []int64, in *dto.BulkEditInput) (int, error) {
	payload := map[string]any{"itemIds": ids}
	for name, value := range in.Fields() {
		payload[name] = value
	}

	var out struct {
		Updated int `json:"updated"`
	}
	if err := r.do(ctx, http.MethodPost, "/items/bulk-edit", payload, &out); err != nil {
		return 0, err
	}
	return out.Updated, nil
}

func (r *RESTRepository) BulkDelete(ctx context.Context, ids []int64) (int, error) {
	payload := map[string]any{"itemIds": ids}

	var out struct {
		Deleted int `json:"deleted"`
	}
	if err := r.do(ctx, http.MethodPost, "/items/bulk-delete", payload, &out); err != nil {
		return 0, err
	}
	return out.Deleted, nil
}

func (r *RESTRepository) do(ctx context.Context, method, path string, body, out any) error {
	requestID := uuid.New().String()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Error("backend request failed",
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("%w: %v", items.ErrBackendUnreachable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := decodeAPIError(resp.StatusCode, data)
		r.logger.Error("backend returned error",
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message))
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
	}
	return nil
}

// decodeAPIError extracts the backend's message field when the body is
// JSON, falls back to the raw body text, and finally to the HTTP status
// text.
func decodeAPIError(status int, body []byte) *items.APIError {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return &items.APIError{StatusCode: status, Message: parsed.Message}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return &items.APIError{StatusCode: status, Message: text}
	}
	return &items.APIError{StatusCode: status}
}
