package repository

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rhartono/fitout-tracker/internal/items"
	"github.com/rhartono/fitout-tracker/internal/items/dto"
	"github.com/rhartono/fitout-tracker/internal/logger"
)

func newTestRepo(t *testing.T, handler http.HandlerFunc) (*RESTRepository, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewRESTRepository(srv.URL, 5*time.Second, logger.NewNop()), srv
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		t.Fatalf("decode request body: %v", err)
	}
	return body
}

func TestListQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	repo, _ := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(map[string]any{"items": []any{}, "total": 0})
	})

	_, err := repo.List(context.Background(), &dto.ListFilters{
		Search: "sheer",
		Phase:  "2",
		Vendor: dto.FilterAll,
		Page:   1,
		Limit:  1000,
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if got := gotQuery["search"]; len(got) != 1 || got[0] != "sheer" {
		t.Errorf("search param = %v", got)
	}
	if got := gotQuery["phase"]; len(got) != 1 || got[0] != "2" {
		t.Errorf("phase param = %v", got)
	}
	if _, ok := gotQuery["vendor"]; ok {
		t.Error("the all sentinel must not be sent as a vendor param")
	}
	if got := gotQuery["limit"]; len(got) != 1 || got[0] != "1000" {
		t.Errorf("limit param = %v", got)
	}
}

func TestUpdatePatchesItem(t *testing.T) {
	repo, _ := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		if r.URL.Path != "/items/7" {
			t.Errorf("path = %s", r.URL.Path)
		}
		body := decodeBody(t, r)
		if body["shipFrom"] != "Warehouse 9" {
			t.Errorf("body = %v", body)
		}
		json.NewEncoder(w).Encode(map[string]any{"id": 7, "shipFrom": "Warehouse 9"})
	})

	it, err := repo.Update(context.Background(), 7, map[string]any{"shipFrom": "Warehouse 9"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if it.ShipFrom != "Warehouse 9" {
		t.Errorf("ShipFrom = %q", it.ShipFrom)
	}
}

func TestCreatePostsItem(t *testing.T) {
	repo, _ := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/items" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		body := decodeBody(t, r)
		if body["itemName"] != "Sheer Panels" {
			t.Errorf("body = %v", body)
		}
		json.NewEncoder(w).Encode(map[string]any{"id": 12, "itemName": "Sheer Panels"})
	})

	it, err := repo.Create(context.Background(), map[string]any{"itemName": "Sheer Panels"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if it.ID != 12 || it.ItemName != "Sheer Panels" {
		t.Errorf("created item = %+v", it)
	}
}

func TestDeleteItem(t *testing.T) {
	repo, _ := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/items/12" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := repo.Delete(context.Background(), 12); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestUpdateTrackingPayload(t *testing.T) {
	var body map[string]any
	repo, _ := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/items/update-tracking" {
			t.Errorf("path = %s", r.URL.Path)
		}
		body = decodeBody(t, r)
		json.NewEncoder(w).Encode(map[string]any{"updated": 2})
	})

	n, err := repo.UpdateTracking(context.Background(), []int64{3, 5}, map[string]string{
		"poApprovalDate": "01/10/2025", // display form, must be converted
		"orderedDate":    "2025-02-01", // already canonical
		"shippedDate":    "",           // empty, dropped
		"shippingNotes":  "Delicate product",
		"bogus":          "x", // unknown, dropped
	})
	if err != nil {
		t.Fatalf("UpdateTracking: %v", err)
	}
	if n != 2 {
		t.Errorf("updated = %d, want 2", n)
	}

	if body["poApprovalDate"] != "2025-01-10" {
		t.Errorf("poApprovalDate = %v, want canonical form", body["poApprovalDate"])
	}
	if body["orderedDate"] != "2025-02-01" {
		t.Errorf("orderedDate = %v", body["orderedDate"])
	}
	if _, ok := body["shippedDate"]; ok {
		t.Error("empty date must be dropped from payload")
	}
	if body["shippingNotes"] != "Delicate product" {
		t.Errorf("shippingNotes = %v", body["shippingNotes"])
	}
	if _, ok := body["bogus"]; ok {
		t.Error("unknown field must be dropped from payload")
	}
	ids, ok := body["itemIds"].([]any)
	if !ok || len(ids) != 2 {
		t.Errorf("itemIds = %v", body["itemIds"])
	}
}

func TestBulkEditSkipsEmptyFields(t *testing.T) {
	var body map[string]any
	repo, _ := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/items/bulk-edit" {
			t.Errorf("path = %s", r.URL.Path)
		}
		body = decodeBody(t, r)
		json.NewEncoder(w).Encode(map[string]any{"updated": 1})
	})

	_, err := repo.BulkEdit(context.Background(), []int64{9}, &dto.BulkEditInput{
		Location: "Lobby",
		Notes:    "  ",
	})
	if err != nil {
		t.Fatalf("BulkEdit: %v", err)
	}
	if body["location"] != "Lobby" {
		t.Errorf("location = %v", body["location"])
	}
	if _, ok := body["notes"]; ok {
		t.Error("blank notes must be dropped from payload")
	}
}

func TestBulkDelete(t *testing.T) {
	repo, _ := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/items/bulk-delete" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{"deleted": 3})
	})

	n, err := repo.BulkDelete(context.Background(), []int64{1, 2, 3})
	if err != nil {
		t.Fatalf("BulkDelete: %v", err)
	}
	if n != 3 {
		t.Errorf("deleted = %d, want 3", n)
	}
}

func TestErrorDecoding(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"json message", http.StatusBadRequest, `{"message":"invalid phase"}`, "invalid phase"},
		{"raw text", http.StatusInternalServerError, "boom", "boom"},
		{"empty body", http.StatusNotFound, "", "API error: Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _ := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := repo.FindByID(context.Background(), 1)
			var apiErr *items.APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("error = %v, want *items.APIError", err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.status)
			}
			if apiErr.Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", apiErr.Error(), tt.wantMsg)
			}
		})
	}
}

func TestUnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	repo := NewRESTRepository(srv.URL, time.Second, logger.NewNop())
	_, err := repo.List(context.Background(), &dto.ListFilters{Page: 1, Limit: 10})
	if !errors.Is(err, items.ErrBackendUnreachable) {
		t.Errorf("error = %v, want ErrBackendUnreachable", err)
	}
}
