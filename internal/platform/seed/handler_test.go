package seed

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/wellness/wellness/internal/domain/preventive"
)

func newTestServer(store *memStore, stores Stores) *echo.Echo {
	e := echo.New()
	h := NewHandler(stores, &memRules{store}, zerolog.Nop())
	h.RegisterRoutes(e.Group("/admin"))
	return e
}

func TestHandleSeed(t *testing.T) {
	store, stores := newMemStore()
	e := newTestServer(store, stores)

	body := `{"providers":1,"patients":2,"wellnessEntries":3,"reminders":1,"advisories":1,"symptomReports":1,"seed":7}`
	req := httptest.NewRequest(http.MethodPost, "/admin/seed", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var res Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if res.Users != 3 {
		t.Errorf("users = %d, want 3", res.Users)
	}
	if len(store.entries) != 3 {
		t.Errorf("stored %d wellness entries, want 3", len(store.entries))
	}
}

func TestHandleSeed_DefaultsWhenBodyEmpty(t *testing.T) {
	store, stores := newMemStore()
	e := newTestServer(store, stores)

	req := httptest.NewRequest(http.MethodPost, "/admin/seed", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	defaults := DefaultConfig()
	if len(store.providers) != defaults.Providers {
		t.Errorf("stored %d providers, want default %d", len(store.providers), defaults.Providers)
	}
	if len(store.patients) != defaults.Patients {
		t.Errorf("stored %d patients, want default %d", len(store.patients), defaults.Patients)
	}
}

func TestHandleSeed_RejectsMalformedBody(t *testing.T) {
	store, stores := newMemStore()
	e := newTestServer(store, stores)

	req := httptest.NewRequest(http.MethodPost, "/admin/seed", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(store.users) != 0 {
		t.Error("malformed request must not seed")
	}
}

func TestHandleSeed_RejectsInvalidVolumes(t *testing.T) {
	store, stores := newMemStore()
	e := newTestServer(store, stores)

	body := `{"providers":0,"patients":1}`
	req := httptest.NewRequest(http.MethodPost, "/admin/seed", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
	if len(store.cleared) != 0 {
		t.Errorf("invalid volumes cleared collections: %v", store.cleared)
	}
}

func TestHandleSeedRules(t *testing.T) {
	store, stores := newMemStore()
	e := newTestServer(store, stores)

	req := httptest.NewRequest(http.MethodPost, "/admin/seed/rules", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if len(store.rules) != len(preventive.Catalog) {
		t.Errorf("stored %d rules, want %d", len(store.rules), len(preventive.Catalog))
	}
}
