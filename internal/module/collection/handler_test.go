package collection

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/fleetdesk/fleetdesk/internal/catalog"
	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/store"
)

func setupCollectionRouter(t *testing.T, records ...domain.Record) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	desc, _ := catalog.Lookup("users")
	provider := store.NewMemoryProvider()
	provider.Memory(desc).Seed(records...)

	r := gin.New()
	api := r.Group("/api/v1")
	NewModule(NewHandler(NewService(provider))).RegisterRoutes(api, api)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to parse envelope: %v", err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		t.Fatalf("failed to parse data: %v", err)
	}
}

func TestCollectionsEndpoint(t *testing.T) {
	r := setupCollectionRouter(t)

	w := doRequest(r, http.MethodGet, "/api/v1/collections", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var infos []CollectionInfo
	decodeData(t, w, &infos)
	if len(infos) == 0 {
		t.Fatal("expected collections in response")
	}
}

func TestListEndpoint_SearchAndPaging(t *testing.T) {
	r := setupCollectionRouter(t,
		domain.Record{"id": "u1", "name": "Alice", "email": "alice@example.com"},
		domain.Record{"id": "u2", "name": "Bob", "email": "bob@example.com"},
	)

	w := doRequest(r, http.MethodGet, "/api/v1/collections/users?search=bob&page=1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var result ListResult
	decodeData(t, w, &result)
	if result.FilteredCount != 1 {
		t.Fatalf("expected 1 match, got %d", result.FilteredCount)
	}
	if result.Visible[0].ID() != "u2" {
		t.Errorf("expected u2, got %q", result.Visible[0].ID())
	}
	if result.RangeLabel != "Showing 1 to 1 of 1 entries" {
		t.Errorf("unexpected range label %q", result.RangeLabel)
	}
}

func TestListEndpoint_UnknownCollection(t *testing.T) {
	r := setupCollectionRouter(t)

	w := doRequest(r, http.MethodGet, "/api/v1/collections/nope", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetEndpoint(t *testing.T) {
	r := setupCollectionRouter(t, domain.Record{"id": "u1", "name": "Alice"})

	w := doRequest(r, http.MethodGet, "/api/v1/collections/users/u1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var result RecordResult
	decodeData(t, w, &result)
	if result.Record.String("name") != "Alice" {
		t.Errorf("expected name Alice, got %q", result.Record.String("name"))
	}
}

func TestPatchEndpoint_Success(t *testing.T) {
	r := setupCollectionRouter(t, domain.Record{"id": "u1", "name": "Alice"})

	w := doRequest(r, http.MethodPatch, "/api/v1/collections/users/u1", `{"name":"Alicia"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var result RecordResult
	decodeData(t, w, &result)
	if result.Record.String("name") != "Alicia" {
		t.Errorf("expected updated record in response, got %q", result.Record.String("name"))
	}
}

func TestPatchEndpoint_InvalidBody(t *testing.T) {
	r := setupCollectionRouter(t, domain.Record{"id": "u1", "name": "Alice"})

	w := doRequest(r, http.MethodPatch, "/api/v1/collections/users/u1", `not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestPatchEndpoint_SchemaViolation(t *testing.T) {
	r := setupCollectionRouter(t, domain.Record{"id": "u1", "name": "Alice"})

	w := doRequest(r, http.MethodPatch, "/api/v1/collections/users/u1", `{"enable":"yes"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestPatchEndpoint_MissingRecord(t *testing.T) {
	r := setupCollectionRouter(t)

	w := doRequest(r, http.MethodPatch, "/api/v1/collections/users/ghost", `{"name":"X"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDeleteEndpoint(t *testing.T) {
	r := setupCollectionRouter(t, domain.Record{"id": "u1", "name": "Alice"})

	w := doRequest(r, http.MethodDelete, "/api/v1/collections/users/u1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	// A repeated delete of the same id still succeeds.
	w = doRequest(r, http.MethodDelete, "/api/v1/collections/users/u1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 on repeat delete, got %d: %s", w.Code, w.Body.String())
	}
}
