package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mvoggen/grove/pkg/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(nil, store.NewMemoryStore(), nil)
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestParseEndpoint(t *testing.T) {
	s := newTestServer(t)

	body := `{"notation": "b, a(d, c)", "sort": true}`
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/parse", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body)
	}

	var items []struct {
		Name     string            `json:"name"`
		Children []json.RawMessage `json:"children"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 2 || items[0].Name != "a" || items[1].Name != "b" {
		t.Errorf("unexpected sorted forest: %s", rec.Body)
	}
	if len(items[0].Children) != 2 {
		t.Errorf("node a should have 2 children: %s", rec.Body)
	}
}

func TestParseEndpointBadBody(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/parse", strings.NewReader("{")))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func saveForest(t *testing.T, s *Server, name, notation string) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"name": name, "notation": notation})
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/forests", strings.NewReader(string(body))))

	if rec.Code != http.StatusCreated {
		t.Fatalf("save status = %d: %s", rec.Code, rec.Body)
	}
	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode save response: %v", err)
	}
	return resp.ID
}

func TestSaveAndGet(t *testing.T) {
	s := newTestServer(t)
	id := saveForest(t, s, "fields", "a, b(c)")

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/forests/"+id, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d: %s", rec.Code, rec.Body)
	}

	var resp struct {
		ID       string          `json:"id"`
		Name     string          `json:"name"`
		Notation string          `json:"notation"`
		Forest   json.RawMessage `json:"forest"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode get response: %v", err)
	}
	if resp.ID != id || resp.Notation != "a, b(c)" {
		t.Errorf("unexpected document: %s", rec.Body)
	}
	if !strings.Contains(string(resp.Forest), `"name": "b"`) {
		t.Errorf("parsed forest missing from response: %s", resp.Forest)
	}
}

func TestSaveEmptyNotation(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/forests",
		strings.NewReader(`{"name": "x", "notation": ""}`)))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestGetNotFound(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/forests/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestDelete(t *testing.T) {
	s := newTestServer(t)
	id := saveForest(t, s, "", "a")

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/forests/"+id, nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/forests/"+id, nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestList(t *testing.T) {
	s := newTestServer(t)
	saveForest(t, s, "one", "a")
	saveForest(t, s, "two", "b")

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/forests", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d: %s", rec.Code, rec.Body)
	}
	var list []store.Forest
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("list returned %d forests, want 2", len(list))
	}
}

func TestRenderFormats(t *testing.T) {
	s := newTestServer(t)
	id := saveForest(t, s, "fields", "b, a(c)")

	tests := []struct {
		name        string
		query       string
		contentType string
		contains    string
	}{
		{"text default", "", "text/plain; charset=utf-8", "- b\n- a\n  - c\n"},
		{"text sorted", "?format=text&sort=true", "text/plain; charset=utf-8", "- a\n  - c\n- b\n"},
		{"json", "?format=json", "application/json", `"name": "a"`},
		{"dot", "?format=dot", "text/vnd.graphviz", "digraph G"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/forests/"+id+"/render"+tt.query, nil))

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d: %s", rec.Code, rec.Body)
			}
			if got := rec.Header().Get("Content-Type"); got != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", got, tt.contentType)
			}
			if !strings.Contains(rec.Body.String(), tt.contains) {
				t.Errorf("body missing %q:\n%s", tt.contains, rec.Body)
			}
		})
	}
}

func TestRenderUnsupportedFormat(t *testing.T) {
	s := newTestServer(t)
	id := saveForest(t, s, "", "a")

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/forests/"+id+"/render?format=bmp", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
