package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/adapters/sqlite"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/domain"
)

type testEnv struct {
	handler http.Handler
	store   *sqlite.Store
	token   string
	admin   string // admin session token
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "wiki.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ctx := context.Background()
	seed := func(name, email string, admin bool) string {
		user := &domain.User{ID: domain.NewID(), Name: name, Email: email, IsAdmin: admin}
		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("seeding user: %v", err)
		}
		session, err := store.CreateSession(ctx, user.ID, time.Hour)
		if err != nil {
			t.Fatalf("seeding session: %v", err)
		}
		return session.Token
	}

	server := NewServer(store, store, store, store, nil)
	return &testEnv{
		handler: server.Handler(),
		store:   store,
		token:   seed("Member", "member@pix3ltools.com", false),
		admin:   seed("Admin", "admin@pix3ltools.com", true),
	}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return m
}

func TestAuthGate(t *testing.T) {
	env := newTestEnv(t)

	// Public routes work without a token.
	if rec := env.do(t, "GET", "/health", "", nil); rec.Code != http.StatusOK {
		t.Errorf("GET /health = %d, want 200", rec.Code)
	}
	if rec := env.do(t, "GET", "/api/pages", "", nil); rec.Code != http.StatusOK {
		t.Errorf("GET /api/pages = %d, want 200", rec.Code)
	}
	if rec := env.do(t, "GET", "/api/categories", "", nil); rec.Code != http.StatusOK {
		t.Errorf("GET /api/categories = %d, want 200", rec.Code)
	}

	// Mutations and detail reads do not.
	page := map[string]any{"title": "Locked Out"}
	if rec := env.do(t, "POST", "/api/pages", "", page); rec.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated POST /api/pages = %d, want 401", rec.Code)
	}
	if rec := env.do(t, "POST", "/api/pages", "bogus-token", page); rec.Code != http.StatusUnauthorized {
		t.Errorf("bogus-token POST /api/pages = %d, want 401", rec.Code)
	}
	if rec := env.do(t, "GET", "/api/search?q=anything", "", nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated GET /api/search = %d, want 401", rec.Code)
	}
}

func TestAuthGate_Cookie(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest("POST", "/api/pages", bytes.NewBufferString(`{"title":"Via Cookie"}`))
	req.AddCookie(&http.Cookie{Name: "auth-token", Value: env.token})
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Errorf("cookie-authenticated POST = %d, want 201: %s", rec.Code, rec.Body.String())
	}
}

func TestPageLifecycle(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "POST", "/api/pages", env.token, map[string]any{
		"title":   "Onboarding Guide",
		"content": "welcome aboard",
		"tags":    []string{"hr"},
		"status":  "published",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create = %d: %s", rec.Code, rec.Body.String())
	}
	created := decode(t, rec)["page"].(map[string]any)
	id := created["id"].(string)
	if created["slug"] != "onboarding-guide" {
		t.Errorf("slug = %v", created["slug"])
	}
	if created["version"].(float64) != 1 {
		t.Errorf("version = %v, want 1", created["version"])
	}

	rec = env.do(t, "PUT", "/api/pages/"+id, env.token, map[string]any{
		"content":        "welcome aboard, revised",
		"change_summary": "second pass",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update = %d: %s", rec.Code, rec.Body.String())
	}
	if v := decode(t, rec)["version"].(float64); v != 2 {
		t.Errorf("updated version = %v, want 2", v)
	}

	rec = env.do(t, "GET", "/api/pages/"+id, env.token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get = %d", rec.Code)
	}
	got := decode(t, rec)["page"].(map[string]any)
	if got["title"] != "Onboarding Guide" {
		t.Errorf("title = %v, content-only update must not change it", got["title"])
	}
	if got["author_name"] != "Member" {
		t.Errorf("author_name = %v", got["author_name"])
	}

	rec = env.do(t, "GET", "/api/pages/by-slug/onboarding-guide", env.token, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("get by slug = %d", rec.Code)
	}

	rec = env.do(t, "GET", "/api/pages/"+id+"/versions", env.token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("versions = %d", rec.Code)
	}
	versions := decode(t, rec)["versions"].([]any)
	if len(versions) != 2 {
		t.Fatalf("history has %d entries, want 2", len(versions))
	}
	newest := versions[0].(map[string]any)
	if newest["version"].(float64) != 2 {
		t.Errorf("newest entry version = %v, want 2", newest["version"])
	}

	rec = env.do(t, "DELETE", "/api/pages/"+id, env.token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete = %d: %s", rec.Code, rec.Body.String())
	}
	if rec = env.do(t, "GET", "/api/pages/"+id, env.token, nil); rec.Code != http.StatusNotFound {
		t.Errorf("get after delete = %d, want 404", rec.Code)
	}
}

func TestErrorMapping(t *testing.T) {
	env := newTestEnv(t)

	// Validation failures are 400.
	rec := env.do(t, "POST", "/api/pages", env.token, map[string]any{"title": ""})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty title = %d, want 400", rec.Code)
	}
	rec = env.do(t, "POST", "/api/pages", env.token, map[string]any{
		"title": "Bad Category", "category_id": "no-such-category",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown category = %d, want 400", rec.Code)
	}

	// Missing resources are 404.
	rec = env.do(t, "PUT", "/api/pages/missing", env.token, map[string]any{"title": "X"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("update of missing page = %d, want 404", rec.Code)
	}

	// Authorization failures are 403.
	rec = env.do(t, "POST", "/api/categories", env.token, map[string]any{"name": "Held"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create category = %d: %s", rec.Code, rec.Body.String())
	}
	catID := decode(t, rec)["category"].(map[string]any)["id"].(string)
	if rec = env.do(t, "DELETE", "/api/categories/"+catID, env.token, nil); rec.Code != http.StatusForbidden {
		t.Errorf("non-admin category delete = %d, want 403", rec.Code)
	}
	if rec = env.do(t, "DELETE", "/api/categories/"+catID, env.admin, nil); rec.Code != http.StatusOK {
		t.Errorf("admin category delete = %d, want 200", rec.Code)
	}
}

func TestSearchEndpoint(t *testing.T) {
	env := newTestEnv(t)

	for i, status := range []string{"published", "draft"} {
		rec := env.do(t, "POST", "/api/pages", env.token, map[string]any{
			"title":   fmt.Sprintf("Deploy Notes %d", i),
			"content": "pipeline checklist",
			"status":  status,
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("create = %d: %s", rec.Code, rec.Body.String())
		}
	}

	rec := env.do(t, "GET", "/api/search?q=pipeline", env.token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("search = %d: %s", rec.Code, rec.Body.String())
	}
	body := decode(t, rec)
	if body["mode"] != "substring" {
		t.Errorf("mode = %v", body["mode"])
	}
	if body["count"].(float64) != 1 {
		t.Errorf("count = %v, want 1 (published only by default)", body["count"])
	}

	rec = env.do(t, "GET", "/api/search?q=pipeline&status=draft", env.token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("draft search = %d", rec.Code)
	}
	if count := decode(t, rec)["count"].(float64); count != 1 {
		t.Errorf("draft count = %v, want 1", count)
	}

	// Missing query is a validation error.
	if rec = env.do(t, "GET", "/api/search", env.token, nil); rec.Code != http.StatusBadRequest {
		t.Errorf("empty query = %d, want 400", rec.Code)
	}
}

func TestLinkEndpoints(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "POST", "/api/pages", env.token, map[string]any{"title": "Linked Page"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create page = %d", rec.Code)
	}
	pageID := decode(t, rec)["page"].(map[string]any)["id"].(string)

	board := "board-7"
	rec = env.do(t, "POST", "/api/links", env.token, map[string]any{
		"wiki_page_id": pageID,
		"board_id":     board,
		"link_type":    "documentation",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create link = %d: %s", rec.Code, rec.Body.String())
	}
	linkID := decode(t, rec)["link"].(map[string]any)["id"].(string)

	rec = env.do(t, "GET", "/api/links?wiki_page_id="+pageID, env.token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list links = %d", rec.Code)
	}
	links := decode(t, rec)["links"].([]any)
	if len(links) != 1 {
		t.Fatalf("listed %d links, want 1", len(links))
	}

	// Linking a missing page is rejected.
	rec = env.do(t, "POST", "/api/links", env.token, map[string]any{"wiki_page_id": "missing"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("link to missing page = %d, want 404", rec.Code)
	}

	if rec = env.do(t, "DELETE", "/api/links/"+linkID, env.token, nil); rec.Code != http.StatusOK {
		t.Errorf("delete link = %d", rec.Code)
	}
	if rec = env.do(t, "DELETE", "/api/links/"+linkID, env.token, nil); rec.Code != http.StatusNotFound {
		t.Errorf("second delete = %d, want 404", rec.Code)
	}
}
