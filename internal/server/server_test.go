package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpslab/papersite/internal/basepath"
	"github.com/cpslab/papersite/internal/datastore"
	"github.com/cpslab/papersite/internal/query"
	"github.com/cpslab/papersite/internal/site"
)

func writeFile(t *testing.T, root, name, body string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

// newTestServer builds a server over a temporary site root holding both
// documents and one image.
func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "data/papers.json", `{"measurement":[{"id":7,"title":"Seven"}],"analysis":[],"intervention":[]}`)
	writeFile(t, root, "data/overview.json", `{"sections":[{"section":"analysis_intro","title":"Intro"}]}`)
	writeFile(t, root, "images/logo.png", "png-bytes")

	base := basepath.NewResolver(cfg.BasePath).Base()
	store := datastore.New(&datastore.FSFetcher{FS: os.DirFS(root), Prefix: base}, base)
	api := query.New(store)
	renderer, err := site.NewRenderer(api, basepath.NewResolver(base))
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	cfg.SiteRoot = root
	return New(cfg, api, renderer)
}

func serve(srv *Server, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t, Config{Port: 0})

	w := serve(srv, "GET", "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t, Config{Port: 0, AllowAll: true})

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestNormalizesBasePath(t *testing.T) {
	srv := newTestServer(t, Config{BasePath: "/CPS"})
	if got := srv.ServerConfig().BasePath; got != "/CPS/" {
		t.Errorf("BasePath = %q, want /CPS/", got)
	}
}

func TestSubPathDeployment(t *testing.T) {
	srv := newTestServer(t, Config{BasePath: "/CPS/"})

	tests := []struct {
		path     string
		status   int
		contains string
	}{
		{"/CPS/", http.StatusOK, `href="/CPS/style.css"`},
		{"/CPS/measurement", http.StatusOK, "Seven"},
		{"/CPS/api/papers/7", http.StatusOK, `"title":"Seven"`},
		{"/CPS/api/overview/analysis_intro", http.StatusOK, `"title":"Intro"`},
		{"/CPS/images/logo.png", http.StatusOK, "png-bytes"},
		{"/CPS/data/papers.json", http.StatusOK, `"Seven"`},
		{"/CPS/style.css", http.StatusOK, ".navbar"},
		{"/CPS/images/missing.png", http.StatusNotFound, ""},
		{"/api/papers", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		w := serve(srv, "GET", tt.path)
		if w.Code != tt.status {
			t.Errorf("GET %s status = %d, want %d", tt.path, w.Code, tt.status)
			continue
		}
		if tt.contains != "" && !strings.Contains(w.Body.String(), tt.contains) {
			t.Errorf("GET %s body missing %q", tt.path, tt.contains)
		}
	}
}

func TestRedirectsBaseWithoutSlash(t *testing.T) {
	srv := newTestServer(t, Config{BasePath: "/CPS/"})

	w := serve(srv, "GET", "/CPS")
	if w.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want 301", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/CPS/" {
		t.Errorf("Location = %q, want /CPS/", loc)
	}
}

func TestRootDeployment(t *testing.T) {
	srv := newTestServer(t, Config{BasePath: "/"})

	tests := []struct {
		path     string
		contains string
	}{
		{"/", `href="/style.css"`},
		{"/api/categories", `"value":"intervention"`},
		{"/images/logo.png", "png-bytes"},
		{"/healthz", `"ok"`},
	}
	for _, tt := range tests {
		w := serve(srv, "GET", tt.path)
		if w.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", tt.path, w.Code)
			continue
		}
		if !strings.Contains(w.Body.String(), tt.contains) {
			t.Errorf("GET %s body missing %q", tt.path, tt.contains)
		}
	}
}
