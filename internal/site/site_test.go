package site

import (
	"bytes"
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-chi/chi/v5"

	"github.com/cpslab/papersite/internal/basepath"
	"github.com/cpslab/papersite/internal/datastore"
	"github.com/cpslab/papersite/internal/query"
)

const testPapers = `{
  "measurement": [{
    "id": 1,
    "title": "Measuring CPS",
    "authors": "Li, Wang",
    "keywords": "CPS，measurement, ,assessment",
    "abstract": "An abstract.",
    "introduction": "line one\nline two",
    "images": ["/images/m1.png", {"image_url": "images/m1b.png", "caption": "Figure 2"}]
  }],
  "analysis": [{"id": 2, "title": "Analysing CPS"}],
  "intervention": []
}`

const testOverview = `{"sections": [
  {"section": "measurement_intro", "title": "测量", "page_title": "测量研究", "short_content": "first\n\n  second  ", "content": "full", "image_url": "/images/measure.png"},
  {"section": "analysis_intro", "title": "分析", "content": "analysis body"}
]}`

func newRenderer(t *testing.T, base string, files map[string]string) *Renderer {
	t.Helper()
	fsys := fstest.MapFS{}
	for name, body := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(body)}
	}
	store := datastore.New(&datastore.FSFetcher{FS: fsys, Prefix: base}, base)
	r, err := NewRenderer(query.New(store), basepath.NewResolver(base))
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func render(t *testing.T, r *Renderer, path string) string {
	t.Helper()
	route, ok := Lookup(path)
	if !ok {
		t.Fatalf("Lookup(%q) found no route", path)
	}
	var buf bytes.Buffer
	if err := r.Render(context.Background(), &buf, route); err != nil {
		t.Fatalf("Render(%q): %v", path, err)
	}
	return buf.String()
}

func TestLookup(t *testing.T) {
	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"/", "home", true},
		{"", "home", true},
		{"/measurement", "measurement", true},
		{"/analysis/", "analysis", true},
		{"/intervention", "intervention", true},
		{"/missing", "", false},
	}
	for _, tt := range tests {
		got, ok := Lookup(tt.path)
		if ok != tt.ok || got.Name != tt.want {
			t.Errorf("Lookup(%q) = %q, %v; want %q, %v", tt.path, got.Name, ok, tt.want, tt.ok)
		}
	}
}

func TestRouteForSection(t *testing.T) {
	r, ok := RouteForSection("analysis_intro")
	if !ok || r.Path != "/analysis" {
		t.Errorf("RouteForSection(analysis_intro) = %q, %v", r.Path, ok)
	}
	if _, ok := RouteForSection("other"); ok {
		t.Error("RouteForSection(other) should not match")
	}
}

func TestFormatContent(t *testing.T) {
	if got := FormatContent(""); got != "" {
		t.Errorf("FormatContent(\"\") = %q", got)
	}
	got := string(FormatContent("line one\nline two"))
	if !strings.Contains(got, "line one<br>") || !strings.Contains(got, "line two") {
		t.Errorf("FormatContent did not keep line breaks: %q", got)
	}

	tests := []struct {
		in      string
		want    []string
		notWant []string
	}{
		{"计算 2*3*4 的结果", []string{"2*3*4"}, []string{"<em>"}},
		{"研究分为：\n1. 测量\n2. 分析", []string{"1. 测量<br>", "2. 分析"}, []string{"<ol>", "<li>"}},
		{"- 第一点\n- 第二点", []string{"- 第一点<br>", "- 第二点"}, []string{"<ul>"}},
		{"# 标题", []string{"# 标题"}, []string{"<h1>"}},
		{"    缩进文本", []string{"缩进文本"}, []string{"<pre>", "<code>"}},
		{"snake_case_name and __init__", []string{"snake_case_name and __init__"}, []string{"<strong>", "<em>"}},
		{"见 <sup>1</sup> 注释", []string{"<sup>1</sup>"}, nil},
	}
	for _, tt := range tests {
		got := string(FormatContent(tt.in))
		for _, w := range tt.want {
			if !strings.Contains(got, w) {
				t.Errorf("FormatContent(%q) = %q, missing %q", tt.in, got, w)
			}
		}
		for _, nw := range tt.notWant {
			if strings.Contains(got, nw) {
				t.Errorf("FormatContent(%q) = %q, should not contain %q", tt.in, got, nw)
			}
		}
	}
}

func TestFormatSectionContent(t *testing.T) {
	got := string(FormatSectionContent("first\n\n  second  \n"))
	want := `<div class="card-line">first</div><div class="card-line">second</div>`
	if got != want {
		t.Errorf("FormatSectionContent = %q, want %q", got, want)
	}
	if got := FormatSectionContent(""); got != "" {
		t.Errorf("FormatSectionContent(\"\") = %q", got)
	}
}

func TestParsePageReportsErrors(t *testing.T) {
	layout := template.Must(template.New("layout").Parse(`{{define "main"}}{{end}}<main>{{template "main" .}}</main>`))

	page, err := parsePage(layout, "home", `{{define "main"}}hello{{end}}`)
	if err != nil {
		t.Fatalf("parsePage: %v", err)
	}
	var buf bytes.Buffer
	if err := page.Execute(&buf, nil); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := buf.String(); got != "<main>hello</main>" {
		t.Errorf("page = %q", got)
	}

	if _, err := parsePage(layout, "broken", `{{define "main"}}{{.Missing`); err == nil {
		t.Error("expected a parse error")
	}

	// An html/template that has executed can no longer be cloned.
	if err := layout.Execute(&bytes.Buffer{}, nil); err != nil {
		t.Fatalf("Execute layout: %v", err)
	}
	_, err = parsePage(layout, "late", `{{define "main"}}late{{end}}`)
	if err == nil || !strings.Contains(err.Error(), "cloning layout for late template") {
		t.Errorf("parsePage after execute error = %v, want clone error", err)
	}
}

func TestRenderHome(t *testing.T) {
	r := newRenderer(t, "/CPS/", map[string]string{
		"data/papers.json":   testPapers,
		"data/overview.json": testOverview,
	})
	html := render(t, r, "/")

	for _, want := range []string{
		`href="/CPS/style.css"`,
		`src="/CPS/images/research_framework.png"`,
		`href="/CPS/measurement/"`,
		`<div class="card-line">first</div><div class="card-line">second</div>`,
		`<div class="card-line">analysis body</div>`,
		"项目背景",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("home page missing %q", want)
		}
	}
	if strings.Contains(html, loadFailedNotice) {
		t.Error("home page shows failure notice although data loaded")
	}
}

func TestRenderPaperList(t *testing.T) {
	r := newRenderer(t, "/CPS/", map[string]string{
		"data/papers.json":   testPapers,
		"data/overview.json": testOverview,
	})
	html := render(t, r, "/measurement")

	for _, want := range []string{
		"Measuring CPS",
		"测量研究",
		`src="/CPS/images/measure.png"`,
		`src="/CPS/images/m1.png"`,
		`src="/CPS/images/m1b.png"`,
		"Figure 2",
		`<span class="tag keyword-tag">measurement</span>`,
		`<span class="tag keyword-tag">assessment</span>`,
		"line one<br>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("measurement page missing %q", want)
		}
	}
	if strings.Contains(html, "Analysing CPS") {
		t.Error("measurement page lists an analysis paper")
	}
}

func TestRenderEmptyCategory(t *testing.T) {
	r := newRenderer(t, "/", map[string]string{
		"data/papers.json":   testPapers,
		"data/overview.json": testOverview,
	})
	html := render(t, r, "/intervention")
	if !strings.Contains(html, "暂无论文数据") {
		t.Error("empty category should show the empty state")
	}
	if strings.Contains(html, "intro-section") {
		t.Error("intervention page should have no intro without an intervention_intro section")
	}
}

func TestRenderShowsNoticeOnFailure(t *testing.T) {
	r := newRenderer(t, "/", map[string]string{})

	home := render(t, r, "/")
	if !strings.Contains(home, loadFailedNotice) {
		t.Error("home page should show the failure notice")
	}
	if !strings.Contains(home, "暂无项目介绍数据") {
		t.Error("home page should show the empty overview state")
	}

	list := render(t, r, "/analysis")
	if !strings.Contains(list, loadFailedNotice) {
		t.Error("analysis page should show the failure notice")
	}
}

func TestGenerate(t *testing.T) {
	r := newRenderer(t, "/", map[string]string{
		"data/papers.json":   testPapers,
		"data/overview.json": testOverview,
	})
	root := fstest.MapFS{
		"data/papers.json":       {Data: []byte(testPapers)},
		"data/overview.json":     {Data: []byte(testOverview)},
		"images/a/b.png":         {Data: []byte("png")},
		"favicon.ico":            {Data: []byte("ico")},
		"notes/private.txt":      {Data: []byte("secret")},
		"css/site-overrides.css": {Data: []byte("body{}")},
	}
	out := t.TempDir()

	g := NewGenerator(r, root, out, []string{"data/*.json", "images/**", "favicon.ico", "data/papers.json"})
	result, err := g.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.Pages != len(Routes) {
		t.Errorf("Pages = %d, want %d", result.Pages, len(Routes))
	}
	if result.Assets != 4 {
		t.Errorf("Assets = %d, want 4", result.Assets)
	}

	for _, name := range []string{
		"index.html",
		"measurement/index.html",
		"analysis/index.html",
		"intervention/index.html",
		"style.css",
		"data/papers.json",
		"data/overview.json",
		"images/a/b.png",
		"favicon.ico",
	} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(name))); err != nil {
			t.Errorf("expected %s in output: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "notes", "private.txt")); !os.IsNotExist(err) {
		t.Error("unmatched file should not be copied")
	}

	again, err := g.Generate(context.Background())
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if again.Unchanged != 4 {
		t.Errorf("second build Unchanged = %d, want 4", again.Unchanged)
	}
}

func TestGenerateExclude(t *testing.T) {
	r := newRenderer(t, "/", map[string]string{})
	root := fstest.MapFS{
		"images/keep.png":      {Data: []byte("keep")},
		"images/raw/huge.tiff": {Data: []byte("raw")},
	}
	out := t.TempDir()

	g := NewGenerator(r, root, out, []string{"images/**"})
	g.Exclude = []string{"images/raw/**"}
	result, err := g.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.Assets != 1 {
		t.Errorf("Assets = %d, want 1", result.Assets)
	}
	if _, err := os.Stat(filepath.Join(out, "images", "raw", "huge.tiff")); !os.IsNotExist(err) {
		t.Error("excluded file should not be copied")
	}
}

func TestRoutes(t *testing.T) {
	r := newRenderer(t, "/", map[string]string{
		"data/papers.json":   testPapers,
		"data/overview.json": testOverview,
	})
	mux := chi.NewRouter()
	RegisterRoutes(mux, r)

	tests := []struct {
		path        string
		contentType string
		contains    string
	}{
		{"/", "text/html; charset=utf-8", "项目总览"},
		{"/analysis", "text/html; charset=utf-8", "Analysing CPS"},
		{"/analysis/", "text/html; charset=utf-8", "Analysing CPS"},
		{"/style.css", "text/css; charset=utf-8", ".navbar"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", tt.path, rec.Code)
			continue
		}
		if ct := rec.Header().Get("Content-Type"); ct != tt.contentType {
			t.Errorf("GET %s Content-Type = %q, want %q", tt.path, ct, tt.contentType)
		}
		if !strings.Contains(rec.Body.String(), tt.contains) {
			t.Errorf("GET %s body missing %q", tt.path, tt.contains)
		}
	}
}
