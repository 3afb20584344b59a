package site

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cpslab/papersite/internal/progress"
	"github.com/cpslab/papersite/internal/walker"
)

// Generator renders every route to static HTML and copies the site's assets
// next to the pages, producing a directory that can be deployed as-is under
// the renderer's base path.
type Generator struct {
	Renderer  *Renderer
	SiteRoot  fs.FS
	OutputDir string
	Assets    []string // include patterns, relative to SiteRoot
	Exclude   []string
	Reporter  progress.Reporter
}

// NewGenerator creates a Generator that reads assets from siteRoot.
func NewGenerator(renderer *Renderer, siteRoot fs.FS, outputDir string, assets []string) *Generator {
	return &Generator{
		Renderer:  renderer,
		SiteRoot:  siteRoot,
		OutputDir: outputDir,
		Assets:    assets,
		Reporter:  progress.Discard,
	}
}

// BuildResult counts what Generate wrote. Assets includes the Unchanged
// ones whose output copy already had the same content.
type BuildResult struct {
	Pages     int
	Assets    int
	Unchanged int
}

// Generate builds the site into OutputDir.
func (g *Generator) Generate(ctx context.Context) (BuildResult, error) {
	var result BuildResult

	assets, err := g.matchAssets()
	if err != nil {
		return result, err
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return result, err
	}

	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Discard
	}
	total := len(Routes) + 1 + len(assets)
	reporter.Start(total)
	defer reporter.Finish()
	done := 0

	if err := os.WriteFile(filepath.Join(g.OutputDir, StylesheetName), []byte(cssContent), 0o644); err != nil {
		return result, err
	}
	done++
	reporter.Update(done, StylesheetName)

	for _, route := range Routes {
		rel := pagePath(route)
		if err := g.writePage(ctx, route, rel); err != nil {
			return result, fmt.Errorf("rendering %s: %w", route.Name, err)
		}
		result.Pages++
		done++
		reporter.Update(done, rel)
	}

	outFS := os.DirFS(g.OutputDir)
	for _, asset := range assets {
		if hash, err := walker.HashFile(outFS, asset.RelPath); err == nil && hash == asset.ContentHash {
			result.Unchanged++
		} else if err := g.copyAsset(asset.RelPath); err != nil {
			return result, fmt.Errorf("copying %s: %w", asset.RelPath, err)
		}
		result.Assets++
		done++
		reporter.Update(done, asset.RelPath)
	}

	return result, nil
}

// pagePath maps a route to its output file, e.g. "/analysis" -> "analysis/index.html".
func pagePath(route Route) string {
	p := strings.Trim(route.Path, "/")
	if p == "" {
		return "index.html"
	}
	return path.Join(p, "index.html")
}

func (g *Generator) writePage(ctx context.Context, route Route, rel string) error {
	var buf bytes.Buffer
	if err := g.Renderer.Render(ctx, &buf, route); err != nil {
		return err
	}
	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outPath, buf.Bytes(), 0o644)
}

// matchAssets lists the site root's files selected by the asset patterns.
// An empty pattern list selects nothing.
func (g *Generator) matchAssets() ([]walker.FileInfo, error) {
	if g.SiteRoot == nil || len(g.Assets) == 0 {
		return nil, nil
	}
	files, err := walker.Walk(g.SiteRoot, walker.Config{Include: g.Assets, Exclude: g.Exclude})
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}
	return files, nil
}

func (g *Generator) copyAsset(name string) error {
	data, err := fs.ReadFile(g.SiteRoot, name)
	if err != nil {
		return err
	}
	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outPath, data, 0o644)
}
