package site

import (
	"strings"

	"github.com/cpslab/papersite/internal/papers"
)

// PaperListPage configures a category page: which papers it lists, its
// heading, and the overview section shown as its introduction.
type PaperListPage struct {
	Category   papers.Category
	Title      string
	SectionKey string
}

// NewPaperListPage builds the page for one category.
func NewPaperListPage(category papers.Category, title, sectionKey string) *PaperListPage {
	return &PaperListPage{Category: category, Title: title, SectionKey: sectionKey}
}

// Route maps a site path to a view. Page is nil for the home view.
type Route struct {
	Path  string
	Name  string
	Label string
	Page  *PaperListPage
}

// IsHome reports whether the route renders the home view.
func (r Route) IsHome() bool { return r.Page == nil }

// Routes is the site's static route table, in navigation order.
var Routes = []Route{
	{Path: "/", Name: "home", Label: "首页"},
	{
		Path:  "/measurement",
		Name:  "measurement",
		Label: "测量",
		Page:  NewPaperListPage(papers.CategoryMeasurement, "测量", "measurement_intro"),
	},
	{
		Path:  "/analysis",
		Name:  "analysis",
		Label: "分析",
		Page:  NewPaperListPage(papers.CategoryAnalysis, "分析", "analysis_intro"),
	},
	{
		Path:  "/intervention",
		Name:  "intervention",
		Label: "干预",
		Page:  NewPaperListPage(papers.CategoryIntervention, "干预", "intervention_intro"),
	},
}

// Lookup finds the route for a path relative to the base path. A trailing
// slash is ignored.
func Lookup(path string) (Route, bool) {
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}
	if path == "" {
		path = "/"
	}
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// RouteForSection returns the category route an overview section card links to.
func RouteForSection(sectionKey string) (Route, bool) {
	for _, r := range Routes {
		if r.Page != nil && r.Page.SectionKey == sectionKey {
			return r, true
		}
	}
	return Route{}, false
}

// homeSections are the overview sections shown as cards on the home page, in order.
var homeSections = []string{"measurement_intro", "analysis_intro", "intervention_intro"}
