// Package site renders the site's pages: the home overview, one paper list
// per category, and the navigation and footer around them.
package site

import (
	"context"
	"fmt"
	"html/template"
	"io"

	"github.com/cpslab/papersite/internal/basepath"
	"github.com/cpslab/papersite/internal/datastore"
	"github.com/cpslab/papersite/internal/papers"
	"github.com/cpslab/papersite/internal/query"
)

const (
	// SiteName appears in page titles and the footer.
	SiteName = "项目成果展示网站"

	footerText = "© 2024 " + SiteName

	// loadFailedNotice is shown when a document the page needs failed to load.
	loadFailedNotice = "加载数据失败，请检查JSON文件"

	frameworkImage = "/images/research_framework.png"

	projectBackground = `随着21世纪信息化和全球化的不断深入，知识和技术正在经历重要的转型。随着职业分工日益细化和项目的复杂化，很多问题的解决都需要具有不同专业背景的成员共同努力才能完成。合作能力(collaboration)、创新能力(creativity)、交流能力(communication)和批判性思维(Critical thinking)被公认为21世纪的人才所应具备的核心技能(4C)。中共中央、国务院在2019年初印发的《中国教育现代化2035》中强调了对于学生"实践动手能力、合作能力、创新能力的培养"。教育部发布的《义务教育小学科学课程标准》以及《普通高中课程方案(2017年版)》，也将"合作与交流"和"探索解决问题"列为学生应具备关键能力。合作解决问题(CollaborativeProblemSolving，CPS)能力作为一项复合型能力，涵盖了实践、批判性思维、合作、交流、创新等多方面的能力，是核心素养中重要组成部分之一。`
)

// StylesheetName is the stylesheet file served next to the pages.
const StylesheetName = "style.css"

// Stylesheet returns the CSS shared by all pages.
func Stylesheet() string { return cssContent }

// Renderer renders routes to HTML using data from a query API.
type Renderer struct {
	api      *query.API
	resolver basepath.Resolver
	home     *template.Template
	list     *template.Template
}

// NewRenderer parses the page templates. Links and asset URLs are resolved
// against resolver.
func NewRenderer(api *query.API, resolver basepath.Resolver) (*Renderer, error) {
	layout, err := template.New("layout").Parse(layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing layout template: %w", err)
	}

	home, err := parsePage(layout, "home", homeTemplate)
	if err != nil {
		return nil, err
	}
	list, err := parsePage(layout, "paper list", paperListTemplate)
	if err != nil {
		return nil, err
	}

	return &Renderer{api: api, resolver: resolver, home: home, list: list}, nil
}

// parsePage adds a page body to a copy of layout.
func parsePage(layout *template.Template, name, body string) (*template.Template, error) {
	page, err := layout.Clone()
	if err != nil {
		return nil, fmt.Errorf("cloning layout for %s template: %w", name, err)
	}
	if _, err := page.Parse(body); err != nil {
		return nil, fmt.Errorf("parsing %s template: %w", name, err)
	}
	return page, nil
}

// Resolver returns the resolver pages are rendered with.
func (r *Renderer) Resolver() basepath.Resolver { return r.resolver }

// Render writes the page for route to w.
func (r *Renderer) Render(ctx context.Context, w io.Writer, route Route) error {
	if route.IsHome() {
		return r.home.Execute(w, r.homeView(ctx, route))
	}
	return r.list.Execute(w, r.paperListView(ctx, route))
}

type navItem struct {
	Label  string
	Href   string
	Active bool
}

// chrome is the data the layout needs on every page.
type chrome struct {
	PageTitle  string
	SiteName   string
	Stylesheet string
	Nav        []navItem
	Notice     string
	Footer     string
}

func (r *Renderer) chrome(active Route, title string) chrome {
	nav := make([]navItem, 0, len(Routes))
	for _, route := range Routes {
		nav = append(nav, navItem{
			Label:  route.Label,
			Href:   r.resolver.Route(route.Path),
			Active: route.Name == active.Name,
		})
	}
	return chrome{
		PageTitle:  title,
		SiteName:   SiteName,
		Stylesheet: r.resolver.Resolve(StylesheetName),
		Nav:        nav,
		Footer:     footerText,
	}
}

// notice returns the failure message if any of docs failed to load.
func (r *Renderer) notice(docs ...datastore.Document) string {
	for _, d := range docs {
		if r.api.Store().State(d) == datastore.StateFailed {
			return loadFailedNotice
		}
	}
	return ""
}

type sectionCard struct {
	Title string
	Body  template.HTML
	Href  string
}

type homeView struct {
	chrome
	Background     string
	FrameworkImage string
	Cards          []sectionCard
}

func (r *Renderer) homeView(ctx context.Context, route Route) homeView {
	sections := r.api.OverviewAll(ctx).Data

	var cards []sectionCard
	for _, key := range homeSections {
		s, ok := firstSection(sections, key)
		if !ok {
			continue
		}
		card := sectionCard{
			Title: s.Title,
			Body:  FormatSectionContent(s.Summary()),
		}
		if target, ok := RouteForSection(s.Section); ok {
			card.Href = r.resolver.Route(target.Path)
		}
		cards = append(cards, card)
	}

	v := homeView{
		chrome:         r.chrome(route, "项目总览"),
		Background:     projectBackground,
		FrameworkImage: r.resolver.Resolve(frameworkImage),
		Cards:          cards,
	}
	v.Notice = r.notice(datastore.DocumentOverview)
	return v
}

func firstSection(sections []papers.Section, key string) (papers.Section, bool) {
	for _, s := range sections {
		if s.Section == key {
			return s, true
		}
	}
	return papers.Section{}, false
}

type introView struct {
	Title    string
	ImageURL string
	Body     template.HTML
}

type imageView struct {
	URL     string
	Caption string
}

type paperView struct {
	ID              int
	Title           string
	CategoryDisplay string
	Authors         string
	Journal         string
	DOI             string
	Keywords        []string
	Abstract        string
	Introduction    template.HTML
	Images          []imageView
}

type paperListView struct {
	chrome
	Heading string
	Intro   *introView
	Papers  []paperView
}

func (r *Renderer) paperListView(ctx context.Context, route Route) paperListView {
	page := route.Page
	list := r.api.PapersByCategory(ctx, page.Category).Data
	intro := r.api.OverviewBySection(ctx, page.SectionKey).Data

	v := paperListView{
		chrome:  r.chrome(route, page.Title),
		Heading: page.Title,
	}
	if len(intro) > 0 {
		s := intro[0]
		v.Intro = &introView{
			Title:    s.DisplayTitle(),
			ImageURL: r.resolver.Resolve(s.ImageURL),
			Body:     FormatContent(s.Content),
		}
	}
	for _, p := range list {
		v.Papers = append(v.Papers, r.paperView(p))
	}
	v.Notice = r.notice(datastore.DocumentPapers, datastore.DocumentOverview)
	return v
}

func (r *Renderer) paperView(p papers.Paper) paperView {
	pv := paperView{
		ID:              p.ID,
		Title:           p.Title,
		CategoryDisplay: p.CategoryDisplay,
		Authors:         p.Authors,
		Journal:         p.Journal,
		DOI:             p.DOI,
		Keywords:        p.KeywordList(),
		Abstract:        p.Abstract,
		Introduction:    FormatContent(p.Introduction),
	}
	for _, img := range p.Images {
		pv.Images = append(pv.Images, imageView{
			URL:     r.resolver.Resolve(img.URL),
			Caption: img.Caption,
		})
	}
	return pv
}
