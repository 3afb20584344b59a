package site

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// markdown renders long-form text as written. Only paragraphs and raw HTML
// are recognised, so markdown syntax such as list markers or emphasis stays
// plain text. Hard wraps turn every newline into a <br>, and raw HTML in the
// data passes through.
var markdown = goldmark.New(
	goldmark.WithParser(parser.NewParser(
		parser.WithBlockParsers(
			util.Prioritized(parser.NewHTMLBlockParser(), 900),
			util.Prioritized(parser.NewParagraphParser(), 1000),
		),
		parser.WithInlineParsers(
			util.Prioritized(parser.NewRawHTMLParser(), 400),
		),
	)),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
		html.WithUnsafe(),
	),
)

// FormatContent renders long-form text such as a paper introduction or a
// section body to HTML.
func FormatContent(content string) template.HTML {
	if content == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(content), &buf); err != nil {
		// Fall back to plain line breaks.
		escaped := template.HTMLEscapeString(content)
		return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
	}
	return template.HTML(buf.String())
}

// FormatSectionContent renders a card summary: one block per non-blank line.
func FormatSectionContent(content string) template.HTML {
	if content == "" {
		return ""
	}
	var b strings.Builder
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.WriteString(`<div class="card-line">`)
		b.WriteString(line)
		b.WriteString(`</div>`)
	}
	return template.HTML(b.String())
}
