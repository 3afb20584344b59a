package site

// layoutTemplate wraps every page with the navigation bar and footer.
// Pages define the "content" template.
const layoutTemplate = `<!DOCTYPE html>
<html lang="zh-CN">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.PageTitle}} | {{.SiteName}}</title>
  <link rel="stylesheet" href="{{.Stylesheet}}">
</head>
<body>
  <header class="navbar">
    <nav class="menu">
      {{- range .Nav}}
      <a class="menu-item{{if .Active}} is-active{{end}}" href="{{.Href}}">{{.Label}}</a>
      {{- end}}
    </nav>
  </header>
  <main class="main">
    {{- if .Notice}}
    <div class="notice notice-error" role="alert">{{.Notice}}</div>
    {{- end}}
    {{template "content" .}}
  </main>
  <footer class="footer">
    <p>{{.Footer}}</p>
  </footer>
</body>
</html>`

// homeTemplate is the project overview page.
const homeTemplate = `{{define "content"}}
<div class="home">
  <h1 class="page-title">项目总览</h1>
  <section class="content-box project-background">
    <h2 class="section-title">项目背景</h2>
    <div class="content-text">{{.Background}}</div>
  </section>
  <section class="content-box research-framework">
    <h2 class="section-title">研究框架</h2>
    <div class="image-container framework-image">
      <a href="{{.FrameworkImage}}"><img src="{{.FrameworkImage}}" alt="研究框架图"></a>
    </div>
  </section>
  <div class="project-sections">
    {{- range .Cards}}
    <a class="section-card" href="{{.Href}}">
      <div class="card-content">
        <h3>{{.Title}}</h3>
        <div class="card-text">{{.Body}}</div>
        <span class="button">查看详情</span>
      </div>
    </a>
    {{- else}}
    <div class="empty-state">
      <p>暂无项目介绍数据，请编辑 <code>data/overview.json</code> 文件添加项目总览内容。</p>
    </div>
    {{- end}}
  </div>
</div>
{{end}}`

// paperListTemplate is a category page listing its papers in full.
const paperListTemplate = `{{define "content"}}
<div class="paper-list-page">
  <h1 class="page-title">{{.Heading}}</h1>
  {{- with .Intro}}
  <div class="intro-section content-box">
    <h2 class="section-title">{{.Title}}</h2>
    {{- if .ImageURL}}
    <div class="image-container"><img src="{{.ImageURL}}" alt="{{.Title}}"></div>
    {{- end}}
    <div class="content-text">{{.Body}}</div>
  </div>
  {{- end}}
  {{- if not .Papers}}
  <div class="empty-state"><p>暂无论文数据</p></div>
  {{- else}}
  <div class="papers-list">
    {{- range .Papers}}
    <article class="paper-detail-box content-box" id="paper-{{.ID}}">
      <div class="paper-header">
        <h2 class="paper-title-large">{{.Title}}</h2>
        <div class="paper-meta">
          <span class="tag tag-info">{{.CategoryDisplay}}</span>
          {{- if .Authors}}<span class="meta-item"><strong>作者：</strong>{{.Authors}}</span>{{end}}
          {{- if .Journal}}<span class="meta-item"><strong>发表情况：</strong>{{.Journal}}</span>{{end}}
          {{- if .DOI}}<span class="meta-item"><strong>DOI：</strong>{{.DOI}}</span>{{end}}
        </div>
        {{- if .Keywords}}
        <div class="keywords">
          <strong>关键词：</strong>
          {{- range .Keywords}}<span class="tag keyword-tag">{{.}}</span>{{end}}
        </div>
        {{- end}}
      </div>
      <div class="paper-body">
        <h3 class="section-title">简介</h3>
        <p class="abstract">{{.Abstract}}</p>
      </div>
      {{- if .Introduction}}
      <div class="paper-body">
        <h3 class="section-title">内容介绍</h3>
        <div class="introduction">{{.Introduction}}</div>
      </div>
      {{- end}}
      {{- if .Images}}
      <div class="paper-images">
        <h3 class="section-title">相关图片</h3>
        <div class="images-grid">
          {{- range .Images}}
          <figure class="image-item">
            <a href="{{.URL}}"><img class="paper-image" src="{{.URL}}" alt="{{.Caption}}"></a>
            {{- if .Caption}}<figcaption class="image-caption">{{.Caption}}</figcaption>{{end}}
          </figure>
          {{- end}}
        </div>
      </div>
      {{- end}}
    </article>
    {{- end}}
  </div>
  {{- end}}
</div>
{{end}}`

// cssContent is the stylesheet shared by all pages.
const cssContent = `:root {
  --bg: #f5f7fa;
  --text: #303133;
  --text-secondary: #555;
  --accent: #409eff;
  --border: #e4e7ed;
}
* { box-sizing: border-box; }
body { margin: 0; font-family: -apple-system, "PingFang SC", "Microsoft YaHei", sans-serif; background: var(--bg); color: var(--text); }
.navbar { background: #fff; border-bottom: 1px solid var(--border); }
.menu { display: flex; max-width: 1200px; margin: 0 auto; }
.menu-item { padding: 18px 20px; color: var(--text); text-decoration: none; border-bottom: 2px solid transparent; }
.menu-item.is-active { color: var(--accent); border-bottom-color: var(--accent); }
.main { max-width: 1200px; margin: 0 auto; padding: 20px; }
.notice { padding: 10px 16px; margin-bottom: 16px; border-radius: 4px; }
.notice-error { background: #fef0f0; color: #f56c6c; }
.page-title { text-align: center; }
.content-box { background: #fff; border-radius: 8px; padding: 24px; margin-bottom: 20px; }
.content-text, .card-line { color: var(--text-secondary); line-height: 1.8; }
.card-line { display: block; margin: 8px 0; font-size: 15px; }
.project-sections { display: grid; grid-template-columns: repeat(auto-fit, minmax(280px, 1fr)); gap: 20px; }
.section-card { display: block; background: #fff; border-radius: 8px; padding: 20px; color: inherit; text-decoration: none; }
.button { display: inline-block; padding: 8px 15px; border: 1px solid var(--accent); border-radius: 4px; color: var(--accent); }
.image-container img, .paper-image { max-width: 100%; }
.images-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: 16px; }
.image-caption { text-align: center; color: #909399; font-size: 13px; }
.tag { display: inline-block; padding: 2px 8px; margin: 2px 4px; border-radius: 4px; background: #ecf5ff; color: var(--accent); font-size: 12px; }
.tag-info { background: #f4f4f5; color: #909399; }
.meta-item { margin-right: 16px; }
.empty-state { text-align: center; color: #909399; padding: 40px 0; }
.footer { text-align: center; color: #909399; padding: 20px; }
`
