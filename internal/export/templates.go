package export

// pageTemplate is the Go html/template for each site page.
const pageTemplate = `<!DOCTYPE html>
<html lang="sk">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} — {{.SiteName}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body>
  <nav class="sidebar">
    <h2 class="site-title">{{.SiteName}}</h2>
    {{.NavHTML}}
  </nav>
  <main class="content">
    <article class="page-content">
      {{.Content}}
    </article>
  </main>
</body>
</html>`

// cssContent is the CSS for the exported site.
const cssContent = `:root {
  --bg: #ffffff;
  --bg-sidebar: #f1f3f5;
  --text: #212529;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --sidebar-width: 280px;
  --content-max-width: 800px;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  color: var(--text);
  background: var(--bg);
  display: flex;
}

.sidebar {
  width: var(--sidebar-width);
  min-height: 100vh;
  padding: 1rem;
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
  flex-shrink: 0;
}

.site-title {
  margin: 0 0 1rem;
  font-size: 1.1rem;
}

.nav-group { margin-bottom: 1rem; }
.nav-category {
  font-size: 0.75rem;
  font-weight: 600;
  text-transform: uppercase;
  color: var(--text-muted);
}
.nav-group ul { list-style: none; margin: 0.25rem 0 0; padding: 0; }
.nav-group li a {
  display: block;
  padding: 0.2rem 0.4rem;
  border-radius: 4px;
  color: var(--text);
  text-decoration: none;
  font-size: 0.9rem;
}
.nav-group li a:hover { background: var(--border); }
.nav-group li.active a { color: var(--accent); font-weight: 600; }

.content { flex: 1; padding: 2rem; }
.page-content { max-width: var(--content-max-width); margin: 0 auto; }

.page-content h1 { border-bottom: 1px solid var(--border); padding-bottom: 0.4rem; }
.page-content a { color: var(--accent); }
.page-content table { border-collapse: collapse; }
.page-content th, .page-content td {
  border: 1px solid var(--border);
  padding: 0.4rem 0.6rem;
}
`
