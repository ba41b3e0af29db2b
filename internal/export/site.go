// Package export renders the process knowledge base as a static HTML
// site: one page per process plus an index grouped by category.
package export

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/adsun-ai/adsun/internal/process"
)

// Generator builds the static site from the process store.
type Generator struct {
	OutputDir string
	SiteName  string
	store     *process.Store
}

// NewGenerator creates a Generator writing into outputDir.
func NewGenerator(store *process.Store, outputDir, siteName string) *Generator {
	if siteName == "" {
		siteName = "ADSUN"
	}
	return &Generator{
		OutputDir: outputDir,
		SiteName:  siteName,
		store:     store,
	}
}

// pageData holds the data passed to the HTML template for each page.
type pageData struct {
	Title    string
	SiteName string
	Content  template.HTML
	NavHTML  template.HTML
	BasePath string
}

// Generate builds the full static site. Returns the number of process
// pages written.
func (g *Generator) Generate(ctx context.Context) (int, error) {
	records, err := g.store.GetActiveProcesses(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading processes: %w", err)
	}
	if len(records) == 0 {
		return 0, fmt.Errorf("no processes to export")
	}

	if err := os.MkdirAll(filepath.Join(g.OutputDir, "processes"), 0o755); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, err
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing page template: %w", err)
	}

	nav := buildNav(records)

	for _, r := range records {
		if err := g.renderPage(md, tmpl, nav, r, "../"); err != nil {
			return 0, fmt.Errorf("rendering %s: %w", r.Name, err)
		}
	}

	if err := g.renderIndex(md, tmpl, nav, records); err != nil {
		return 0, fmt.Errorf("rendering index: %w", err)
	}

	return len(records), nil
}

// renderPage converts one record to markdown and writes its HTML page.
func (g *Generator) renderPage(md goldmark.Markdown, tmpl *template.Template, nav navData, r process.Record, basePath string) error {
	var htmlBuf bytes.Buffer
	if err := md.Convert([]byte(recordMarkdown(r)), &htmlBuf); err != nil {
		return fmt.Errorf("converting markdown: %w", err)
	}

	outPath := filepath.Join(g.OutputDir, "processes", r.ID+".html")
	data := pageData{
		Title:    r.Name,
		SiteName: g.SiteName,
		Content:  template.HTML(htmlBuf.String()),
		NavHTML:  template.HTML(nav.toHTML(r.ID, basePath)),
		BasePath: basePath,
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return tmpl.Execute(f, data)
}

// renderIndex writes the landing page grouping processes by category.
func (g *Generator) renderIndex(md goldmark.Markdown, tmpl *template.Template, nav navData, records []process.Record) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\nZdokumentované procesy: %d\n", g.SiteName, len(records))

	for _, group := range nav {
		fmt.Fprintf(&b, "\n## %s\n\n", group.Category)
		for _, entry := range group.Entries {
			fmt.Fprintf(&b, "- [%s](processes/%s.html)", entry.Name, entry.ID)
			if entry.Owner != "" {
				fmt.Fprintf(&b, " — %s", entry.Owner)
			}
			b.WriteString("\n")
		}
	}

	var htmlBuf bytes.Buffer
	if err := md.Convert([]byte(b.String()), &htmlBuf); err != nil {
		return fmt.Errorf("converting markdown: %w", err)
	}

	data := pageData{
		Title:    g.SiteName,
		SiteName: g.SiteName,
		Content:  template.HTML(htmlBuf.String()),
		NavHTML:  template.HTML(nav.toHTML("", "")),
	}

	f, err := os.Create(filepath.Join(g.OutputDir, "index.html"))
	if err != nil {
		return err
	}
	defer f.Close()

	return tmpl.Execute(f, data)
}

// recordMarkdown renders one record as a markdown document.
func recordMarkdown(r process.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.Name)

	var meta []string
	if r.Category != "" {
		meta = append(meta, "**Kategória:** "+r.Category)
	}
	if r.Owner != "" {
		meta = append(meta, "**Vlastník:** "+r.Owner)
	}
	if r.Frequency != "" {
		meta = append(meta, "**Frekvencia:** "+r.Frequency)
	}
	if r.DurationMinutes > 0 {
		meta = append(meta, fmt.Sprintf("**Trvanie:** %d min", r.DurationMinutes))
	}
	if r.AutomationReadiness > 0 {
		meta = append(meta, fmt.Sprintf("**Pripravenosť na automatizáciu:** %d/5", r.AutomationReadiness))
	}
	if len(meta) > 0 {
		b.WriteString(strings.Join(meta, " · "))
		b.WriteString("\n")
	}

	writeSection(&b, "Popis", r.Description)
	writeSection(&b, "Kroky", r.Steps)
	writeSection(&b, "Nástroje", r.Tools)
	writeSection(&b, "Časté problémy", r.CommonProblems)
	writeSection(&b, "Riziká", r.Risks)
	writeSection(&b, "Kritériá úspechu", r.SuccessCriteria)

	return b.String()
}

func writeSection(b *strings.Builder, heading, content string) {
	if strings.TrimSpace(content) == "" {
		return
	}
	fmt.Fprintf(b, "\n## %s\n\n%s\n", heading, content)
}

// navGroup is one category in the sidebar with its process links.
type navGroup struct {
	Category string
	Entries  []navEntry
}

type navEntry struct {
	ID    string
	Name  string
	Owner string
}

type navData []navGroup

// buildNav groups records by category, sorted by name within each
// group and by category name across groups. Uncategorized records land
// under "Ostatné".
func buildNav(records []process.Record) navData {
	grouped := map[string][]navEntry{}
	for _, r := range records {
		category := r.Category
		if category == "" {
			category = "Ostatné"
		}
		grouped[category] = append(grouped[category], navEntry{ID: r.ID, Name: r.Name, Owner: r.Owner})
	}

	var nav navData
	for category, entries := range grouped {
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
		nav = append(nav, navGroup{Category: category, Entries: entries})
	}
	sort.Slice(nav, func(i, j int) bool { return nav[i].Category < nav[j].Category })
	return nav
}

// toHTML renders the sidebar, marking the active process.
func (n navData) toHTML(activeID, basePath string) string {
	var b strings.Builder
	for _, group := range n {
		fmt.Fprintf(&b, `<div class="nav-group"><span class="nav-category">%s</span><ul>`, template.HTMLEscapeString(group.Category))
		for _, entry := range group.Entries {
			class := ""
			if entry.ID == activeID {
				class = ` class="active"`
			}
			fmt.Fprintf(&b, `<li%s><a href="%sprocesses/%s.html">%s</a></li>`,
				class, basePath, entry.ID, template.HTMLEscapeString(entry.Name))
		}
		b.WriteString(`</ul></div>`)
	}
	return b.String()
}
