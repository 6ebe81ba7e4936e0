package report

import (
	"fmt"
	"html"
	"os"
	"strings"
	"time"
)

// GenerateHTML creates the self-contained dashboard document: group tabs,
// nested scenario tabs, and a fixed-column feature table per scenario.
// Everything is inline; the page fetches nothing.
func (g *Generator) GenerateHTML() error {
	timestamp := time.Now().Format("2006-01-02 15:04")

	var sb strings.Builder

	sb.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>`)
	sb.WriteString(html.EscapeString(g.title))
	sb.WriteString(`</title>
  <style>
    :root {
      --bg: #0f172a;
      --panel: #111827;
      --muted: #94a3b8;
      --text: #e5e7eb;
      --accent: #38bdf8;
      --accent-2: #a78bfa;
      --table: #0b1220;
      --border: #1f2937;
    }
    html, body { margin: 0; padding: 0; background: var(--bg); color: var(--text); font-family: system-ui, -apple-system, 'Segoe UI', Roboto, Ubuntu, Cantarell, 'Helvetica Neue', Arial, 'Noto Sans', sans-serif; }
    .container { max-width: 1200px; margin: 0 auto; padding: 32px 20px 60px; }
    header { display: flex; align-items: center; justify-content: space-between; gap: 16px; margin-bottom: 20px; }
    h1 { font-size: clamp(22px, 2vw, 28px); margin: 0; letter-spacing: 0.2px; }
    .meta { color: var(--muted); font-size: 12px; }
    .tabs { display: flex; gap: 8px; margin: 16px 0 24px; flex-wrap: wrap; }
    .tab-link, .group-link {
      background: linear-gradient(180deg, #1f2937, #0b1220);
      border: 1px solid var(--border);
      color: var(--text);
      padding: 10px 14px;
      border-radius: 12px;
      cursor: pointer;
      font-weight: 600;
    }
    .tab-link.active { outline: 2px solid var(--accent); }
    .group-link.active { outline: 2px solid var(--accent-2); }
    .group-panel { display: none; }
    .group-panel.active { display: block; }
    .tab-panel { display: none; background: var(--panel); border: 1px solid var(--border); padding: 20px; border-radius: 16px; box-shadow: 0 10px 30px rgba(0,0,0,.3); }
    .tab-panel.active { display: block; }
    .tab-panel h2 { margin-top: 0; margin-bottom: 12px; font-size: 20px; }
    .badges { display: flex; gap: 10px; flex-wrap: wrap; margin-bottom: 10px; }
    .badge { display: flex; align-items: center; gap: 8px; background: #0b1220; border: 1px solid var(--border); padding: 6px 10px; border-radius: 999px; }
    .badge .label { color: var(--muted); font-size: 12px; }
    .badge .count { background: linear-gradient(180deg, var(--accent), var(--accent-2)); color: #0b1220; font-weight: 800; padding: 2px 8px; border-radius: 999px; font-size: 12px; }
    table.features-table { width: 100%; border-collapse: collapse; background: var(--table); border-radius: 12px; overflow: hidden; }
    .features-table thead th { text-align: left; padding: 12px; border-bottom: 1px solid var(--border); font-size: 14px; color: var(--muted); }
    .features-table td { vertical-align: top; padding: 14px; border-right: 1px solid var(--border); }
    .features-table td:last-child { border-right: none; }
    .features-table ul { margin: 0; padding-left: 18px; }
    .features-table li { line-height: 1.5; }
    .empty { color: var(--muted); font-style: italic; }
    footer { margin-top: 26px; color: var(--muted); font-size: 12px; text-align: right; }
  </style>
</head>
<body>
  <div class="container">
    <header>
      <h1>`)
	sb.WriteString(html.EscapeString(g.title))
	sb.WriteString(`</h1>
      <div class="meta">Generated `)
	sb.WriteString(timestamp)
	sb.WriteString(` — source: <code>`)
	sb.WriteString(html.EscapeString(g.baseDir))
	sb.WriteString(`</code></div>
    </header>
`)

	if g.data.Grouped {
		sb.WriteString(`
    <nav class="tabs group-tabs">
`)
		for i, group := range g.data.Groups {
			fmt.Fprintf(&sb, `      <button class="group-link" data-group="%d">%s</button>
`, i, html.EscapeString(group.Label))
		}
		sb.WriteString(`    </nav>
`)
	}

	for i, group := range g.data.Groups {
		fmt.Fprintf(&sb, `
    <div id="group-%d" class="group-panel">
`, i)
		sb.WriteString(`      <nav class="tabs">
`)
		for j, scenario := range group.Scenarios {
			fmt.Fprintf(&sb, `        <button class="tab-link" data-target="panel-%d-%d">%s</button>
`, i, j, html.EscapeString(scenario.Label))
		}
		sb.WriteString(`      </nav>
`)
		for j, scenario := range group.Scenarios {
			g.writeScenarioPanel(&sb, i, j, scenario)
		}
		sb.WriteString(`    </div>
`)
	}

	sb.WriteString(`
    <footer>
      Static export — no external resources.
    </footer>
  </div>
  <script>
    const clamp = (i, n) => (Number.isFinite(i) && n > 0) ? Math.max(0, Math.min(i, n - 1)) : 0;

    const groupLinks = Array.from(document.querySelectorAll('.group-link'));
    const groupPanels = Array.from(document.querySelectorAll('.group-panel'));

    function activateGroup(i) {
      groupLinks.forEach((b, idx) => b.classList.toggle('active', idx === i));
      groupPanels.forEach((p, idx) => p.classList.toggle('active', idx === i));
      localStorage.setItem('featureset.group', String(i));
    }
    groupLinks.forEach((b, i) => b.addEventListener('click', () => activateGroup(i)));

    groupPanels.forEach((panel, gi) => {
      const links = Array.from(panel.querySelectorAll('.tab-link'));
      const panels = Array.from(panel.querySelectorAll('.tab-panel'));
      const key = 'featureset.scenario.' + gi;
      function activate(i) {
        links.forEach((b, idx) => b.classList.toggle('active', idx === i));
        panels.forEach((p, idx) => p.classList.toggle('active', idx === i));
        localStorage.setItem(key, String(i));
      }
      links.forEach((b, i) => b.addEventListener('click', () => activate(i)));
      activate(clamp(parseInt(localStorage.getItem(key) || '0', 10), panels.length));
    });

    activateGroup(clamp(parseInt(localStorage.getItem('featureset.group') || '0', 10), groupPanels.length));
  </script>
</body>
</html>
`)

	// #nosec G306 - 0640 allows owner/group to read, which is appropriate for report files
	return os.WriteFile(g.outPath, []byte(sb.String()), 0640)
}

func (g *Generator) writeScenarioPanel(sb *strings.Builder, gi, si int, scenario ScenarioPanel) {
	fmt.Fprintf(sb, `      <section id="panel-%d-%d" class="tab-panel">
        <h2>%s</h2>
        <div class="badges">
`, gi, si, html.EscapeString(scenario.Label))

	for _, model := range scenario.Models {
		fmt.Fprintf(sb, `          <div class="badge"><span class="label">%s</span><span class="count">%d</span></div>
`, html.EscapeString(model.Label), len(model.Features))
	}

	sb.WriteString(`        </div>
        <table class="features-table">
          <thead><tr>`)
	for _, model := range scenario.Models {
		fmt.Fprintf(sb, "<th>%s</th>", html.EscapeString(model.Label))
	}
	sb.WriteString(`</tr></thead>
          <tbody>
            <tr>`)
	for _, model := range scenario.Models {
		sb.WriteString("<td>")
		sb.WriteString(featuresCell(model.Features))
		sb.WriteString("</td>")
	}
	sb.WriteString(`</tr>
          </tbody>
        </table>
      </section>
`)
}

// featuresCell renders one model's raw feature list, or the empty
// placeholder when the model selected nothing (or its file was absent).
func featuresCell(feats []string) string {
	if len(feats) == 0 {
		return `<div class="empty">—</div>`
	}
	var sb strings.Builder
	sb.WriteString("<ul>")
	for _, f := range feats {
		sb.WriteString("<li>")
		sb.WriteString(html.EscapeString(f))
		sb.WriteString("</li>")
	}
	sb.WriteString("</ul>")
	return sb.String()
}
