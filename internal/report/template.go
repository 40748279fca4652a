package report

// comparisonTemplate is the HTML template for the side-by-side
// comparison page. It is embedded as a Go constant — no external file
// dependencies.
const comparisonTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
  :root {
    --bg: #ffffff;
    --text: #1a1a2e;
    --muted: #6b7280;
    --border: #e5e7eb;
    --accent: #2563eb;
    --a-color: #3498db;
    --b-color: #e74c3c;
    --green: #16a34a;
    --red: #dc2626;
    --section-bg: #f8fafc;
  }
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    color: var(--text);
    background: var(--bg);
    line-height: 1.6;
    max-width: 960px;
    margin: 0 auto;
    padding: 20px;
  }
  h1 { font-size: 1.5rem; margin-bottom: 4px; color: var(--accent); }
  h2 { font-size: 1.2rem; margin: 24px 0 12px; padding-bottom: 6px; border-bottom: 2px solid var(--accent); }
  .muted { color: var(--muted); font-size: 0.85rem; }
  .header { border-bottom: 3px solid var(--accent); padding-bottom: 12px; margin-bottom: 16px; }

  .cards { display: flex; gap: 16px; }
  .card {
    flex: 1;
    background: var(--section-bg);
    border: 1px solid var(--border);
    border-radius: 8px;
    padding: 16px;
  }
  .card.a { border-top: 4px solid var(--a-color); }
  .card.b { border-top: 4px solid var(--b-color); }
  .card .price { font-size: 1.4rem; font-weight: 700; }
  .card .up { color: var(--green); }
  .card .down { color: var(--red); }
  .card dl { display: grid; grid-template-columns: auto 1fr; gap: 2px 12px; font-size: 0.85rem; margin-top: 8px; }
  .card dt { color: var(--muted); }

  table { width: 100%; border-collapse: collapse; font-size: 0.9rem; }
  th, td { text-align: left; padding: 6px 10px; border-bottom: 1px solid var(--border); }
  th { background: var(--section-bg); }
  tr:nth-child(even) td { background: #fbfcfe; }

  .news ul { list-style: none; }
  .news li { padding: 6px 0; border-bottom: 1px dashed var(--border); }
  .news .publisher { color: var(--muted); font-size: 0.8rem; margin-left: 6px; }

  .chart { margin: 16px 0; text-align: center; }
  .footer { margin-top: 24px; font-size: 0.8rem; color: var(--muted); }
</style>
</head>
<body>
  <div class="header">
    <h1>{{.Title}}</h1>
    <p class="muted">Generated {{.GeneratedAt}}</p>
  </div>

  <div class="cards">
    <div class="card a">
      <h3>{{.A.CompanyName}} ({{.A.Ticker}})</h3>
      <p class="price">{{.A.Price}} <span class="{{.A.ChangeClass}}">{{.A.DayChange}}</span></p>
      <dl>
        <dt>Market</dt><dd>{{.A.Market}}</dd>
        <dt>Sector</dt><dd>{{.A.Sector}}</dd>
        <dt>Industry</dt><dd>{{.A.Industry}}</dd>
        <dt>Employees</dt><dd>{{.A.Employees}}</dd>
        <dt>Analyst Rec</dt><dd>{{.A.Recommendation}}</dd>
      </dl>
    </div>
    <div class="card b">
      <h3>{{.B.CompanyName}} ({{.B.Ticker}})</h3>
      <p class="price">{{.B.Price}} <span class="{{.B.ChangeClass}}">{{.B.DayChange}}</span></p>
      <dl>
        <dt>Market</dt><dd>{{.B.Market}}</dd>
        <dt>Sector</dt><dd>{{.B.Sector}}</dd>
        <dt>Industry</dt><dd>{{.B.Industry}}</dd>
        <dt>Employees</dt><dd>{{.B.Employees}}</dd>
        <dt>Analyst Rec</dt><dd>{{.B.Recommendation}}</dd>
      </dl>
    </div>
  </div>

  {{if .ChartSVG}}<div class="chart">{{.ChartSVG}}</div>{{end}}

  <h2>Metric Comparison</h2>
  <table>
    <tr><th>Metric</th><th>{{.A.Ticker}}</th><th>{{.B.Ticker}}</th><th>Delta</th></tr>
    {{range .Rows}}<tr><td>{{.Metric}}</td><td>{{.ValueA}}</td><td>{{.ValueB}}</td><td>{{.Delta}}</td></tr>
    {{end}}
  </table>

  <div class="cards">
    <div class="card a news">
      <h2>{{.A.Ticker}} News</h2>
      <ul>
        {{range .A.News}}<li><a href="{{.Link}}">{{.Title}}</a><span class="publisher">{{.Publisher}}</span></li>
        {{else}}<li class="muted">No recent news.</li>
        {{end}}
      </ul>
    </div>
    <div class="card b news">
      <h2>{{.B.Ticker}} News</h2>
      <ul>
        {{range .B.News}}<li><a href="{{.Link}}">{{.Title}}</a><span class="publisher">{{.Publisher}}</span></li>
        {{else}}<li class="muted">No recent news.</li>
        {{end}}
      </ul>
    </div>
  </div>

  <div class="footer">
    <p>Data fetched best-effort from public market-data APIs. Not investment advice.</p>
  </div>
</body>
</html>`
