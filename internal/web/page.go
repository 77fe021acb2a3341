// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package web

import (
	"bytes"
	"html/template"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// compiledPage is parsed at init time to fail fast on template errors.
var compiledPage = template.Must(template.New("page").Parse(pageTemplate))

// pageData is the view model for one render of the page.
type pageData struct {
	Query      string
	MaxResults int
	MinResults int
	MaxAllowed int

	// Ran is true once the user triggered an action.
	Ran    bool
	Digest types.Digest

	// Error is a page-level failure shown instead of results.
	Error string
}

func renderPage(data pageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := compiledPage.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Autonomous Research Assistant</title>
<style>
body { font-family: sans-serif; max-width: 1100px; margin: 2em auto; padding: 0 1em; }
table { border-collapse: collapse; width: 100%; font-size: 0.9em; }
th, td { border: 1px solid #ddd; padding: 0.4em; vertical-align: top; text-align: left; }
th { background: #f4f4f4; }
.error { color: #a00; border: 1px solid #a00; padding: 0.6em; }
form label { display: block; margin-top: 0.8em; }
</style>
</head>
<body>
<h1>&#128218; Autonomous Research Assistant</h1>
<form method="post" action="/">
  <label for="query">Enter Research Topic</label>
  <input type="text" id="query" name="query" value="{{.Query}}" size="60">
  <label for="max_results">Number of Papers to Fetch: <output id="max_results_value">{{.MaxResults}}</output></label>
  <input type="range" id="max_results" name="max_results" min="{{.MinResults}}" max="{{.MaxAllowed}}" value="{{.MaxResults}}"
    oninput="document.getElementById('max_results_value').value = this.value">
  <p><button type="submit">Fetch &amp; Summarize</button></p>
</form>
{{if .Error}}<div class="error" role="alert">{{.Error}}</div>{{end}}
{{if and .Ran (not .Error)}}
<table>
  <thead><tr><th>Title</th><th>Authors</th><th>Summary</th><th>Keywords</th><th>Link</th></tr></thead>
  <tbody>
  {{range .Digest.Rows}}<tr><td>{{.Title}}</td><td>{{.Authors}}</td><td>{{.Summary}}</td><td>{{.Keywords}}</td><td>{{.Link}}</td></tr>
  {{end}}</tbody>
</table>
{{range .Digest.Rows}}
<section class="paper">
  <h3><a href="{{.Link}}">{{.Title}}</a></h3>
  <p><strong>Authors:</strong> {{.Authors}}</p>
  <p><strong>Summary:</strong> {{.Summary}}</p>
  <p><strong>Keywords:</strong> {{.Keywords}}</p>
  <hr>
</section>
{{end}}
{{end}}
</body>
</html>
`
