package render

import (
	"html/template"
	"io"
	"time"

	"github.com/rcliao/arcs-survey/internal/model"
)

// The printable report. Kept deliberately plain so it prints well and can be
// saved to PDF from any browser.
const reportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Motivation Check-in: {{.Identity}}</title>
<style>
body { font-family: Arial, sans-serif; max-width: 720px; margin: 2em auto; color: #222; }
.box { border: 1px solid #ccc; padding: 20px; }
.scores { font-size: 20px; }
.advice h4 { margin-bottom: 4px; }
.note { color: #555; }
hr { border: none; border-top: 1px solid #ddd; }
</style>
</head>
<body>
<div class="box">
<h2>Motivation Check-in</h2>
<p><strong>Name:</strong> {{with .Current.Name}}{{.}}{{else}}{{.Identity}}{{end}}
&nbsp;&nbsp;<strong>Date:</strong> {{fmtTime .Current.CreatedAt}}</p>
<p class="note">Print this report or save it as a PDF to keep a record.</p>
<p class="scores"><strong>Scores</strong><br>
{{range $i, $f := factors}}{{if $i}} | {{end}}{{$f.Label}}: {{score $.Current $f}}{{end}}</p>
<hr>
<div class="advice">
{{range .Advice}}
{{if .Question}}<h4>&#9632; {{.Question}}</h4>{{end}}
<p><strong>&#9654; Advice:</strong> {{.Message}}</p>
{{if .SelfCheck}}<p><strong>&#9654; Check yourself:</strong> {{.SelfCheck}}</p>{{end}}
<hr>
{{end}}
</div>
<h3>Trend</h3>
{{range .Statements}}<p>{{.Text}}</p>
{{end}}
{{if .History}}<p class="note">Based on {{len .History}} recorded check-in(s).</p>{{end}}
</div>
</body>
</html>
`

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"factors": func() []model.Factor { return model.Factors },
	"score":   func(s model.Submission, f model.Factor) float64 { return s.Score(f) },
	"fmtTime": func(t time.Time) string { return t.Format("2006-01-02 15:04") },
}).Parse(reportTemplate))

// WriteHTML renders the printable report document.
func WriteHTML(w io.Writer, r *model.Report) error {
	return reportTmpl.Execute(w, r)
}
