package server

import (
	"context"
	"fmt"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/fitdash/models"
)

// Pages are hand-written templ components backed by html/template. Each
// component renders one full page; charts arrive pre-rendered as
// template.HTML from go-echarts.

var pages = template.Must(template.New("pages").Parse(pagesHTML))

func page(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return pages.ExecuteTemplate(w, name, data)
	})
}

type landingView struct {
	Samples []string
	Recent  []*models.Activity
}

func Landing(samples []string, recent []*models.Activity) templ.Component {
	return page("landing", landingView{Samples: samples, Recent: recent})
}

type metricView struct {
	Name  string
	Value string
}

type activityView struct {
	Activity  *models.Activity
	Metrics   []metricView
	LineChart template.HTML
	HistChart template.HTML
	ShowRaw   bool
	RawLink   string
	HideLink  string
}

func ActivityPage(act *models.Activity, lineChart, histChart template.HTML, showRaw bool) templ.Component {
	s := act.Summary
	view := activityView{
		Activity: act,
		Metrics: []metricView{
			{Name: "Average HR", Value: fmt.Sprintf("%.1f bpm", s.Mean)},
			{Name: "Min HR", Value: fmt.Sprintf("%.0f bpm", s.Min)},
			{Name: "Max HR", Value: fmt.Sprintf("%.0f bpm", s.Max)},
			{Name: "Q1 (25%)", Value: fmt.Sprintf("%.1f bpm", s.Q1)},
			{Name: "Median HR", Value: fmt.Sprintf("%.1f bpm", s.Median)},
			{Name: "Q3 (75%)", Value: fmt.Sprintf("%.1f bpm", s.Q3)},
		},
		LineChart: lineChart,
		HistChart: histChart,
		ShowRaw:   showRaw,
		RawLink:   "/activity?id=" + act.ID + "&raw=1",
		HideLink:  "/activity?id=" + act.ID,
	}
	return page("activity", view)
}

func ErrorPage(message string) templ.Component {
	return page("error", message)
}

func NoDataPage(name string) templ.Component {
	return page("nodata", name)
}

const pagesHTML = `
{{define "head"}}
<head>
  <meta charset="utf-8">
  <title>FIT File Analyzer</title>
  <link rel="stylesheet" href="/static/style.css">
</head>
{{end}}

{{define "landing"}}
<!DOCTYPE html>
<html>
{{template "head" .}}
<body>
  <h1>Garmin FIT File Analyzer</h1>
  <p>Upload a .fit file to analyze your activity heart rate data.</p>

  <form action="/upload" method="post" enctype="multipart/form-data">
    <input type="file" name="fitfile" accept=".fit" required>
    <button type="submit">Analyze</button>
  </form>

  {{if .Samples}}
  <h2>Or use a sample file</h2>
  <ul>
    {{range .Samples}}
    <li><a href="/sample?name={{.}}">{{.}}</a></li>
    {{end}}
  </ul>
  {{end}}

  {{if .Recent}}
  <h2>Recent activities</h2>
  <ul>
    {{range .Recent}}
    <li><a href="/activity?id={{.ID}}">{{.Name}}</a> ({{len .Series}} samples)</li>
    {{end}}
  </ul>
  {{end}}
</body>
</html>
{{end}}

{{define "activity"}}
<!DOCTYPE html>
<html>
{{template "head" .}}
<body>
  <p><a href="/">&larr; Back</a></p>
  <h1>{{.Activity.Name}}</h1>

  <h2>Heart Rate Metrics</h2>
  <div class="metrics">
    {{range .Metrics}}
    <div class="metric">
      <div class="metric-name">{{.Name}}</div>
      <div class="metric-value">{{.Value}}</div>
    </div>
    {{end}}
  </div>

  <h2>Heart Rate Over Time</h2>
  {{.LineChart}}

  <h2>Heart Rate Distribution</h2>
  {{.HistChart}}

  {{if .ShowRaw}}
  <h2>Raw Data <a class="toggle" href="{{.HideLink}}">hide</a></h2>
  <table>
    <tr><th>#</th><th>Timestamp</th><th>Heart Rate (bpm)</th></tr>
    {{range $i, $s := .Activity.Series}}
    <tr>
      <td>{{$i}}</td>
      <td>{{if $s.Timestamp.IsZero}}-{{else}}{{$s.Timestamp.Format "2006-01-02 15:04:05"}}{{end}}</td>
      <td>{{$s.HeartRate}}</td>
    </tr>
    {{end}}
  </table>
  {{else}}
  <p><a class="toggle" href="{{.RawLink}}">Show raw data</a></p>
  {{end}}
</body>
</html>
{{end}}

{{define "error"}}
<!DOCTYPE html>
<html>
{{template "head" .}}
<body>
  <h1>Something went wrong</h1>
  <p class="error">{{.}}</p>
  <p><a href="/">&larr; Back</a></p>
</body>
</html>
{{end}}

{{define "nodata"}}
<!DOCTYPE html>
<html>
{{template "head" .}}
<body>
  <h1>{{.}}</h1>
  <p class="error">No heart rate data found in the file.</p>
  <p><a href="/">&larr; Back</a></p>
</body>
</html>
{{end}}
`
