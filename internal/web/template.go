package web

import (
	"fmt"
	"html/template"
	"io"
	"log"
	"time"

	"github.com/sweeney/day-reminder/internal/status"
)

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"uptime": func(d time.Duration) string {
		d = d.Truncate(time.Second)
		days := int(d.Hours()) / 24
		h := int(d.Hours()) % 24
		m := int(d.Minutes()) % 60
		s := int(d.Seconds()) % 60
		if days > 0 {
			return fmt.Sprintf("%dd %dh %dm %ds", days, h, m, s)
		}
		if h > 0 {
			return fmt.Sprintf("%dh %dm %ds", h, m, s)
		}
		if m > 0 {
			return fmt.Sprintf("%dm %ds", m, s)
		}
		return fmt.Sprintf("%ds", s)
	},
	"simClock": func(t time.Time) string {
		if t.IsZero() {
			return "--:--:--"
		}
		return t.Format("15:04:05")
	},
}).Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Day Reminder</title>
<style>
body { font-family: monospace; max-width: 600px; margin: 2em auto; padding: 0 1em; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin: 1em 0; }
td, th { text-align: left; padding: 4px 8px; border-bottom: 1px solid #ddd; }
th { width: 40%; }
.done { color: green; font-weight: bold; }
.pending { color: #888; }
.connected { color: green; }
.disconnected { color: red; }
.clock { font-size: 1.6em; }
</style>
</head>
<body>
<h1>Day Reminder</h1>

<p class="clock">{{simClock .SimTime}} <small>(x{{.Config.SpeedFactor}})</small></p>

<table>
<tr><th>Activity</th><th>Window</th><th>Status</th></tr>
{{range .Activities}}
<tr>
<td>{{.Name}}</td>
<td>{{.Start}}&ndash;{{.End}}</td>
{{if .Done}}<td class="done">done</td>{{else}}<td class="pending">pending</td>{{end}}
</tr>
{{end}}
</table>

<table>
<tr><th>Done</th><td>{{.DoneCount}} / {{len .Activities}}</td></tr>
<tr><th>Start reminders</th><td>{{.Counts.Starts}}</td></tr>
<tr><th>Due-soon reminders</th><td>{{.Counts.DueSoons}}</td></tr>
<tr><th>Time queries</th><td>{{.Counts.Queries}}</td></tr>
<tr><th>Uptime</th><td>{{uptime .Uptime}}</td></tr>
{{if .Config.Broker}}
<tr><th>MQTT</th>
{{if .MQTTConnected}}<td class="connected">connected ({{.Config.Broker}})</td>
{{else}}<td class="disconnected">disconnected ({{.Config.Broker}})</td>{{end}}
</tr>
{{end}}
<tr><th>Schedule</th><td>{{.Config.ScheduleSrc}}</td></tr>
</table>

<p><a href="/index.json">index.json</a></p>
</body>
</html>
`

func renderHTML(w io.Writer, snap status.Snapshot) {
	if err := indexTmpl.Execute(w, snap); err != nil {
		log.Printf("web: render template: %v", err)
	}
}
