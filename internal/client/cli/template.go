package cli

import (
	"fmt"
	"math"
	"text/template"
	"time"
)

var templateFuncs = template.FuncMap{
	"dist": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"pace": func(v float64) string { return fmt.Sprintf("%.1f", v) },
	"pct":  formatPercent,
	"inc":  func(i int) int { return i + 1 },
	"when": func(t time.Time) string {
		if t.IsZero() {
			return "never"
		}
		return t.Local().Format(time.DateTime)
	},
}

func newTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(templateFuncs).Parse(text))
}

// formatPercent печатает изменение со стрелкой: ↑ для роста, ↓ для падения
func formatPercent(v float64) string {
	arrow := "↑"
	if v < 0 {
		arrow = "↓"
	}
	return fmt.Sprintf("%s %.1f%%", arrow, math.Abs(v))
}

var statusTemplate = newTemplate("status", `=== Status ===

Connection:   {{if .Online}}online{{else}}offline{{end}}
Session:      {{.Auth}}
{{- if .Email}}
User:         {{.Email}}
{{- end}}
Walks:        {{.Walks}}
Pending sync: {{.Pending}}
Last sync:    {{when .LastSync}}
`)

var walkListTemplate = newTemplate("walks", `{{range $i, $w := .}}{{inc $i | printf "%3d"}}. {{$w.Date}}  {{dist $w.Distance | printf "%8s"}} mi  {{printf "%4d" $w.TimeElapsed}} min  {{pace $w.Pace}} min/mi
{{end}}`)

var statsTemplate = newTemplate("stats", `=== Statistics ===

Total walks:     {{.Totals.Walks}}
Total distance:  {{dist .Totals.Distance}} mi
Total time:      {{.Totals.TimeElapsed}} min
Average pace:    {{pace .Totals.AvgPace}} min/mi

Current streak:  {{.Streaks.Current}} day(s)
Longest streak:  {{.Streaks.Longest}} day(s)

=== This week vs last week ===

            This week   Last week   Change
Walks       {{printf "%-11d" .Weekly.ThisWeek.Walks}} {{printf "%-11d" .Weekly.LastWeek.Walks}} {{pct .Weekly.WalksChange}}
Distance    {{dist .Weekly.ThisWeek.Distance | printf "%-11s"}} {{dist .Weekly.LastWeek.Distance | printf "%-11s"}} {{pct .Weekly.DistanceChange}}
Time        {{printf "%-11d" .Weekly.ThisWeek.TimeElapsed}} {{printf "%-11d" .Weekly.LastWeek.TimeElapsed}}
Pace        {{pace .Weekly.ThisWeek.Pace | printf "%-11s"}} {{pace .Weekly.LastWeek.Pace | printf "%-11s"}} {{pct .Weekly.PaceChange}}
`)

var remoteStatsTemplate = newTemplate("remote-stats", `
=== Server totals ===

Total walks:     {{.TotalWalks}}
Total distance:  {{dist .TotalDistance}} mi
Avg distance:    {{dist .AvgDistance}} mi
Total time:      {{.TotalTime}} min
Avg time:        {{pace .AvgTime}} min
`)

var progressTemplate = newTemplate("progress", `=== Progress {{.Year}} ===

Distance so far:  {{dist .Total}} mi
{{- if .HasGoal}}
Goal:             {{dist .Target}} mi ({{printf "%.1f" .Percent}}% done)
Expected by now:  {{dist .Expected}} mi
{{- if ge .Ahead 0.0}}
Ahead by:         {{dist .Ahead}} mi
{{- else}}
Behind by:        {{dist .Behind}} mi
{{- end}}
{{- if .HasTrend}}
Projected total:  {{dist .Projected}} mi
{{- end}}
{{- else}}
No goal set for {{.Year}}. Use 'walklog goal set <distance>' to add one.
{{- end}}
`)
