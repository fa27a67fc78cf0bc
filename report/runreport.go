// report/runreport.go
package report

import (
	"bytes"
	"os"
	"text/template"
	"time"
)

// RunReport collects everything the run summary text file shows.
type RunReport struct {
	RunID   string
	Created time.Time
	Seed    uint64

	DBPath    string
	OutputDir string

	Summary     Summary
	Percentiles Percentiles

	CSVFiles   []string
	ChartFiles []string
}

// SummaryTextFile is the run summary artifact name.
const SummaryTextFile = "run_summary.txt"

var runReportFuncs = template.FuncMap{
	"orTime": func(t time.Time) time.Time {
		if t.IsZero() {
			return time.Now()
		}
		return t
	},
}

// WriteFile renders the run summary to path.
func (r *RunReport) WriteFile(path string) error {
	t, err := template.New("run").Funcs(runReportFuncs).Parse(runReportTemplate)
	if err != nil {
		return err
	}

	buf := new(bytes.Buffer)
	if err := t.Execute(buf, r); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

const runReportTemplate = `PORTFOLIO RUN {{.RunID}}
created: {{(orTime .Created).Format "2006-01-02 15:04:05"}}
seed:    {{.Seed}}
db:      {{.DBPath}}
out:     {{.OutputDir}}

BOOK SUMMARY
  policies:       {{.Summary.TotalPolicies}}
  claim records:  {{.Summary.TotalClaimsRecords}}
  claims amount:  {{printf "%.2f" .Summary.TotalClaimsAmount}}
  premiums:       {{printf "%.2f" .Summary.TotalPremiums}}
  loss ratio:     {{if .Summary.AverageLossRatioOverall.Valid}}{{printf "%.4f" .Summary.AverageLossRatioOverall.Float64}}{{else}}undefined{{end}}

PER-POLICY CLAIMS PERCENTILES
  p50: {{printf "%.2f" .Percentiles.P50}}
  p90: {{printf "%.2f" .Percentiles.P90}}
  p99: {{printf "%.2f" .Percentiles.P99}}

ARTIFACTS
{{- range .CSVFiles}}
  {{.}}
{{- end}}
{{- range .ChartFiles}}
  {{.}}
{{- end}}
`
