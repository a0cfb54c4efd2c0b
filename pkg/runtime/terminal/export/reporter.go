package export

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/template"

	"github.com/urban-tools/congestion-atlas/pkg/models/domain"
)

// Reporter prints the analysis digest to the console in a fixed text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

// digest is the view model behind the summary template.
type digest struct {
	Banner        string
	Window        string
	Total         int
	AvgChange     float64
	PositiveCount int
	NegativeCount int
	Improvements  []domain.MetricResult
	Concerns      []domain.MetricResult
}

func (c *Reporter) Handle(summary *domain.Summary) error {
	tmpl := `{{.Banner}}
CONGESTION PRICING ANALYSIS SUMMARY
{{.Banner}}

Total metrics analyzed: {{.Total}}
Analysis period: {{.Window}}

Average change: {{printf "%+.2f" .AvgChange}}%
Positive changes: {{.PositiveCount}} metrics
Negative changes: {{.NegativeCount}} metrics
{{- if .Improvements}}

Top improvements:
{{- range .Improvements}}
  ✓ {{.Metric}}: {{printf "%+.2f" .PercentChange}}%
{{- end}}
{{- end}}
{{- if .Concerns}}

Areas of concern:
{{- range .Concerns}}
  ✗ {{.Metric}}: {{printf "%+.2f" .PercentChange}}%
{{- end}}
{{- end}}

{{.Banner}}
`

	t, err := template.New("summary").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, buildDigest(summary))
}

// buildDigest splits the rows into improvements and regressions and keeps
// the three largest moves on each side. Empty sections render as nothing
// at all.
func buildDigest(summary *domain.Summary) digest {
	d := digest{
		Banner: strings.Repeat("=", 60),
		Window: summary.Window.String(),
		Total:  len(summary.Rows),
	}

	var sum float64
	var positive, negative []domain.MetricResult
	for _, row := range summary.Rows {
		sum += row.PercentChange
		switch {
		case row.PercentChange > 0:
			positive = append(positive, row)
		case row.PercentChange < 0:
			negative = append(negative, row)
		}
	}
	if d.Total > 0 {
		d.AvgChange = sum / float64(d.Total)
	}
	d.PositiveCount = len(positive)
	d.NegativeCount = len(negative)

	sort.SliceStable(positive, func(i, j int) bool {
		return positive[i].PercentChange > positive[j].PercentChange
	})
	sort.SliceStable(negative, func(i, j int) bool {
		return negative[i].PercentChange < negative[j].PercentChange
	})

	d.Improvements = top(positive, 3)
	d.Concerns = top(negative, 3)
	return d
}

func top(rows []domain.MetricResult, n int) []domain.MetricResult {
	if len(rows) > n {
		return rows[:n]
	}
	return rows
}
