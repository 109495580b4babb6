package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/health"
)

// ReportTitle is the title of a patient report.
func ReportTitle(patient string) string {
	return fmt.Sprintf("Health Report for %s", patient)
}

// ReportLine renders a reading as a single fixed format line.
func ReportLine(r health.Reading) string {
	return fmt.Sprintf("%s | Systolic: %s | Diastolic: %s | Temp: %s°C | Glucose: %s | Vit D: %s",
		health.FormatTimestamp(r.Timestamp),
		health.FormatValue(r, health.Systolic),
		health.FormatValue(r, health.Diastolic),
		health.FormatValue(r, health.Temperature),
		health.FormatValue(r, health.Glucose),
		health.FormatValue(r, health.VitaminD),
	)
}

// ReportLines returns the report body: one line per reading among the limit
// most recent ones.
func ReportLines(readings []health.Reading, limit int) []string {
	tail := health.Tail(readings, limit)
	lines := make([]string, 0, len(tail))
	for _, r := range tail {
		lines = append(lines, ReportLine(r))
	}
	return lines
}

// ReportText renders the report as plain text, the title on the first line.
func ReportText(patient string, readings []health.Reading, limit int) string {
	var b strings.Builder
	b.WriteString(ReportTitle(patient))
	b.WriteString("\n")
	for _, line := range ReportLines(readings, limit) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
