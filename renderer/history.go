// Package renderer turns patient histories into markdown, HTML and plain
// text lines.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/health"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders the n most recent readings of a patient as a
// markdown table. If charts is not empty, it is linked as an image below the table.
func HistoryMarkdown(patient string, readings []health.Reading, n int, charts string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Patient: %s", patient))

	if len(readings) == 0 {
		doc.PlainText("No readings yet.")
		return doc.String()
	}

	tail := health.Tail(readings, n)
	doc.H2("Recent Readings")
	if len(tail) < len(readings) {
		doc.PlainText(fmt.Sprintf("Showing the last %d of %d readings.", len(tail), len(readings)))
	}

	header := []string{"Timestamp"}
	alignment := []md.TableAlignment{md.AlignLeft}
	for _, f := range health.Fields {
		header = append(header, f.Label())
		alignment = append(alignment, md.AlignRight)
	}
	table := md.TableSet{
		Alignment: alignment,
		Header:    header,
		Rows:      [][]string{},
	}
	for _, r := range tail {
		row := []string{r.Timestamp.Format("2006-01-02 15:04:05")}
		for _, f := range health.Fields {
			row = append(row, health.FormatValue(r, f))
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	if charts != "" {
		doc.H2("Charts")
		doc.PlainText(fmt.Sprintf("![Charts for %s](%s)", patient, charts))
	}
	return doc.String()
}

// PatientsMarkdown renders the list of known patients.
func PatientsMarkdown(patients []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Patients")
	if len(patients) == 0 {
		doc.PlainText("No patient yet. Save a first reading with `hlog add -n <name>`.")
		return doc.String()
	}
	doc.BulletList(patients...)
	return doc.String()
}
