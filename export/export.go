// Package export produces the downloadable artifacts of a patient history:
// a spreadsheet file and a paginated PDF report.
//
// Exports are pure functions of the readings. They never modify the store and
// are only produced on demand.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/etnz/health"
	"github.com/etnz/health/renderer"
	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/gofont/goregular"
)

// reportFont is the family name of the embedded Go Regular font.
const reportFont = "GoRegular"

// DelimitedName is the file name offered for the spreadsheet export.
func DelimitedName(patient string) string { return patient + "_data.csv" }

// DocumentName is the file name offered for the report.
func DocumentName(patient string) string { return patient + "_report.pdf" }

// Delimited writes the full history, header included, in the storage format.
func Delimited(w io.Writer, readings []health.Reading) error {
	return health.EncodeReadings(w, readings)
}

// Document writes a PDF report of the limit most recent readings to w.
// Pages are added as needed.
func Document(w io.Writer, patient string, readings []health.Reading, limit int) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(renderer.ReportTitle(patient), true)
	pdf.SetAutoPageBreak(true, 15)
	// core fonts are cp1252 only, patient names can be any script.
	pdf.AddUTF8FontFromBytes(reportFont, "", goregular.TTF)

	pdf.AddPage()
	pdf.SetFont(reportFont, "", 12)
	pdf.CellFormat(200, 10, renderer.ReportTitle(patient), "", 1, "C", false, 0, "")
	pdf.Ln(10)

	for _, line := range renderer.ReportLines(readings, limit) {
		pdf.CellFormat(200, 10, line, "", 1, "", false, 0, "")
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("cannot generate report for %q: %w", patient, err)
	}
	return nil
}

// WriteDocument generates the report of a patient at its location in the
// store, replacing any previous one, and returns the path.
func WriteDocument(s *health.Store, patient string, readings []health.Reading, limit int) (string, error) {
	patient, err := health.ValidatePatient(patient)
	if err != nil {
		return "", err
	}
	path := s.ReportPath(patient)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error opening report file %q for writing: %w", path, err)
	}
	if err := Document(f, patient, readings, limit); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("error writing report file %q: %w", path, err)
	}
	return path, nil
}

// WriteDelimited writes the spreadsheet export to the file at path.
func WriteDelimited(path string, readings []health.Reading) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening export file %q for writing: %w", path, err)
	}
	if err := Delimited(f, readings); err != nil {
		f.Close()
		return fmt.Errorf("error writing export file %q: %w", path, err)
	}
	return f.Close()
}
