package health

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// A patient table is a CSV file, readable by any spreadsheet:
//
//	Timestamp,Systolic,Diastolic,Temperature,Glucose,Vitamin D
//	2025-03-01 08:12:45.123456,120,80,36.6,100,20
//
// The same encoding is used for the delimited export, so an exported file can
// be read back by DecodeReadings.

// TimestampFormat is the layout used to write timestamps.
const TimestampFormat = "2006-01-02 15:04:05.000000"

// readTimestampFormats are tried in order when reading a timestamp.
// Fractional seconds are optional in the first one.
var readTimestampFormats = []string{
	"2006-01-02 15:04:05.999999999",
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

// Header returns the column names of a patient table.
func Header() []string {
	h := make([]string, 0, len(Fields)+1)
	h = append(h, "Timestamp")
	for _, f := range Fields {
		h = append(h, f.Column())
	}
	return h
}

// ParseError reports a malformed patient table.
type ParseError struct {
	File string // empty when decoding a stream
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("parse error line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("parse error %s:%d: %v", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FormatTimestamp formats t the way it is stored.
func FormatTimestamp(t time.Time) string { return t.Format(TimestampFormat) }

// ParseTimestamp parses a stored timestamp. Timestamps without a zone are read in local time.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var firstErr error
	for _, layout := range readTimestampFormats {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// FormatValue formats the value of f in r the way it is stored.
func FormatValue(r Reading, f Field) string {
	if f == Temperature {
		// keep a trailing ".0" like spreadsheets do for decimal columns.
		if r.Temperature.Exponent() >= -1 {
			return r.Temperature.StringFixed(1)
		}
		return r.Temperature.String()
	}
	return r.Value(f).String()
}

func record(r Reading) []string {
	rec := make([]string, 0, len(Fields)+1)
	rec = append(rec, FormatTimestamp(r.Timestamp))
	for _, f := range Fields {
		rec = append(rec, FormatValue(r, f))
	}
	return rec
}

// EncodeReadings writes the header and all readings to w.
func EncodeReadings(w io.Writer, readings []Reading) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header()); err != nil {
		return err
	}
	for _, r := range readings {
		if err := cw.Write(record(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// AppendReading writes a single reading to w, preceded by the header if header is true.
func AppendReading(w io.Writer, r Reading, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(Header()); err != nil {
			return err
		}
	}
	if err := cw.Write(record(r)); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// DecodeReadings reads a patient table. It fails on the first malformed row
// and never returns a partial table.
func DecodeReadings(r io.Reader) ([]Reading, error) {
	return decodeReadings("", r)
}

func decodeReadings(filename string, r io.Reader) ([]Reading, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // column count is checked below, with a better message.

	header := Header()
	var readings []Reading
	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, &ParseError{File: filename, Line: perr.Line, Err: perr.Err}
			}
			return nil, fmt.Errorf("cannot read %q: %w", filename, err)
		}
		line, _ := cr.FieldPos(0)

		if first {
			first = false
			if !equalHeader(rec, header) {
				return nil, &ParseError{filename, line, fmt.Errorf("unexpected header %q, want %q", strings.Join(rec, ","), strings.Join(header, ","))}
			}
			continue
		}

		if len(rec) != len(header) {
			return nil, &ParseError{filename, line, fmt.Errorf("got %d columns, want %d", len(rec), len(header))}
		}
		reading, err := parseRecord(rec)
		if err != nil {
			return nil, &ParseError{filename, line, err}
		}
		readings = append(readings, reading)
	}
	return readings, nil
}

func equalHeader(rec, header []string) bool {
	if len(rec) != len(header) {
		return false
	}
	for i := range rec {
		// spreadsheets sometimes save a byte order mark in front of the first cell.
		if strings.TrimPrefix(strings.TrimSpace(rec[i]), "\ufeff") != header[i] {
			return false
		}
	}
	return true
}

func parseRecord(rec []string) (Reading, error) {
	var r Reading
	t, err := ParseTimestamp(rec[0])
	if err != nil {
		return r, fmt.Errorf("column %q: invalid timestamp %q: %w", "Timestamp", rec[0], err)
	}
	r.Timestamp = t

	ints := map[Field]*int{
		Systolic:  &r.Systolic,
		Diastolic: &r.Diastolic,
		Glucose:   &r.Glucose,
		VitaminD:  &r.VitaminD,
	}
	for i, f := range Fields {
		cell := strings.TrimSpace(rec[i+1])
		if f == Temperature {
			d, err := decimal.NewFromString(cell)
			if err != nil {
				return r, fmt.Errorf("column %q: invalid number %q", f.Column(), cell)
			}
			r.Temperature = d
			continue
		}
		v, err := strconv.Atoi(cell)
		if err != nil {
			return r, fmt.Errorf("column %q: invalid integer %q", f.Column(), cell)
		}
		*ints[f] = v
	}
	return r, nil
}
