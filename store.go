package health

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gofrs/flock"
)

const (
	tableExt     = ".csv"
	reportSuffix = "_report.pdf"
	lockExt      = ".lock"
)

// Store holds one append-only table per patient, as CSV files in a folder.
//
// The file of a patient is named after the patient: "<dir>/<name>.csv".
// Tables are created on the first Append and never deleted.
type Store struct {
	dir string
}

// Open returns the store living in dir, creating dir if it does not exist yet.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create data directory %q: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store folder.
func (s *Store) Dir() string { return s.dir }

// Path returns the table file of a patient. The name is assumed valid.
func (s *Store) Path(patient string) string {
	return filepath.Join(s.dir, patient+tableExt)
}

// ReportPath returns the location of the generated document for a patient.
func (s *Store) ReportPath(patient string) string {
	return filepath.Join(s.dir, patient+reportSuffix)
}

// Has reports whether a table exists for the patient.
func (s *Store) Has(patient string) bool {
	patient, err := ValidatePatient(patient)
	if err != nil {
		return false
	}
	_, err = os.Stat(s.Path(patient))
	return err == nil
}

// Append writes r as the last row of the patient table, creating the table
// (with its header) if needed. Existing rows are never rewritten.
//
// The table is locked for the duration of the write, so that two processes
// appending to the same patient do not interleave their rows.
func (s *Store) Append(patient string, r Reading) error {
	patient, err := ValidatePatient(patient)
	if err != nil {
		return err
	}
	filename := s.Path(patient)

	lock := flock.New(filename + lockExt)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("could not lock %q: %w", filename, err)
	}
	defer lock.Unlock()

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("error opening patient file %q: %w", filename, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("error reading patient file %q: %w", filename, err)
	}
	// a table saved by hand may lack its final newline.
	if err := terminateLastRow(f, info.Size()); err != nil {
		f.Close()
		return fmt.Errorf("error writing to patient file %q: %w", filename, err)
	}

	if err := AppendReading(f, r, info.Size() == 0); err != nil {
		f.Close()
		return fmt.Errorf("error writing to patient file %q: %w", filename, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("error writing to patient file %q: %w", filename, err)
	}
	return f.Close()
}

// terminateLastRow writes a newline at the end of f if its last byte is not one.
func terminateLastRow(f *os.File, size int64) error {
	if size == 0 {
		return nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, size-1); err != nil {
		return err
	}
	if last[0] == '\n' {
		return nil
	}
	_, err := f.Write([]byte("\n"))
	return err
}

// ReadAll returns all the rows of the patient table in insertion order.
// A patient without a table has no rows and no error.
func (s *Store) ReadAll(patient string) ([]Reading, error) {
	patient, err := ValidatePatient(patient)
	if err != nil {
		return nil, err
	}
	filename := s.Path(patient)

	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open patient file %q: %w", filename, err)
	}
	defer f.Close()

	return decodeReadings(filename, f)
}

// Patients returns the sorted names of all patients with a table.
func (s *Store) Patients() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("cannot scan folder %q for patient files: %w", s.dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), tableExt) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), tableExt)
		// files dropped in the folder by hand may not be valid patients.
		if _, err := ValidatePatient(name); err != nil || name != strings.TrimSpace(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
