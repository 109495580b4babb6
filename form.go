package health

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrOutOfRange is returned when a value is outside the bounds of its field.
var ErrOutOfRange = errors.New("value out of range")

// Form stages the values of a new reading before it is saved.
// The zero value is not usable, use NewForm.
type Form struct {
	values Values
}

// NewForm returns a form filled with the default value of every field.
func NewForm() *Form {
	f := &Form{values: make(Values, len(Fields))}
	for _, field := range Fields {
		f.values[field] = field.Default()
	}
	return f
}

// Set stages v for field. The value is rounded to the precision of the field
// and must lie within its bounds.
func (f *Form) Set(field Field, v decimal.Decimal) error {
	v = v.Round(field.Places())
	if err := checkRange(field, v); err != nil {
		return err
	}
	f.values[field] = v
	return nil
}

// Get returns the staged value of field.
func (f *Form) Get(field Field) decimal.Decimal { return f.values[field] }

// Staged returns a copy of all staged values.
func (f *Form) Staged() Values {
	v := make(Values, len(f.values))
	for k, d := range f.values {
		v[k] = d
	}
	return v
}

func checkRange(field Field, v decimal.Decimal) error {
	if v.LessThan(field.Min()) || v.GreaterThan(field.Max()) {
		return fmt.Errorf("%w: %s %s not in [%s, %s]", ErrOutOfRange, field.Column(), v, field.Min(), field.Max())
	}
	return nil
}

// Validate checks every staged value and returns all failures.
func (f *Form) Validate() error {
	var errs []error
	for _, field := range Fields {
		v, ok := f.values[field]
		if !ok {
			errs = append(errs, fmt.Errorf("%s is missing", field.Column()))
			continue
		}
		if err := checkRange(field, v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Reading builds the reading to save, timestamped at now.
// now is truncated to the microsecond, the precision of the stored timestamp.
func (f *Form) Reading(now time.Time) (Reading, error) {
	if err := f.Validate(); err != nil {
		return Reading{}, err
	}
	return Reading{
		Timestamp:   now.Truncate(time.Microsecond),
		Systolic:    int(f.values[Systolic].IntPart()),
		Diastolic:   int(f.values[Diastolic].IntPart()),
		Temperature: f.values[Temperature],
		Glucose:     int(f.values[Glucose].IntPart()),
		VitaminD:    int(f.values[VitaminD].IntPart()),
	}, nil
}

// Submit saves the staged reading for patient and returns it.
func Submit(s *Store, patient string, f *Form, now time.Time) (Reading, error) {
	r, err := f.Reading(now)
	if err != nil {
		return Reading{}, err
	}
	if err := s.Append(patient, r); err != nil {
		return Reading{}, err
	}
	return r, nil
}
