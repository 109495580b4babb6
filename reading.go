package health

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Reading is a single row of a patient table.
type Reading struct {
	Timestamp   time.Time
	Systolic    int
	Diastolic   int
	Temperature decimal.Decimal
	Glucose     int
	VitaminD    int
}

// Field identifies one of the metrics recorded in a Reading.
type Field int

// The metrics, in column order.
const (
	Systolic Field = iota
	Diastolic
	Temperature
	Glucose
	VitaminD
)

// Fields lists all metrics in column order.
var Fields = []Field{Systolic, Diastolic, Temperature, Glucose, VitaminD}

type fieldInfo struct {
	column string // header in the stored table
	flag   string // command line flag
	label  string
	unit   string
	places int32 // decimal places kept for the value
	min    decimal.Decimal
	max    decimal.Decimal
	def    decimal.Decimal
}

var fieldInfos = [...]fieldInfo{
	Systolic:    {"Systolic", "systolic", "Systolic Pressure", "mmHg", 0, decimal.NewFromInt(80), decimal.NewFromInt(200), decimal.NewFromInt(120)},
	Diastolic:   {"Diastolic", "diastolic", "Diastolic Pressure", "mmHg", 0, decimal.NewFromInt(30), decimal.NewFromInt(150), decimal.NewFromInt(80)},
	Temperature: {"Temperature", "temperature", "Temperature", "°C", 1, decimal.NewFromInt(30), decimal.NewFromInt(45), decimal.RequireFromString("36.6")},
	Glucose:     {"Glucose", "glucose", "Glucose", "mg/dL", 0, decimal.NewFromInt(40), decimal.NewFromInt(500), decimal.NewFromInt(100)},
	VitaminD:    {"Vitamin D", "vitamin-d", "Vitamin D", "ng/mL", 0, decimal.NewFromInt(0), decimal.NewFromInt(150), decimal.NewFromInt(20)},
}

func (f Field) info() fieldInfo {
	if f < 0 || int(f) >= len(fieldInfos) {
		panic(fmt.Sprintf("unknown field %d", int(f)))
	}
	return fieldInfos[f]
}

// Column returns the name of the field's column in a patient table.
func (f Field) Column() string { return f.info().column }

// Flag returns the command line flag name for the field.
func (f Field) Flag() string { return f.info().flag }

// Label returns a human label including the unit, e.g. "Glucose (mg/dL)".
func (f Field) Label() string { return fmt.Sprintf("%s (%s)", f.info().label, f.info().unit) }

// Unit returns the unit of the field.
func (f Field) Unit() string { return f.info().unit }

// Places is the number of decimal places the field keeps.
func (f Field) Places() int32 { return f.info().places }

// Min is the lowest accepted value of the field.
func (f Field) Min() decimal.Decimal { return f.info().min }

// Max is the highest accepted value of the field.
func (f Field) Max() decimal.Decimal { return f.info().max }

// Default is the value a new form starts with.
func (f Field) Default() decimal.Decimal { return f.info().def }

func (f Field) String() string { return f.info().column }

// Value returns the field value of the reading.
func (r Reading) Value(f Field) decimal.Decimal {
	switch f {
	case Systolic:
		return decimal.NewFromInt(int64(r.Systolic))
	case Diastolic:
		return decimal.NewFromInt(int64(r.Diastolic))
	case Temperature:
		return r.Temperature
	case Glucose:
		return decimal.NewFromInt(int64(r.Glucose))
	case VitaminD:
		return decimal.NewFromInt(int64(r.VitaminD))
	}
	panic(fmt.Sprintf("unknown field %d", int(f)))
}

// Float returns the field value as a float, for plotting.
func (r Reading) Float(f Field) float64 { return r.Value(f).InexactFloat64() }

// Equal reports whether both readings hold the same timestamp and values.
func (r Reading) Equal(x Reading) bool {
	return r.Timestamp.Equal(x.Timestamp) &&
		r.Systolic == x.Systolic &&
		r.Diastolic == x.Diastolic &&
		r.Temperature.Equal(x.Temperature) &&
		r.Glucose == x.Glucose &&
		r.VitaminD == x.VitaminD
}

// Values holds one value per field, like the staged entries of a Form.
type Values map[Field]decimal.Decimal

// Float returns the value of f as a float and whether it is set.
func (v Values) Float(f Field) (float64, bool) {
	d, ok := v[f]
	if !ok {
		return 0, false
	}
	return d.InexactFloat64(), true
}
