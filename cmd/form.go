package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/health"
	"github.com/shopspring/decimal"
)

// formFlags binds one flag per metric, with the form defaults.
type formFlags struct {
	ints        map[health.Field]*int
	temperature float64
}

func (p *formFlags) SetFlags(f *flag.FlagSet) {
	p.ints = make(map[health.Field]*int)
	for _, field := range health.Fields {
		usage := fmt.Sprintf("%s, in [%s, %s]", field.Label(), field.Min(), field.Max())
		if field == health.Temperature {
			f.Float64Var(&p.temperature, field.Flag(), field.Default().InexactFloat64(), usage)
			continue
		}
		v := new(int)
		f.IntVar(v, field.Flag(), int(field.Default().IntPart()), usage)
		p.ints[field] = v
	}
}

// form returns the staged form, or the first out of range value.
func (p *formFlags) form() (*health.Form, error) {
	form := health.NewForm()
	for _, field := range health.Fields {
		var v decimal.Decimal
		if field == health.Temperature {
			v = decimal.NewFromFloat(p.temperature)
		} else {
			v = decimal.NewFromInt(int64(*p.ints[field]))
		}
		if err := form.Set(field, v); err != nil {
			return nil, err
		}
	}
	return form, nil
}
