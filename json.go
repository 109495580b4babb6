package health

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// jreading is the JSON form of a Reading.
type jreading struct {
	Timestamp   time.Time       `json:"timestamp"`
	Systolic    int             `json:"systolic"`
	Diastolic   int             `json:"diastolic"`
	Temperature decimal.Decimal `json:"temperature"`
	Glucose     int             `json:"glucose"`
	VitaminD    int             `json:"vitaminD"`
}

// MarshalJSON implements the json.Marshaler interface.
func (r Reading) MarshalJSON() ([]byte, error) {
	return json.Marshal(jreading(r))
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (r *Reading) UnmarshalJSON(data []byte) error {
	var j jreading
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*r = Reading(j)
	return nil
}
