package entities

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a numeric form value (quantity, weight, percentage, cost) kept in
// the textual form it was entered or returned with, so "150.00" round-trips as
// "150.00". The backend sometimes answers with JSON numbers, sometimes strings.
type Amount string

func (a Amount) IsBlank() bool {
	return strings.TrimSpace(string(a)) == ""
}

func (a Amount) String() string {
	return string(a)
}

// Decimal parses the amount. Blank amounts parse as zero with ok=false.
func (a Amount) Decimal() (decimal.Decimal, bool) {
	if a.IsBlank() {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.TrimSpace(string(a)))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*a = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*a = Amount(n.String())
	return nil
}
