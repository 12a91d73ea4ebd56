package platform

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// Platforms disagree on whether numbers are JSON numbers or strings; these
// types accept both.

type flexInt int64

func (f *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		fv, ferr := strconv.ParseFloat(string(b), 64)
		if ferr != nil {
			return err
		}
		v = int64(fv)
	}
	*f = flexInt(v)
	return nil
}

type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

// flexDecimal keeps monetary strings exact until they are normalised.
type flexDecimal struct {
	decimal.Decimal
}

func (f *flexDecimal) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		f.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return err
	}
	f.Decimal = d
	return nil
}

var _ json.Unmarshaler = (*flexDecimal)(nil)

// microsToCurrency converts micro-currency units (1e-6) into standard
// currency.
func microsToCurrency(micros decimal.Decimal) decimal.Decimal {
	return micros.Shift(-6)
}

// currencyToMicros is the inverse of microsToCurrency, rounded to whole
// micros.
func currencyToMicros(amount decimal.Decimal) int64 {
	return amount.Shift(6).Round(0).IntPart()
}

// minorToCurrency converts minor units (cents) into standard currency.
func minorToCurrency(minor decimal.Decimal) decimal.Decimal {
	return minor.Shift(-2)
}

func currencyToMinor(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}
