// Package money formats catalog prices, which the store API quotes in US
// dollars, for display in dollars or Indonesian rupiah.
package money

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RupiahPerDollar is the fixed conversion rate used for IDR prices.
const RupiahPerDollar = 16697

// Currency is a display currency.
type Currency struct {
	Unit   currency.Unit
	Tag    language.Tag
	Symbol string
}

var (
	USD = Currency{Unit: currency.USD, Tag: language.AmericanEnglish, Symbol: "$"}
	IDR = Currency{Unit: currency.MustParseISO("IDR"), Tag: language.MustParse("id-ID"), Symbol: "Rp"}
)

// Parse returns the currency for an ISO code; only USD and IDR are known.
func Parse(code string) (Currency, bool) {
	u, err := currency.ParseISO(strings.ToUpper(code))
	if err != nil {
		return Currency{}, false
	}
	switch u {
	case USD.Unit:
		return USD, true
	case IDR.Unit:
		return IDR, true
	}
	return Currency{}, false
}

// Convert turns a dollar amount into c.
func Convert(usd float64, c Currency) float64 {
	if c.Unit == IDR.Unit {
		return usd * RupiahPerDollar
	}
	return usd
}

// Format renders a dollar amount in c using c's locale grouping and cash
// rounding (no fraction digits for rupiah).
func Format(usd float64, c Currency) string {
	v := Convert(usd, c)
	scale, _ := currency.Cash.Rounding(c.Unit)
	if c.Unit == IDR.Unit {
		scale = 0
		v = math.Round(v)
	}
	p := message.NewPrinter(c.Tag)
	return c.Symbol + p.Sprintf("%."+strconv.Itoa(scale)+"f", v)
}
