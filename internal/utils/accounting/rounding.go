package accounting

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of decimal places every money figure is rounded to.
const MoneyPlaces int32 = 2

// RoundHalfDown rounds d to places decimal places. Values strictly past the
// midpoint move away from zero; an exact .5 tie goes toward zero.
//
//	RoundHalfDown(1.245, 2)  = 1.24
//	RoundHalfDown(1.2451, 2) = 1.25
//	RoundHalfDown(-1.245, 2) = -1.24
func RoundHalfDown(d decimal.Decimal, places int32) decimal.Decimal {
	truncated := d.Truncate(places)
	remainder := d.Sub(truncated).Abs()
	half := decimal.New(5, -(places + 1))
	if remainder.GreaterThan(half) {
		unit := decimal.New(1, -places)
		if d.IsNegative() {
			return truncated.Sub(unit)
		}
		return truncated.Add(unit)
	}
	return truncated
}

// RoundMoney rounds d half-down to MoneyPlaces.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return RoundHalfDown(d, MoneyPlaces)
}

// FormatMoney rounds d like RoundMoney and renders exactly MoneyPlaces decimals.
//
//	FormatMoney(12)     = "12.00"
//	FormatMoney(12.345) = "12.34"
func FormatMoney(d decimal.Decimal) string {
	return RoundMoney(d).StringFixed(MoneyPlaces)
}
