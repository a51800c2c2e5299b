package taxation

import (
	"github.com/shopspring/decimal"
)

// VatRate is the flat Nepal VAT rate in percent.
var VatRate = decimal.NewFromInt(13)

// RoundingTolerance is the maximum absolute difference accepted between a
// caller-supplied monetary total and the server-side recomputation. Anything
// beyond one paisa of drift is treated as a validation failure, not rounding.
var RoundingTolerance = decimal.New(1, -2) // 0.01

var hundred = decimal.NewFromInt(100)

// RoundMoney rounds to two decimal places, the precision of the NUMERIC(14,2)
// monetary columns.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ResolveDiscount applies the discount resolution rule shared by sales and
// purchase lines: when percent > 0 it is authoritative and the amount is
// derived from it; otherwise a positive amount is authoritative and the
// percent is derived. Both zero means no discount.
func ResolveDiscount(gross, percent, amount decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	switch {
	case percent.GreaterThan(decimal.Zero):
		return percent, RoundMoney(gross.Mul(percent).Div(hundred))
	case amount.GreaterThan(decimal.Zero):
		if gross.IsZero() {
			return decimal.Zero, RoundMoney(amount)
		}
		return amount.Div(gross).Mul(hundred).Round(2), RoundMoney(amount)
	default:
		return decimal.Zero, decimal.Zero
	}
}

// SalesLineTotal computes quantity*unitPrice - discountAmount.
func SalesLineTotal(quantity int64, unitPrice, discountAmount decimal.Decimal) decimal.Decimal {
	gross := unitPrice.Mul(decimal.NewFromInt(quantity))
	return RoundMoney(gross.Sub(discountAmount))
}

// PurchaseLineTotal computes quantity*unitPrice - discountAmount + exciseAmount.
func PurchaseLineTotal(quantity int64, unitPrice, discountAmount, exciseAmount decimal.Decimal) decimal.Decimal {
	gross := unitPrice.Mul(decimal.NewFromInt(quantity))
	return RoundMoney(gross.Sub(discountAmount).Add(exciseAmount))
}

// VatOn computes the 13% VAT due on a taxable base.
func VatOn(taxable decimal.Decimal) decimal.Decimal {
	return RoundMoney(taxable.Mul(VatRate).Div(hundred))
}

// WithinTolerance reports whether two monetary values agree within the
// rounding tolerance.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(RoundingTolerance)
}
