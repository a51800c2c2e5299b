package taxation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestVatOn(t *testing.T) {
	// 13% of 450 is 58.50
	vat := VatOn(decimal.NewFromInt(450))
	assert.True(t, decimal.NewFromFloat(58.50).Equal(vat), "VAT on 450 should be 58.50, got %s", vat)

	// 13% of 1000 is 130
	vat = VatOn(decimal.NewFromInt(1000))
	assert.True(t, decimal.NewFromInt(130).Equal(vat))

	// Rounds to two decimals: 13% of 99.99 = 12.9987 -> 13.00
	vat = VatOn(decimal.NewFromFloat(99.99))
	assert.True(t, decimal.NewFromFloat(13.00).Equal(vat), "got %s", vat)

	assert.True(t, VatOn(decimal.Zero).IsZero())
}

func TestResolveDiscount_PercentAuthoritative(t *testing.T) {
	gross := decimal.NewFromInt(200)

	// Percent wins even when a conflicting amount is supplied.
	percent, amount := ResolveDiscount(gross, decimal.NewFromInt(10), decimal.NewFromInt(999))
	assert.True(t, decimal.NewFromInt(10).Equal(percent))
	assert.True(t, decimal.NewFromInt(20).Equal(amount), "10%% of 200 should be 20, got %s", amount)
}

func TestResolveDiscount_AmountAuthoritative(t *testing.T) {
	gross := decimal.NewFromInt(200)

	percent, amount := ResolveDiscount(gross, decimal.Zero, decimal.NewFromInt(50))
	assert.True(t, decimal.NewFromInt(50).Equal(amount))
	assert.True(t, decimal.NewFromInt(25).Equal(percent), "50 of 200 should derive 25%%, got %s", percent)
}

func TestResolveDiscount_NoDiscount(t *testing.T) {
	percent, amount := ResolveDiscount(decimal.NewFromInt(200), decimal.Zero, decimal.Zero)
	assert.True(t, percent.IsZero())
	assert.True(t, amount.IsZero())
}

func TestResolveDiscount_AmountOnZeroGross(t *testing.T) {
	// No division by zero; the amount passes through with no derived percent.
	percent, amount := ResolveDiscount(decimal.Zero, decimal.Zero, decimal.NewFromInt(5))
	assert.True(t, percent.IsZero())
	assert.True(t, decimal.NewFromInt(5).Equal(amount))
}

func TestSalesLineTotal(t *testing.T) {
	total := SalesLineTotal(3, decimal.NewFromInt(150), decimal.Zero)
	assert.True(t, decimal.NewFromInt(450).Equal(total))

	total = SalesLineTotal(2, decimal.NewFromFloat(99.99), decimal.NewFromInt(10))
	assert.True(t, decimal.NewFromFloat(189.98).Equal(total), "got %s", total)
}

func TestPurchaseLineTotal(t *testing.T) {
	// 10 * 1200 - 0 + 500 excise
	total := PurchaseLineTotal(10, decimal.NewFromInt(1200), decimal.Zero, decimal.NewFromInt(500))
	assert.True(t, decimal.NewFromInt(12500).Equal(total))

	total = PurchaseLineTotal(5, decimal.NewFromInt(20), decimal.NewFromInt(10), decimal.Zero)
	assert.True(t, decimal.NewFromInt(90).Equal(total))
}

func TestWithinTolerance(t *testing.T) {
	a := decimal.NewFromFloat(508.50)

	assert.True(t, WithinTolerance(a, decimal.NewFromFloat(508.50)))
	assert.True(t, WithinTolerance(a, decimal.NewFromFloat(508.51)), "one paisa of drift is accepted")
	assert.True(t, WithinTolerance(a, decimal.NewFromFloat(508.49)))
	assert.False(t, WithinTolerance(a, decimal.NewFromFloat(508.52)))
	assert.False(t, WithinTolerance(a, decimal.NewFromFloat(508.48)))
}

func TestRoundMoney(t *testing.T) {
	assert.True(t, decimal.NewFromFloat(12.35).Equal(RoundMoney(decimal.NewFromFloat(12.345))))
	assert.True(t, decimal.NewFromFloat(12.34).Equal(RoundMoney(decimal.NewFromFloat(12.344))))
}
