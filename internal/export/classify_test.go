package export

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/payoutbook-dev/payoutbook/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestClassify_Trip(t *testing.T) {
	entry := Classify("trip", dec("15.0"))
	assert.Equal(t, model.CategoryAccountsReceivable, entry.Debit)
	assert.Equal(t, model.CategorySales, entry.Credit)
	assert.True(t, entry.DebitAmount.Equal(dec("15.0")))
	assert.True(t, entry.CreditAmount.Equal(dec("15.0")))
	assert.True(t, entry.Exportable())
}

func TestClassify_Promotion(t *testing.T) {
	entry := Classify("promotion", dec("3.0"))
	assert.Equal(t, model.CategoryAccountsReceivable, entry.Debit)
	assert.Equal(t, model.CategorySales, entry.Credit)
}

func TestClassify_CashCollected(t *testing.T) {
	entry := Classify("cash_collected", dec("40.0"))
	assert.Equal(t, model.CategoryCash, entry.Debit)
	assert.Equal(t, model.CategoryAccountsReceivable, entry.Credit)
	assert.True(t, entry.Exportable())
}

func TestClassify_UberFeeCollection(t *testing.T) {
	entry := Classify("uber_fee_collection", dec("-270.0"))
	assert.Equal(t, model.CategoryAccountsReceivable, entry.Debit)
	assert.Equal(t, model.CategoryAccountsPayable, entry.Credit)
	assert.True(t, entry.DebitAmount.Equal(dec("270.0")), "amount taken as absolute value")
}

func TestClassify_PayoutsNotExportable(t *testing.T) {
	entry := Classify("payouts", dec("100.0"))
	assert.Equal(t, model.CategoryUnset, entry.Debit)
	assert.Equal(t, model.CategoryUnset, entry.Credit)
	assert.True(t, entry.DebitAmount.Equal(dec("100.0")), "amount carried even though never journaled")
	assert.False(t, entry.Exportable())
}

func TestClassify_UnknownType(t *testing.T) {
	entry := Classify("unknown_tag", dec("7.0"))
	assert.Equal(t, model.CategoryUnset, entry.Debit)
	assert.Equal(t, model.CategoryUnset, entry.Credit)
	assert.True(t, entry.DebitAmount.IsZero(), "unknown types force amounts to zero")
	assert.True(t, entry.CreditAmount.IsZero())
	assert.False(t, entry.Exportable())
}

func TestClassify_NegativeSumAbsolute(t *testing.T) {
	entry := Classify("trip", dec("-15.0"))
	assert.True(t, entry.DebitAmount.Equal(dec("15.0")))
	assert.True(t, entry.CreditAmount.Equal(dec("15.0")))
}
