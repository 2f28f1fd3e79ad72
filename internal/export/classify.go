package export

import (
	"github.com/shopspring/decimal"

	"github.com/payoutbook-dev/payoutbook/internal/model"
)

// Entry is one classified journal bucket: a debit/credit category pair with
// their amounts.
type Entry struct {
	Debit        model.Category
	DebitAmount  decimal.Decimal
	Credit       model.Category
	CreditAmount decimal.Decimal
}

// Exportable reports whether the entry produces a journal row. An entry
// with an unset side is tracked in the ledger but never journaled.
func (e Entry) Exportable() bool {
	return e.Debit != model.CategoryUnset && e.Credit != model.CategoryUnset
}

// Classify maps an aggregated (type, amount) bucket to its debit/credit
// categories. The amount is taken as an absolute value; the sign convention
// of the source data (payouts negative) carries no meaning in the
// destination format. Unrecognized types classify to unset/unset with zero
// amounts and are dropped at export.
func Classify(txType string, amount decimal.Decimal) Entry {
	amount = amount.Abs()

	switch txType {
	case "payouts":
		// The payout is the bank transfer itself, not a revenue event;
		// it stays in the ledger but is never journaled.
		return Entry{
			Debit:        model.CategoryUnset,
			DebitAmount:  amount,
			Credit:       model.CategoryUnset,
			CreditAmount: amount,
		}
	case "cash_collected":
		return Entry{
			Debit:        model.CategoryCash,
			DebitAmount:  amount,
			Credit:       model.CategoryAccountsReceivable,
			CreditAmount: amount,
		}
	case "promotion", "trip":
		return Entry{
			Debit:        model.CategoryAccountsReceivable,
			DebitAmount:  amount,
			Credit:       model.CategorySales,
			CreditAmount: amount,
		}
	case "uber_fee_collection":
		return Entry{
			Debit:        model.CategoryAccountsReceivable,
			DebitAmount:  amount,
			Credit:       model.CategoryAccountsPayable,
			CreditAmount: amount,
		}
	default:
		return Entry{Debit: model.CategoryUnset, Credit: model.CategoryUnset}
	}
}
