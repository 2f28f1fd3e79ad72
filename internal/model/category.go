package model

// Category is an accounting category used as a journal debit/credit label.
// The set is fixed: this ledger tracks one depositor against a hardcoded
// chart, not a user-editable one.
type Category string

const (
	CategoryUnset              Category = "unset"
	CategorySales              Category = "sales"
	CategoryAccountsReceivable Category = "accounts_receivable"
	CategoryAccountsPayable    Category = "accounts_payable"
	CategoryCash               Category = "cash"
	CategoryDeposit            Category = "deposit"
)

// categoryLabels holds the display strings the destination import tool
// expects for each category.
var categoryLabels = map[Category]string{
	CategoryUnset:              "未設定",
	CategorySales:              "売上",
	CategoryAccountsReceivable: "売掛金",
	CategoryAccountsPayable:    "未払金",
	CategoryCash:               "現金",
	CategoryDeposit:            "預金",
}

// Label returns the display string for the category.
func (c Category) Label() string {
	return categoryLabels[c]
}
