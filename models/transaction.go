package models

import (
	"fmt"
	"time"
)

// Transaction is a single ledger entry embedded in its parent document.
// Entries are append-only: once written they are never edited or removed.
type Transaction struct {
	Type        string    `bson:"type" json:"type"`
	Amount      float64   `bson:"amount" json:"amount"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Date        time.Time `bson:"date" json:"date"`
}

// Ledger transaction types. Customers and suppliers use debt/payment,
// expense items use expense/refund.
const (
	TransactionDebt    = "debt"
	TransactionPayment = "payment"
	TransactionExpense = "expense"
	TransactionRefund  = "refund"
)

// delta maps the transaction type onto a signed balance effect: addType
// increases the parent balance by Amount, subType decreases it.
func (t Transaction) delta(addType, subType string) (float64, error) {
	switch t.Type {
	case addType:
		return t.Amount, nil
	case subType:
		return -t.Amount, nil
	default:
		return 0, fmt.Errorf("unknown transaction type %q", t.Type)
	}
}
