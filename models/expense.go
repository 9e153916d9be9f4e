package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Expense is an expense item with its own ledger. Sign semantics are inverted
// relative to the account ledgers: an expense transaction grows TotalAmount,
// a refund shrinks it.
type Expense struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name" binding:"required"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	TotalAmount  float64            `bson:"totalamount" json:"totalAmount"`
	Transactions []Transaction      `bson:"transactions" json:"transactions"`
	CreatedAt    time.Time          `bson:"createdat" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedat" json:"updatedAt"`
}

func (e *Expense) ApplyTransaction(t Transaction) error {
	delta, err := t.delta(TransactionExpense, TransactionRefund)
	if err != nil {
		return err
	}
	if t.Date.IsZero() {
		t.Date = time.Now()
	}
	e.Transactions = append(e.Transactions, t)
	e.TotalAmount += delta
	return nil
}

func (e *Expense) LedgerBalance() float64 {
	var total float64
	for _, t := range e.Transactions {
		if d, err := t.delta(TransactionExpense, TransactionRefund); err == nil {
			total += d
		}
	}
	return total
}
