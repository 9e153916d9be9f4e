package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Customer struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name           string             `bson:"name" json:"name" binding:"required"`
	Phone          string             `bson:"phone" json:"phone" binding:"required"`
	Email          string             `bson:"email,omitempty" json:"email,omitempty"`
	Address        string             `bson:"address,omitempty" json:"address,omitempty"`
	TaxOffice      string             `bson:"taxoffice,omitempty" json:"taxOffice,omitempty"`
	TaxNumber      string             `bson:"taxnumber,omitempty" json:"taxNumber,omitempty"`
	CurrentBalance float64            `bson:"currentbalance" json:"currentBalance"`
	Transactions   []Transaction      `bson:"transactions" json:"transactions"`
	CreatedAt      time.Time          `bson:"createdat" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedat" json:"updatedAt"`
}

// ApplyTransaction appends t to the ledger and moves the running balance by
// its signed amount: debt increases what the customer owes, payment decreases
// it. A zero date defaults to the append time. The ledger is left untouched
// when the type is not debt or payment.
func (c *Customer) ApplyTransaction(t Transaction) error {
	delta, err := t.delta(TransactionDebt, TransactionPayment)
	if err != nil {
		return err
	}
	if t.Date.IsZero() {
		t.Date = time.Now()
	}
	c.Transactions = append(c.Transactions, t)
	c.CurrentBalance += delta
	return nil
}

// LedgerBalance recomputes the balance from the full transaction history.
// The stored CurrentBalance is an incrementally maintained cache; this is
// what the nightly audit compares it against.
func (c *Customer) LedgerBalance() float64 {
	var total float64
	for _, t := range c.Transactions {
		if d, err := t.delta(TransactionDebt, TransactionPayment); err == nil {
			total += d
		}
	}
	return total
}
