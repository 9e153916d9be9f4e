package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Supplier mirrors Customer: same ledger, same balance semantics, but the
// balance tracks what the business owes the supplier.
type Supplier struct {
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

func (s *Supplier) ApplyTransaction(t Transaction) error {
	delta, err := t.delta(TransactionDebt, TransactionPayment)
	if err != nil {
		return err
	}
	if t.Date.IsZero() {
		t.Date = time.Now()
	}
	s.Transactions = append(s.Transactions, t)
	s.CurrentBalance += delta
	return nil
}

func (s *Supplier) LedgerBalance() float64 {
	var total float64
	for _, t := range s.Transactions {
		if d, err := t.delta(TransactionDebt, TransactionPayment); err == nil {
			total += d
		}
	}
	return total
}
