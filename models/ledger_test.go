package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCustomerApplyTransaction(t *testing.T) {
	t.Run("debt then payment", func(t *testing.T) {
		customer := Customer{}

		err := customer.ApplyTransaction(Transaction{Type: TransactionDebt, Amount: 100})
		assert.NoError(t, err)
		assert.Equal(t, 100.0, customer.CurrentBalance)

		err = customer.ApplyTransaction(Transaction{Type: TransactionPayment, Amount: 40})
		assert.NoError(t, err)
		assert.Equal(t, 60.0, customer.CurrentBalance)
	})

	t.Run("unknown type leaves ledger untouched", func(t *testing.T) {
		customer := Customer{CurrentBalance: 50}
		err := customer.ApplyTransaction(Transaction{Type: "transfer", Amount: 10})
		assert.Error(t, err)
		assert.Equal(t, 50.0, customer.CurrentBalance)
		assert.Len(t, customer.Transactions, 0)
	})

	t.Run("zero date defaults to append time", func(t *testing.T) {
		customer := Customer{}
		before := time.Now()
		err := customer.ApplyTransaction(Transaction{Type: TransactionDebt, Amount: 1})
		assert.NoError(t, err)
		assert.False(t, customer.Transactions[0].Date.Before(before))
	})

	t.Run("explicit date is preserved", func(t *testing.T) {
		customer := Customer{}
		date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
		err := customer.ApplyTransaction(Transaction{Type: TransactionDebt, Amount: 1, Date: date})
		assert.NoError(t, err)
		assert.Equal(t, date, customer.Transactions[0].Date)
	})
}

func TestCustomerBalanceLaw(t *testing.T) {
	// Final balance must equal sum(debt) - sum(payment) for any sequence.
	sequence := []Transaction{
		{Type: TransactionDebt, Amount: 250},
		{Type: TransactionPayment, Amount: 100},
		{Type: TransactionDebt, Amount: 75.5},
		{Type: TransactionPayment, Amount: 25.5},
		{Type: TransactionDebt, Amount: 300},
	}

	customer := Customer{}
	var debts, payments float64
	for _, tx := range sequence {
		assert.NoError(t, customer.ApplyTransaction(tx))
		if tx.Type == TransactionDebt {
			debts += tx.Amount
		} else {
			payments += tx.Amount
		}
	}

	assert.Equal(t, debts-payments, customer.CurrentBalance)
	assert.Equal(t, customer.CurrentBalance, customer.LedgerBalance())
}

func TestCustomerTransactionOrderPreserved(t *testing.T) {
	customer := Customer{}
	descriptions := []string{"first", "second", "third", "fourth"}
	for _, d := range descriptions {
		err := customer.ApplyTransaction(Transaction{Type: TransactionDebt, Amount: 1, Description: d})
		assert.NoError(t, err)
	}

	assert.Len(t, customer.Transactions, len(descriptions))
	for i, d := range descriptions {
		assert.Equal(t, d, customer.Transactions[i].Description)
	}
}

func TestSupplierApplyTransaction(t *testing.T) {
	supplier := Supplier{}

	assert.NoError(t, supplier.ApplyTransaction(Transaction{Type: TransactionDebt, Amount: 500}))
	assert.NoError(t, supplier.ApplyTransaction(Transaction{Type: TransactionPayment, Amount: 200}))
	assert.Equal(t, 300.0, supplier.CurrentBalance)
	assert.Equal(t, 300.0, supplier.LedgerBalance())

	// Expense types do not belong to the account ledger.
	assert.Error(t, supplier.ApplyTransaction(Transaction{Type: TransactionExpense, Amount: 10}))
	assert.Equal(t, 300.0, supplier.CurrentBalance)
}

func TestExpenseApplyTransaction(t *testing.T) {
	expense := Expense{}

	err := expense.ApplyTransaction(Transaction{Type: TransactionExpense, Amount: 500})
	assert.NoError(t, err)
	assert.Equal(t, 500.0, expense.TotalAmount)

	err = expense.ApplyTransaction(Transaction{Type: TransactionRefund, Amount: 200})
	assert.NoError(t, err)
	assert.Equal(t, 300.0, expense.TotalAmount)

	assert.Equal(t, 300.0, expense.LedgerBalance())

	// Account types are rejected on an expense ledger.
	assert.Error(t, expense.ApplyTransaction(Transaction{Type: TransactionDebt, Amount: 10}))
	assert.Len(t, expense.Transactions, 2)
}

func TestLedgerBalanceDetectsDrift(t *testing.T) {
	customer := Customer{}
	assert.NoError(t, customer.ApplyTransaction(Transaction{Type: TransactionDebt, Amount: 120}))

	// Simulate a direct document edit behind the cache's back.
	customer.CurrentBalance = 999

	assert.Equal(t, 120.0, customer.LedgerBalance())
	assert.NotEqual(t, customer.CurrentBalance, customer.LedgerBalance())
}
