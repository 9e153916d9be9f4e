package utils

import (
	"context"
	"log"
	"time"

	"satracker/config"
	"satracker/models"

	"go.mongodb.org/mongo-driver/bson"
)

// AuditBalances recomputes every cached balance from its embedded transaction
// history and logs documents whose stored value drifted. It only reports:
// balances are never rewritten here.
func AuditBalances() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	drift := 0

	var customers []models.Customer
	cursor, err := config.CustomerCollection.Find(ctx, bson.M{})
	if err != nil {
		log.Println("balance audit: failed to fetch customers:", err)
		return
	}
	if err = cursor.All(ctx, &customers); err != nil {
		log.Println("balance audit: failed to decode customers:", err)
		return
	}
	for _, customer := range customers {
		if want := customer.LedgerBalance(); want != customer.CurrentBalance {
			drift++
			log.Printf("balance audit: customer %s stores %.2f, ledger sums to %.2f", customer.ID.Hex(), customer.CurrentBalance, want)
		}
	}

	var suppliers []models.Supplier
	cursor, err = config.SupplierCollection.Find(ctx, bson.M{})
	if err != nil {
		log.Println("balance audit: failed to fetch suppliers:", err)
		return
	}
	if err = cursor.All(ctx, &suppliers); err != nil {
		log.Println("balance audit: failed to decode suppliers:", err)
		return
	}
	for _, supplier := range suppliers {
		if want := supplier.LedgerBalance(); want != supplier.CurrentBalance {
			drift++
			log.Printf("balance audit: supplier %s stores %.2f, ledger sums to %.2f", supplier.ID.Hex(), supplier.CurrentBalance, want)
		}
	}

	var expenses []models.Expense
	cursor, err = config.ExpenseCollection.Find(ctx, bson.M{})
	if err != nil {
		log.Println("balance audit: failed to fetch expenses:", err)
		return
	}
	if err = cursor.All(ctx, &expenses); err != nil {
		log.Println("balance audit: failed to decode expenses:", err)
		return
	}
	for _, expense := range expenses {
		if want := expense.LedgerBalance(); want != expense.TotalAmount {
			drift++
			log.Printf("balance audit: expense %s stores %.2f, ledger sums to %.2f", expense.ID.Hex(), expense.TotalAmount, want)
		}
	}

	log.Printf("balance audit finished: %d document(s) with drift", drift)
}
