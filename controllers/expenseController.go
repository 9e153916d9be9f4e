package controllers

import (
	"context"
	"net/http"
	"time"

	"satracker/config"
	"satracker/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func GetAllExpenses(c *gin.Context) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdat", Value: -1}})
	cursor, err := config.ExpenseCollection.Find(context.TODO(), bson.M{}, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch expenses"})
		return
	}
	defer cursor.Close(context.TODO())

	expenses := []models.Expense{}
	if err = cursor.All(context.TODO(), &expenses); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to decode expenses"})
		return
	}

	c.JSON(http.StatusOK, expenses)
}

func CreateExpense(c *gin.Context) {
	var expense models.Expense
	if err := c.ShouldBindJSON(&expense); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	expense.ID = primitive.NewObjectID()
	if expense.Transactions == nil {
		expense.Transactions = []models.Transaction{}
	}
	expense.CreatedAt = time.Now()
	expense.UpdatedAt = expense.CreatedAt

	if _, err := config.ExpenseCollection.InsertOne(context.TODO(), expense); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create expense"})
		return
	}

	c.JSON(http.StatusCreated, expense)
}

func UpdateExpense(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid expense ID"})
		return
	}

	var input struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	updateFields := bson.M{}
	if input.Name != "" {
		updateFields["name"] = input.Name
	}
	if input.Description != "" {
		updateFields["description"] = input.Description
	}
	if len(updateFields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No fields to update"})
		return
	}
	updateFields["updatedat"] = time.Now()

	var updated models.Expense
	err = config.ExpenseCollection.FindOneAndUpdate(
		context.TODO(),
		bson.M{"_id": objID},
		bson.M{"$set": updateFields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"message": "Expense not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update expense"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func DeleteExpense(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid expense ID"})
		return
	}

	result, err := config.ExpenseCollection.DeleteOne(context.TODO(), bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete expense"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Expense not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}

// AddExpenseTransaction appends a ledger entry to the expense item. Sign
// semantics are inverted relative to accounts: expense grows the total,
// refund shrinks it.
func AddExpenseTransaction(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid expense ID"})
		return
	}

	var input struct {
		Type        string    `json:"type" binding:"required"`
		Amount      float64   `json:"amount" binding:"required"`
		Description string    `json:"description"`
		Date        time.Time `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var expense models.Expense
	err = config.ExpenseCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&expense)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Expense not found"})
		return
	}

	transaction := models.Transaction{
		Type:        input.Type,
		Amount:      input.Amount,
		Description: input.Description,
		Date:        input.Date,
	}
	if err := expense.ApplyTransaction(transaction); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	expense.UpdatedAt = time.Now()

	_, err = config.ExpenseCollection.UpdateOne(
		context.TODO(),
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{
			"transactions": expense.Transactions,
			"totalamount":  expense.TotalAmount,
			"updatedat":    expense.UpdatedAt,
		}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add transaction"})
		return
	}

	c.JSON(http.StatusOK, expense)
}
