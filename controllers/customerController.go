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

// GetAllCustomers returns every customer, newest first, with full
// transaction history.
func GetAllCustomers(c *gin.Context) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdat", Value: -1}})
	cursor, err := config.CustomerCollection.Find(context.TODO(), bson.M{}, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch customers"})
		return
	}
	defer cursor.Close(context.TODO())

	customers := []models.Customer{}
	if err = cursor.All(context.TODO(), &customers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to decode customers"})
		return
	}

	c.JSON(http.StatusOK, customers)
}

func CreateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	customer.ID = primitive.NewObjectID()
	if customer.Transactions == nil {
		customer.Transactions = []models.Transaction{}
	}
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = customer.CreatedAt

	if _, err := config.CustomerCollection.InsertOne(context.TODO(), customer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create customer"})
		return
	}

	c.JSON(http.StatusCreated, customer)
}

func UpdateCustomer(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid customer ID"})
		return
	}

	var input struct {
		Name      string `json:"name"`
		Phone     string `json:"phone"`
		Email     string `json:"email"`
		Address   string `json:"address"`
		TaxOffice string `json:"taxOffice"`
		TaxNumber string `json:"taxNumber"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	updateFields := bson.M{}
	if input.Name != "" {
		updateFields["name"] = input.Name
	}
	if input.Phone != "" {
		updateFields["phone"] = input.Phone
	}
	if input.Email != "" {
		updateFields["email"] = input.Email
	}
	if input.Address != "" {
		updateFields["address"] = input.Address
	}
	if input.TaxOffice != "" {
		updateFields["taxoffice"] = input.TaxOffice
	}
	if input.TaxNumber != "" {
		updateFields["taxnumber"] = input.TaxNumber
	}
	if len(updateFields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No fields to update"})
		return
	}
	updateFields["updatedat"] = time.Now()

	var updated models.Customer
	err = config.CustomerCollection.FindOneAndUpdate(
		context.TODO(),
		bson.M{"_id": objID},
		bson.M{"$set": updateFields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update customer"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func DeleteCustomer(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid customer ID"})
		return
	}

	result, err := config.CustomerCollection.DeleteOne(context.TODO(), bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete customer"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}

// AddCustomerTransaction appends a ledger entry to the customer and applies
// its signed delta to the running balance in one document write.
func AddCustomerTransaction(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid customer ID"})
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

	var customer models.Customer
	err = config.CustomerCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&customer)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}

	transaction := models.Transaction{
		Type:        input.Type,
		Amount:      input.Amount,
		Description: input.Description,
		Date:        input.Date,
	}
	if err := customer.ApplyTransaction(transaction); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	customer.UpdatedAt = time.Now()

	_, err = config.CustomerCollection.UpdateOne(
		context.TODO(),
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{
			"transactions":   customer.Transactions,
			"currentbalance": customer.CurrentBalance,
			"updatedat":      customer.UpdatedAt,
		}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add transaction"})
		return
	}

	c.JSON(http.StatusOK, customer)
}
