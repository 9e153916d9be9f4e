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

func GetAllSuppliers(c *gin.Context) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdat", Value: -1}})
	cursor, err := config.SupplierCollection.Find(context.TODO(), bson.M{}, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch suppliers"})
		return
	}
	defer cursor.Close(context.TODO())

	suppliers := []models.Supplier{}
	if err = cursor.All(context.TODO(), &suppliers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to decode suppliers"})
		return
	}

	c.JSON(http.StatusOK, suppliers)
}

func CreateSupplier(c *gin.Context) {
	var supplier models.Supplier
	if err := c.ShouldBindJSON(&supplier); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	supplier.ID = primitive.NewObjectID()
	if supplier.Transactions == nil {
		supplier.Transactions = []models.Transaction{}
	}
	supplier.CreatedAt = time.Now()
	supplier.UpdatedAt = supplier.CreatedAt

	if _, err := config.SupplierCollection.InsertOne(context.TODO(), supplier); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create supplier"})
		return
	}

	c.JSON(http.StatusCreated, supplier)
}

func UpdateSupplier(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid supplier ID"})
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

	var updated models.Supplier
	err = config.SupplierCollection.FindOneAndUpdate(
		context.TODO(),
		bson.M{"_id": objID},
		bson.M{"$set": updateFields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"message": "Supplier not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update supplier"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func DeleteSupplier(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid supplier ID"})
		return
	}

	result, err := config.SupplierCollection.DeleteOne(context.TODO(), bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete supplier"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Supplier not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted"})
}

func AddSupplierTransaction(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid supplier ID"})
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

	var supplier models.Supplier
	err = config.SupplierCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&supplier)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Supplier not found"})
		return
	}

	transaction := models.Transaction{
		Type:        input.Type,
		Amount:      input.Amount,
		Description: input.Description,
		Date:        input.Date,
	}
	if err := supplier.ApplyTransaction(transaction); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	supplier.UpdatedAt = time.Now()

	_, err = config.SupplierCollection.UpdateOne(
		context.TODO(),
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{
			"transactions":   supplier.Transactions,
			"currentbalance": supplier.CurrentBalance,
			"updatedat":      supplier.UpdatedAt,
		}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add transaction"})
		return
	}

	c.JSON(http.StatusOK, supplier)
}
