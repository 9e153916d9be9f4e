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

// orderResponse flattens an order with the partial customer projection the
// dashboard shows (name, phone, address). The customer reference is weak:
// a deleted customer renders as a bare id.
func orderResponse(order models.Order, customer *models.Customer) gin.H {
	resp := gin.H{
		"id":          order.ID.Hex(),
		"width":       order.Width,
		"height":      order.Height,
		"ralCode":     order.RalCode,
		"glassColor":  order.GlassColor,
		"cost":        order.Cost,
		"price":       order.Price,
		"status":      order.Status,
		"description": order.Description,
		"createdAt":   order.CreatedAt,
		"updatedAt":   order.UpdatedAt,
	}
	if customer != nil {
		resp["customer"] = gin.H{
			"id":      customer.ID.Hex(),
			"name":    customer.Name,
			"phone":   customer.Phone,
			"address": customer.Address,
		}
	} else {
		resp["customer"] = gin.H{"id": order.Customer.Hex()}
	}
	return resp
}

func lookupOrderCustomer(id primitive.ObjectID) *models.Customer {
	var customer models.Customer
	err := config.CustomerCollection.FindOne(context.TODO(), bson.M{"_id": id}).Decode(&customer)
	if err != nil {
		return nil
	}
	return &customer
}

func GetAllOrders(c *gin.Context) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdat", Value: -1}})
	cursor, err := config.OrderCollection.Find(context.TODO(), bson.M{}, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
		return
	}
	defer cursor.Close(context.TODO())

	var orders []models.Order
	if err = cursor.All(context.TODO(), &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to decode orders"})
		return
	}

	// Resolve customer projections in one query.
	customerIDs := []primitive.ObjectID{}
	for _, order := range orders {
		customerIDs = append(customerIDs, order.Customer)
	}
	customersByID := map[primitive.ObjectID]*models.Customer{}
	if len(customerIDs) > 0 {
		custCursor, err := config.CustomerCollection.Find(context.TODO(), bson.M{"_id": bson.M{"$in": customerIDs}})
		if err == nil {
			var customers []models.Customer
			if err = custCursor.All(context.TODO(), &customers); err == nil {
				for i := range customers {
					customersByID[customers[i].ID] = &customers[i]
				}
			}
		}
	}

	response := []gin.H{}
	for _, order := range orders {
		response = append(response, orderResponse(order, customersByID[order.Customer]))
	}

	c.JSON(http.StatusOK, response)
}

func CreateOrder(c *gin.Context) {
	var input struct {
		Customer    string  `json:"customer" binding:"required"`
		Width       float64 `json:"width" binding:"required"`
		Height      float64 `json:"height" binding:"required"`
		RalCode     string  `json:"ralCode"`
		GlassColor  string  `json:"glassColor"`
		Cost        float64 `json:"cost" binding:"required"`
		Price       float64 `json:"price" binding:"required"`
		Description string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	customerID, err := primitive.ObjectIDFromHex(input.Customer)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid customer ID"})
		return
	}
	customer := lookupOrderCustomer(customerID)
	if customer == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Customer not found"})
		return
	}

	if input.RalCode == "" {
		input.RalCode = "Standart"
	}
	if input.GlassColor == "" {
		input.GlassColor = models.GlassClear
	}
	if input.GlassColor != models.GlassClear && input.GlassColor != models.GlassSmoked {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid glass color"})
		return
	}

	order := models.Order{
		ID:          primitive.NewObjectID(),
		Customer:    customerID,
		Width:       input.Width,
		Height:      input.Height,
		RalCode:     input.RalCode,
		GlassColor:  input.GlassColor,
		Cost:        input.Cost,
		Price:       input.Price,
		Status:      models.OrderStatusReceived,
		Description: input.Description,
		CreatedAt:   time.Now(),
	}
	order.UpdatedAt = order.CreatedAt

	if _, err := config.OrderCollection.InsertOne(context.TODO(), order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, orderResponse(order, customer))
}

func UpdateOrder(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
		return
	}

	var input struct {
		Customer    string   `json:"customer"`
		Width       *float64 `json:"width"`
		Height      *float64 `json:"height"`
		RalCode     string   `json:"ralCode"`
		GlassColor  string   `json:"glassColor"`
		Cost        *float64 `json:"cost"`
		Price       *float64 `json:"price"`
		Description *string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	updateFields := bson.M{}
	if input.Customer != "" {
		customerID, err := primitive.ObjectIDFromHex(input.Customer)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid customer ID"})
			return
		}
		if lookupOrderCustomer(customerID) == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Customer not found"})
			return
		}
		updateFields["customer"] = customerID
	}
	if input.Width != nil {
		updateFields["width"] = *input.Width
	}
	if input.Height != nil {
		updateFields["height"] = *input.Height
	}
	if input.RalCode != "" {
		updateFields["ralcode"] = input.RalCode
	}
	if input.GlassColor != "" {
		if input.GlassColor != models.GlassClear && input.GlassColor != models.GlassSmoked {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid glass color"})
			return
		}
		updateFields["glasscolor"] = input.GlassColor
	}
	if input.Cost != nil {
		updateFields["cost"] = *input.Cost
	}
	if input.Price != nil {
		updateFields["price"] = *input.Price
	}
	if input.Description != nil {
		updateFields["description"] = *input.Description
	}
	if len(updateFields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No fields to update"})
		return
	}
	updateFields["updatedat"] = time.Now()

	var updated models.Order
	err = config.OrderCollection.FindOneAndUpdate(
		context.TODO(),
		bson.M{"_id": objID},
		bson.M{"$set": updateFields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, orderResponse(updated, lookupOrderCustomer(updated.Customer)))
}

// UpdateOrderStatus moves the order to any of the seven lifecycle statuses.
// Status is the only field touched; cost, price and the customer ledger are
// never affected here.
func UpdateOrderStatus(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if !models.ValidOrderStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order status"})
		return
	}

	var updated models.Order
	err = config.OrderCollection.FindOneAndUpdate(
		context.TODO(),
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"status": input.Status, "updatedat": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, orderResponse(updated, lookupOrderCustomer(updated.Customer)))
}

func DeleteOrder(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
		return
	}

	result, err := config.OrderCollection.DeleteOne(context.TODO(), bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete order"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}
