package controllers

import (
	"context"
	"net/http"
	"time"

	"satracker/config"
	"satracker/models"
	"satracker/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func GetAllUsers(c *gin.Context) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdat", Value: -1}})
	cursor, err := config.UserCollection.Find(context.TODO(), bson.M{}, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch users"})
		return
	}
	defer cursor.Close(context.TODO())

	users := []models.User{}
	if err = cursor.All(context.TODO(), &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to decode users"})
		return
	}

	for i := range users {
		users[i].Password = ""
	}

	c.JSON(http.StatusOK, users)
}

func GetUserByID(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	var user models.User
	err = config.UserCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&user)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	user.Password = ""

	c.JSON(http.StatusOK, user)
}

func CreateUser(c *gin.Context) {
	var input struct {
		Username   string            `json:"username" binding:"required"`
		Email      string            `json:"email" binding:"required"`
		Password   string            `json:"password" binding:"required"`
		Role       string            `json:"role"`
		Financials models.Financials `json:"financials"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	count, err := config.UserCollection.CountDocuments(context.TODO(), bson.M{"$or": []bson.M{
		{"username": input.Username},
		{"email": input.Email},
	}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username or email already exists"})
		return
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error hashing password"})
		return
	}

	if input.Role == "" {
		input.Role = models.RolePersonel
	}
	if input.Financials.SalaryType == "" {
		input.Financials.SalaryType = models.SalaryMonthly
	}

	user := models.User{
		ID:         primitive.NewObjectID(),
		Username:   input.Username,
		Email:      input.Email,
		Password:   hashedPassword,
		Role:       input.Role,
		Financials: input.Financials,
		CreatedAt:  time.Now(),
	}
	user.UpdatedAt = user.CreatedAt

	if _, err := config.UserCollection.InsertOne(context.TODO(), user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user"})
		return
	}

	token, err := utils.GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
		return
	}

	user.Password = ""
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

func UpdateUser(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	var input struct {
		Username   string             `json:"username"`
		Email      string             `json:"email"`
		Password   string             `json:"password"`
		Role       string             `json:"role"`
		Financials *models.Financials `json:"financials"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	updateFields := bson.M{}
	if input.Username != "" {
		updateFields["username"] = input.Username
	}
	if input.Email != "" {
		updateFields["email"] = input.Email
	}
	if input.Password != "" {
		hashedPassword, err := utils.HashPassword(input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error hashing password"})
			return
		}
		updateFields["password"] = hashedPassword
	}
	if input.Role != "" {
		if input.Role != models.RoleAdmin && input.Role != models.RolePersonel {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role"})
			return
		}
		updateFields["role"] = input.Role
	}
	if input.Financials != nil {
		if input.Financials.SalaryType == "" {
			input.Financials.SalaryType = models.SalaryMonthly
		}
		updateFields["financials"] = *input.Financials
	}
	if len(updateFields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No fields to update"})
		return
	}
	updateFields["updatedat"] = time.Now()

	var updated models.User
	err = config.UserCollection.FindOneAndUpdate(
		context.TODO(),
		bson.M{"_id": objID},
		bson.M{"$set": updateFields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update user"})
		return
	}

	updated.Password = ""
	c.JSON(http.StatusOK, updated)
}

func DeleteUser(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	result, err := config.UserCollection.DeleteOne(context.TODO(), bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete user"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// GetUserStats returns the payroll aggregation shown on the personnel
// dashboard. Pure read-side computation, nothing is persisted.
func GetUserStats(c *gin.Context) {
	cursor, err := config.UserCollection.Find(context.TODO(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch users"})
		return
	}
	defer cursor.Close(context.TODO())

	var users []models.User
	if err = cursor.All(context.TODO(), &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to decode users"})
		return
	}

	c.JSON(http.StatusOK, models.StaffCosts(users))
}
