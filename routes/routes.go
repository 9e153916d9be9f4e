package routes

import (
	"satracker/controllers"
	"satracker/middleware"

	"github.com/gin-gonic/gin"
)

func InitializeRoutes(router *gin.Engine) {
	// Public auth surface
	router.POST("/api/users", controllers.CreateUser)
	router.POST("/api/users/signin", controllers.Login)
	router.POST("/api/users/forgot-password", controllers.ForgotPassword)
	router.POST("/api/users/verify-otp", controllers.VerifyOtp)
	router.POST("/api/users/reset-password", controllers.ResetPassword)

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("/users", controllers.GetAllUsers)
		api.GET("/users/stats", controllers.GetUserStats)
		api.GET("/users/:id", controllers.GetUserByID)
		api.PUT("/users/:id", controllers.UpdateUser)
		api.DELETE("/users/:id", controllers.DeleteUser)

		api.GET("/customers", controllers.GetAllCustomers)
		api.POST("/customers", controllers.CreateCustomer)
		api.PUT("/customers/:id", controllers.UpdateCustomer)
		api.DELETE("/customers/:id", controllers.DeleteCustomer)
		api.POST("/customers/:id/transaction", controllers.AddCustomerTransaction)

		api.GET("/suppliers", controllers.GetAllSuppliers)
		api.POST("/suppliers", controllers.CreateSupplier)
		api.PUT("/suppliers/:id", controllers.UpdateSupplier)
		api.DELETE("/suppliers/:id", controllers.DeleteSupplier)
		api.POST("/suppliers/:id/transaction", controllers.AddSupplierTransaction)

		api.GET("/expenses", controllers.GetAllExpenses)
		api.POST("/expenses", controllers.CreateExpense)
		api.PUT("/expenses/:id", controllers.UpdateExpense)
		api.DELETE("/expenses/:id", controllers.DeleteExpense)
		api.POST("/expenses/:id/transaction", controllers.AddExpenseTransaction)

		api.GET("/orders", controllers.GetAllOrders)
		api.POST("/orders", controllers.CreateOrder)
		api.PUT("/orders/:id", controllers.UpdateOrder)
		api.PATCH("/orders/:id/status", controllers.UpdateOrderStatus)
		api.DELETE("/orders/:id", controllers.DeleteOrder)
	}
}
