package handlers

import (
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the HTTP surface onto a gin engine. Paths keep
// their trailing slashes for compatibility with the existing frontend.
func RegisterRoutes(r *gin.Engine, auth *AuthHandler, task *TaskHandler, category *CategoryHandler, contact *ContactHandler) {
	// Public routes
	r.POST("/create_user/", auth.CreateUser)
	r.POST("/login/", auth.Login)

	// Protected routes
	protected := r.Group("/")
	protected.Use(middleware.RequireAuth())
	{
		protected.POST("/logout/", auth.Logout)
		protected.GET("/check_auth/", auth.CheckAuth)
		protected.DELETE("/delete_user/", auth.DeleteUser)
		protected.GET("/users/", auth.ListUsers)

		protected.GET("/tasks/", task.ListTasks)
		protected.POST("/tasks/", task.CreateTask)
		protected.PATCH("/tasks/:id/", task.UpdateTask)
		protected.DELETE("/tasks/:id/", task.DeleteTask)

		protected.GET("/categorys/", category.ListCategories)
		protected.POST("/categorys/", category.CreateCategory)

		protected.POST("/contacts/", contact.CreateContact)
		protected.PATCH("/contacts/:id/", contact.UpdateContact)
		protected.DELETE("/contacts/:id/", contact.DeleteContact)
	}
}
