package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/campushub/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	healthController *controllers.HealthController,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	projectController *controllers.ProjectController,
) {
	router.GET("/health", healthController.Status)

	api := router.Group("/api")

	courses := api.Group("/courses")
	{
		courses.POST("", courseController.CreateCourse)
		courses.GET("", courseController.ListCourses)
	}

	projects := api.Group("/projects")
	{
		projects.POST("", projectController.CreateProject)
		projects.GET("", projectController.ListProjects)
		projects.GET("/:id", projectController.GetProject)
		projects.PUT("/:id", projectController.ReplaceProject)
		projects.PATCH("/:id", projectController.PatchProject)
	}

	users := api.Group("/users")
	{
		users.POST("", userController.CreateUser)
		users.GET("", userController.ListUsers)
		users.GET("/:id", userController.GetUser)
		users.PUT("/:id", userController.ReplaceUser)
		users.PATCH("/:id", userController.PatchUser)
		users.DELETE("/:id", userController.DeleteUser)

		// Project routes nested under a user
		users.GET("/:id/projects", projectController.ListProjectsByUser)
		users.POST("/:id/projects", projectController.CreateProjectForUser)
	}
}
