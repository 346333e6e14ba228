package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/arda/gradlink/internal/app/controllers"
)

// SetupRouter configures all application routes. Identity is carried in URL
// path segments, so every route is public; the paths are the contract.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	alumniController *controllers.AlumniController,
	adminController *controllers.AdminController,
) {
	// --- Public pages and auth ---
	router.StaticFile("/", "public/index.html")
	router.StaticFile("/login", "public/login.html")
	router.POST("/login", authController.Login)

	register := router.Group("/register")
	{
		register.POST("/student", authController.RegisterStudent)
		register.POST("/alumni", authController.RegisterAlumni)
	}

	// --- Student routes ---
	student := router.Group("/student")
	{
		student.GET("/dashboard/:id", studentController.Dashboard)
		student.POST("/mentor-request/:mentorId/:studentId", studentController.RequestMentorship)
		student.POST("/register-event/:eventId/:studentId", studentController.RegisterEvent)
	}

	// --- Alumni routes ---
	alumni := router.Group("/alumni")
	{
		alumni.GET("/dashboard/:id", alumniController.Dashboard)
		alumni.POST("/request-accept/:requestId/:alumniId", alumniController.AcceptRequest)
	}

	// --- Admin routes ---
	admin := router.Group("/admin")
	{
		admin.GET("/dashboard/:id", adminController.Dashboard)
		admin.POST("/events/create/:adminId", adminController.CreateEvent)
		admin.POST("/events/delete/:eventId/:adminId", adminController.DeleteEvent)
		admin.POST("/users/delete/:userId/:adminId", adminController.DeleteUser)
	}
}
