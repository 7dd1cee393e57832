package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/chainsped/chain-backend/internal/config"
	"github.com/chainsped/chain-backend/internal/handler"
	"github.com/chainsped/chain-backend/internal/middleware"
	"github.com/chainsped/chain-backend/internal/response"
	"github.com/chainsped/chain-backend/internal/service"
	"github.com/chainsped/chain-backend/web"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Teacher      *handler.TeacherHandler
	Student      *handler.StudentHandler
	Professional *handler.ProfessionalHandler
	Event        *handler.EventHandler
	Appointment  *handler.AppointmentHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally.
	router.Use(response.RequestIDMiddleware())

	// ─── Admin UI (embedded) ───────────────────────────────────────────
	assets, err := fs.Sub(web.Assets, "static")
	if err != nil {
		panic(err)
	}
	uiGroup := router.Group("/ui")
	uiGroup.Use(middleware.CacheControl(3600))
	{
		uiGroup.StaticFS("/", http.FS(assets))
	}
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/ui/")
	})

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for login (30 requests per minute per IP).
	loginLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── Users + auth ──────────────────────────────────────────────────
	users := router.Group("/users")
	{
		users.POST("/login", loginLimiter.Middleware(), handlers.Auth.Login)
		users.POST("/logout",
			middleware.RequireAuth(authService),
			middleware.CheckActiveSession(authService),
			handlers.Auth.Logout,
		)
		users.GET("/me",
			middleware.RequireAuth(authService),
			middleware.CheckActiveSession(authService),
			handlers.Auth.Me,
		)

		users.GET("", handlers.User.ListUsers)
		users.GET("/:id", handlers.User.GetUser)
		users.POST("", handlers.User.CreateUser)
		users.PUT("/:id", handlers.User.UpdateUser)
		users.DELETE("/:id", handlers.User.DeleteUser)
	}

	// ─── Teachers ──────────────────────────────────────────────────────
	teachers := router.Group("/teachers")
	{
		teachers.GET("", handlers.Teacher.ListTeachers)
		teachers.GET("/:id", handlers.Teacher.GetTeacher)
		teachers.POST("", handlers.Teacher.CreateTeacher)
		teachers.PUT("/:id", handlers.Teacher.UpdateTeacher)
		teachers.DELETE("/:id", handlers.Teacher.DeleteTeacher)
	}

	// ─── Students ──────────────────────────────────────────────────────
	students := router.Group("/students")
	{
		students.GET("", handlers.Student.ListStudents)
		students.GET("/:id", handlers.Student.GetStudent)
		students.POST("", handlers.Student.CreateStudent)
		students.PUT("/:id", handlers.Student.UpdateStudent)
		students.DELETE("/:id", handlers.Student.DeleteStudent)
	}

	// ─── Professionals ─────────────────────────────────────────────────
	professionals := router.Group("/professionals")
	{
		professionals.GET("", handlers.Professional.ListProfessionals)
		professionals.GET("/:id", handlers.Professional.GetProfessional)
		professionals.POST("", handlers.Professional.CreateProfessional)
		professionals.PUT("/:id", handlers.Professional.UpdateProfessional)
		professionals.DELETE("/:id", handlers.Professional.DeleteProfessional)
	}

	// ─── Events ────────────────────────────────────────────────────────
	events := router.Group("/events")
	{
		events.GET("", handlers.Event.ListEvents)
		events.GET("/:id", handlers.Event.GetEvent)
		events.POST("", handlers.Event.CreateEvent)
		events.PUT("/:id", handlers.Event.UpdateEvent)
		events.DELETE("/:id", handlers.Event.DeleteEvent)
	}

	// ─── Appointments ──────────────────────────────────────────────────
	appointments := router.Group("/appointments")
	{
		appointments.GET("", handlers.Appointment.ListAppointments)
		appointments.GET("/:id", handlers.Appointment.GetAppointment)
		appointments.POST("", handlers.Appointment.CreateAppointment)
		appointments.PUT("/:id", handlers.Appointment.UpdateAppointment)
		appointments.DELETE("/:id", handlers.Appointment.DeleteAppointment)
	}

	return router
}
