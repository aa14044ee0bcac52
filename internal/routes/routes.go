package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"hospital-portal-server/internal/config"
	"hospital-portal-server/internal/handlers"
	"hospital-portal-server/internal/middleware"
	"hospital-portal-server/internal/models"
	"hospital-portal-server/internal/store"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, log zerolog.Logger) {
	// Stores
	appointmentStore := store.NewAppointmentStore(db, log)
	noteStore := store.NewNoteStore(db, log)
	recordArchive := store.NewRecordArchive(db)
	catalog := store.NewCatalog(db, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentStore, noteStore)
	noteHandler := handlers.NewMedicalNoteHandler(noteStore)
	historyHandler := handlers.NewMedicalHistoryHandler(recordArchive)
	catalogHandler := handlers.NewCatalogHandler(catalog)
	contactHandler := handlers.NewContactHandler(db)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh-token", authHandler.RefreshToken)
		}

		// Reference catalog, loaded by the booking UI before login
		catalogRoutes := public.Group("/catalog")
		{
			catalogRoutes.GET("/specialties", catalogHandler.GetSpecialties)
			catalogRoutes.GET("/doctors", catalogHandler.GetDoctors)
			catalogRoutes.GET("/doctors/:id", catalogHandler.GetDoctorByID)
			catalogRoutes.GET("/time-slots", catalogHandler.GetTimeSlots)
			catalogRoutes.GET("/packages", catalogHandler.GetPackages)
			catalogRoutes.GET("/packages/:id", catalogHandler.GetPackageByID)
		}

		public.POST("/contact", contactHandler.SubmitMessage)
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/profile", authHandler.GetProfile)
			authRoutesPrivate.PUT("/profile", authHandler.UpdateProfile)
		}

		// Patient lookups for the receptionist walk-in form
		userRoutes := private.Group("/users")
		userRoutes.Use(middleware.RoleAuthMiddleware(models.RoleReceptionist))
		{
			userRoutes.GET("/patients", userHandler.GetPatients)
			userRoutes.GET("/patients/:id", userHandler.GetPatientByID)
		}

		// Appointment routes
		appointmentRoutes := private.Group("/appointments")
		{
			// Patients book for themselves, receptionists enter walk-ins
			appointmentRoutes.POST("", middleware.RoleAuthMiddleware(models.RolePatient, models.RoleReceptionist), appointmentHandler.CreateAppointment)

			// Role-dependent listing: own / assigned / all
			appointmentRoutes.GET("", appointmentHandler.GetAppointmentsForUser)

			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)

			// Status transitions; store enforces role preconditions
			appointmentRoutes.PATCH("/:id/status", appointmentHandler.UpdateAppointmentStatus)

			// Data-retention hard delete
			appointmentRoutes.DELETE("/:id", middleware.RoleAuthMiddleware(models.RoleReceptionist), appointmentHandler.DeleteAppointment)

			appointmentRoutes.GET("/:id/notes", appointmentHandler.GetAppointmentNotes)
		}

		// Doctors record clinical notes when attending a patient
		private.POST("/medical-notes", middleware.RoleAuthMiddleware(models.RoleDoctor), noteHandler.CreateNote)

		// Medical history, assembled from appointments and notes
		historyRoutes := private.Group("/medical-history")
		{
			historyRoutes.GET("", historyHandler.GetHistory)
			historyRoutes.GET("/:id", historyHandler.GetRecord)
		}

		// Receptionist contact inbox
		contactRoutes := private.Group("/contact-messages")
		contactRoutes.Use(middleware.RoleAuthMiddleware(models.RoleReceptionist))
		{
			contactRoutes.GET("", contactHandler.GetMessages)
			contactRoutes.PATCH("/:id/resolve", contactHandler.ResolveMessage)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
