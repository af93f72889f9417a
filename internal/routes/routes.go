package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/careconnect/care-marketplace/internal/audit"
	"github.com/careconnect/care-marketplace/internal/config"
	"github.com/careconnect/care-marketplace/internal/handlers"
	infraRepo "github.com/careconnect/care-marketplace/internal/infra/repository"
	"github.com/careconnect/care-marketplace/internal/middleware"
	ucBooking "github.com/careconnect/care-marketplace/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	bookingRepo := infraRepo.NewBookingGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))

	createBooking := ucBooking.NewCreateBooking(bookingRepo, dispatcher)
	confirmBooking := ucBooking.NewConfirmBooking(bookingRepo, dispatcher)
	declineBooking := ucBooking.NewDeclineBooking(bookingRepo, dispatcher)
	cancelBooking := ucBooking.NewCancelBooking(bookingRepo, dispatcher)
	completeBooking := ucBooking.NewCompleteBooking(bookingRepo, dispatcher)
	listBookings := ucBooking.NewListBookings(bookingRepo)

	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db, cfg)
	caregiverHandler := handlers.NewCaregiverHandler(db, cfg)
	memberHandler := handlers.NewMemberHandler(db, cfg)
	jobHandler := handlers.NewJobHandler(db, cfg)
	applicationHandler := handlers.NewApplicationHandler(db, cfg)
	appointmentHandler := handlers.NewAppointmentHandler(
		createBooking,
		confirmBooking,
		declineBooking,
		cancelBooking,
		completeBooking,
		listBookings,
		cfg,
	)
	publicHandler := handlers.NewPublicHandler(db, cfg)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, cfg)

	api := r.Group("/api")

	// ======================================================
	// PUBLIC
	// ======================================================

	public := api.Group("/public")
	{
		public.GET("/caregivers", publicHandler.ListCaregivers)
		public.GET("/caregivers/:id", publicHandler.GetCaregiver)
		public.GET("/jobs", publicHandler.ListOpenJobs)
	}

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// ======================================================
	// AUTHENTICATED
	// ======================================================

	secured := api.Group("")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.GET("/me", meHandler.GetMe)
		secured.PATCH("/me", meHandler.UpdateMe)
		secured.DELETE("/me", meHandler.DeleteMe)

		secured.POST("/me/caregiver", caregiverHandler.Register)
		secured.PATCH("/me/caregiver", caregiverHandler.Update)
		secured.PATCH("/me/caregiver/active", caregiverHandler.SetActive)
		secured.PATCH("/caregivers/:id/rating", caregiverHandler.UpdateRating)

		secured.PUT("/me/member", memberHandler.Upsert)
		secured.DELETE("/me/member", memberHandler.Delete)
		secured.GET("/me/member/addresses", memberHandler.ListAddresses)
		secured.POST("/me/member/addresses", memberHandler.CreateAddress)
		secured.PATCH("/me/member/addresses/:id", memberHandler.UpdateAddress)
		secured.DELETE("/me/member/addresses/:id", memberHandler.DeleteAddress)

		secured.POST("/me/jobs", jobHandler.Create)
		secured.GET("/me/jobs", jobHandler.MyJobs)
		secured.PATCH("/me/jobs/:id/close", jobHandler.Close)
		secured.GET("/me/jobs/:id/applications", jobHandler.Applications)

		secured.POST("/jobs/:id/apply", applicationHandler.Apply)
		secured.GET("/me/applications", caregiverHandler.MyApplications)
		secured.PATCH("/applications/:id/status", applicationHandler.Transition)

		secured.POST("/me/appointments", appointmentHandler.Create)
		secured.GET("/me/appointments", appointmentHandler.List)
		secured.PATCH("/me/appointments/:id/confirm", appointmentHandler.Confirm)
		secured.PATCH("/me/appointments/:id/decline", appointmentHandler.Decline)
		secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
		secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)

		secured.GET("/me/audit-logs", auditLogsHandler.List)
	}
}
