package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/careconnect/care-marketplace/internal/audit"
	"github.com/careconnect/care-marketplace/internal/config"
	infraRepo "github.com/careconnect/care-marketplace/internal/infra/repository"
	"github.com/careconnect/care-marketplace/internal/middleware"
	"github.com/careconnect/care-marketplace/internal/models"
	ucBooking "github.com/careconnect/care-marketplace/internal/usecase/booking"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testAggregatorToken = "test-aggregator-secret"

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		ServerPort:      "0",
		AggregatorToken: testAggregatorToken,
		LockTimeout:     time.Second,
	}
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Caregiver{},
		&models.Member{},
		&models.Address{},
		&models.Job{},
		&models.JobApplication{},
		&models.Appointment{},
		&models.AuditLog{},
	))

	return db
}

// testAuth replaces the JWT middleware: the acting user comes from the
// X-Test-User header.
func testAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if v := c.GetHeader("X-Test-User"); v != "" {
			id, err := strconv.ParseUint(v, 10, 64)
			if err == nil {
				c.Set(middleware.ContextUserID, uint(id))
			}
		}
		c.Next()
	}
}

func newTestRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	return newTestRouterWithConfig(t, db, testConfig())
}

func newTestRouterWithConfig(t *testing.T, db *gorm.DB, cfg *config.Config) *gin.Engine {
	t.Helper()

	bookingRepo := infraRepo.NewBookingGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))

	authHandler := NewAuthHandler(db, cfg)
	meHandler := NewMeHandler(db, cfg)
	caregiverHandler := NewCaregiverHandler(db, cfg)
	memberHandler := NewMemberHandler(db, cfg)
	jobHandler := NewJobHandler(db, cfg)
	applicationHandler := NewApplicationHandler(db, cfg)
	appointmentHandler := NewAppointmentHandler(
		ucBooking.NewCreateBooking(bookingRepo, dispatcher),
		ucBooking.NewConfirmBooking(bookingRepo, dispatcher),
		ucBooking.NewDeclineBooking(bookingRepo, dispatcher),
		ucBooking.NewCancelBooking(bookingRepo, dispatcher),
		ucBooking.NewCompleteBooking(bookingRepo, dispatcher),
		ucBooking.NewListBookings(bookingRepo),
		cfg,
	)
	publicHandler := NewPublicHandler(db, cfg)
	auditLogsHandler := NewAuditLogsHandler(db, cfg)

	r := gin.New()
	api := r.Group("/api")

	public := api.Group("/public")
	public.GET("/caregivers", publicHandler.ListCaregivers)
	public.GET("/caregivers/:id", publicHandler.GetCaregiver)
	public.GET("/jobs", publicHandler.ListOpenJobs)

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	secured := api.Group("")
	secured.Use(testAuth())
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

	return r
}

func doRequest(
	t *testing.T,
	r *gin.Engine,
	method, path string,
	asUser uint,
	body any,
) *httptest.ResponseRecorder {
	t.Helper()
	return doRequestWithHeaders(t, r, method, path, asUser, body, nil)
}

func doRequestWithHeaders(
	t *testing.T,
	r *gin.Engine,
	method, path string,
	asUser uint,
	body any,
	headers map[string]string,
) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if asUser != 0 {
		req.Header.Set("X-Test-User", strconv.FormatUint(uint64(asUser), 10))
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out),
		"status=%d body=%s", w.Code, w.Body.String())
}

// --------- Seed helpers ---------

var emailSeq int

func nextEmail(prefix string) string {
	emailSeq++
	return fmt.Sprintf("%s-%d@example.com", prefix, emailSeq)
}

func createUser(t *testing.T, db *gorm.DB, prefix string) *models.User {
	t.Helper()

	user := models.User{
		Email:        nextEmail(prefix),
		GivenName:    "Test",
		Surname:      "User",
		City:         "Almaty",
		Phone:        "77081234567",
		PasswordHash: "hash",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createCaregiver(t *testing.T, db *gorm.DB, rate, rating float64, reviews int) *models.Caregiver {
	t.Helper()

	user := createUser(t, db, "caregiver")
	cg := models.Caregiver{
		UserID:         user.ID,
		Gender:         models.GenderFemale,
		CaregivingType: models.CaregivingBabysitter,
		HourlyRate:     rate,
		Active:         true,
		Rating:         rating,
		ReviewCount:    reviews,
	}
	require.NoError(t, db.Create(&cg).Error)
	return &cg
}

func createMember(t *testing.T, db *gorm.DB) *models.Member {
	t.Helper()

	user := createUser(t, db, "member")
	mb := models.Member{
		UserID:               user.ID,
		DependentDescription: "Two kids",
	}
	require.NoError(t, db.Create(&mb).Error)
	return &mb
}

func createJob(t *testing.T, db *gorm.DB, memberID uint) *models.Job {
	t.Helper()

	job := models.Job{
		MemberUserID:           memberID,
		RequiredCaregivingType: models.CaregivingBabysitter,
		DatePosted:             time.Now(),
		Status:                 models.JobStatusOpen,
		Frequency:              models.FrequencyAsNeeded,
	}
	require.NoError(t, db.Create(&job).Error)
	return &job
}

// waitForAudit polls for an async audit entry to land.
func waitForAudit(t *testing.T, db *gorm.DB, userID uint, action string) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		var count int64
		db.Model(&models.AuditLog{}).
			Where("user_id = ? AND action = ?", userID, action).
			Count(&count)
		if count > 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("audit entry %q for user %d never arrived", action, userID)
}
