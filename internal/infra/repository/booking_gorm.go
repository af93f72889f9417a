package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/careconnect/care-marketplace/internal/domain/appointment"
	"github.com/careconnect/care-marketplace/internal/httperr"
	"github.com/careconnect/care-marketplace/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Parties
// --------------------------------------------------

func (r *BookingGormRepository) GetCaregiver(
	ctx context.Context,
	userID uint,
) (*models.Caregiver, error) {

	var cg models.Caregiver
	if err := r.db.WithContext(ctx).
		First(&cg, "user_id = ?", userID).Error; err != nil {
		return nil, translate(err, "caregiver_not_found")
	}
	return &cg, nil
}

func (r *BookingGormRepository) GetMember(
	ctx context.Context,
	userID uint,
) (*models.Member, error) {

	var mb models.Member
	if err := r.db.WithContext(ctx).
		First(&mb, "user_id = ?", userID).Error; err != nil {
		return nil, translate(err, "member_not_found")
	}
	return &mb, nil
}

// --------------------------------------------------
// Appointment (create)
// --------------------------------------------------

// CreateAppointment is the single write boundary for bookings. Both entry
// paths (the guided use case and direct inserts) run through it, so the
// fill-cost-when-absent rule is applied exactly once, inside the same
// transaction that reads the caregiver's current rate.
func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := domain.ValidateWorkHours(ap.WorkHours); err != nil {
		return err
	}
	if err := domain.ValidateTotalCost(ap.TotalCost); err != nil {
		return err
	}
	if ap.Status == "" {
		ap.Status = string(domain.InitialStatus())
	}
	if !domain.IsValidStatus(domain.Status(ap.Status)) {
		return httperr.ErrValidation("unknown_status")
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cg models.Caregiver
		if err := tx.First(&cg, "user_id = ?", ap.CaregiverUserID).Error; err != nil {
			return translate(err, "caregiver_not_found")
		}

		var mb models.Member
		if err := tx.First(&mb, "user_id = ?", ap.MemberUserID).Error; err != nil {
			return translate(err, "member_not_found")
		}

		// Derive-once: the rate is snapshotted within this transaction and
		// the cost frozen on the row. An explicit cost is never overwritten.
		if ap.TotalCost == nil {
			cost := domain.Cost(cg.HourlyRate, ap.WorkHours)
			ap.TotalCost = &cost
		}

		return tx.Create(ap).Error
	})

	return translate(err, "appointment_not_found")
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		First(&ap, appointmentID).Error; err != nil {
		return nil, translate(err, "appointment_not_found")
	}
	return &ap, nil
}

func (r *BookingGormRepository) GetAppointmentForCaregiver(
	ctx context.Context,
	appointmentID uint,
	caregiverUserID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND caregiver_user_id = ?", appointmentID, caregiverUserID).
		First(&ap).Error; err != nil {
		return nil, translate(err, "appointment_not_found")
	}
	return &ap, nil
}

func (r *BookingGormRepository) GetAppointmentForMember(
	ctx context.Context,
	appointmentID uint,
	memberUserID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND member_user_id = ?", appointmentID, memberUserID).
		First(&ap).Error; err != nil {
		return nil, translate(err, "appointment_not_found")
	}
	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return translate(
		r.db.WithContext(ctx).Save(ap).Error,
		"appointment_not_found",
	)
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *BookingGormRepository) ListForCaregiver(
	ctx context.Context,
	caregiverUserID uint,
	status string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Where("caregiver_user_id = ?", caregiverUserID)

	if status != "" {
		q = q.Where("status = ?", status)
	}

	var apps []models.Appointment
	if err := q.
		Order("appointment_date DESC, appointment_time DESC").
		Find(&apps).Error; err != nil {
		return nil, translate(err, "appointment_not_found")
	}

	return apps, nil
}

func (r *BookingGormRepository) ListForMember(
	ctx context.Context,
	memberUserID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("member_user_id = ?", memberUserID).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&apps).Error; err != nil {
		return nil, translate(err, "appointment_not_found")
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
