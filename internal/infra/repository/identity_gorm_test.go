package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/careconnect/care-marketplace/internal/httperr"
	"github.com/careconnect/care-marketplace/internal/models"
)

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := setupDB(t)
	repo := NewIdentityGormRepository(db)

	first := models.User{
		Email:        "dup@example.com",
		GivenName:    "First",
		Surname:      "User",
		Phone:        "77081234567",
		PasswordHash: "hash",
	}
	require.NoError(t, repo.CreateUser(context.Background(), &first))

	second := models.User{
		Email:        "dup@example.com",
		GivenName:    "Second",
		Surname:      "User",
		Phone:        "77081234568",
		PasswordHash: "hash",
	}
	err := repo.CreateUser(context.Background(), &second)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "email_already_exists"))
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
}

func TestGetUserPreloadsRoles(t *testing.T) {
	db := setupDB(t)
	repo := NewIdentityGormRepository(db)

	cg := seedCaregiver(t, db, 25.0)

	user, err := repo.GetUser(context.Background(), cg.UserID)
	require.NoError(t, err)
	require.NotNil(t, user.Caregiver)
	assert.Equal(t, 25.0, user.Caregiver.HourlyRate)
	assert.Nil(t, user.Member)

	_, err = repo.GetUser(context.Background(), 9999)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

// seedMemberSubtree builds a member with an address, an open job, one
// application from the given caregiver, and one appointment.
func seedMemberSubtree(t *testing.T, db *gorm.DB, cg *models.Caregiver) *models.Member {
	t.Helper()

	mb := seedMember(t, db)

	require.NoError(t, db.Create(&models.Address{
		MemberUserID: mb.UserID,
		HouseNumber:  "12",
		Street:       "Abay Avenue",
		Town:         "Almaty",
		IsPrimary:    true,
	}).Error)

	job := models.Job{
		MemberUserID:           mb.UserID,
		RequiredCaregivingType: models.CaregivingBabysitter,
		DatePosted:             time.Now(),
		Status:                 models.JobStatusOpen,
	}
	require.NoError(t, db.Create(&job).Error)

	require.NoError(t, db.Create(&models.JobApplication{
		CaregiverUserID: cg.UserID,
		JobID:           job.ID,
		DateApplied:     time.Now(),
		Status:          "pending",
	}).Error)

	require.NoError(t, db.Create(&models.Appointment{
		CaregiverUserID: cg.UserID,
		MemberUserID:    mb.UserID,
		AppointmentDate: time.Now(),
		AppointmentTime: "10:00",
		WorkHours:       2,
		Status:          "pending",
	}).Error)

	return mb
}

func TestDeleteMemberCascade(t *testing.T) {
	db := setupDB(t)
	repo := NewIdentityGormRepository(db)

	cg := seedCaregiver(t, db, 25.0)
	mb := seedMemberSubtree(t, db, cg)

	require.NoError(t, repo.DeleteMemberCascade(context.Background(), mb.UserID))

	var count int64
	db.Model(&models.Member{}).Where("user_id = ?", mb.UserID).Count(&count)
	assert.Zero(t, count, "member row")

	db.Model(&models.Address{}).Where("member_user_id = ?", mb.UserID).Count(&count)
	assert.Zero(t, count, "addresses")

	db.Model(&models.Job{}).Where("member_user_id = ?", mb.UserID).Count(&count)
	assert.Zero(t, count, "jobs")

	db.Model(&models.JobApplication{}).Count(&count)
	assert.Zero(t, count, "applications on the member's jobs")

	db.Model(&models.Appointment{}).Where("member_user_id = ?", mb.UserID).Count(&count)
	assert.Zero(t, count, "appointments")

	// The base identity and the unrelated caregiver survive.
	db.Model(&models.User{}).Where("id = ?", mb.UserID).Count(&count)
	assert.EqualValues(t, 1, count, "user row stays")

	db.Model(&models.Caregiver{}).Where("user_id = ?", cg.UserID).Count(&count)
	assert.EqualValues(t, 1, count, "caregiver stays")
}

func TestDeleteCaregiverCascade(t *testing.T) {
	db := setupDB(t)
	repo := NewIdentityGormRepository(db)

	cg := seedCaregiver(t, db, 25.0)
	mb := seedMemberSubtree(t, db, cg)

	require.NoError(t, repo.DeleteCaregiverCascade(context.Background(), cg.UserID))

	var count int64
	db.Model(&models.Caregiver{}).Where("user_id = ?", cg.UserID).Count(&count)
	assert.Zero(t, count, "caregiver row")

	db.Model(&models.JobApplication{}).Where("caregiver_user_id = ?", cg.UserID).Count(&count)
	assert.Zero(t, count, "applications")

	db.Model(&models.Appointment{}).Where("caregiver_user_id = ?", cg.UserID).Count(&count)
	assert.Zero(t, count, "appointments")

	// The member's side of the tree is untouched.
	db.Model(&models.Job{}).Where("member_user_id = ?", mb.UserID).Count(&count)
	assert.EqualValues(t, 1, count, "member's job stays")

	db.Model(&models.User{}).Where("id = ?", cg.UserID).Count(&count)
	assert.EqualValues(t, 1, count, "user row stays")
}

func TestDeleteUserCascade(t *testing.T) {
	db := setupDB(t)
	repo := NewIdentityGormRepository(db)

	cg := seedCaregiver(t, db, 25.0)
	mb := seedMemberSubtree(t, db, cg)

	require.NoError(t, repo.DeleteUserCascade(context.Background(), mb.UserID))

	var count int64
	db.Model(&models.User{}).Where("id = ?", mb.UserID).Count(&count)
	assert.Zero(t, count, "user row")

	db.Model(&models.Member{}).Where("user_id = ?", mb.UserID).Count(&count)
	assert.Zero(t, count, "member row")

	db.Model(&models.Caregiver{}).Where("user_id = ?", cg.UserID).Count(&count)
	assert.EqualValues(t, 1, count, "other user's caregiver role stays")

	err := repo.DeleteUserCascade(context.Background(), mb.UserID)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}
