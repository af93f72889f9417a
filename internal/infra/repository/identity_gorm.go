package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/careconnect/care-marketplace/internal/httperr"
	"github.com/careconnect/care-marketplace/internal/models"
)

type IdentityGormRepository struct {
	db *gorm.DB
}

func NewIdentityGormRepository(db *gorm.DB) *IdentityGormRepository {
	return &IdentityGormRepository{db: db}
}

// --------------------------------------------------
// User
// --------------------------------------------------

// CreateUser relies on the unique email index as the atomic arbiter:
// concurrent duplicate attempts yield exactly one winner.
func (r *IdentityGormRepository) CreateUser(
	ctx context.Context,
	user *models.User,
) error {

	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil {
		err = translate(err, "user_not_found")
		if httperr.IsKind(err, httperr.KindConflict) {
			return httperr.ErrConflict("email_already_exists")
		}
	}
	return err
}

func (r *IdentityGormRepository) GetUser(
	ctx context.Context,
	userID uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Preload("Caregiver").
		Preload("Member").
		First(&user, userID).Error; err != nil {
		return nil, translate(err, "user_not_found")
	}
	return &user, nil
}

// --------------------------------------------------
// Cascading deletes (ownership tree teardown)
// --------------------------------------------------

// DeleteUserCascade removes a user and every keyed descendant reachable
// through the ownership edges: role rows, addresses, jobs, the jobs'
// applications, the caregiver's applications, and appointments on either
// side. One transaction, all-or-nothing.
func (r *IdentityGormRepository) DeleteUserCascade(
	ctx context.Context,
	userID uint,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return translate(err, "user_not_found")
		}

		if err := deleteMemberSubtree(tx, userID); err != nil {
			return err
		}
		if err := deleteCaregiverSubtree(tx, userID); err != nil {
			return err
		}

		return tx.Delete(&models.User{}, userID).Error
	})

	return translate(err, "user_not_found")
}

// DeleteMemberCascade removes the member role row and its subtree while
// leaving the base identity in place.
func (r *IdentityGormRepository) DeleteMemberCascade(
	ctx context.Context,
	memberUserID uint,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var mb models.Member
		if err := tx.First(&mb, "user_id = ?", memberUserID).Error; err != nil {
			return translate(err, "member_not_found")
		}
		return deleteMemberSubtree(tx, memberUserID)
	})

	return translate(err, "member_not_found")
}

// DeleteCaregiverCascade removes the caregiver role row, its applications
// and its appointments while leaving the base identity in place.
func (r *IdentityGormRepository) DeleteCaregiverCascade(
	ctx context.Context,
	caregiverUserID uint,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cg models.Caregiver
		if err := tx.First(&cg, "user_id = ?", caregiverUserID).Error; err != nil {
			return translate(err, "caregiver_not_found")
		}
		return deleteCaregiverSubtree(tx, caregiverUserID)
	})

	return translate(err, "caregiver_not_found")
}

func deleteMemberSubtree(tx *gorm.DB, memberUserID uint) error {
	var jobIDs []uint
	if err := tx.Model(&models.Job{}).
		Where("member_user_id = ?", memberUserID).
		Pluck("id", &jobIDs).Error; err != nil {
		return err
	}

	if len(jobIDs) > 0 {
		if err := tx.Where("job_id IN ?", jobIDs).
			Delete(&models.JobApplication{}).Error; err != nil {
			return err
		}
	}

	if err := tx.Where("member_user_id = ?", memberUserID).
		Delete(&models.Job{}).Error; err != nil {
		return err
	}

	if err := tx.Where("member_user_id = ?", memberUserID).
		Delete(&models.Address{}).Error; err != nil {
		return err
	}

	if err := tx.Where("member_user_id = ?", memberUserID).
		Delete(&models.Appointment{}).Error; err != nil {
		return err
	}

	return tx.Where("user_id = ?", memberUserID).
		Delete(&models.Member{}).Error
}

func deleteCaregiverSubtree(tx *gorm.DB, caregiverUserID uint) error {
	if err := tx.Where("caregiver_user_id = ?", caregiverUserID).
		Delete(&models.JobApplication{}).Error; err != nil {
		return err
	}

	if err := tx.Where("caregiver_user_id = ?", caregiverUserID).
		Delete(&models.Appointment{}).Error; err != nil {
		return err
	}

	return tx.Where("user_id = ?", caregiverUserID).
		Delete(&models.Caregiver{}).Error
}
