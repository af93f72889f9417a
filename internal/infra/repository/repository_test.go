package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/careconnect/care-marketplace/internal/models"
)

func setupDB(t *testing.T) *gorm.DB {
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

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := models.User{
		Email:        email,
		GivenName:    "Test",
		Surname:      "User",
		City:         "Almaty",
		Phone:        "77081234567",
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedCaregiver(t *testing.T, db *gorm.DB, rate float64) *models.Caregiver {
	t.Helper()

	user := seedUser(t, db, fmt.Sprintf("caregiver-%g-%d@example.com", rate, nextSeq()))
	cg := models.Caregiver{
		UserID:         user.ID,
		Gender:         models.GenderFemale,
		CaregivingType: models.CaregivingBabysitter,
		HourlyRate:     rate,
		Active:         true,
	}
	require.NoError(t, db.Create(&cg).Error)
	return &cg
}

func seedMember(t *testing.T, db *gorm.DB) *models.Member {
	t.Helper()

	user := seedUser(t, db, fmt.Sprintf("member-%d@example.com", nextSeq()))
	mb := models.Member{
		UserID:               user.ID,
		HouseRules:           "No smoking",
		DependentDescription: "Two kids",
	}
	require.NoError(t, db.Create(&mb).Error)
	return &mb
}

var seq int

func nextSeq() int {
	seq++
	return seq
}
