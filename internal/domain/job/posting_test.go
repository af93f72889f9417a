package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect/care-marketplace/internal/httperr"
	"github.com/careconnect/care-marketplace/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestValidateDependentAge(t *testing.T) {
	assert.NoError(t, ValidateDependentAge(nil))
	assert.NoError(t, ValidateDependentAge(intPtr(0)))
	assert.NoError(t, ValidateDependentAge(intPtr(200)))

	for _, age := range []int{-1, 201} {
		err := ValidateDependentAge(intPtr(age))
		require.Error(t, err, "age=%d", age)
		assert.True(t, httperr.IsBusiness(err, "invalid_dependent_age"))
	}
}

func TestValidateTimeWindow(t *testing.T) {
	assert.NoError(t, ValidateTimeWindow(nil, nil))
	assert.NoError(t, ValidateTimeWindow(strPtr("09:00"), strPtr("15:00")))
	assert.NoError(t, ValidateTimeWindow(strPtr("09:00"), nil))
	assert.NoError(t, ValidateTimeWindow(nil, strPtr("15:00")))

	// Inverted and zero-length windows are rejected.
	assert.Error(t, ValidateTimeWindow(strPtr("15:00"), strPtr("09:00")))
	assert.Error(t, ValidateTimeWindow(strPtr("09:00"), strPtr("09:00")))

	// Malformed wall-clock strings.
	assert.Error(t, ValidateTimeWindow(strPtr("9am"), nil))
	assert.Error(t, ValidateTimeWindow(nil, strPtr("25:00")))
}

func TestValidateFrequency(t *testing.T) {
	assert.NoError(t, ValidateFrequency(""))
	assert.NoError(t, ValidateFrequency(models.FrequencyWeekly))
	assert.NoError(t, ValidateFrequency(models.FrequencyAsNeeded))

	err := ValidateFrequency("hourly")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_frequency"))
}

func TestClose(t *testing.T) {
	j := &models.Job{Status: models.JobStatusOpen}
	Close(j)
	assert.Equal(t, models.JobStatusClosed, j.Status)

	// Closing again is a no-op.
	Close(j)
	assert.Equal(t, models.JobStatusClosed, j.Status)
}
