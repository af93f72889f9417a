package dto

// CaregiverProfileDTO is the active-caregiver read view: caregiver fields
// joined with the owning identity, filtered to active profiles.
type CaregiverProfileDTO struct {
	UserID             uint    `json:"user_id"`
	GivenName          string  `json:"given_name"`
	Surname            string  `json:"surname"`
	City               string  `json:"city"`
	Gender             string  `json:"gender"`
	CaregivingType     string  `json:"caregiving_type"`
	HourlyRate         float64 `json:"hourly_rate"`
	Photo              string  `json:"photo"`
	ProfileDescription string  `json:"profile_description"`
	Rating             float64 `json:"rating"`
	ReviewCount        int     `json:"review_count"`
}
