package dto

import "time"

// OpenJobDTO is the open-job read view: job fields joined with the posting
// member's identity plus a live application count, recomputed per query.
type OpenJobDTO struct {
	JobID                  uint      `json:"job_id"`
	RequiredCaregivingType string    `json:"required_caregiving_type"`
	OtherRequirements      string    `json:"other_requirements"`
	DatePosted             time.Time `json:"date_posted"`
	Frequency              string    `json:"frequency"`
	DependentAge           *int      `json:"dependent_age"`
	PreferredTimeStart     *string   `json:"preferred_time_start"`
	PreferredTimeEnd       *string   `json:"preferred_time_end"`
	DurationHours          *float64  `json:"duration_hours"`

	MemberGivenName      string `json:"member_given_name"`
	MemberSurname        string `json:"member_surname"`
	MemberCity           string `json:"member_city"`
	DependentDescription string `json:"dependent_description"`

	ApplicationCount int64 `json:"application_count"`
}
