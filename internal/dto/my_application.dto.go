package dto

import "time"

// MyApplicationDTO is a caregiver's bid joined with the job and its posting
// member.
type MyApplicationDTO struct {
	ApplicationID          uint      `json:"application_id"`
	JobID                  uint      `json:"job_id"`
	DateApplied            time.Time `json:"date_applied"`
	Status                 string    `json:"status"`
	RequiredCaregivingType string    `json:"required_caregiving_type"`
	OtherRequirements      string    `json:"other_requirements"`
	DatePosted             time.Time `json:"date_posted"`
	MemberGivenName        string    `json:"member_given_name"`
	MemberSurname          string    `json:"member_surname"`
	MemberCity             string    `json:"member_city"`
}
