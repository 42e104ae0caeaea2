package models

import "time"

// Lead is a captured contact record. Email is the sole dedup key, matched
// case-sensitively. SubmissionCount is set to 1 on first contact and is
// not incremented on repeat submissions; repeats return the stored record
// unmodified.
type Lead struct {
	ID              string    `db:"id" json:"id"`
	Email           string    `db:"email" json:"email"`
	FirstName       string    `db:"first_name" json:"firstName"`
	LastName        string    `db:"last_name" json:"lastName"`
	GPA             string    `db:"gpa" json:"gpa"`
	SATScore        string    `db:"sat_score" json:"satScore"`
	GraduationYear  string    `db:"graduation_year" json:"graduationYear"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	SubmissionCount int       `db:"submission_count" json:"submissionCount"`
}
