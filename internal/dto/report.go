package dto

import (
	"encoding/json"

	"github.com/prepitus/college-chances-api/internal/models"
)

// UserPayload carries the identity and academic fields submitted by the
// wizard. GPA and SAT arrive as JSON numbers or strings depending on the
// client path, so they are decoded losslessly and parsed downstream.
type UserPayload struct {
	Email          string      `json:"email" validate:"required"`
	FirstName      string      `json:"firstName" validate:"required"`
	LastName       string      `json:"lastName" validate:"required"`
	GPA            json.Number `json:"gpa"`
	SATScore       json.Number `json:"satScore"`
	GraduationYear string      `json:"graduationYear"`
}

// SelectedCollege mirrors the college objects the client sends. The
// store-and-send path fills only Name, leaving the metadata fields empty.
type SelectedCollege struct {
	Name      string `json:"name"`
	SATRange  string `json:"combined"`
	AdmitRate string `json:"admitRate"`
	GPAAvg    string `json:"gpaAvg"`
}

// StoreAndSendRequest is the POST /api/store-user-and-send-report body.
type StoreAndSendRequest struct {
	UserData         *UserPayload      `json:"userData"`
	SelectedColleges []SelectedCollege `json:"selectedColleges"`
	FormData         *UserPayload      `json:"formData"`
}

// SendReportRequest is the legacy POST /api/send-college-report body.
type SendReportRequest struct {
	UserData         *UserPayload      `json:"userData"`
	SelectedColleges []SelectedCollege `json:"selectedColleges"`
}

// ReportDelivery is the data payload returned after a successful send.
// IsDuplicate is present only on the store-and-send path.
type ReportDelivery struct {
	Email            string         `json:"email"`
	IsDuplicate      *bool          `json:"isDuplicate,omitempty"`
	CollegesAnalyzed int            `json:"collegesAnalyzed"`
	OverallChance    models.Chance  `json:"overallChance"`
	Summary          models.Summary `json:"summary"`
}
