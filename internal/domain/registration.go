package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

// ParseRequestStatus accepts any casing so the review UI can send
// "pending" while storage keeps the uppercase convention.
func ParseRequestStatus(s string) (RequestStatus, bool) {
	switch RequestStatus(strings.ToUpper(s)) {
	case RequestStatusPending:
		return RequestStatusPending, true
	case RequestStatusApproved:
		return RequestStatusApproved, true
	case RequestStatusRejected:
		return RequestStatusRejected, true
	}
	return "", false
}

// CompanySnapshot is the company half of the application snapshot.
// Snapshot fields are frozen at submission time and never updated.
type CompanySnapshot struct {
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Branches           []string `json:"branches"`
	RegistrationNumber string   `json:"registrationNumber"`
	TaxNumber          string   `json:"taxNumber"`
	Industry           string   `json:"industry"`
	Size               string   `json:"size"`
	LinkedInURL        string   `json:"linkedInUrl"`
	LogoURL            string   `json:"logoUrl"`
}

// AdminSnapshot is the applicant half of the application snapshot.
// LoginEmail is stored lower-cased; the password is stored only as a
// bcrypt hash and never rendered back to clients.
type AdminSnapshot struct {
	LoginEmail   string `json:"loginEmail"`
	PasswordHash string `json:"-"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	Position     string `json:"position"`
}

// RegistrationRequest is the unit of work of the approval workflow.
// Only Status, ReviewedAt and ReviewedBy change after creation.
type RegistrationRequest struct {
	ID          uuid.UUID       `json:"id"`
	Status      RequestStatus   `json:"status"`
	Company     CompanySnapshot `json:"company"`
	Admin       AdminSnapshot   `json:"admin"`
	SubmittedAt time.Time       `json:"submittedAt"`
	ReviewedAt  *time.Time      `json:"reviewedAt,omitempty"`
	ReviewedBy  *uuid.UUID      `json:"reviewedBy,omitempty"`
}
