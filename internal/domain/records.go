package domain

import (
	"time"

	"github.com/google/uuid"
)

// Admin is the login identity materialized for an approved applicant.
// At most one row exists per distinct login email.
type Admin struct {
	ID           uuid.UUID `json:"id"`
	LoginEmail   string    `json:"loginEmail"`
	PasswordHash string    `json:"-"`
	EmployeeID   uuid.UUID `json:"employeeId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Employee is the HR-facing identity. CompanyID stays nil until the
// owning company has been materialized.
type Employee struct {
	ID        uuid.UUID  `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Position  string     `json:"position"`
	CompanyID *uuid.UUID `json:"companyId"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Company is the business entity produced by a successful approval.
// SourceRequestID ties it back to the registration request that
// produced it; the pair is unique.
type Company struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Branches           []string  `json:"branches"`
	RegistrationNumber string    `json:"registrationNumber"`
	TaxNumber          string    `json:"taxNumber"`
	Industry           string    `json:"industry"`
	Size               string    `json:"size"`
	LinkedInURL        string    `json:"linkedInUrl"`
	LogoURL            string    `json:"logoUrl"`
	SourceRequestID    uuid.UUID `json:"sourceRequestId"`
	AdminID            uuid.UUID `json:"adminId"`
	CreatedAt          time.Time `json:"createdAt"`
}
