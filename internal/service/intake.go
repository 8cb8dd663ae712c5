package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"onboarding-backend/internal/domain"
	"onboarding-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SubmitRegistrationInput is the raw application a prospective company
// admin submits. The required set is expressed as validation tags rather
// than fixed logic.
type SubmitRegistrationInput struct {
	Company CompanyInput `json:"company" validate:"required"`
	Admin   AdminInput   `json:"admin" validate:"required"`
}

type CompanyInput struct {
	Name               string   `json:"name" validate:"required"`
	Description        string   `json:"description"`
	Branches           []string `json:"branches"`
	RegistrationNumber string   `json:"registrationNumber" validate:"required"`
	TaxNumber          string   `json:"taxNumber"`
	Industry           string   `json:"industry" validate:"required"`
	Size               string   `json:"size" validate:"required"`
	LinkedInURL        string   `json:"linkedInUrl" validate:"omitempty,url"`
	LogoURL            string   `json:"logoUrl"`
}

type AdminInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Position  string `json:"position"`
}

// FieldError names one missing or malformed submission field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return "invalid submission: " + strings.Join(names, ", ")
}

type intakeService struct {
	reqRepo  repository.RegistrationRequestRepository
	validate *validator.Validate
}

func NewIntakeService(reqRepo repository.RegistrationRequestRepository) IntakeService {
	return &intakeService{
		reqRepo:  reqRepo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Submit validates the application, checks the admin email against active
// requests and persists a single PENDING registration request. Nothing is
// written when any check fails.
func (s *intakeService) Submit(ctx context.Context, in SubmitRegistrationInput) (uuid.UUID, error) {
	if err := s.validate.Struct(in); err != nil {
		return uuid.Nil, toValidationError(err)
	}

	email := strings.ToLower(strings.TrimSpace(in.Admin.Email))

	exists, err := s.reqRepo.ExistsActiveByEmail(ctx, email)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to check admin email: %w", err)
	}
	if exists {
		return uuid.Nil, domain.ErrDuplicateAdminEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to hash password: %w", err)
	}

	req := &domain.RegistrationRequest{
		ID:     uuid.New(),
		Status: domain.RequestStatusPending,
		Company: domain.CompanySnapshot{
			Name:               in.Company.Name,
			Description:        in.Company.Description,
			Branches:           in.Company.Branches,
			RegistrationNumber: in.Company.RegistrationNumber,
			TaxNumber:          in.Company.TaxNumber,
			Industry:           in.Company.Industry,
			Size:               in.Company.Size,
			LinkedInURL:        in.Company.LinkedInURL,
			LogoURL:            in.Company.LogoURL,
		},
		Admin: domain.AdminSnapshot{
			LoginEmail:   email,
			PasswordHash: string(hash),
			FirstName:    in.Admin.FirstName,
			LastName:     in.Admin.LastName,
			Phone:        in.Admin.Phone,
			Position:     in.Admin.Position,
		},
		SubmittedAt: time.Now().UTC(),
	}

	if err := s.reqRepo.Create(ctx, req); err != nil {
		// The partial unique index on active login emails closes the window
		// between the existence check and the insert.
		if errors.Is(err, domain.ErrDuplicate) {
			return uuid.Nil, domain.ErrDuplicateAdminEmail
		}
		return uuid.Nil, fmt.Errorf("failed to create registration request: %w", err)
	}
	return req.ID, nil
}

// toValidationError maps validator.ValidationErrors to readable field
// messages keyed by the struct path.
func toValidationError(err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Fields: []FieldError{{Field: "_", Message: err.Error()}}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := strings.TrimPrefix(e.Namespace(), "SubmitRegistrationInput.")
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "email":
			out = append(out, FieldError{Field: field, Message: "must be a valid email address"})
		case "min":
			out = append(out, FieldError{Field: field, Message: "must be at least " + e.Param() + " characters"})
		case "url":
			out = append(out, FieldError{Field: field, Message: "must be a valid URL"})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return &ValidationError{Fields: out}
}
