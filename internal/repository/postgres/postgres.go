package postgres

import (
	"database/sql"
	"errors"

	"onboarding-backend/internal/repository"

	"github.com/lib/pq"
)

// Store bundles all postgres-backed repositories behind one constructor.
type Store struct {
	db *sql.DB

	RegistrationRequestRepository repository.RegistrationRequestRepository
	AdminRepository               repository.AdminRepository
	EmployeeRepository            repository.EmployeeRepository
	CompanyRepository             repository.CompanyRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                            db,
		RegistrationRequestRepository: NewRegistrationRequestRepository(db),
		AdminRepository:               NewAdminRepository(db),
		EmployeeRepository:            NewEmployeeRepository(db),
		CompanyRepository:             NewCompanyRepository(db),
	}
}

// isUniqueViolation reports whether err is a postgres unique constraint
// violation (class 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
