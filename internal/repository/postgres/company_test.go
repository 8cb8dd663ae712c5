package postgres_test

import (
	"context"
	"testing"
	"time"

	"onboarding-backend/internal/domain"
	"onboarding-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

var companyColumns = []string{
	"id", "name", "description", "branches", "registration_number", "tax_number",
	"industry", "size", "linkedin_url", "logo_url", "source_request_id", "admin_id", "created_at",
}

func TestCompanyRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCompanyRepository(db)
	ctx := context.Background()

	company := &domain.Company{
		ID:              uuid.New(),
		Name:            "Acme GmbH",
		Branches:        []string{"Berlin"},
		SourceRequestID: uuid.New(),
		AdminID:         uuid.New(),
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO companies").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, company)
		assert.NoError(t, err)
		assert.False(t, company.CreatedAt.IsZero())
	})

	t.Run("SourceRequestUniqueViolation", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO companies").
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, company)
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})
}

func TestCompanyRepository_GetBySourceRequest(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCompanyRepository(db)
	ctx := context.Background()
	requestID := uuid.New()

	t.Run("Found", func(t *testing.T) {
		id := uuid.New()
		rows := sqlmock.NewRows(companyColumns).AddRow(
			id, "Acme GmbH", "", "{Berlin}", "", "", "", "", "", "",
			requestID, uuid.New(), time.Now().UTC(),
		)
		mock.ExpectQuery("SELECT (.+) FROM companies WHERE source_request_id").
			WithArgs(requestID).
			WillReturnRows(rows)

		got, err := repo.GetBySourceRequest(ctx, requestID)
		assert.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, requestID, got.SourceRequestID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM companies WHERE source_request_id").
			WithArgs(requestID).
			WillReturnRows(sqlmock.NewRows(companyColumns))

		_, err := repo.GetBySourceRequest(ctx, requestID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEmployeeRepository_SetCompany(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewEmployeeRepository(db)
	ctx := context.Background()
	employeeID := uuid.New()
	companyID := uuid.New()

	t.Run("Linked", func(t *testing.T) {
		mock.ExpectExec("UPDATE employees SET company_id").
			WithArgs(companyID, employeeID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SetCompany(ctx, employeeID, companyID)
		assert.NoError(t, err)
	})

	t.Run("UnknownEmployee", func(t *testing.T) {
		mock.ExpectExec("UPDATE employees SET company_id").
			WithArgs(companyID, employeeID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetCompany(ctx, employeeID, companyID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
