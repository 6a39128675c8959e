package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courseloop/growthplane/internal/domain"
)

func testPerson() *domain.Person {
	now := time.Now().UTC()
	return &domain.Person{
		ID:        "p1",
		Email:     domain.StringValue("ada@example.com"),
		EmailHash: domain.StringValue(domain.HashEmail("ada@example.com")),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func personRows(p *domain.Person) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "email", "email_hash", "first_name", "last_name", "phone",
		"account_id", "billing_customer_id", "distinct_id", "ad_external_id",
		"created_at", "updated_at",
	}).AddRow(
		p.ID, p.Email, p.EmailHash, nil, nil, nil,
		p.AccountID, nil, nil, nil,
		p.CreatedAt, p.UpdatedAt,
	)
}

func TestCreatePerson(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPersonRepository(db)
	person := testPerson()

	mock.ExpectExec("INSERT INTO persons").
		WithArgs(
			person.ID, person.Email, person.EmailHash, person.FirstName, person.LastName,
			person.Phone, person.AccountID, person.BillingCustomerID, person.DistinctID,
			person.AdExternalID, person.CreatedAt, person.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreatePerson(context.Background(), person))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePersonUniqueViolationIsConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPersonRepository(db)
	person := testPerson()

	mock.ExpectExec("INSERT INTO persons").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "idx_persons_email"})

	err = repo.CreatePerson(context.Background(), person)
	require.Error(t, err)

	conflict, ok := err.(*domain.ConflictError)
	require.True(t, ok)
	assert.Equal(t, "idx_persons_email", conflict.Key)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPersonByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPersonRepository(db)
	person := testPerson()

	mock.ExpectQuery("SELECT (.+) FROM persons").
		WithArgs("ada@example.com").
		WillReturnRows(personRows(person))

	got, err := repo.GetPersonByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)
	assert.Equal(t, "ada@example.com", got.Email.String)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPersonByEmailNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPersonRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM persons").
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetPersonByEmail(context.Background(), "ghost@example.com")
	require.Error(t, err)
	assert.IsType(t, &domain.ErrPersonNotFound{}, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIdentityLinkIsAppendOnly(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPersonRepository(db)
	link := &domain.IdentityLink{
		IdentityType:  domain.IdentityTypeEmail,
		IdentityValue: "ada@example.com",
		PersonID:      "p1",
		CreatedAt:     time.Now().UTC(),
	}

	// re-inserting an existing pair affects zero rows and still succeeds
	mock.ExpectExec("INSERT INTO identity_links").
		WithArgs(link.IdentityType, link.IdentityValue, link.PersonID, link.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.CreateIdentityLink(context.Background(), link))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPersonIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPersonRepository(db)

	mock.ExpectQuery("SELECT id FROM persons").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("p1").AddRow("p2"))

	ids, err := repo.ListPersonIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, ids)
}
