package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/courseloop/growthplane/internal/domain"
)

const uniqueViolation = "23505"

type personRepository struct {
	db *sql.DB
}

// NewPersonRepository creates a new PostgreSQL person repository
func NewPersonRepository(db *sql.DB) domain.PersonRepository {
	return &personRepository{db: db}
}

const personColumns = `
		id, email, email_hash, first_name, last_name, phone,
		account_id, billing_customer_id, distinct_id, ad_external_id,
		created_at, updated_at`

func (r *personRepository) CreatePerson(ctx context.Context, person *domain.Person) error {
	query := `
		INSERT INTO persons (` + personColumns + `
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.ExecContext(ctx, query,
		person.ID,
		person.Email,
		person.EmailHash,
		person.FirstName,
		person.LastName,
		person.Phone,
		person.AccountID,
		person.BillingCustomerID,
		person.DistinctID,
		person.AdExternalID,
		person.CreatedAt,
		person.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			// lost the race against a concurrent insert; the caller
			// re-reads by the conflicting key
			return &domain.ConflictError{Key: pqErr.Constraint, Value: person.ID}
		}
		return fmt.Errorf("failed to create person: %w", err)
	}

	return nil
}

func (r *personRepository) UpdatePerson(ctx context.Context, person *domain.Person) error {
	query := `
		UPDATE persons SET
			email = $2,
			email_hash = $3,
			first_name = $4,
			last_name = $5,
			phone = $6,
			account_id = $7,
			billing_customer_id = $8,
			distinct_id = $9,
			ad_external_id = $10,
			updated_at = $11
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		person.ID,
		person.Email,
		person.EmailHash,
		person.FirstName,
		person.LastName,
		person.Phone,
		person.AccountID,
		person.BillingCustomerID,
		person.DistinctID,
		person.AdExternalID,
		person.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrPersonNotFound{Message: "person not found"}
	}

	return nil
}

func (r *personRepository) getPersonBy(ctx context.Context, column, value string) (*domain.Person, error) {
	query := `
		SELECT ` + personColumns + `
		FROM persons
		WHERE ` + column + ` = $1
	`

	row := r.db.QueryRowContext(ctx, query, value)
	person, err := domain.ScanPerson(row)

	if err == sql.ErrNoRows {
		return nil, &domain.ErrPersonNotFound{Message: "person not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	return person, nil
}

func (r *personRepository) GetPersonByID(ctx context.Context, id string) (*domain.Person, error) {
	return r.getPersonBy(ctx, "id", id)
}

func (r *personRepository) GetPersonByEmail(ctx context.Context, email string) (*domain.Person, error) {
	return r.getPersonBy(ctx, "email", email)
}

func (r *personRepository) GetPersonByAccountID(ctx context.Context, accountID string) (*domain.Person, error) {
	return r.getPersonBy(ctx, "account_id", accountID)
}

func (r *personRepository) GetPersonByBillingCustomerID(ctx context.Context, billingCustomerID string) (*domain.Person, error) {
	return r.getPersonBy(ctx, "billing_customer_id", billingCustomerID)
}

func (r *personRepository) CreateIdentityLink(ctx context.Context, link *domain.IdentityLink) error {
	// append-only: an existing pair keeps its original person_id
	query := `
		INSERT INTO identity_links (identity_type, identity_value, person_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (identity_type, identity_value) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query,
		link.IdentityType,
		link.IdentityValue,
		link.PersonID,
		link.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create identity link: %w", err)
	}

	return nil
}

func (r *personRepository) GetIdentityLink(ctx context.Context, identityType domain.IdentityType, identityValue string) (*domain.IdentityLink, error) {
	query := `
		SELECT identity_type, identity_value, person_id, created_at
		FROM identity_links
		WHERE identity_type = $1 AND identity_value = $2
	`

	var link domain.IdentityLink
	err := r.db.QueryRowContext(ctx, query, identityType, identityValue).Scan(
		&link.IdentityType,
		&link.IdentityValue,
		&link.PersonID,
		&link.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "identity link", ID: string(identityType) + ":" + identityValue}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get identity link: %w", err)
	}

	return &link, nil
}

func (r *personRepository) ListPersonIDs(ctx context.Context) ([]string, error) {
	query := `SELECT id FROM persons ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list person ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan person id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating person rows: %w", err)
	}

	return ids, nil
}
