package domain

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_person_repository.go -package mocks github.com/courseloop/growthplane/internal/domain PersonRepository
//go:generate mockgen -destination mocks/mock_identity_service.go -package mocks github.com/courseloop/growthplane/internal/domain IdentityService

// IdentityType identifies the kind of external key an identity link maps from
type IdentityType string

const (
	IdentityTypeEmail           IdentityType = "email"
	IdentityTypeAccount         IdentityType = "account_id"
	IdentityTypeBillingCustomer IdentityType = "billing_customer_id"
	IdentityTypeDistinct        IdentityType = "distinct_id"
	IdentityTypeAdPlatform      IdentityType = "ad_external_id"
)

// Validate checks if the identity type is valid
func (t IdentityType) Validate() error {
	switch t {
	case IdentityTypeEmail, IdentityTypeAccount, IdentityTypeBillingCustomer,
		IdentityTypeDistinct, IdentityTypeAdPlatform:
		return nil
	}
	return fmt.Errorf("invalid identity type: %s", t)
}

// Person is the canonical identity record unifying a visitor's signals
type Person struct {
	ID                string          `json:"id"`
	Email             *NullableString `json:"email,omitempty"`
	EmailHash         *NullableString `json:"email_hash,omitempty"`
	FirstName         *NullableString `json:"first_name,omitempty"`
	LastName          *NullableString `json:"last_name,omitempty"`
	Phone             *NullableString `json:"phone,omitempty"`
	AccountID         *NullableString `json:"account_id,omitempty"`
	BillingCustomerID *NullableString `json:"billing_customer_id,omitempty"`
	DistinctID        *NullableString `json:"distinct_id,omitempty"`
	AdExternalID      *NullableString `json:"ad_external_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// NormalizeEmail lowercases and trims an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HashEmail returns the hex-encoded SHA-256 of a normalized email
func HashEmail(email string) string {
	sum := sha256.Sum256([]byte(NormalizeEmail(email)))
	return hex.EncodeToString(sum[:])
}

// Validate ensures the person record is well formed
func (p *Person) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("invalid person: id is required")
	}
	if p.Email != nil && !p.Email.IsNull {
		if !govalidator.IsEmail(p.Email.String) {
			return fmt.Errorf("invalid person: email is not valid")
		}
	}
	return nil
}

// Merge folds non-null fields from other into p, last write wins per field.
// A present value is never overwritten with null or empty.
func (p *Person) Merge(other *Person) {
	mergeString := func(dst **NullableString, src *NullableString) {
		if src != nil && !src.IsNull && src.String != "" {
			*dst = src
		}
	}
	mergeString(&p.Email, other.Email)
	mergeString(&p.EmailHash, other.EmailHash)
	mergeString(&p.FirstName, other.FirstName)
	mergeString(&p.LastName, other.LastName)
	mergeString(&p.Phone, other.Phone)
	mergeString(&p.AccountID, other.AccountID)
	mergeString(&p.BillingCustomerID, other.BillingCustomerID)
	mergeString(&p.DistinctID, other.DistinctID)
	mergeString(&p.AdExternalID, other.AdExternalID)
}

// For database scanning
type dbPerson struct {
	ID                string
	Email             NullableString
	EmailHash         NullableString
	FirstName         NullableString
	LastName          NullableString
	Phone             NullableString
	AccountID         NullableString
	BillingCustomerID NullableString
	DistinctID        NullableString
	AdExternalID      NullableString
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ScanPerson scans a person row from the database
func ScanPerson(scanner interface {
	Scan(dest ...interface{}) error
}) (*Person, error) {
	var dbp dbPerson
	if err := scanner.Scan(
		&dbp.ID,
		&dbp.Email,
		&dbp.EmailHash,
		&dbp.FirstName,
		&dbp.LastName,
		&dbp.Phone,
		&dbp.AccountID,
		&dbp.BillingCustomerID,
		&dbp.DistinctID,
		&dbp.AdExternalID,
		&dbp.CreatedAt,
		&dbp.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &Person{
		ID:                dbp.ID,
		Email:             &dbp.Email,
		EmailHash:         &dbp.EmailHash,
		FirstName:         &dbp.FirstName,
		LastName:          &dbp.LastName,
		Phone:             &dbp.Phone,
		AccountID:         &dbp.AccountID,
		BillingCustomerID: &dbp.BillingCustomerID,
		DistinctID:        &dbp.DistinctID,
		AdExternalID:      &dbp.AdExternalID,
		CreatedAt:         dbp.CreatedAt,
		UpdatedAt:         dbp.UpdatedAt,
	}, nil
}

// IdentityLink maps one external identity key to a person. Links are
// append-only: once created the target person_id is never re-pointed.
type IdentityLink struct {
	IdentityType  IdentityType `json:"identity_type"`
	IdentityValue string       `json:"identity_value"`
	PersonID      string       `json:"person_id"`
	CreatedAt     time.Time    `json:"created_at"`
}

// Validate checks the identity link fields
func (l *IdentityLink) Validate() error {
	if err := l.IdentityType.Validate(); err != nil {
		return fmt.Errorf("invalid identity link: %w", err)
	}
	if l.IdentityValue == "" {
		return fmt.Errorf("invalid identity link: identity_value is required")
	}
	if l.PersonID == "" {
		return fmt.Errorf("invalid identity link: person_id is required")
	}
	return nil
}

// ResolveSignals carries the primary resolution keys of a resolve call.
// anonymous_id/session_id are accepted only for stitching, never here.
type ResolveSignals struct {
	Email             string `json:"email,omitempty"`
	AccountID         string `json:"account_id,omitempty"`
	BillingCustomerID string `json:"billing_customer_id,omitempty"`
	FirstName         string `json:"first_name,omitempty"`
	LastName          string `json:"last_name,omitempty"`
	Phone             string `json:"phone,omitempty"`
}

// Validate normalizes the signals in place, then requires at least one
// primary key and a well-formed email. Normalizing here keeps direct
// service callers on the same canonical form as the HTTP layer.
func (s *ResolveSignals) Validate() error {
	s.Email = NormalizeEmail(s.Email)
	s.AccountID = strings.TrimSpace(s.AccountID)
	s.BillingCustomerID = strings.TrimSpace(s.BillingCustomerID)
	if s.Email == "" && s.AccountID == "" && s.BillingCustomerID == "" {
		return NewValidationError("at least one of email, account_id, billing_customer_id is required")
	}
	if s.Email != "" && !govalidator.IsEmail(s.Email) {
		return NewValidationError("email is not valid")
	}
	return nil
}

// ResolvePersonRequest is the HTTP payload for identity.resolve
type ResolvePersonRequest struct {
	Email             string `json:"email,omitempty"`
	AccountID         string `json:"account_id,omitempty"`
	BillingCustomerID string `json:"billing_customer_id,omitempty"`
	FirstName         string `json:"first_name,omitempty"`
	LastName          string `json:"last_name,omitempty"`
	Phone             string `json:"phone,omitempty"`
}

func (r *ResolvePersonRequest) Validate() (*ResolveSignals, error) {
	signals := &ResolveSignals{
		Email:             NormalizeEmail(r.Email),
		AccountID:         strings.TrimSpace(r.AccountID),
		BillingCustomerID: strings.TrimSpace(r.BillingCustomerID),
		FirstName:         strings.TrimSpace(r.FirstName),
		LastName:          strings.TrimSpace(r.LastName),
		Phone:             strings.TrimSpace(r.Phone),
	}
	if err := signals.Validate(); err != nil {
		return nil, err
	}
	return signals, nil
}

// IdentityService resolves identity signals to one canonical person
type IdentityService interface {
	// ResolvePerson returns the person matching the signals, creating one
	// if none matches. Created reports whether a new person was inserted.
	ResolvePerson(ctx context.Context, signals *ResolveSignals) (person *Person, created bool, err error)
}

// PersonRepository is the identity store. CreatePerson must be atomic
// find-or-create against uniqueness constraints: on a lost race it returns
// ConflictError and the caller re-reads.
type PersonRepository interface {
	// CreatePerson inserts a new person; returns ConflictError when a
	// uniqueness constraint is violated by a concurrent insert
	CreatePerson(ctx context.Context, person *Person) error

	// UpdatePerson persists merged fields of an existing person
	UpdatePerson(ctx context.Context, person *Person) error

	// GetPersonByID retrieves a person by canonical id
	GetPersonByID(ctx context.Context, id string) (*Person, error)

	// GetPersonByEmail retrieves a person by normalized email
	GetPersonByEmail(ctx context.Context, email string) (*Person, error)

	// GetPersonByAccountID retrieves a person by account id
	GetPersonByAccountID(ctx context.Context, accountID string) (*Person, error)

	// GetPersonByBillingCustomerID retrieves a person by billing customer id
	GetPersonByBillingCustomerID(ctx context.Context, billingCustomerID string) (*Person, error)

	// CreateIdentityLink appends an identity link; inserting an existing
	// (identity_type, identity_value) pair is a no-op
	CreateIdentityLink(ctx context.Context, link *IdentityLink) error

	// GetIdentityLink retrieves a link by its key pair
	GetIdentityLink(ctx context.Context, identityType IdentityType, identityValue string) (*IdentityLink, error)

	// ListPersonIDs returns all person ids, oldest first
	ListPersonIDs(ctx context.Context) ([]string, error)
}

// ErrPersonNotFound is returned when a person is not found
type ErrPersonNotFound struct {
	Message string
}

func (e *ErrPersonNotFound) Error() string {
	return e.Message
}
