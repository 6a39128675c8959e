package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/courseloop/growthplane/internal/domain"
	"github.com/courseloop/growthplane/pkg/logger"
)

// IdentityService resolves identity signals to one canonical person
type IdentityService struct {
	personRepo domain.PersonRepository
	logger     logger.Logger
}

// NewIdentityService creates a new identity service
func NewIdentityService(personRepo domain.PersonRepository, logger logger.Logger) *IdentityService {
	return &IdentityService{
		personRepo: personRepo,
		logger:     logger,
	}
}

// ResolvePerson maps the signals to a person, creating one if none matches.
// Lookup order: email, account_id, billing_customer_id. Creation is an
// atomic find-or-create: a lost race against the uniqueness constraints is
// retried once by re-reading before surfacing.
func (s *IdentityService) ResolvePerson(ctx context.Context, signals *domain.ResolveSignals) (*domain.Person, bool, error) {
	if err := signals.Validate(); err != nil {
		return nil, false, err
	}

	existing, err := s.lookup(ctx, signals)
	if err != nil {
		return nil, false, err
	}

	if existing != nil {
		person, err := s.mergeInto(ctx, existing, signals)
		if err != nil {
			return nil, false, err
		}
		return person, false, nil
	}

	person := personFromSignals(signals)
	if err := s.personRepo.CreatePerson(ctx, person); err != nil {
		if _, ok := err.(*domain.ConflictError); ok {
			// another caller created this person concurrently; re-read
			// and merge into the winner
			existing, lookupErr := s.lookup(ctx, signals)
			if lookupErr != nil {
				return nil, false, lookupErr
			}
			if existing == nil {
				return nil, false, err
			}
			merged, mergeErr := s.mergeInto(ctx, existing, signals)
			if mergeErr != nil {
				return nil, false, mergeErr
			}
			return merged, false, nil
		}
		return nil, false, err
	}

	if err := s.ensureIdentityLinks(ctx, person.ID, signals); err != nil {
		return nil, false, err
	}

	s.logger.WithFields(map[string]interface{}{
		"person_id": person.ID,
	}).Info("Person created")

	return person, true, nil
}

// lookup returns the first person matching the signals in resolution
// order, or nil when none matches
func (s *IdentityService) lookup(ctx context.Context, signals *domain.ResolveSignals) (*domain.Person, error) {
	type probe struct {
		value string
		get   func(context.Context, string) (*domain.Person, error)
	}
	probes := []probe{
		{signals.Email, s.personRepo.GetPersonByEmail},
		{signals.AccountID, s.personRepo.GetPersonByAccountID},
		{signals.BillingCustomerID, s.personRepo.GetPersonByBillingCustomerID},
	}

	for _, p := range probes {
		if p.value == "" {
			continue
		}
		person, err := p.get(ctx, p.value)
		if err != nil {
			if _, ok := err.(*domain.ErrPersonNotFound); ok {
				continue
			}
			return nil, fmt.Errorf("failed to look up person: %w", err)
		}
		return person, nil
	}

	return nil, nil
}

// mergeInto folds the signals into an existing person, last write wins per
// field but present values are never overwritten with empty ones
func (s *IdentityService) mergeInto(ctx context.Context, existing *domain.Person, signals *domain.ResolveSignals) (*domain.Person, error) {
	incoming := personFromSignals(signals)
	existing.Merge(incoming)
	existing.UpdatedAt = time.Now().UTC()

	if err := s.personRepo.UpdatePerson(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update person: %w", err)
	}

	if err := s.ensureIdentityLinks(ctx, existing.ID, signals); err != nil {
		return nil, err
	}

	return existing, nil
}

// ensureIdentityLinks appends a link for each provided primary key. Links
// are append-only, so re-linking an already-known key is a no-op and an
// existing link is never re-pointed.
func (s *IdentityService) ensureIdentityLinks(ctx context.Context, personID string, signals *domain.ResolveSignals) error {
	now := time.Now().UTC()
	links := []domain.IdentityLink{}
	if signals.Email != "" {
		links = append(links, domain.IdentityLink{
			IdentityType:  domain.IdentityTypeEmail,
			IdentityValue: signals.Email,
			PersonID:      personID,
			CreatedAt:     now,
		})
	}
	if signals.AccountID != "" {
		links = append(links, domain.IdentityLink{
			IdentityType:  domain.IdentityTypeAccount,
			IdentityValue: signals.AccountID,
			PersonID:      personID,
			CreatedAt:     now,
		})
	}
	if signals.BillingCustomerID != "" {
		links = append(links, domain.IdentityLink{
			IdentityType:  domain.IdentityTypeBillingCustomer,
			IdentityValue: signals.BillingCustomerID,
			PersonID:      personID,
			CreatedAt:     now,
		})
	}

	for i := range links {
		if err := s.personRepo.CreateIdentityLink(ctx, &links[i]); err != nil {
			return fmt.Errorf("failed to create identity link: %w", err)
		}
	}

	return nil
}

func personFromSignals(signals *domain.ResolveSignals) *domain.Person {
	now := time.Now().UTC()
	person := &domain.Person{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if signals.Email != "" {
		person.Email = domain.StringValue(domain.NormalizeEmail(signals.Email))
		person.EmailHash = domain.StringValue(domain.HashEmail(signals.Email))
	}
	if signals.AccountID != "" {
		person.AccountID = domain.StringValue(signals.AccountID)
	}
	if signals.BillingCustomerID != "" {
		person.BillingCustomerID = domain.StringValue(signals.BillingCustomerID)
	}
	if signals.FirstName != "" {
		person.FirstName = domain.StringValue(signals.FirstName)
	}
	if signals.LastName != "" {
		person.LastName = domain.StringValue(signals.LastName)
	}
	if signals.Phone != "" {
		person.Phone = domain.StringValue(signals.Phone)
	}
	return person
}
