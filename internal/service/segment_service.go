package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/courseloop/growthplane/internal/domain"
	"github.com/courseloop/growthplane/pkg/logger"
)

// SegmentService manages segment definitions and runs the membership state
// machine
type SegmentService struct {
	segmentRepo  domain.SegmentRepository
	featuresRepo domain.PersonFeaturesRepository
	personRepo   domain.PersonRepository
	dispatcher   domain.AutomationDispatcher
	logger       logger.Logger
}

// NewSegmentService creates a new segment service
func NewSegmentService(
	segmentRepo domain.SegmentRepository,
	featuresRepo domain.PersonFeaturesRepository,
	personRepo domain.PersonRepository,
	dispatcher domain.AutomationDispatcher,
	logger logger.Logger,
) *SegmentService {
	return &SegmentService{
		segmentRepo:  segmentRepo,
		featuresRepo: featuresRepo,
		personRepo:   personRepo,
		dispatcher:   dispatcher,
		logger:       logger,
	}
}

// CreateSegment creates a new segment definition
func (s *SegmentService) CreateSegment(ctx context.Context, req *domain.CreateSegmentRequest) (*domain.Segment, error) {
	segment, err := req.Validate()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	segment.CreatedAt = now
	segment.UpdatedAt = now

	if err := s.segmentRepo.CreateSegment(ctx, segment); err != nil {
		return nil, fmt.Errorf("failed to create segment: %w", err)
	}

	s.logger.WithField("segment_id", segment.ID).Info("Segment created")

	return segment, nil
}

// GetSegment retrieves a segment by ID
func (s *SegmentService) GetSegment(ctx context.Context, req *domain.GetSegmentRequest) (*domain.Segment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.segmentRepo.GetSegmentByID(ctx, req.ID)
}

// ListSegments retrieves all segments
func (s *SegmentService) ListSegments(ctx context.Context) ([]*domain.Segment, error) {
	return s.segmentRepo.GetSegments(ctx, false)
}

// UpdateSegment updates an existing segment definition
func (s *SegmentService) UpdateSegment(ctx context.Context, req *domain.UpdateSegmentRequest) (*domain.Segment, error) {
	segment, err := req.Validate()
	if err != nil {
		return nil, err
	}

	segment.UpdatedAt = time.Now().UTC()

	if err := s.segmentRepo.UpdateSegment(ctx, segment); err != nil {
		return nil, err
	}

	return segment, nil
}

// DeleteSegment deactivates a segment; membership history is preserved
func (s *SegmentService) DeleteSegment(ctx context.Context, req *domain.DeleteSegmentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.segmentRepo.DeactivateSegment(ctx, req.ID)
}

// EvaluateSegmentMembership decides whether the person currently matches
// the segment's conditions
func (s *SegmentService) EvaluateSegmentMembership(ctx context.Context, personID string, segment *domain.Segment) (bool, error) {
	if segment.Conditions == nil {
		return false, &domain.EvaluationError{SegmentID: segment.ID, Err: fmt.Errorf("conditions are empty")}
	}
	if err := segment.Conditions.Validate(); err != nil {
		return false, &domain.EvaluationError{SegmentID: segment.ID, Err: err}
	}

	switch segment.Conditions.Type {
	case domain.ConditionTypeRules:
		features, err := s.featuresRepo.GetFeatures(ctx, personID)
		if err != nil {
			if _, ok := err.(*domain.ErrPersonFeaturesNotFound); ok {
				// no snapshot yet: evaluate against an empty one so
				// is_null rules still behave
				features = &domain.PersonFeatures{PersonID: personID}
			} else {
				return false, err
			}
		}
		return evaluateRules(segment.Conditions.Rules, features.FieldMap()), nil
	case domain.ConditionTypeSQL:
		matches, err := s.segmentRepo.EvaluateSQLCondition(ctx, personID, segment.Conditions.SQL)
		if err != nil {
			return false, &domain.EvaluationError{SegmentID: segment.ID, Err: err}
		}
		return matches, nil
	}

	return false, &domain.EvaluationError{SegmentID: segment.ID, Err: fmt.Errorf("unknown condition type: %q", segment.Conditions.Type)}
}

// EvaluateAllSegmentsForPerson runs the membership state machine for every
// active segment. A failing segment is logged and never blocks its
// siblings. Committed transitions are reported to the automation
// dispatcher; dispatch failures never roll them back.
func (s *SegmentService) EvaluateAllSegmentsForPerson(ctx context.Context, personID string) ([]domain.SegmentTransition, error) {
	if personID == "" {
		return nil, domain.NewValidationError("person_id is required")
	}
	if _, err := s.personRepo.GetPersonByID(ctx, personID); err != nil {
		return nil, err
	}

	segments, err := s.segmentRepo.GetSegments(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load segments: %w", err)
	}

	var transitions []domain.SegmentTransition
	for _, segment := range segments {
		transition, err := s.evaluateOne(ctx, personID, segment)
		if err != nil {
			s.logger.WithFields(map[string]interface{}{
				"segment_id": segment.ID,
				"person_id":  personID,
				"error":      err.Error(),
			}).Error("Segment evaluation failed")
			continue
		}
		if transition != nil {
			transitions = append(transitions, *transition)
		}
	}

	for _, transition := range transitions {
		if err := s.dispatcher.Notify(ctx, transition); err != nil {
			// the membership row is the system of record; log only
			s.logger.WithFields(map[string]interface{}{
				"segment_id": transition.SegmentID,
				"person_id":  transition.PersonID,
				"transition": transition.Transition,
				"error":      err.Error(),
			}).Error("Automation dispatch failed")
		}
	}

	return transitions, nil
}

// evaluateOne applies the not-member/member state machine for one pair and
// returns the transition, if any
func (s *SegmentService) evaluateOne(ctx context.Context, personID string, segment *domain.Segment) (*domain.SegmentTransition, error) {
	matches, err := s.EvaluateSegmentMembership(ctx, personID, segment)
	if err != nil {
		return nil, err
	}

	_, err = s.segmentRepo.GetActiveMembership(ctx, personID, segment.ID)
	isMember := err == nil
	if err != nil {
		if _, ok := err.(*domain.ErrMembershipNotFound); !ok {
			return nil, err
		}
	}

	now := time.Now().UTC()
	switch {
	case matches && !isMember:
		opened, err := s.segmentRepo.OpenMembership(ctx, &domain.SegmentMembership{
			ID:        uuid.New().String(),
			PersonID:  personID,
			SegmentID: segment.ID,
			EnteredAt: now,
			IsActive:  true,
		})
		if err != nil {
			return nil, err
		}
		if !opened {
			// a concurrent evaluation already opened it
			return nil, nil
		}
		return &domain.SegmentTransition{
			PersonID:   personID,
			SegmentID:  segment.ID,
			Transition: domain.TransitionEntered,
			OccurredAt: now,
		}, nil

	case !matches && isMember:
		closed, err := s.segmentRepo.CloseMembership(ctx, personID, segment.ID, now)
		if err != nil {
			return nil, err
		}
		if !closed {
			return nil, nil
		}
		return &domain.SegmentTransition{
			PersonID:   personID,
			SegmentID:  segment.ID,
			Transition: domain.TransitionExited,
			OccurredAt: now,
		}, nil
	}

	return nil, nil
}

// EvaluateAllPersons sweeps every person sequentially. The sweep is
// checkpointable between persons: stopping early loses no committed
// transitions.
func (s *SegmentService) EvaluateAllPersons(ctx context.Context) (*domain.BatchResult, error) {
	personIDs, err := s.personRepo.ListPersonIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}

	result := &domain.BatchResult{Total: len(personIDs)}
	for _, personID := range personIDs {
		if err := ctx.Err(); err != nil {
			// canceled between persons; committed transitions stand
			return result, err
		}
		if _, err := s.EvaluateAllSegmentsForPerson(ctx, personID); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", personID, err))
			continue
		}
		result.Successful++
	}

	return result, nil
}

// evaluateRules applies AND-combined rules against the feature snapshot,
// short-circuiting on the first failing rule
func evaluateRules(rules []domain.SegmentRule, fields map[string]interface{}) bool {
	for _, rule := range rules {
		if !evaluateRule(rule, fields) {
			return false
		}
	}
	return true
}

func evaluateRule(rule domain.SegmentRule, fields map[string]interface{}) bool {
	value, present := fields[rule.Field]
	isNull := !present || value == nil

	switch rule.Operator {
	case domain.OperatorIsNull:
		return isNull
	case domain.OperatorIsNotNull:
		return !isNull
	}

	if isNull {
		return false
	}

	switch rule.Operator {
	case domain.OperatorEquals:
		return valuesEqual(value, rule.Value)
	case domain.OperatorNotEquals:
		return !valuesEqual(value, rule.Value)
	case domain.OperatorGreaterThan:
		a, b, ok := bothNumbers(value, rule.Value)
		return ok && a > b
	case domain.OperatorLessThan:
		a, b, ok := bothNumbers(value, rule.Value)
		return ok && a < b
	case domain.OperatorContains:
		a, b, ok := bothStrings(value, rule.Value)
		return ok && strings.Contains(a, b)
	case domain.OperatorNotContains:
		a, b, ok := bothStrings(value, rule.Value)
		return ok && !strings.Contains(a, b)
	}

	return false
}

func valuesEqual(a, b interface{}) bool {
	if x, y, ok := bothNumbers(a, b); ok {
		return x == y
	}
	if x, y, ok := bothStrings(a, b); ok {
		return x == y
	}
	return false
}

func bothNumbers(a, b interface{}) (float64, float64, bool) {
	x, okA := toFloat(a)
	y, okB := toFloat(b)
	return x, y, okA && okB
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func bothStrings(a, b interface{}) (string, string, bool) {
	x, okA := a.(string)
	y, okB := b.(string)
	return x, y, okA && okB
}
