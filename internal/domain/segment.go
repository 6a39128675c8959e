package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_segment_repository.go -package mocks github.com/courseloop/growthplane/internal/domain SegmentRepository
//go:generate mockgen -destination mocks/mock_segment_service.go -package mocks github.com/courseloop/growthplane/internal/domain SegmentService

// Condition types of the tagged union
const (
	ConditionTypeRules = "rules"
	ConditionTypeSQL   = "sql"
)

// Rule operators
const (
	OperatorEquals      = "equals"
	OperatorNotEquals   = "not_equals"
	OperatorGreaterThan = "greater_than"
	OperatorLessThan    = "less_than"
	OperatorContains    = "contains"
	OperatorNotContains = "not_contains"
	OperatorIsNull      = "is_null"
	OperatorIsNotNull   = "is_not_null"
)

var validOperators = map[string]bool{
	OperatorEquals:      true,
	OperatorNotEquals:   true,
	OperatorGreaterThan: true,
	OperatorLessThan:    true,
	OperatorContains:    true,
	OperatorNotContains: true,
	OperatorIsNull:      true,
	OperatorIsNotNull:   true,
}

// SegmentRule is one AND-combined predicate over the feature snapshot
type SegmentRule struct {
	Field    string      `json:"field"`
	Operator string      `json:"operator"`
	Value    interface{} `json:"value,omitempty"`
}

// Validate checks field, operator and value requirements
func (r *SegmentRule) Validate() error {
	if r.Field == "" {
		return fmt.Errorf("rule field is required")
	}
	if !IsFeatureField(r.Field) {
		return fmt.Errorf("unknown rule field: %s", r.Field)
	}
	if !validOperators[r.Operator] {
		return fmt.Errorf("unknown rule operator: %s", r.Operator)
	}
	switch r.Operator {
	case OperatorIsNull, OperatorIsNotNull:
		// no value
	default:
		if r.Value == nil {
			return fmt.Errorf("rule operator %s requires a value", r.Operator)
		}
	}
	return nil
}

// SegmentConditions is the persisted condition config: a tagged union
// validated at load time, not duck-typed during evaluation
type SegmentConditions struct {
	Type  string        `json:"type"`
	SQL   string        `json:"sql,omitempty"`
	Rules []SegmentRule `json:"rules,omitempty"`
}

// Validate checks the discriminant and the selected variant
func (c *SegmentConditions) Validate() error {
	switch c.Type {
	case ConditionTypeRules:
		if len(c.Rules) == 0 {
			return fmt.Errorf("rules conditions require at least one rule")
		}
		for i := range c.Rules {
			if err := c.Rules[i].Validate(); err != nil {
				return fmt.Errorf("rule %d: %w", i, err)
			}
		}
		return nil
	case ConditionTypeSQL:
		if c.SQL == "" {
			return fmt.Errorf("sql conditions require a predicate")
		}
		return validateSQLPredicate(c.SQL)
	}
	return fmt.Errorf("unknown condition type: %q", c.Type)
}

// keywords allowed in sql-mode predicates besides the feature columns
var sqlPredicateKeywords = map[string]bool{
	"and":   true,
	"or":    true,
	"not":   true,
	"is":    true,
	"null":  true,
	"true":  true,
	"false": true,
}

// validateSQLPredicate vets a sql-mode predicate at load time. Only the
// feature columns, boolean keywords, comparison operators, numeric and
// quoted string literals, and parentheses may appear; everything else,
// function calls included, is rejected before the predicate can reach
// the database.
func validateSQLPredicate(predicate string) error {
	runes := []rune(predicate)
	prevIdent := false
	i := 0
	for i < len(runes) {
		ch := runes[i]
		switch {
		case unicode.IsSpace(ch):
			i++
		case ch == '(':
			if prevIdent {
				return fmt.Errorf("function calls are not allowed in sql conditions")
			}
			i++
		case ch == ')':
			prevIdent = false
			i++
		case ch == '\'':
			end := -1
			for j := i + 1; j < len(runes); j++ {
				if runes[j] != '\'' {
					continue
				}
				if j+1 < len(runes) && runes[j+1] == '\'' {
					// escaped quote inside the literal
					j++
					continue
				}
				end = j
				break
			}
			if end < 0 {
				return fmt.Errorf("unterminated string literal in sql condition")
			}
			prevIdent = false
			i = end + 1
		case ch >= '0' && ch <= '9':
			j := i
			for j < len(runes) && (runes[j] >= '0' && runes[j] <= '9' || runes[j] == '.') {
				j++
			}
			prevIdent = false
			i = j
		case ch == '_' || unicode.IsLetter(ch):
			j := i
			for j < len(runes) && (runes[j] == '_' || unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j])) {
				j++
			}
			word := strings.ToLower(string(runes[i:j]))
			switch {
			case sqlPredicateKeywords[word]:
				prevIdent = false
			case IsFeatureField(word):
				prevIdent = true
			default:
				return fmt.Errorf("unknown identifier in sql condition: %s", word)
			}
			i = j
		case ch == '=' || ch == '<' || ch == '>' || ch == '!':
			j := i + 1
			if j < len(runes) && (runes[j] == '=' || runes[j] == '>') {
				j++
			}
			switch string(runes[i:j]) {
			case "=", "!=", "<>", "<", "<=", ">", ">=":
			default:
				return fmt.Errorf("invalid operator in sql condition: %s", string(runes[i:j]))
			}
			prevIdent = false
			i = j
		default:
			return fmt.Errorf("invalid character in sql condition: %q", ch)
		}
	}
	return nil
}

// Segment is a dynamically evaluated audience definition
type Segment struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Conditions *SegmentConditions `json:"conditions"`
	IsActive   bool               `json:"is_active"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// Validate performs validation on the segment fields
func (s *Segment) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("invalid segment: id is required")
	}
	if !govalidator.Matches(s.ID, "^[a-z0-9_]+$") {
		return fmt.Errorf("invalid segment: id must contain only lowercase letters, numbers, and underscores")
	}
	if len(s.ID) > 64 {
		return fmt.Errorf("invalid segment: id length must be between 1 and 64")
	}
	if s.Name == "" {
		return fmt.Errorf("invalid segment: name is required")
	}
	if len(s.Name) > 255 {
		return fmt.Errorf("invalid segment: name length must be between 1 and 255")
	}
	if s.Conditions == nil {
		return fmt.Errorf("invalid segment: conditions are required")
	}
	if err := s.Conditions.Validate(); err != nil {
		return fmt.Errorf("invalid segment conditions: %w", err)
	}
	return nil
}

// SegmentMembership is the per (person, segment) state machine row: open
// while the person is a member, closed (never deleted) on exit
type SegmentMembership struct {
	ID        string        `json:"id"`
	PersonID  string        `json:"person_id"`
	SegmentID string        `json:"segment_id"`
	EnteredAt time.Time     `json:"entered_at"`
	ExitedAt  *NullableTime `json:"exited_at,omitempty"`
	IsActive  bool          `json:"is_active"`
}

// Transition directions reported to the automation dispatcher
const (
	TransitionEntered = "entered"
	TransitionExited  = "exited"
)

// SegmentTransition is the published record of a membership change
type SegmentTransition struct {
	PersonID   string    `json:"person_id"`
	SegmentID  string    `json:"segment_id"`
	Transition string    `json:"transition"`
	OccurredAt time.Time `json:"occurred_at"`
}

// DedupKey identifies a transition for at-least-once delivery downstream
func (t SegmentTransition) DedupKey() string {
	// nanosecond precision keeps an exit/re-enter pair within the same
	// second from colliding
	return fmt.Sprintf("%s:%s:%s:%d", t.PersonID, t.SegmentID, t.Transition, t.OccurredAt.UTC().UnixNano())
}

// For database scanning
type dbSegment struct {
	ID         string
	Name       string
	Conditions MapOfAny
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ScanSegment scans a segment from the database
func ScanSegment(scanner interface {
	Scan(dest ...interface{}) error
}) (*Segment, error) {
	var dbs dbSegment
	if err := scanner.Scan(
		&dbs.ID,
		&dbs.Name,
		&dbs.Conditions,
		&dbs.IsActive,
		&dbs.CreatedAt,
		&dbs.UpdatedAt,
	); err != nil {
		return nil, err
	}

	conditions, err := ConditionsFromMapOfAny(dbs.Conditions)
	if err != nil {
		return nil, fmt.Errorf("failed to parse segment conditions: %w", err)
	}

	return &Segment{
		ID:         dbs.ID,
		Name:       dbs.Name,
		Conditions: conditions,
		IsActive:   dbs.IsActive,
		CreatedAt:  dbs.CreatedAt,
		UpdatedAt:  dbs.UpdatedAt,
	}, nil
}

// ScanSegmentMembership scans a membership row from the database
func ScanSegmentMembership(scanner interface {
	Scan(dest ...interface{}) error
}) (*SegmentMembership, error) {
	var m SegmentMembership
	var exitedAt NullableTime
	if err := scanner.Scan(
		&m.ID,
		&m.PersonID,
		&m.SegmentID,
		&m.EnteredAt,
		&exitedAt,
		&m.IsActive,
	); err != nil {
		return nil, err
	}
	m.ExitedAt = &exitedAt
	return &m, nil
}

// ConditionsFromMapOfAny rebuilds the validated tagged union from a JSONB
// column value
func ConditionsFromMapOfAny(m MapOfAny) (*SegmentConditions, error) {
	if m == nil {
		return nil, fmt.Errorf("conditions are empty")
	}
	c := &SegmentConditions{}
	if t, ok := m["type"].(string); ok {
		c.Type = t
	}
	if sqlStr, ok := m["sql"].(string); ok {
		c.SQL = sqlStr
	}
	if rules, ok := m["rules"].([]interface{}); ok {
		for _, raw := range rules {
			rm, ok := raw.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("malformed rule entry")
			}
			rule := SegmentRule{}
			if f, ok := rm["field"].(string); ok {
				rule.Field = f
			}
			if op, ok := rm["operator"].(string); ok {
				rule.Operator = op
			}
			rule.Value = rm["value"]
			c.Rules = append(c.Rules, rule)
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// ToMapOfAny converts conditions for JSONB persistence
func (c *SegmentConditions) ToMapOfAny() MapOfAny {
	m := MapOfAny{"type": c.Type}
	if c.SQL != "" {
		m["sql"] = c.SQL
	}
	if len(c.Rules) > 0 {
		rules := make([]interface{}, 0, len(c.Rules))
		for _, r := range c.Rules {
			rules = append(rules, map[string]interface{}{
				"field":    r.Field,
				"operator": r.Operator,
				"value":    r.Value,
			})
		}
		m["rules"] = rules
	}
	return m
}

// Request/Response types

type CreateSegmentRequest struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Conditions *SegmentConditions `json:"conditions"`
}

func (r *CreateSegmentRequest) Validate() (*Segment, error) {
	segment := &Segment{
		ID:         r.ID,
		Name:       r.Name,
		Conditions: r.Conditions,
		IsActive:   true,
	}
	if err := segment.Validate(); err != nil {
		return nil, NewValidationError(err.Error())
	}
	return segment, nil
}

type GetSegmentRequest struct {
	ID string `json:"id"`
}

func (r *GetSegmentRequest) Validate() error {
	if r.ID == "" {
		return NewValidationError("id is required")
	}
	return nil
}

type UpdateSegmentRequest struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Conditions *SegmentConditions `json:"conditions"`
	IsActive   *bool              `json:"is_active,omitempty"`
}

func (r *UpdateSegmentRequest) Validate() (*Segment, error) {
	segment := &Segment{
		ID:         r.ID,
		Name:       r.Name,
		Conditions: r.Conditions,
		IsActive:   true,
	}
	if r.IsActive != nil {
		segment.IsActive = *r.IsActive
	}
	if err := segment.Validate(); err != nil {
		return nil, NewValidationError(err.Error())
	}
	return segment, nil
}

type DeleteSegmentRequest struct {
	ID string `json:"id"`
}

func (r *DeleteSegmentRequest) Validate() error {
	if r.ID == "" {
		return NewValidationError("id is required")
	}
	return nil
}

type EvaluateSegmentsRequest struct {
	PersonID string `json:"person_id,omitempty"`
}

// SegmentService manages segment definitions and membership evaluation
type SegmentService interface {
	// CreateSegment creates a new segment definition
	CreateSegment(ctx context.Context, req *CreateSegmentRequest) (*Segment, error)

	// GetSegment retrieves a segment by ID
	GetSegment(ctx context.Context, req *GetSegmentRequest) (*Segment, error)

	// ListSegments retrieves all segments
	ListSegments(ctx context.Context) ([]*Segment, error)

	// UpdateSegment updates an existing segment definition
	UpdateSegment(ctx context.Context, req *UpdateSegmentRequest) (*Segment, error)

	// DeleteSegment deactivates a segment; membership history is preserved
	DeleteSegment(ctx context.Context, req *DeleteSegmentRequest) error

	// EvaluateSegmentMembership decides whether a person currently matches
	// a segment's conditions
	EvaluateSegmentMembership(ctx context.Context, personID string, segment *Segment) (bool, error)

	// EvaluateAllSegmentsForPerson runs the membership state machine for
	// every active segment and notifies the automation dispatcher of
	// transitions
	EvaluateAllSegmentsForPerson(ctx context.Context, personID string) ([]SegmentTransition, error)

	// EvaluateAllPersons sweeps every person; checkpointable between
	// persons, partial failures never abort the sweep
	EvaluateAllPersons(ctx context.Context) (*BatchResult, error)
}

// SegmentRepository persists segment definitions and memberships
type SegmentRepository interface {
	// CreateSegment creates a new segment in the database
	CreateSegment(ctx context.Context, segment *Segment) error

	// GetSegmentByID retrieves a segment by its ID
	GetSegmentByID(ctx context.Context, id string) (*Segment, error)

	// GetSegments retrieves segments, optionally only active ones
	GetSegments(ctx context.Context, activeOnly bool) ([]*Segment, error)

	// UpdateSegment updates an existing segment
	UpdateSegment(ctx context.Context, segment *Segment) error

	// DeactivateSegment marks a segment inactive
	DeactivateSegment(ctx context.Context, id string) error

	// GetActiveMembership returns the open membership row for a pair
	GetActiveMembership(ctx context.Context, personID, segmentID string) (*SegmentMembership, error)

	// OpenMembership inserts a new active row; a concurrent open of the
	// same pair is a no-op thanks to the partial unique index. Reports
	// whether a row was actually opened.
	OpenMembership(ctx context.Context, membership *SegmentMembership) (bool, error)

	// CloseMembership closes the active row, preserving it as history.
	// Reports whether a row was actually closed.
	CloseMembership(ctx context.Context, personID, segmentID string, exitedAt time.Time) (bool, error)

	// EvaluateSQLCondition runs a sql-mode predicate against the person's
	// feature snapshot row
	EvaluateSQLCondition(ctx context.Context, personID, predicate string) (bool, error)
}

// ErrSegmentNotFound is returned when a segment is not found
type ErrSegmentNotFound struct {
	Message string
}

func (e *ErrSegmentNotFound) Error() string {
	return e.Message
}

// ErrMembershipNotFound is returned when no active membership row exists
type ErrMembershipNotFound struct {
	Message string
}

func (e *ErrMembershipNotFound) Error() string {
	return e.Message
}
