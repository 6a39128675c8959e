package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventValidate(t *testing.T) {
	valid := func() *Event {
		return &Event{
			ID:          "evt_1",
			Name:        "lesson_completed",
			AnonymousID: "anon",
			SessionID:   "sess",
			Source:      EventSourceWeb,
			CreatedAt:   time.Now().UTC(),
		}
	}

	t.Run("valid event", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("dotted names are allowed", func(t *testing.T) {
		e := valid()
		e.Name = EventNameEmailClick
		assert.NoError(t, e.Validate())
	})

	t.Run("uppercase names are rejected", func(t *testing.T) {
		e := valid()
		e.Name = "LessonCompleted"
		assert.Error(t, e.Validate())
	})

	t.Run("source is required", func(t *testing.T) {
		e := valid()
		e.Source = ""
		assert.Error(t, e.Validate())
	})

	t.Run("nil properties default to empty map", func(t *testing.T) {
		e := valid()
		e.Properties = nil
		assert.NoError(t, e.Validate())
		assert.NotNil(t, e.Properties)
	})
}

func TestListEventsRequestValidate(t *testing.T) {
	t.Run("person id is required", func(t *testing.T) {
		req := &ListEventsRequest{}
		assert.Error(t, req.Validate())
	})

	t.Run("zero limit defaults to the cap", func(t *testing.T) {
		req := &ListEventsRequest{PersonID: "p1"}
		assert.NoError(t, req.Validate())
		assert.Equal(t, 500, req.Limit)
	})

	t.Run("oversized limit is capped", func(t *testing.T) {
		req := &ListEventsRequest{PersonID: "p1", Limit: 10000}
		assert.NoError(t, req.Validate())
		assert.Equal(t, 500, req.Limit)
	})

	t.Run("negative limit is rejected", func(t *testing.T) {
		req := &ListEventsRequest{PersonID: "p1", Limit: -1}
		assert.Error(t, req.Validate())
	})
}
