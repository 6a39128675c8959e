package domain

import (
	"context"
)

//go:generate mockgen -destination mocks/mock_automation_dispatcher.go -package mocks github.com/courseloop/growthplane/internal/domain AutomationDispatcher

// AutomationDispatcher consumes segment transitions and performs downstream
// side effects (send email, sync ad audience). This subsystem only
// guarantees the dispatcher is notified at least once per transition, keyed
// by SegmentTransition.DedupKey; what happens downstream is out of scope.
//
// A DownstreamError from Notify is logged by the caller and never rolls
// back the committed membership transition.
type AutomationDispatcher interface {
	Notify(ctx context.Context, transition SegmentTransition) error
}
