package models

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/statekit"

	dErrors "localdir/pkg/domain-errors"
)

// Status is the moderation state of an entity.
type Status string

const (
	statePending  = "PENDING"
	stateApproved = "APPROVED"
	stateRejected = "REJECTED"
)

const (
	StatusPending  Status = statePending
	StatusApproved Status = stateApproved
	StatusRejected Status = stateRejected
)

// Statuses lists every status, in display order.
var Statuses = []Status{StatusPending, StatusApproved, StatusRejected}

// ParseTarget accepts the statuses a transition may move to.
func ParseTarget(raw string) (Status, error) {
	switch s := Status(strings.ToUpper(strings.TrimSpace(raw))); s {
	case StatusApproved, StatusRejected:
		return s, nil
	default:
		return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("invalid target status %q", raw))
	}
}

// Verb is the past-tense word used in messages ("approved").
func (s Status) Verb() string {
	return strings.ToLower(string(s))
}

func (s Status) event() string {
	switch s {
	case StatusApproved:
		return "approve"
	case StatusRejected:
		return "reject"
	}
	return ""
}

type transitionContext struct {
	EntityID string
}

// NextStatus runs the moderation machine from current towards target and
// returns the resulting status. Moves that the machine does not allow fail
// with CodeInvariantViolation; nothing ever returns to PENDING.
func NextStatus(entityID string, current, target Status) (Status, error) {
	builder := statekit.NewMachine[transitionContext]("moderation").
		WithInitial(statekit.StateID(current)).
		WithContext(transitionContext{EntityID: entityID})

	builder.State(statePending).
		On("approve").Target(stateApproved).
		On("reject").Target(stateRejected).
		Done()

	builder.State(stateApproved).
		On("reject").Target(stateRejected).
		Done()

	builder.State(stateRejected).
		On("approve").Target(stateApproved).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return current, fmt.Errorf("build moderation machine: %w", err)
	}

	interp := statekit.NewInterpreter(machine)
	interp.Start()
	interp.Send(statekit.Event{Type: statekit.EventType(target.event())})

	next := Status(interp.State().Value)
	if next != target {
		return current, dErrors.New(dErrors.CodeInvariantViolation,
			fmt.Sprintf("cannot move %s from %s to %s", entityID, current, target))
	}
	return next, nil
}
