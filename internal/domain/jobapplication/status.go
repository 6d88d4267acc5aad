// Package jobapplication holds the application lifecycle.
//
// Approval graph over (approved_status, work_status):
//
//	(applied, pending) ──approve──► (approved, assigned) ──complete──► (approved, completed)
//	        │
//	        └─────────reject──────► (rejected, pending)
//
// payment_status moves on its own: pending ──► paid | rejected.
package jobapplication

import (
	"errors"
	"fmt"
)

type ApprovedStatus string

const (
	ApprovedStatusApplied  ApprovedStatus = "applied"
	ApprovedStatusApproved ApprovedStatus = "approved"
	ApprovedStatusRejected ApprovedStatus = "rejected"
)

type WorkStatus string

const (
	WorkStatusPending   WorkStatus = "pending"
	WorkStatusAssigned  WorkStatus = "assigned"
	WorkStatusCompleted WorkStatus = "completed"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// Action is an admin decision on an application.
type Action string

const (
	ActionApprove  Action = "approve"
	ActionReject   Action = "reject"
	ActionComplete Action = "complete"
)

// State is the (approved_status, work_status) pair that the approval workflow moves.
type State struct {
	Approved ApprovedStatus
	Work     WorkStatus
}

func (s State) String() string {
	return fmt.Sprintf("(%s, %s)", s.Approved, s.Work)
}

var ErrInvalidTransition = errors.New("invalid application status transition")

var transitions = map[Action]struct{ from, to State }{
	ActionApprove: {
		from: State{ApprovedStatusApplied, WorkStatusPending},
		to:   State{ApprovedStatusApproved, WorkStatusAssigned},
	},
	ActionReject: {
		from: State{ApprovedStatusApplied, WorkStatusPending},
		to:   State{ApprovedStatusRejected, WorkStatusPending},
	},
	ActionComplete: {
		from: State{ApprovedStatusApproved, WorkStatusAssigned},
		to:   State{ApprovedStatusApproved, WorkStatusCompleted},
	},
}

// Next returns the state reached by applying action to current.
func Next(current State, action Action) (State, error) {
	t, ok := transitions[action]
	if !ok {
		return current, fmt.Errorf("%w: unknown action %q", ErrInvalidTransition, action)
	}
	if current != t.from {
		return current, fmt.Errorf("%w: cannot %s from %s", ErrInvalidTransition, action, current)
	}
	return t.to, nil
}

// Source returns the only state from which action may be applied.
func Source(action Action) (State, bool) {
	t, ok := transitions[action]
	return t.from, ok
}

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending: {PaymentStatusPaid, PaymentStatusRejected},
	// paid and rejected are terminal
}

func IsPaymentTransitionAllowed(from, to PaymentStatus) bool {
	for _, s := range paymentTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func ParseApprovedStatus(s string) (ApprovedStatus, error) {
	st := ApprovedStatus(s)
	switch st {
	case ApprovedStatusApplied, ApprovedStatusApproved, ApprovedStatusRejected:
		return st, nil
	}
	return "", fmt.Errorf("unknown approved status %q", s)
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	st := PaymentStatus(s)
	switch st {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusRejected:
		return st, nil
	}
	return "", fmt.Errorf("unknown payment status %q", s)
}
