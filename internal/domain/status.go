package domain

import (
	"fmt"
	"strings"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"
)

// AllStatuses lists every status in workflow order
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
	StatusCancelled,
}

// TransitionRule describes what a permitted status change does besides changing the status
type TransitionRule struct {
	// CapacityGuard requires every stay night to still have room before the change commits
	CapacityGuard bool

	StampCheckedIn  bool
	StampCheckedOut bool
	StampCancelled  bool
}

// transitions is the complete table of permitted status changes.
// Anything missing from it is an invalid transition.
var transitions = map[BookingStatus]map[BookingStatus]TransitionRule{
	StatusPending: {
		StatusConfirmed: {CapacityGuard: true},
		StatusCancelled: {StampCancelled: true},
	},
	StatusConfirmed: {
		StatusCheckedIn: {CapacityGuard: true, StampCheckedIn: true},
		StatusCancelled: {StampCancelled: true},
	},
	StatusCheckedIn: {
		StatusCheckedOut: {StampCheckedOut: true},
		StatusCancelled:  {StampCancelled: true},
	},
}

// ParseBookingStatus parses a status string
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}

// IsValid returns true for a known status
func (s BookingStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal returns true when no further transition is possible
func (s BookingStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// CanTransitionTo returns true if the table permits moving from s to target
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	_, ok := transitions[s][target]
	return ok
}

// NextStatuses returns the statuses reachable from s in one step
func (s BookingStatus) NextStatuses() []BookingStatus {
	next := make([]BookingStatus, 0, len(transitions[s]))
	for _, candidate := range AllStatuses {
		if s.CanTransitionTo(candidate) {
			next = append(next, candidate)
		}
	}
	return next
}

// Transition returns the rule for moving from one status to another
func Transition(from, to BookingStatus) (TransitionRule, error) {
	rule, ok := transitions[from][to]
	if !ok {
		return TransitionRule{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return rule, nil
}

// StatusTimestamps are the lifecycle moments written together with a status change
type StatusTimestamps struct {
	CheckedInAt  *time.Time
	CheckedOutAt *time.Time
	CancelledAt  *time.Time
}

// Stamps returns the timestamps the rule sets at the given moment
func (r TransitionRule) Stamps(now time.Time) StatusTimestamps {
	var ts StatusTimestamps
	if r.StampCheckedIn {
		ts.CheckedInAt = &now
	}
	if r.StampCheckedOut {
		ts.CheckedOutAt = &now
	}
	if r.StampCancelled {
		ts.CancelledAt = &now
	}
	return ts
}

// TransitionLabel formats a transition for logs and metric labels
func TransitionLabel(from, to BookingStatus) string {
	return string(from) + "->" + string(to)
}
