package model

import (
	"slices"
	"strings"
)

type Status string

const (
	StatusPending         Status = "pending"
	StatusAccepted        Status = "accepted"
	StatusRejected        Status = "rejected"
	StatusCancelRequested Status = "cancel_requested"
	StatusCancelled       Status = "cancelled"
	StatusCheckedIn       Status = "checked_in"
	StatusCheckedOut      Status = "checked_out"
	StatusMaintained      Status = "maintained"
)

var transitions = map[Status][]Status{
	StatusPending:         {StatusAccepted, StatusRejected, StatusCancelRequested, StatusCancelled},
	StatusAccepted:        {StatusCheckedIn, StatusCancelRequested, StatusCancelled},
	StatusCancelRequested: {StatusCancelled, StatusAccepted},
	StatusCheckedIn:       {StatusCheckedOut},
}

// ParseStatus accepts the canonical values plus the legacy spellings
// "cancel requested" and "checked-in" style variants.
func ParseStatus(value string) (Status, bool) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)

	status := Status(normalized)

	return status, status.IsValid()
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCancelRequested,
		StatusCancelled, StatusCheckedIn, StatusCheckedOut, StatusMaintained:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

func (s Status) CanTransition(to Status) bool {
	return slices.Contains(transitions[s], to)
}

// Occupies reports whether a booking in this status still holds its room.
func (s Status) Occupies(cancelRequestOccupies bool) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusCheckedIn:
		return true
	case StatusCancelRequested:
		return cancelRequestOccupies
	default:
		return false
	}
}

// ActiveStatuses lists the statuses that occupy a room.
func ActiveStatuses(cancelRequestOccupies bool) []Status {
	statuses := []Status{StatusPending, StatusAccepted, StatusCheckedIn}
	if cancelRequestOccupies {
		statuses = append(statuses, StatusCancelRequested)
	}

	return statuses
}

// RequiresManager reports whether moving into to is an operator decision.
func (s Status) RequiresManager() bool {
	return s != StatusCancelRequested
}
