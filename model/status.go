package model

import "fmt"

// BookingStatus represents the current state of a booking in its lifecycle.
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusPaid      BookingStatus = "Paid"
	StatusCancelled BookingStatus = "Cancelled"
	StatusRefunded  BookingStatus = "Refunded"
)

// validTransitions is the booking state machine. Cancelled and Refunded
// are terminal: nothing moves out of them, including repeated cancels.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusPaid, StatusCancelled, StatusRefunded},
	StatusConfirmed: {StatusPaid, StatusCancelled, StatusRefunded},
	StatusPaid:      {StatusConfirmed, StatusCancelled, StatusRefunded},
	StatusCancelled: {},
	StatusRefunded:  {},
}

func (s BookingStatus) IsValid() bool {
	_, exists := validTransitions[s]
	return exists
}

func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range validTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s BookingStatus) IsTerminal() bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return true
	}
	return len(allowed) == 0
}

func (s BookingStatus) String() string {
	return string(s)
}

func ParseBookingStatus(raw string) (BookingStatus, error) {
	status := BookingStatus(raw)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", raw)
	}
	return status, nil
}
