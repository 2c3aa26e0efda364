package lifecycle

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel-webapp/model"
)

// Capability is the actor's resolved relationship to a booking. Both the
// self-cancellation and agency/admin status paths consume it uniformly
// instead of repeating ad hoc role checks.
type Capability int

const (
	CapabilityNone Capability = iota
	CapabilityOwner
	CapabilityAdmin
	CapabilityAgencyOwner
)

var (
	// ErrAlreadyFinal marks a transition attempted from Cancelled or
	// Refunded; callers treat it as a no-op and return the current state.
	ErrAlreadyFinal = errors.New("booking is already in a terminal status")
	ErrNotAllowed   = errors.New("transition not allowed from current status")
)

// ResolveCapability maps the verified actor onto the booking. An agency
// actor only gains AgencyOwner over bookings of packages it created.
func ResolveCapability(booking model.Booking, pkg model.TravelPackage, actorId primitive.ObjectID, actorRole string) Capability {
	switch {
	case actorRole == model.RoleAdmin:
		return CapabilityAdmin
	case actorRole == model.RoleAgency && pkg.CreatedBy == actorId:
		return CapabilityAgencyOwner
	case booking.User == actorId:
		return CapabilityOwner
	default:
		return CapabilityNone
	}
}

// Outcome is the decided transition: the target status, refund metadata
// when the refund branch was taken, and the package bookings counter
// adjustment (only the plain-cancellation branch decrements).
type Outcome struct {
	Status              model.BookingStatus
	Refund              *model.RefundInfo
	BookingsCountChange int
}

// DecideCancellation applies the refund policy: a paid booking, or any
// cancellation driven by an admin or the owning agency, refunds the full
// total price; an unpaid self-cancellation by the owner plainly cancels
// and releases the package counter slot.
func DecideCancellation(booking model.Booking, capability Capability, refundMethod string, at time.Time) (Outcome, error) {
	if booking.Status.IsTerminal() {
		return Outcome{}, ErrAlreadyFinal
	}

	privileged := capability == CapabilityAdmin || capability == CapabilityAgencyOwner

	if booking.PaymentInfo.HasPaid() || privileged {
		if !booking.Status.CanTransitionTo(model.StatusRefunded) {
			return Outcome{}, ErrNotAllowed
		}
		if refundMethod == "" {
			refundMethod = "N/A"
		}
		return Outcome{
			Status: model.StatusRefunded,
			Refund: &model.RefundInfo{
				RefundedAt:   at,
				RefundAmount: booking.TotalPrice,
				RefundMethod: refundMethod,
			},
		}, nil
	}

	if !booking.Status.CanTransitionTo(model.StatusCancelled) {
		return Outcome{}, ErrNotAllowed
	}
	return Outcome{Status: model.StatusCancelled, BookingsCountChange: -1}, nil
}

// DecideConfirmation confirms unconditionally; payment state is ignored.
// Only the terminal guard applies.
func DecideConfirmation(booking model.Booking) (Outcome, error) {
	if booking.Status.IsTerminal() {
		return Outcome{}, ErrAlreadyFinal
	}
	if booking.Status != model.StatusConfirmed && !booking.Status.CanTransitionTo(model.StatusConfirmed) {
		return Outcome{}, ErrNotAllowed
	}
	return Outcome{Status: model.StatusConfirmed}, nil
}

// DecidePayment records payment completion. The transaction id is minted
// by the caller.
func DecidePayment(booking model.Booking) (model.BookingStatus, error) {
	if booking.Status.IsTerminal() {
		return "", ErrAlreadyFinal
	}
	if !booking.Status.CanTransitionTo(model.StatusPaid) {
		return "", ErrNotAllowed
	}
	return model.StatusPaid, nil
}
