package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel-webapp/model"
)

var (
	ownerId  = primitive.NewObjectID()
	agencyId = primitive.NewObjectID()
	adminId  = primitive.NewObjectID()
	otherId  = primitive.NewObjectID()
)

func fixtureBooking(status model.BookingStatus, paid bool) model.Booking {
	booking := model.Booking{
		Id:                 primitive.NewObjectID(),
		User:               ownerId,
		TravelPackage:      primitive.NewObjectID(),
		NumberOfTravellers: 2,
		TotalPrice:         500,
		Status:             status,
	}
	if paid {
		paidAt := time.Date(2026, time.May, 1, 12, 0, 0, 0, time.UTC)
		booking.PaymentInfo = &model.PaymentInfo{
			TransactionId: "txn-test",
			Method:        "card",
			PaidAt:        &paidAt,
		}
	}
	return booking
}

func fixturePackage() model.TravelPackage {
	return model.TravelPackage{
		Id:        primitive.NewObjectID(),
		Name:      "Alps Getaway",
		CreatedBy: agencyId,
		Price:     250,
	}
}

func TestResolveCapability(t *testing.T) {
	booking := fixtureBooking(model.StatusPending, false)
	pkg := fixturePackage()

	tests := []struct {
		description string
		actorId     primitive.ObjectID
		actorRole   string
		expected    Capability
	}{
		{"booking owner", ownerId, model.RoleUser, CapabilityOwner},
		{"admin over any booking", adminId, model.RoleAdmin, CapabilityAdmin},
		{"agency owning the package", agencyId, model.RoleAgency, CapabilityAgencyOwner},
		{"agency not owning the package", otherId, model.RoleAgency, CapabilityNone},
		{"unrelated user", otherId, model.RoleUser, CapabilityNone},
	}

	for _, test := range tests {
		got := ResolveCapability(booking, pkg, test.actorId, test.actorRole)
		assert.Equalf(t, test.expected, got, test.description)
	}
}

func TestCancellationRefundsWhenPaid(t *testing.T) {
	at := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)

	for _, capability := range []Capability{CapabilityOwner, CapabilityAdmin, CapabilityAgencyOwner} {
		booking := fixtureBooking(model.StatusPaid, true)

		outcome, err := DecideCancellation(booking, capability, "bank transfer", at)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusRefunded, outcome.Status)
		if assert.NotNil(t, outcome.Refund) {
			assert.Equal(t, booking.TotalPrice, outcome.Refund.RefundAmount)
			assert.Equal(t, "bank transfer", outcome.Refund.RefundMethod)
			assert.Equal(t, at, outcome.Refund.RefundedAt)
		}
		assert.Equal(t, 0, outcome.BookingsCountChange, "refund must not touch the package counter")
	}
}

func TestCancellationRefundsForPrivilegedActorsEvenUnpaid(t *testing.T) {
	at := time.Now()

	for _, capability := range []Capability{CapabilityAdmin, CapabilityAgencyOwner} {
		booking := fixtureBooking(model.StatusConfirmed, false)

		outcome, err := DecideCancellation(booking, capability, "", at)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusRefunded, outcome.Status)
		if assert.NotNil(t, outcome.Refund) {
			assert.Equal(t, "N/A", outcome.Refund.RefundMethod)
		}
		assert.Equal(t, 0, outcome.BookingsCountChange)
	}
}

func TestUnpaidSelfCancellationReleasesSlot(t *testing.T) {
	booking := fixtureBooking(model.StatusPending, false)

	outcome, err := DecideCancellation(booking, CapabilityOwner, "", time.Now())

	assert.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, outcome.Status)
	assert.Nil(t, outcome.Refund)
	assert.Equal(t, -1, outcome.BookingsCountChange)
}

func TestCancellationFromTerminalStatusIsRejected(t *testing.T) {
	for _, status := range []model.BookingStatus{model.StatusCancelled, model.StatusRefunded} {
		booking := fixtureBooking(status, true)

		_, err := DecideCancellation(booking, CapabilityAdmin, "", time.Now())

		assert.Equalf(t, ErrAlreadyFinal, err, "status %v must stay terminal", status)
	}
}

func TestConfirmationIgnoresPaymentState(t *testing.T) {
	tests := []struct {
		description string
		booking     model.Booking
	}{
		{"pending unpaid", fixtureBooking(model.StatusPending, false)},
		{"pending paid", fixtureBooking(model.StatusPending, true)},
		{"already paid", fixtureBooking(model.StatusPaid, true)},
		{"already confirmed stays confirmed", fixtureBooking(model.StatusConfirmed, false)},
	}

	for _, test := range tests {
		outcome, err := DecideConfirmation(test.booking)

		assert.NoErrorf(t, err, test.description)
		assert.Equalf(t, model.StatusConfirmed, outcome.Status, test.description)
		assert.Nilf(t, outcome.Refund, test.description)
		assert.Equalf(t, 0, outcome.BookingsCountChange, test.description)
	}
}

func TestConfirmationFromTerminalStatusIsRejected(t *testing.T) {
	for _, status := range []model.BookingStatus{model.StatusCancelled, model.StatusRefunded} {
		_, err := DecideConfirmation(fixtureBooking(status, false))
		assert.Equal(t, ErrAlreadyFinal, err)
	}
}

func TestDecidePayment(t *testing.T) {
	status, err := DecidePayment(fixtureBooking(model.StatusPending, false))
	assert.NoError(t, err)
	assert.Equal(t, model.StatusPaid, status)

	_, err = DecidePayment(fixtureBooking(model.StatusPaid, true))
	assert.Equal(t, ErrNotAllowed, err)

	_, err = DecidePayment(fixtureBooking(model.StatusRefunded, true))
	assert.Equal(t, ErrAlreadyFinal, err)
}
