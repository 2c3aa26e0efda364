package handlers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel-webapp/database"
	"travel-webapp/errors"
	"travel-webapp/lifecycle"
	"travel-webapp/model"
)

const (
	actionConfirm = "confirm"
	actionCancel  = "cancel"
)

type bookingRequest struct {
	TravelPackage      string `json:"travel_package"`
	NumberOfTravellers uint   `json:"number_of_travellers"`
}

type statusRequest struct {
	Action       string `json:"action"`
	Remark       string `json:"remark"`
	RefundMethod string `json:"refund_method"`
}

type paymentRequest struct {
	Method string `json:"method"`
}

func CreateBooking(c *fiber.Ctx) error {
	req := new(bookingRequest)
	if jsonErr := c.BodyParser(req); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable booking parameters: %v", jsonErr))
	}
	if req.NumberOfTravellers == 0 {
		return errors.RaiseBadRequestError(c, "cannot book for 0 travellers")
	}

	packageId, idErr := primitive.ObjectIDFromHex(req.TravelPackage)
	if idErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed package id: %v", idErr))
	}

	userId, uidErr := currentUserId(c)
	if uidErr != nil {
		return errors.RaisePermissionsError(c, "no verified user identity in token")
	}

	var travelPackage model.TravelPackage
	dbErr := database.FindById(database.PackagesCollection, packageId, &travelPackage)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("package %v not found", req.TravelPackage))
	} else if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	currentTime := time.Now()
	newBooking := model.Booking{
		Id:                 primitive.NewObjectID(),
		User:               userId,
		TravelPackage:      travelPackage.Id,
		NumberOfTravellers: req.NumberOfTravellers,
		TotalPrice:         travelPackage.Price * float64(req.NumberOfTravellers),
		Status:             model.StatusPending,
		BookedAt:           currentTime,
		UpdatedAt:          currentTime,
	}

	writeErr := database.WriteToCollection(newBooking, database.BookingsCollection)
	if writeErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", writeErr))
	}

	incErr := database.IncrementField(database.PackagesCollection, travelPackage.Id, "bookings_count", 1)
	if incErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("db error while updating package counters: %v", incErr))
	}

	bookingJson, jsonErr := json.MarshalIndent(newBooking, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(bookingJson))
}

func GetBookings(c *fiber.Ctx) error {
	filter := bson.D{}
	if !isAdminRole(c) {
		userId, uidErr := currentUserId(c)
		if uidErr != nil {
			return errors.RaisePermissionsError(c, "no verified user identity in token")
		}
		filter = bson.D{primitive.E{Key: "user", Value: userId}}
	}

	bookings := []model.Booking{}
	dbErr := database.FindMany(database.BookingsCollection, filter, &bookings)
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	bookingsJson, jsonErr := json.MarshalIndent(bookings, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(bookingsJson))
}

func GetBooking(c *fiber.Ctx) error {
	booking, travelPackage, ok := loadBookingWithPackage(c)
	if !ok {
		return nil
	}

	userId, uidErr := currentUserId(c)
	if uidErr != nil {
		return errors.RaisePermissionsError(c, "no verified user identity in token")
	}

	capability := lifecycle.ResolveCapability(booking, travelPackage, userId, currentRole(c))
	if capability == lifecycle.CapabilityNone {
		return errors.RaiseForbiddenError(c, "booking belongs to another user")
	}

	bookingJson, jsonErr := json.MarshalIndent(booking, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(bookingJson))
}

// CancelBooking handles cancellation requested by the booking owner, an
// admin, or the agency owning the package. Paid bookings and privileged
// cancellations refund the full price; an unpaid self-cancellation
// releases the package booking slot.
func CancelBooking(c *fiber.Ctx) error {
	req := new(statusRequest)
	if len(c.Body()) > 0 {
		if jsonErr := c.BodyParser(req); jsonErr != nil {
			return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable cancellation parameters: %v", jsonErr))
		}
	}

	booking, travelPackage, ok := loadBookingWithPackage(c)
	if !ok {
		return nil
	}

	userId, uidErr := currentUserId(c)
	if uidErr != nil {
		return errors.RaisePermissionsError(c, "no verified user identity in token")
	}

	capability := lifecycle.ResolveCapability(booking, travelPackage, userId, currentRole(c))
	if capability == lifecycle.CapabilityNone {
		return errors.RaiseForbiddenError(c, "only the booking owner, an admin or the owning agency can cancel")
	}

	return applyCancellation(c, booking, travelPackage, capability, req)
}

// SetBookingStatus is the agency/admin management endpoint: confirm or
// cancel. The action is validated before anything is loaded or mutated.
func SetBookingStatus(c *fiber.Ctx) error {
	req := new(statusRequest)
	if jsonErr := c.BodyParser(req); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable status parameters: %v", jsonErr))
	}
	if req.Action != actionConfirm && req.Action != actionCancel {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unknown action %q, expected %q or %q", req.Action, actionConfirm, actionCancel))
	}
	if !isAdminRole(c) && !isAgencyRole(c) {
		return errors.RaiseForbiddenError(c, "only admin or agency accounts can set booking status")
	}

	booking, travelPackage, ok := loadBookingWithPackage(c)
	if !ok {
		return nil
	}

	userId, uidErr := currentUserId(c)
	if uidErr != nil {
		return errors.RaisePermissionsError(c, "no verified user identity in token")
	}

	capability := lifecycle.ResolveCapability(booking, travelPackage, userId, currentRole(c))
	if capability != lifecycle.CapabilityAdmin && capability != lifecycle.CapabilityAgencyOwner {
		return errors.RaiseForbiddenError(c, "agency does not own the booked package")
	}

	if req.Action == actionCancel {
		return applyCancellation(c, booking, travelPackage, capability, req)
	}

	outcome, decideErr := lifecycle.DecideConfirmation(booking)
	if decideErr == lifecycle.ErrAlreadyFinal {
		return respondNoChange(c, booking)
	} else if decideErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("%v", decideErr))
	}

	return persistTransition(c, booking, outcome, req.Remark, travelPackage)
}

// PayBooking records payment completion for the booking owner and moves
// the booking to Paid with a freshly minted transaction id.
func PayBooking(c *fiber.Ctx) error {
	req := new(paymentRequest)
	if len(c.Body()) > 0 {
		if jsonErr := c.BodyParser(req); jsonErr != nil {
			return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable payment parameters: %v", jsonErr))
		}
	}
	if req.Method == "" {
		req.Method = "card"
	}

	booking, _, ok := loadBookingWithPackage(c)
	if !ok {
		return nil
	}

	userId, uidErr := currentUserId(c)
	if uidErr != nil {
		return errors.RaisePermissionsError(c, "no verified user identity in token")
	}
	if booking.User != userId {
		return errors.RaiseForbiddenError(c, "only the booking owner can pay")
	}

	newStatus, decideErr := lifecycle.DecidePayment(booking)
	if decideErr == lifecycle.ErrAlreadyFinal {
		return respondNoChange(c, booking)
	} else if decideErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("%v", decideErr))
	}

	currentTime := time.Now()
	prevStatus := booking.Status
	booking.Status = newStatus
	booking.PaymentInfo = &model.PaymentInfo{
		TransactionId: uuid.NewString(),
		Method:        req.Method,
		PaidAt:        &currentTime,
	}
	booking.UpdatedAt = currentTime

	persistErr := database.ReplaceBookingIfStatus(booking, prevStatus)
	if persistErr == database.ErrStaleStatus {
		return errors.RaiseConflictError(c, "booking status changed concurrently, re-read and retry")
	} else if persistErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("db error while updating booking: %v", persistErr))
	}

	bookingJson, jsonErr := json.MarshalIndent(booking, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(bookingJson))
}

func applyCancellation(c *fiber.Ctx, booking model.Booking, travelPackage model.TravelPackage, capability lifecycle.Capability, req *statusRequest) error {
	outcome, decideErr := lifecycle.DecideCancellation(booking, capability, req.RefundMethod, time.Now())
	if decideErr == lifecycle.ErrAlreadyFinal {
		return respondNoChange(c, booking)
	} else if decideErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("%v", decideErr))
	}

	return persistTransition(c, booking, outcome, req.Remark, travelPackage)
}

func persistTransition(c *fiber.Ctx, booking model.Booking, outcome lifecycle.Outcome, remark string, travelPackage model.TravelPackage) error {
	prevStatus := booking.Status
	booking.Status = outcome.Status
	if outcome.Refund != nil {
		booking.RefundInfo = outcome.Refund
	}
	if remark != "" {
		booking.Remarks = remark
	}
	booking.UpdatedAt = time.Now()

	persistErr := database.ReplaceBookingIfStatus(booking, prevStatus)
	if persistErr == database.ErrStaleStatus {
		return errors.RaiseConflictError(c, "booking status changed concurrently, re-read and retry")
	} else if persistErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("db error while updating booking: %v", persistErr))
	}

	if outcome.BookingsCountChange != 0 {
		incErr := database.IncrementField(database.PackagesCollection, travelPackage.Id,
			"bookings_count", int64(outcome.BookingsCountChange))
		if incErr != nil {
			return errors.RaiseInternalServerError(c, fmt.Sprintf("db error while updating package counters: %v", incErr))
		}
	}

	bookingJson, jsonErr := json.MarshalIndent(booking, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(bookingJson))
}

func respondNoChange(c *fiber.Ctx, booking model.Booking) error {
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": fmt.Sprintf("booking is already %v, no change applied", booking.Status),
		"data":    booking})
}

// loadBookingWithPackage resolves the booking from the path id together
// with its package. On failure the response is already written and ok is
// false.
func loadBookingWithPackage(c *fiber.Ctx) (model.Booking, model.TravelPackage, bool) {
	bookingId, idErr := primitive.ObjectIDFromHex(c.Params("id"))
	if idErr != nil {
		errors.RaiseBadRequestError(c, fmt.Sprintf("malformed booking id: %v", idErr))
		return model.Booking{}, model.TravelPackage{}, false
	}

	var booking model.Booking
	dbErr := database.FindById(database.BookingsCollection, bookingId, &booking)
	if dbErr == database.ErrNotFound {
		errors.RaiseNotFoundError(c, fmt.Sprintf("booking %v not found", c.Params("id")))
		return model.Booking{}, model.TravelPackage{}, false
	} else if dbErr != nil {
		errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
		return model.Booking{}, model.TravelPackage{}, false
	}

	var travelPackage model.TravelPackage
	dbErr = database.FindById(database.PackagesCollection, booking.TravelPackage, &travelPackage)
	if dbErr == database.ErrNotFound {
		errors.RaiseNotFoundError(c, fmt.Sprintf("package %v not found", booking.TravelPackage.Hex()))
		return model.Booking{}, model.TravelPackage{}, false
	} else if dbErr != nil {
		errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
		return model.Booking{}, model.TravelPackage{}, false
	}

	return booking, travelPackage, true
}
