package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel-webapp/database"
	"travel-webapp/errors"
	"travel-webapp/model"
	"travel-webapp/planner"
)

type nextTripRequest struct {
	Destination  string                `json:"destination"`
	StartDate    string                `json:"start_date"`
	EndDate      string                `json:"end_date"`
	Checklist    []model.ChecklistItem `json:"checklist"`
	ReminderDate string                `json:"reminder_date"`
}

const tripDateLayout = "2006-01-02"

// SetNextTrip replaces the caller's next trip wholesale: season-aware
// packing suggestions are derived from the date range and a reminder
// notification is scheduled.
func SetNextTrip(c *fiber.Ctx) error {
	req := new(nextTripRequest)
	if jsonErr := c.BodyParser(req); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable trip parameters: %v", jsonErr))
	}

	destinationId, idErr := primitive.ObjectIDFromHex(req.Destination)
	if idErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed destination id: %v", idErr))
	}

	startDate, startErr := time.Parse(tripDateLayout, req.StartDate)
	if startErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed start date, expected YYYY-MM-DD: %v", startErr))
	}
	endDate, endErr := time.Parse(tripDateLayout, req.EndDate)
	if endErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed end date, expected YYYY-MM-DD: %v", endErr))
	}
	if startDate.After(endDate) {
		return errors.RaiseBadRequestError(c, "trip start date is after the end date")
	}

	reminderDate := startDate
	if req.ReminderDate != "" {
		parsed, remErr := time.Parse(tripDateLayout, req.ReminderDate)
		if remErr != nil {
			return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed reminder date, expected YYYY-MM-DD: %v", remErr))
		}
		reminderDate = parsed
	}

	userId, uidErr := currentUserId(c)
	if uidErr != nil {
		return errors.RaisePermissionsError(c, "no verified user identity in token")
	}

	checklist := req.Checklist
	if checklist == nil {
		checklist = []model.ChecklistItem{}
	}

	trip := model.TripPlan{
		Destination:        destinationId,
		StartDate:          startDate,
		EndDate:            endDate,
		Checklist:          checklist,
		PackingSuggestions: planner.Suggestions(startDate, endDate),
		ReminderDate:       reminderDate,
	}

	persistErr := database.SetNextTrip(userId, trip)
	if persistErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, "user account not found")
	} else if persistErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("db error while saving trip: %v", persistErr))
	}

	// missing destination only degrades the reminder text
	destinationName := ""
	var destination model.Place
	if lookupErr := database.FindById(database.PlacesCollection, destinationId, &destination); lookupErr == nil {
		destinationName = destination.Name
	}

	daysLeft := planner.DaysLeft(time.Now(), startDate)
	notification := model.Notification{
		Id:           primitive.NewObjectID(),
		User:         userId,
		Message:      planner.ReminderMessage(destinationName, daysLeft),
		Type:         model.NotifTripReminder,
		Link:         "/place/" + destinationId.Hex(),
		ReminderDate: reminderDate,
		CreatedAt:    time.Now(),
	}
	// fire-and-forget: a failed reminder never rolls back the saved trip
	if notifErr := database.WriteToCollection(notification, database.NotificationsCollection); notifErr != nil {
		log.Printf("failed to create trip reminder for user %v: %v", userId.Hex(), notifErr)
	}

	tripJson, jsonErr := json.MarshalIndent(trip, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(tripJson))
}

func GetNextTrip(c *fiber.Ctx) error {
	userId, uidErr := currentUserId(c)
	if uidErr != nil {
		return errors.RaisePermissionsError(c, "no verified user identity in token")
	}

	var user model.UserData
	dbErr := database.FindById(database.UsersCollection, userId, &user)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, "user account not found")
	} else if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	if user.Journey.NextTrip == nil {
		return errors.RaiseNotFoundError(c, "no next trip is set")
	}

	tripJson, jsonErr := json.MarshalIndent(user.Journey.NextTrip, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(tripJson))
}
