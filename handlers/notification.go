package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel-webapp/database"
	"travel-webapp/errors"
	"travel-webapp/model"
)

func GetNotifications(c *fiber.Ctx) error {
	userId, uidErr := currentUserId(c)
	if uidErr != nil {
		return errors.RaisePermissionsError(c, "no verified user identity in token")
	}

	notifications := []model.Notification{}
	dbErr := database.FindMany(database.NotificationsCollection,
		bson.D{primitive.E{Key: "user", Value: userId}}, &notifications)
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	notificationsJson, jsonErr := json.MarshalIndent(notifications, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(notificationsJson))
}

func MarkNotificationRead(c *fiber.Ctx) error {
	notificationId, idErr := primitive.ObjectIDFromHex(c.Params("id"))
	if idErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed notification id: %v", idErr))
	}

	userId, uidErr := currentUserId(c)
	if uidErr != nil {
		return errors.RaisePermissionsError(c, "no verified user identity in token")
	}

	var notification model.Notification
	dbErr := database.FindById(database.NotificationsCollection, notificationId, &notification)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("notification %v not found", c.Params("id")))
	} else if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	if notification.User != userId {
		return errors.RaiseForbiddenError(c, "notification belongs to another user")
	}

	notification.IsRead = true
	updateErr := database.UpdateCollectionItem(notification.Id, notification, database.NotificationsCollection)
	if updateErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", updateErr))
	}

	notificationJson, jsonErr := json.MarshalIndent(notification, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(notificationJson))
}
