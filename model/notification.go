package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationType string

const (
	NotifTripReminder     NotificationType = "trip_reminder"
	NotifBookingCreated   NotificationType = "booking_created"
	NotifBookingConfirmed NotificationType = "booking_confirmed"
	NotifBookingCancelled NotificationType = "booking_cancelled"
	NotifBookingRefunded  NotificationType = "booking_refunded"
)

type Notification struct {
	Id           primitive.ObjectID `json:"_id" bson:"_id"`
	User         primitive.ObjectID `json:"user" bson:"user"`
	Message      string             `json:"message" bson:"message"`
	Type         NotificationType   `json:"type" bson:"type"`
	Link         string             `json:"link" bson:"link,omitempty"`
	ReminderDate time.Time          `json:"reminder_date" bson:"reminder_date,omitempty"`
	IsRead       bool               `json:"is_read" bson:"is_read"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}
