package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	Id            primitive.ObjectID `json:"_id" bson:"_id"`
	User          primitive.ObjectID `json:"user" bson:"user"`
	TravelPackage primitive.ObjectID `json:"travel_package" bson:"travel_package"`
	Rating        int                `json:"rating" bson:"rating"`
	Comment       string             `json:"comment" bson:"comment,omitempty"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
}
