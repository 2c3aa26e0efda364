package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type TravelPackage struct {
	Id            primitive.ObjectID `json:"_id" bson:"_id"`
	Name          string             `json:"name" bson:"name"`
	Place         primitive.ObjectID `json:"place" bson:"place"`
	CreatedBy     primitive.ObjectID `json:"created_by" bson:"created_by"`
	Price         float64            `json:"price" bson:"price"`
	Description   string             `json:"description" bson:"description,omitempty"`
	BookingsCount int64              `json:"bookings_count" bson:"bookings_count"`
}
