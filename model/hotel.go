package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Hotel struct {
	Id            primitive.ObjectID `json:"_id" bson:"_id"`
	Name          string             `json:"name" bson:"name"`
	Place         primitive.ObjectID `json:"place" bson:"place"`
	PricePerNight float64            `json:"price_per_night" bson:"price_per_night"`
	Rating        float64            `json:"rating" bson:"rating"`
	CreatedBy     primitive.ObjectID `json:"created_by" bson:"created_by"`
}
