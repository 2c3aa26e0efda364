package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Place struct {
	Id          primitive.ObjectID `json:"_id" bson:"_id"`
	Name        string             `json:"name" bson:"name"`
	Country     string             `json:"country" bson:"country"`
	Category    string             `json:"category" bson:"category"`
	Description string             `json:"description" bson:"description,omitempty"`
	Clicks      int64              `json:"clicks" bson:"clicks"`
}
