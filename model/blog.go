package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Blog struct {
	Id        primitive.ObjectID `json:"_id" bson:"_id"`
	Author    primitive.ObjectID `json:"author" bson:"author"`
	Title     string             `json:"title" bson:"title"`
	Body      string             `json:"body" bson:"body"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
