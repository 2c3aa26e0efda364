package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleUser   = "user"
	RoleAdmin  = "admin"
	RoleAgency = "agency"
)

type UserData struct {
	Id             primitive.ObjectID `json:"_id" bson:"_id"`
	Login          string             `json:"login" bson:"login,omitempty"`
	HashedPassword string             `json:"-" bson:"password_hash,omitempty"`
	Role           string             `json:"role" bson:"role,omitempty"`
	Journey        Journey            `json:"journey" bson:"journey,omitempty"`
}

// Journey holds per-user travel state: the single active next trip and
// the category click history feeding recommendations.
type Journey struct {
	NextTrip       *TripPlan      `json:"next_trip" bson:"next_trip,omitempty"`
	CategoryClicks map[string]int `json:"category_clicks" bson:"category_clicks,omitempty"`
}
