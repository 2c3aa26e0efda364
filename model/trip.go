package model

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChecklistItem is a single packing entry. Clients may send either a bare
// string ("Socks") or a full object ({"item":"Socks","completed":true});
// a bare string is promoted to an uncompleted item.
type ChecklistItem struct {
	Item      string `json:"item" bson:"item"`
	Completed bool   `json:"completed" bson:"completed"`
}

func (ci *ChecklistItem) UnmarshalJSON(data []byte) error {
	var bare string
	if err := json.Unmarshal(data, &bare); err == nil {
		ci.Item = bare
		ci.Completed = false
		return nil
	}

	type checklistItem ChecklistItem
	var full checklistItem
	if err := json.Unmarshal(data, &full); err != nil {
		return err
	}
	*ci = ChecklistItem(full)
	return nil
}

// TripPlan is the user's single active next trip, embedded in the journey.
// Setting a new one replaces the prior plan wholesale.
type TripPlan struct {
	Destination        primitive.ObjectID `json:"destination" bson:"destination"`
	StartDate          time.Time          `json:"start_date" bson:"start_date"`
	EndDate            time.Time          `json:"end_date" bson:"end_date"`
	Checklist          []ChecklistItem    `json:"checklist" bson:"checklist"`
	PackingSuggestions []ChecklistItem    `json:"packing_suggestions" bson:"packing_suggestions"`
	ReminderDate       time.Time          `json:"reminder_date" bson:"reminder_date"`
}
