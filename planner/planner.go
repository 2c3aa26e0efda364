package planner

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"

	"travel-webapp/model"
)

type Season string

const (
	Winter Season = "Winter"
	Spring Season = "Spring"
	Summer Season = "Summer"
	Autumn Season = "Autumn"
)

// seasonItems is static process-wide configuration; never mutated after init.
var seasonItems = map[Season][]string{
	Winter: {"Warm jacket", "Gloves", "Thermal wear", "Boots"},
	Spring: {"Light jacket", "Umbrella", "Sneakers"},
	Summer: {"Sunscreen", "Sunglasses", "Hat", "Light clothes", "Sandals"},
	Autumn: {"Jacket", "Scarf", "Closed shoes", "Umbrella"},
}

func SeasonForMonth(month time.Month) Season {
	switch month {
	case time.December, time.January, time.February:
		return Winter
	case time.March, time.April, time.May:
		return Spring
	case time.June, time.July, time.August:
		return Summer
	default:
		return Autumn
	}
}

// SeasonsTouched walks the inclusive range month by month and returns the
// touched seasons in first-seen order. Months repeat only once each: the
// walk deduplicates by calendar month number, so a range longer than a
// year contributes at most twelve months.
func SeasonsTouched(startDate, endDate time.Time) []Season {
	seasons := []Season{}
	seenSeason := map[Season]bool{}
	seenMonth := map[time.Month]bool{}

	cursor := time.Date(startDate.Year(), startDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(endDate.Year(), endDate.Month(), 1, 0, 0, 0, 0, time.UTC)

	for !cursor.After(last) && len(seenMonth) < 12 {
		if !seenMonth[cursor.Month()] {
			seenMonth[cursor.Month()] = true
			season := SeasonForMonth(cursor.Month())
			if !seenSeason[season] {
				seenSeason[season] = true
				seasons = append(seasons, season)
			}
		}
		cursor = cursor.AddDate(0, 1, 0)
	}

	return seasons
}

// Suggestions returns the packing checklist for the date range: the
// order-preserving union of the touched seasons' item lists, each item
// appearing at most once.
func Suggestions(startDate, endDate time.Time) []model.ChecklistItem {
	suggestions := []model.ChecklistItem{}
	seen := map[string]bool{}

	for _, season := range SeasonsTouched(startDate, endDate) {
		for _, item := range seasonItems[season] {
			if seen[item] {
				continue
			}
			seen[item] = true
			suggestions = append(suggestions, model.ChecklistItem{Item: item})
		}
	}

	return suggestions
}

// DaysLeft counts whole calendar days from today until the trip start.
// Negative when the start date is already in the past.
func DaysLeft(today, startDate time.Time) int {
	from := now.New(today).BeginningOfDay()
	to := now.New(startDate).BeginningOfDay()
	return int(to.Sub(from).Hours() / 24)
}

// ReminderMessage renders the trip reminder text. destinationName may be
// empty when the place record is missing; the message degrades to a
// generic phrase instead of failing.
func ReminderMessage(destinationName string, daysLeft int) string {
	if destinationName == "" {
		destinationName = "your destination"
	}
	return fmt.Sprintf("Your trip to %s starts in %d day(s). Time to start packing!", destinationName, daysLeft)
}
