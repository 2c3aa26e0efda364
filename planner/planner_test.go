package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"travel-webapp/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func items(names ...string) []model.ChecklistItem {
	out := []model.ChecklistItem{}
	for _, n := range names {
		out = append(out, model.ChecklistItem{Item: n})
	}
	return out
}

func TestSeasonsTouched(t *testing.T) {
	tests := []struct {
		description string
		start, end  time.Time
		expected    []Season
	}{
		{
			description: "single month inside one season",
			start:       date(2026, time.July, 3),
			end:         date(2026, time.July, 20),
			expected:    []Season{Summer},
		},
		{
			description: "range spanning two adjacent seasons",
			start:       date(2026, time.February, 10),
			end:         date(2026, time.March, 5),
			expected:    []Season{Winter, Spring},
		},
		{
			description: "winter spanning a year boundary",
			start:       date(2026, time.December, 20),
			end:         date(2027, time.January, 10),
			expected:    []Season{Winter},
		},
		{
			description: "range longer than a year touches every season once",
			start:       date(2026, time.January, 1),
			end:         date(2027, time.June, 30),
			expected:    []Season{Winter, Spring, Summer, Autumn},
		},
	}

	for _, test := range tests {
		assert.Equalf(t, test.expected, SeasonsTouched(test.start, test.end), test.description)
	}
}

func TestSuggestionsSingleSeason(t *testing.T) {
	suggestions := Suggestions(date(2026, time.January, 5), date(2026, time.February, 15))

	assert.Equal(t, items("Warm jacket", "Gloves", "Thermal wear", "Boots"), suggestions)
}

func TestSuggestionsAdjacentSeasonsUnion(t *testing.T) {
	suggestions := Suggestions(date(2026, time.February, 20), date(2026, time.March, 10))

	assert.Equal(t,
		items("Warm jacket", "Gloves", "Thermal wear", "Boots", "Light jacket", "Umbrella", "Sneakers"),
		suggestions)
}

func TestSuggestionsDeduplicateAcrossSeasons(t *testing.T) {
	// Spring and Autumn both list an umbrella; it must appear once.
	suggestions := Suggestions(date(2026, time.March, 1), date(2026, time.October, 1))

	counts := map[string]int{}
	for _, s := range suggestions {
		counts[s.Item]++
	}
	for item, count := range counts {
		assert.Equalf(t, 1, count, "item %v duplicated", item)
	}
	assert.Equal(t, 1, counts["Umbrella"])
}

func TestSuggestionsDeterministic(t *testing.T) {
	start, end := date(2026, time.May, 1), date(2026, time.September, 30)
	first := Suggestions(start, end)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Suggestions(start, end))
	}
}

func TestDaysLeft(t *testing.T) {
	tests := []struct {
		description string
		today       time.Time
		start       time.Time
		expected    int
	}{
		{
			description: "upcoming trip",
			today:       time.Date(2026, time.June, 1, 15, 30, 0, 0, time.UTC),
			start:       date(2026, time.June, 10),
			expected:    9,
		},
		{
			description: "trip starts today regardless of clock time",
			today:       time.Date(2026, time.June, 10, 23, 0, 0, 0, time.UTC),
			start:       date(2026, time.June, 10),
			expected:    0,
		},
		{
			description: "trip start already in the past is negative",
			today:       date(2026, time.June, 15),
			start:       date(2026, time.June, 10),
			expected:    -5,
		},
	}

	for _, test := range tests {
		assert.Equalf(t, test.expected, DaysLeft(test.today, test.start), test.description)
	}
}

func TestReminderMessage(t *testing.T) {
	assert.Contains(t, ReminderMessage("Kyoto", 12), "Kyoto")
	assert.Contains(t, ReminderMessage("Kyoto", 12), "12")
	assert.Contains(t, ReminderMessage("", 3), "your destination")
}
