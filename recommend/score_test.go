package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel-webapp/model"
)

func place(name, category string, clicks int64) model.Place {
	return model.Place{Id: primitive.NewObjectID(), Name: name, Category: category, Clicks: clicks}
}

func names(places []model.Place) []string {
	out := []string{}
	for _, p := range places {
		out = append(out, p.Name)
	}
	return out
}

func TestScoreWeighsCategoryClicksDouble(t *testing.T) {
	p := place("Lisbon", "city", 10)
	assert.Equal(t, int64(10), Score(p, nil))
	assert.Equal(t, int64(16), Score(p, map[string]int{"city": 3}))
}

func TestRankOrdersByScoreThenName(t *testing.T) {
	places := []model.Place{
		place("Oslo", "city", 5),
		place("Bali", "beach", 5),
		place("Alps", "mountain", 20),
	}
	clicks := map[string]int{"beach": 10}

	ranked := Rank(places, clicks, 0)

	// Bali: 2*10+5=25, Alps: 20, Oslo: 5
	assert.Equal(t, []string{"Bali", "Alps", "Oslo"}, names(ranked))
}

func TestRankTieBreaksByName(t *testing.T) {
	places := []model.Place{
		place("Zagreb", "city", 7),
		place("Athens", "city", 7),
	}

	ranked := Rank(places, nil, 0)

	assert.Equal(t, []string{"Athens", "Zagreb"}, names(ranked))
}

func TestRankHonorsLimit(t *testing.T) {
	places := []model.Place{
		place("A", "city", 3),
		place("B", "city", 2),
		place("C", "city", 1),
	}

	assert.Len(t, Rank(places, nil, 2), 2)
	assert.Len(t, Rank(places, nil, 0), 3, "zero limit means unbounded")
}

func TestRankDoesNotMutateInput(t *testing.T) {
	places := []model.Place{
		place("Low", "city", 1),
		place("High", "city", 9),
	}

	Rank(places, nil, 0)

	assert.Equal(t, "Low", places[0].Name)
}
