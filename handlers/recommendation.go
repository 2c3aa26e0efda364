package handlers

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"travel-webapp/config"
	"travel-webapp/database"
	"travel-webapp/errors"
	"travel-webapp/model"
	"travel-webapp/recommend"
)

// GetRecommendations ranks all places by the caller's click history
// combined with global popularity and returns the top entries.
func GetRecommendations(c *fiber.Ctx) error {
	userId, uidErr := currentUserId(c)
	if uidErr != nil {
		return errors.RaisePermissionsError(c, "no verified user identity in token")
	}

	var user model.UserData
	dbErr := database.FindById(database.UsersCollection, userId, &user)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, "user account not found")
	} else if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	places := []model.Place{}
	dbErr = database.FindMany(database.PlacesCollection, bson.D{}, &places)
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	limit := config.RecommendationLimit()
	if limitParam := c.Query("limit"); limitParam != "" {
		parsed, parseErr := strconv.Atoi(limitParam)
		if parseErr != nil || parsed <= 0 {
			return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed limit %q", limitParam))
		}
		limit = parsed
	}

	ranked := recommend.Rank(places, user.Journey.CategoryClicks, limit)

	rankedJson, jsonErr := json.MarshalIndent(ranked, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(rankedJson))
}
