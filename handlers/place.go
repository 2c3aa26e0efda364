package handlers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel-webapp/database"
	"travel-webapp/errors"
	"travel-webapp/model"
)

func GetPlaces(c *fiber.Ctx) error {
	places := []model.Place{}
	dbErr := database.FindMany(database.PlacesCollection, bson.D{}, &places)
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	placesJson, jsonErr := json.MarshalIndent(places, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(placesJson))
}

func GetPlace(c *fiber.Ctx) error {
	placeId, idErr := primitive.ObjectIDFromHex(c.Params("id"))
	if idErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed place id: %v", idErr))
	}

	var place model.Place
	dbErr := database.FindById(database.PlacesCollection, placeId, &place)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("place %v not found", c.Params("id")))
	} else if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	placeJson, jsonErr := json.MarshalIndent(place, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(placeJson))
}

func CreatePlace(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaiseForbiddenError(c, "only admin can create places")
	}

	newPlace := new(model.Place)
	if jsonErr := c.BodyParser(newPlace); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable place parameters: %v", jsonErr))
	}
	newPlace.Id = primitive.NewObjectID()
	newPlace.Name = strings.TrimSpace(newPlace.Name)
	newPlace.Clicks = 0

	if validationErr := validatePlaceInput(*newPlace); validationErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for place parameters: %v", validationErr))
	}

	writeErr := database.WriteToCollection(*newPlace, database.PlacesCollection)
	if writeErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", writeErr))
	}

	placeJson, jsonErr := json.MarshalIndent(newPlace, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(placeJson))
}

func UpdatePlace(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaiseForbiddenError(c, "only admin can update places")
	}

	placeId, idErr := primitive.ObjectIDFromHex(c.Params("id"))
	if idErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed place id: %v", idErr))
	}

	var place model.Place
	dbErr := database.FindById(database.PlacesCollection, placeId, &place)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("place %v not found", c.Params("id")))
	} else if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	updatedPlace := new(model.Place)
	if jsonErr := c.BodyParser(updatedPlace); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable place parameters: %v", jsonErr))
	}
	updatedPlace.Id = place.Id
	updatedPlace.Name = strings.TrimSpace(updatedPlace.Name)
	// click counters only move through the click endpoint
	updatedPlace.Clicks = place.Clicks

	if validationErr := validatePlaceInput(*updatedPlace); validationErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for place parameters: %v", validationErr))
	}

	updateErr := database.UpdateCollectionItem(place.Id, *updatedPlace, database.PlacesCollection)
	if updateErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", updateErr))
	}

	placeJson, jsonErr := json.MarshalIndent(updatedPlace, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(placeJson))
}

func DeletePlace(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaiseForbiddenError(c, "only admin can delete places")
	}

	placeId, idErr := primitive.ObjectIDFromHex(c.Params("id"))
	if idErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed place id: %v", idErr))
	}

	deleteErr := database.DeleteCollectionItem(placeId, database.PlacesCollection)
	if deleteErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("place %v not found", c.Params("id")))
	} else if deleteErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", deleteErr))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Place deleted", "data": nil})
}

// ClickPlace records user interest: the place's global counter and the
// user's per-category history both feed recommendation scoring.
func ClickPlace(c *fiber.Ctx) error {
	placeId, idErr := primitive.ObjectIDFromHex(c.Params("id"))
	if idErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed place id: %v", idErr))
	}

	userId, uidErr := currentUserId(c)
	if uidErr != nil {
		return errors.RaisePermissionsError(c, "no verified user identity in token")
	}

	var place model.Place
	dbErr := database.FindById(database.PlacesCollection, placeId, &place)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("place %v not found", c.Params("id")))
	} else if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	clickErr := database.RecordCategoryClick(userId, place.Id, place.Category)
	if clickErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", clickErr))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Click recorded", "data": nil})
}

func validatePlaceInput(place model.Place) error {
	if len(place.Name) < 2 {
		return fmt.Errorf("place name is too short")
	}
	if place.Category == "" {
		return fmt.Errorf("place category is required")
	}
	return nil
}
