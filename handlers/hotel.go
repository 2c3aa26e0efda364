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

func GetHotels(c *fiber.Ctx) error {
	filter := bson.D{}
	if placeParam := c.Query("place"); placeParam != "" {
		placeId, idErr := primitive.ObjectIDFromHex(placeParam)
		if idErr != nil {
			return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed place id: %v", idErr))
		}
		filter = bson.D{primitive.E{Key: "place", Value: placeId}}
	}

	hotels := []model.Hotel{}
	dbErr := database.FindMany(database.HotelsCollection, filter, &hotels)
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	hotelsJson, jsonErr := json.MarshalIndent(hotels, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(hotelsJson))
}

func GetHotel(c *fiber.Ctx) error {
	hotelId, idErr := primitive.ObjectIDFromHex(c.Params("id"))
	if idErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed hotel id: %v", idErr))
	}

	var hotel model.Hotel
	dbErr := database.FindById(database.HotelsCollection, hotelId, &hotel)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("hotel %v not found", c.Params("id")))
	} else if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	hotelJson, jsonErr := json.MarshalIndent(hotel, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(hotelJson))
}

func CreateHotel(c *fiber.Ctx) error {
	if !isAdminRole(c) && !isAgencyRole(c) {
		return errors.RaiseForbiddenError(c, "only admin or agency accounts can create hotels")
	}

	userId, uidErr := currentUserId(c)
	if uidErr != nil {
		return errors.RaisePermissionsError(c, "no verified user identity in token")
	}

	newHotel := new(model.Hotel)
	if jsonErr := c.BodyParser(newHotel); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable hotel parameters: %v", jsonErr))
	}
	newHotel.Id = primitive.NewObjectID()
	newHotel.Name = strings.TrimSpace(newHotel.Name)
	newHotel.CreatedBy = userId

	if validationErr := validateHotelInput(*newHotel); validationErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for hotel parameters: %v", validationErr))
	}

	var place model.Place
	placeErr := database.FindById(database.PlacesCollection, newHotel.Place, &place)
	if placeErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("place %v not found", newHotel.Place.Hex()))
	} else if placeErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", placeErr))
	}

	writeErr := database.WriteToCollection(*newHotel, database.HotelsCollection)
	if writeErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", writeErr))
	}

	hotelJson, jsonErr := json.MarshalIndent(newHotel, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(hotelJson))
}

func DeleteHotel(c *fiber.Ctx) error {
	hotelId, idErr := primitive.ObjectIDFromHex(c.Params("id"))
	if idErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed hotel id: %v", idErr))
	}

	var hotel model.Hotel
	dbErr := database.FindById(database.HotelsCollection, hotelId, &hotel)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("hotel %v not found", c.Params("id")))
	} else if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	userId, _ := currentUserId(c)
	if !isAdminRole(c) && hotel.CreatedBy != userId {
		return errors.RaiseForbiddenError(c, "only admin or the creating agency can delete this hotel")
	}

	deleteErr := database.DeleteCollectionItem(hotel.Id, database.HotelsCollection)
	if deleteErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", deleteErr))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Hotel deleted", "data": nil})
}

func validateHotelInput(hotel model.Hotel) error {
	if len(hotel.Name) < 2 {
		return fmt.Errorf("hotel name is too short")
	}
	if hotel.PricePerNight <= 0 {
		return fmt.Errorf("price per night must be positive")
	}
	if hotel.Rating < 0 || hotel.Rating > 5 {
		return fmt.Errorf("rating must be between 0 and 5")
	}
	if hotel.Place.IsZero() {
		return fmt.Errorf("hotel place is required")
	}
	return nil
}
