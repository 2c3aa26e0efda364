package handlers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel-webapp/database"
	"travel-webapp/errors"
	"travel-webapp/model"
)

type reviewRequest struct {
	TravelPackage string `json:"travel_package"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
}

func GetPackageReviews(c *fiber.Ctx) error {
	packageId, idErr := primitive.ObjectIDFromHex(c.Params("id"))
	if idErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed package id: %v", idErr))
	}

	reviews := []model.Review{}
	dbErr := database.FindMany(database.ReviewsCollection,
		bson.D{primitive.E{Key: "travel_package", Value: packageId}}, &reviews)
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	reviewsJson, jsonErr := json.MarshalIndent(reviews, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(reviewsJson))
}

func CreateReview(c *fiber.Ctx) error {
	req := new(reviewRequest)
	if jsonErr := c.BodyParser(req); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable review parameters: %v", jsonErr))
	}
	if req.Rating < 1 || req.Rating > 5 {
		return errors.RaiseBadRequestError(c, "rating must be between 1 and 5")
	}

	packageId, idErr := primitive.ObjectIDFromHex(req.TravelPackage)
	if idErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed package id: %v", idErr))
	}

	userId, uidErr := currentUserId(c)
	if uidErr != nil {
		return errors.RaisePermissionsError(c, "no verified user identity in token")
	}

	var travelPackage model.TravelPackage
	dbErr := database.FindById(database.PackagesCollection, packageId, &travelPackage)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("package %v not found", req.TravelPackage))
	} else if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	newReview := model.Review{
		Id:            primitive.NewObjectID(),
		User:          userId,
		TravelPackage: travelPackage.Id,
		Rating:        req.Rating,
		Comment:       req.Comment,
		CreatedAt:     time.Now(),
	}

	writeErr := database.WriteToCollection(newReview, database.ReviewsCollection)
	if writeErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", writeErr))
	}

	reviewJson, jsonErr := json.MarshalIndent(newReview, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(reviewJson))
}

func DeleteReview(c *fiber.Ctx) error {
	reviewId, idErr := primitive.ObjectIDFromHex(c.Params("id"))
	if idErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed review id: %v", idErr))
	}

	var review model.Review
	dbErr := database.FindById(database.ReviewsCollection, reviewId, &review)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("review %v not found", c.Params("id")))
	} else if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	userId, _ := currentUserId(c)
	if !isAdminRole(c) && review.User != userId {
		return errors.RaiseForbiddenError(c, "only the author or an admin can delete a review")
	}

	deleteErr := database.DeleteCollectionItem(review.Id, database.ReviewsCollection)
	if deleteErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", deleteErr))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Review deleted", "data": nil})
}
