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

func GetPackages(c *fiber.Ctx) error {
	packages := []model.TravelPackage{}
	dbErr := database.FindMany(database.PackagesCollection, bson.D{}, &packages)
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	packagesJson, jsonErr := json.MarshalIndent(packages, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(packagesJson))
}

func GetPackage(c *fiber.Ctx) error {
	packageId, idErr := primitive.ObjectIDFromHex(c.Params("id"))
	if idErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed package id: %v", idErr))
	}

	var travelPackage model.TravelPackage
	dbErr := database.FindById(database.PackagesCollection, packageId, &travelPackage)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("package %v not found", c.Params("id")))
	} else if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	packageJson, jsonErr := json.MarshalIndent(travelPackage, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(packageJson))
}

func CreatePackage(c *fiber.Ctx) error {
	if !isAdminRole(c) && !isAgencyRole(c) {
		return errors.RaiseForbiddenError(c, "only admin or agency accounts can create packages")
	}

	userId, uidErr := currentUserId(c)
	if uidErr != nil {
		return errors.RaisePermissionsError(c, "no verified user identity in token")
	}

	newPackage := new(model.TravelPackage)
	if jsonErr := c.BodyParser(newPackage); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable package parameters: %v", jsonErr))
	}
	newPackage.Id = primitive.NewObjectID()
	newPackage.Name = strings.TrimSpace(newPackage.Name)
	newPackage.CreatedBy = userId
	newPackage.BookingsCount = 0

	if validationErr := validatePackageInput(*newPackage); validationErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for package parameters: %v", validationErr))
	}

	var place model.Place
	placeErr := database.FindById(database.PlacesCollection, newPackage.Place, &place)
	if placeErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("place %v not found", newPackage.Place.Hex()))
	} else if placeErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", placeErr))
	}

	writeErr := database.WriteToCollection(*newPackage, database.PackagesCollection)
	if writeErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", writeErr))
	}

	packageJson, jsonErr := json.MarshalIndent(newPackage, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(packageJson))
}

func UpdatePackage(c *fiber.Ctx) error {
	packageId, idErr := primitive.ObjectIDFromHex(c.Params("id"))
	if idErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed package id: %v", idErr))
	}

	var travelPackage model.TravelPackage
	dbErr := database.FindById(database.PackagesCollection, packageId, &travelPackage)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("package %v not found", c.Params("id")))
	} else if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	if !canManagePackage(c, travelPackage) {
		return errors.RaiseForbiddenError(c, "only admin or the owning agency can update this package")
	}

	updatedPackage := new(model.TravelPackage)
	if jsonErr := c.BodyParser(updatedPackage); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable package parameters: %v", jsonErr))
	}
	updatedPackage.Id = travelPackage.Id
	updatedPackage.Name = strings.TrimSpace(updatedPackage.Name)
	updatedPackage.CreatedBy = travelPackage.CreatedBy
	// counters only move through booking create/cancel
	updatedPackage.BookingsCount = travelPackage.BookingsCount
	if updatedPackage.Place.IsZero() {
		updatedPackage.Place = travelPackage.Place
	}

	if validationErr := validatePackageInput(*updatedPackage); validationErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for package parameters: %v", validationErr))
	}

	updateErr := database.UpdateCollectionItem(travelPackage.Id, *updatedPackage, database.PackagesCollection)
	if updateErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", updateErr))
	}

	packageJson, jsonErr := json.MarshalIndent(updatedPackage, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(packageJson))
}

func DeletePackage(c *fiber.Ctx) error {
	packageId, idErr := primitive.ObjectIDFromHex(c.Params("id"))
	if idErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed package id: %v", idErr))
	}

	var travelPackage model.TravelPackage
	dbErr := database.FindById(database.PackagesCollection, packageId, &travelPackage)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("package %v not found", c.Params("id")))
	} else if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	if !canManagePackage(c, travelPackage) {
		return errors.RaiseForbiddenError(c, "only admin or the owning agency can delete this package")
	}

	deleteErr := database.DeleteCollectionItem(travelPackage.Id, database.PackagesCollection)
	if deleteErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", deleteErr))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Package deleted", "data": nil})
}

func canManagePackage(c *fiber.Ctx, travelPackage model.TravelPackage) bool {
	if isAdminRole(c) {
		return true
	}
	if !isAgencyRole(c) {
		return false
	}
	userId, uidErr := currentUserId(c)
	if uidErr != nil {
		return false
	}
	return travelPackage.CreatedBy == userId
}

func validatePackageInput(travelPackage model.TravelPackage) error {
	if len(travelPackage.Name) < 2 {
		return fmt.Errorf("package name is too short")
	}
	if travelPackage.Price <= 0 {
		return fmt.Errorf("package price must be positive")
	}
	if travelPackage.Place.IsZero() {
		return fmt.Errorf("package place is required")
	}
	return nil
}
