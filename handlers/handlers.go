package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel-webapp/model"
)

func currentClaims(c *fiber.Ctx) jwt.MapClaims {
	token := c.Locals("identity").(*jwt.Token)
	return token.Claims.(jwt.MapClaims)
}

func currentRole(c *fiber.Ctx) string {
	role, _ := currentClaims(c)["role"].(string)
	return role
}

func currentLogin(c *fiber.Ctx) string {
	login, _ := currentClaims(c)["username"].(string)
	return login
}

func currentUserId(c *fiber.Ctx) (primitive.ObjectID, error) {
	uid, _ := currentClaims(c)["uid"].(string)
	return primitive.ObjectIDFromHex(uid)
}

func isAdminRole(c *fiber.Ctx) bool {
	return currentRole(c) == model.RoleAdmin
}

func isAgencyRole(c *fiber.Ctx) bool {
	return currentRole(c) == model.RoleAgency
}
