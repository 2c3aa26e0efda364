package handlers

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"travel-webapp/config"
	"travel-webapp/database"
	"travel-webapp/errors"
	"travel-webapp/model"
)

type credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func isPasswordHashCorrect(dbHash, pass string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(dbHash), []byte(pass))
	return err == nil
}

func Register(c *fiber.Ctx) error {
	creds := new(credentials)
	if err := c.BodyParser(creds); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable registration parameters: %v", err))
	}

	creds.Login = strings.TrimSpace(creds.Login)
	if len(creds.Login) < 3 {
		return errors.RaiseBadRequestError(c, "login is too short")
	}
	if len(creds.Password) < 8 {
		return errors.RaiseBadRequestError(c, "password must be at least 8 characters")
	}
	// admin accounts are provisioned out of band
	if creds.Role == "" {
		creds.Role = model.RoleUser
	}
	if creds.Role != model.RoleUser && creds.Role != model.RoleAgency {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unknown role %v", creds.Role))
	}

	exists, dbErr := database.GetUserByLoginExists(creds.Login)
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}
	if exists {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("login %v is already taken", creds.Login))
	}

	hash, hashErr := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if hashErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("password hashing error: %v", hashErr))
	}

	newUser := model.UserData{
		Id:             primitive.NewObjectID(),
		Login:          creds.Login,
		HashedPassword: string(hash),
		Role:           creds.Role,
	}

	writeErr := database.WriteToCollection(newUser, database.UsersCollection)
	if writeErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", writeErr))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Success registration", "data": newUser})
}

func Login(c *fiber.Ctx) error {
	creds := new(credentials)
	if err := c.BodyParser(creds); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("cannot parse credentials: %v", err))
	}

	user, getErr := database.GetUserData(creds.Login)
	if getErr == database.ErrNotFound {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid login or password",
			"data":    nil})
	} else if getErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", getErr))
	}

	if !isPasswordHashCorrect(user.HashedPassword, creds.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid login or password",
			"data":    nil})
	}

	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = user.Login
	claims["uid"] = user.Id.Hex()
	claims["role"] = user.Role
	claims["exp"] = time.Now().Add(time.Hour * 8).Unix()

	sign, envErr := config.GetSecret("SIGN")
	if envErr != nil {
		log.Print(envErr)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	t, signErr := token.SignedString([]byte(sign))
	if signErr != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Success login", "data": t})
}
