package handlers

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel-webapp/database"
	"travel-webapp/errors"
	"travel-webapp/model"
)

func GetBlogs(c *fiber.Ctx) error {
	blogs := []model.Blog{}
	dbErr := database.FindMany(database.BlogsCollection, bson.D{}, &blogs)
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	blogsJson, jsonErr := json.MarshalIndent(blogs, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(blogsJson))
}

func GetBlog(c *fiber.Ctx) error {
	blogId, idErr := primitive.ObjectIDFromHex(c.Params("id"))
	if idErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed blog id: %v", idErr))
	}

	var blog model.Blog
	dbErr := database.FindById(database.BlogsCollection, blogId, &blog)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("blog %v not found", c.Params("id")))
	} else if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	blogJson, jsonErr := json.MarshalIndent(blog, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(blogJson))
}

func CreateBlog(c *fiber.Ctx) error {
	userId, uidErr := currentUserId(c)
	if uidErr != nil {
		return errors.RaisePermissionsError(c, "no verified user identity in token")
	}

	newBlog := new(model.Blog)
	if jsonErr := c.BodyParser(newBlog); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable blog parameters: %v", jsonErr))
	}
	newBlog.Id = primitive.NewObjectID()
	newBlog.Author = userId
	newBlog.Title = strings.TrimSpace(newBlog.Title)
	newBlog.CreatedAt = time.Now()

	if len(newBlog.Title) < 3 {
		return errors.RaiseBadRequestError(c, "blog title is too short")
	}
	if newBlog.Body == "" {
		return errors.RaiseBadRequestError(c, "blog body is empty")
	}

	writeErr := database.WriteToCollection(*newBlog, database.BlogsCollection)
	if writeErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", writeErr))
	}

	blogJson, jsonErr := json.MarshalIndent(newBlog, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(blogJson))
}

func DeleteBlog(c *fiber.Ctx) error {
	blogId, idErr := primitive.ObjectIDFromHex(c.Params("id"))
	if idErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed blog id: %v", idErr))
	}

	var blog model.Blog
	dbErr := database.FindById(database.BlogsCollection, blogId, &blog)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("blog %v not found", c.Params("id")))
	} else if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	userId, _ := currentUserId(c)
	if !isAdminRole(c) && blog.Author != userId {
		return errors.RaiseForbiddenError(c, "only the author or an admin can delete a blog")
	}

	deleteErr := database.DeleteCollectionItem(blog.Id, database.BlogsCollection)
	if deleteErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", deleteErr))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Blog deleted", "data": nil})
}
