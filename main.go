package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"travel-webapp/config"
	"travel-webapp/database"
	"travel-webapp/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Print("no .env file found, relying on process environment")
	}

	var initErr error
	if database.UsersCollection, initErr = database.DBInit("users"); initErr != nil {
		log.Fatal(initErr)
	}
	if database.PlacesCollection, initErr = database.DBInit("places"); initErr != nil {
		log.Fatal(initErr)
	}
	if database.HotelsCollection, initErr = database.DBInit("hotels"); initErr != nil {
		log.Fatal(initErr)
	}
	if database.PackagesCollection, initErr = database.DBInit("packages"); initErr != nil {
		log.Fatal(initErr)
	}
	if database.BookingsCollection, initErr = database.DBInit("bookings"); initErr != nil {
		log.Fatal(initErr)
	}
	if database.NotificationsCollection, initErr = database.DBInit("notifications"); initErr != nil {
		log.Fatal(initErr)
	}
	if database.ReviewsCollection, initErr = database.DBInit("reviews"); initErr != nil {
		log.Fatal(initErr)
	}
	if database.BlogsCollection, initErr = database.DBInit("blogs"); initErr != nil {
		log.Fatal(initErr)
	}

	app := fiber.New()

	router.SetupRoutes(app)

	log.Fatal(app.Listen(config.ListenAddr()))
}
