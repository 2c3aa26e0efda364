package router

import (
	"travel-webapp/handlers"
	"travel-webapp/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/", logger.New())

	//Auth
	api.Post("/register", handlers.Register)
	api.Post("/login", handlers.Login)

	//Place
	place := api.Group("/place")
	place.Get("/", handlers.GetPlaces)
	place.Get("/:id", handlers.GetPlace)
	place.Post("/", middleware.Authorize(), handlers.CreatePlace)
	place.Put("/:id", middleware.Authorize(), handlers.UpdatePlace)
	place.Delete("/:id", middleware.Authorize(), handlers.DeletePlace)
	place.Post("/:id/click", middleware.Authorize(), handlers.ClickPlace)

	//Hotel
	hotel := api.Group("/hotel")
	hotel.Get("/", handlers.GetHotels)
	hotel.Get("/:id", handlers.GetHotel)
	hotel.Post("/", middleware.Authorize(), handlers.CreateHotel)
	hotel.Delete("/:id", middleware.Authorize(), handlers.DeleteHotel)

	//Package
	travelPackage := api.Group("/package")
	travelPackage.Get("/", handlers.GetPackages)
	travelPackage.Get("/:id", handlers.GetPackage)
	travelPackage.Get("/:id/reviews", handlers.GetPackageReviews)
	travelPackage.Post("/", middleware.Authorize(), handlers.CreatePackage)
	travelPackage.Put("/:id", middleware.Authorize(), handlers.UpdatePackage)
	travelPackage.Delete("/:id", middleware.Authorize(), handlers.DeletePackage)

	//Booking
	booking := api.Group("/booking", middleware.Authorize())
	booking.Get("/", handlers.GetBookings)
	booking.Get("/:id", handlers.GetBooking)
	booking.Post("/", handlers.CreateBooking)
	booking.Patch("/:id/cancel", handlers.CancelBooking)
	booking.Patch("/:id/status", handlers.SetBookingStatus)
	booking.Patch("/:id/pay", handlers.PayBooking)

	//Journey
	journey := api.Group("/journey", middleware.Authorize())
	journey.Get("/next-trip", handlers.GetNextTrip)
	journey.Put("/next-trip", handlers.SetNextTrip)

	//Review
	review := api.Group("/review", middleware.Authorize())
	review.Post("/", handlers.CreateReview)
	review.Delete("/:id", handlers.DeleteReview)

	//Blog
	blog := api.Group("/blog")
	blog.Get("/", handlers.GetBlogs)
	blog.Get("/:id", handlers.GetBlog)
	blog.Post("/", middleware.Authorize(), handlers.CreateBlog)
	blog.Delete("/:id", middleware.Authorize(), handlers.DeleteBlog)

	//Notification
	notification := api.Group("/notification", middleware.Authorize())
	notification.Get("/", handlers.GetNotifications)
	notification.Patch("/:id/read", handlers.MarkNotificationRead)

	//Recommendation
	api.Get("/recommendation", middleware.Authorize(), handlers.GetRecommendations)
}
