package main

import (
	"academy/cache"
	"academy/config"
	"academy/database"
	"academy/middleware"
	authRoutes "academy/routers/authRoutes"
	contactRoutes "academy/routers/contactRoutes"
	courseRoutes "academy/routers/courseRoutes"
	notifyRoutes "academy/routers/notifyRoutes"
	userRoutes "academy/routers/userRoutes"
	"academy/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	cache.Connect()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminRoutes(app)
	userRoutes.SetupUserRoutes(app)
	contactRoutes.SetupContactRoutes(app)
	notifyRoutes.SetupNotifyRoutes(app)

	// Catch-all for unknown routes
	app.Use(func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Route not found!", nil)
	})

	utils.InitializeEnrollmentDigestScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
