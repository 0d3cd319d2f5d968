package main

import (
	"log"

	"marketwire/config"
	"marketwire/database"
	"marketwire/repository"
	"marketwire/routers"
	"marketwire/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	db := database.Database.Db

	articles := repository.NewArticleRepository(db)
	stocks := repository.NewStockRepository(db)
	admins := repository.NewAdminRepository(db)

	if err := utils.SeedDatabase(articles, stocks); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	if err := utils.EnsureAdmin(admins); err != nil {
		log.Fatalf("Admin provisioning failed: %v", err)
	}
	utils.StartQuoteRefresher(stocks)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	routers.Register(app, db)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
