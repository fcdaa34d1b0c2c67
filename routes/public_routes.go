package routes

import (
	"github.com/dkoval85/yacht_club/handlers"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/clubs", handlers.ListClubs)
	api.Get("/clubs/:clubId", handlers.GetClub)
	api.Get("/clubs/:clubId/berths", handlers.ListBerths)
	api.Get("/clubs/:clubId/tariffs", handlers.ListTariffs)
}
