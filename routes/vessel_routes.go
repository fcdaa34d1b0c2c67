package routes

import (
	"github.com/dkoval85/yacht_club/handlers"
	"github.com/dkoval85/yacht_club/middleware"
	"github.com/gofiber/fiber/v2"
)

func VesselRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	vessels := api.Group("/vessels", middleware.Protected())
	vessels.Get("/me", handlers.ListMyVessels)
	vessels.Post("", handlers.CreateVessel)
	vessels.Put("/:vesselId/photo", handlers.UpdateVesselPhoto)
}
