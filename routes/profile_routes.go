package routes

import (
	"github.com/dkoval85/yacht_club/handlers"
	"github.com/dkoval85/yacht_club/middleware"
	"github.com/gofiber/fiber/v2"
)

func ProfileRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	profile := api.Group("/profile/me", middleware.Protected())
	profile.Get("", handlers.GetProfile)
	profile.Put("", handlers.UpdateProfile)
	profile.Get("/moorings", handlers.GetMyMoorings)
}
