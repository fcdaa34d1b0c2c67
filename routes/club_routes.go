package routes

import (
	"github.com/dkoval85/yacht_club/handlers"
	"github.com/dkoval85/yacht_club/middleware"
	"github.com/gofiber/fiber/v2"
)

func ClubRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	clubs := api.Group("/staff/clubs", middleware.Protected(), middleware.StaffRequired())
	clubs.Post("", middleware.AdminRequired(), handlers.CreateClub)
	clubs.Put("/:clubId", handlers.UpdateClub)
	clubs.Post("/:clubId/berths", handlers.CreateBerth)
	clubs.Post("/:clubId/berths/:berthId/deactivate", handlers.DeactivateBerth)
	clubs.Post("/:clubId/tariffs", handlers.CreateTariff)
	clubs.Delete("/:clubId/tariffs/:tariffId", handlers.DeleteTariff)
	clubs.Get("/:clubId/rules", handlers.ListBookingRules)
	clubs.Post("/:clubId/rules", handlers.CreateBookingRule)
	clubs.Delete("/:clubId/rules/:ruleId", handlers.DeleteBookingRule)
}
