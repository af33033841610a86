package routes

import (
	"restaurant-backend/internal/api/handlers"
	"restaurant-backend/internal/middleware"
	"restaurant-backend/pkg/session"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	AuthHandler        handlers.AuthHandler
	MenuHandler        handlers.MenuHandler
	FeaturedHandler    handlers.FeaturedHandler
	ReservationHandler handlers.ReservationHandler
	Middleware         middleware.Middleware
	Guard              session.Guard
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.AdminMenu()
	c.AdminFeatured()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/login", c.AuthHandler.Login)
		auth.Post("/logout", c.Middleware.OptionalAuthMiddleware(c.Guard), c.AuthHandler.Logout)
		auth.Get("/session", c.Middleware.OptionalAuthMiddleware(c.Guard), c.AuthHandler.Session)
	}
}

func (c *Config) AdminMenu() {
	menuItems := c.App.Group("/api/v1/admin/menu-items", c.Middleware.AuthMiddleware(c.Guard))
	menuItems.Get("", c.MenuHandler.GetMenuItems)
	menuItems.Post("", c.MenuHandler.AddMenuItem)
	menuItems.Put("/:id", c.MenuHandler.UpdateMenuItem)
	menuItems.Delete("/:id", c.MenuHandler.DeleteMenuItem)
	menuItems.Post("/:id/image", c.MenuHandler.UploadMenuImage)
}

func (c *Config) AdminFeatured() {
	featured := c.App.Group("/api/v1/admin/featured", c.Middleware.AuthMiddleware(c.Guard))
	featured.Get("", c.FeaturedHandler.LoadFeatured)
	featured.Delete("", c.FeaturedHandler.ClearFeatured)
	featured.Get("/board", c.FeaturedHandler.GetBoard)
	featured.Post("/slots/:slot/select", c.FeaturedHandler.SelectSlot)
	featured.Delete("/slots/:slot", c.FeaturedHandler.RemoveSlot)
	featured.Post("/assign", c.FeaturedHandler.AssignDish)
	featured.Post("/save", c.FeaturedHandler.SaveFeatured)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Get("/api/v1/menu", c.MenuHandler.GetMenu)
	c.App.Get("/api/v1/featured", c.FeaturedHandler.GetPublicFeatured)

	reservations := c.App.Group("/api/v1/reservations")
	reservations.Post("", c.ReservationHandler.CreateReservation)
	reservations.Get("/times", c.ReservationHandler.GetTimeOptions)
}
