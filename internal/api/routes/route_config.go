package routes

import (
	"cafe-menu-backend/internal/api/handlers"
	"cafe-menu-backend/internal/middleware"
	"cafe-menu-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App         *fiber.App
	MenuHandler handlers.MenuHandler
	UserHandler handlers.UserHandler
	Middleware  middleware.Middleware
	JWTService  jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.PublicMenu()
	c.Dashboard()
	c.Users()
	c.GuestRoute()
}

// PublicMenu serves the customer-facing listings, no auth.
func (c *Config) PublicMenu() {
	menu := c.App.Group("/api/v1/menu")
	{
		// Drag-and-drop reorder from the dashboard, staff only.
		// Registered before the catch-all category route.
		menu.Post("/update-order/:category", c.Middleware.AuthMiddleware(c.JWTService), c.MenuHandler.UpdateOrder)

		menu.Get("/:category", c.MenuHandler.GetPublicMenu)
	}
}

// Dashboard gathers the staff item-management routes behind the auth
// middleware, category resolved from the path.
func (c *Config) Dashboard() {
	dashboard := c.App.Group("/api/v1/dashboard", c.Middleware.AuthMiddleware(c.JWTService))
	{
		dashboard.Get("", c.MenuHandler.GetDashboard)
		dashboard.Get("/archive", c.MenuHandler.GetArchive)

		dashboard.Post("/:category", c.MenuHandler.CreateItem)
		dashboard.Get("/:category/:id", c.MenuHandler.GetItemDetails)
		dashboard.Put("/:category/:id", c.MenuHandler.UpdateItem)
		dashboard.Delete("/:category/:id", c.MenuHandler.DeleteItem)

		dashboard.Post("/:category/:id/archive", c.MenuHandler.ArchiveItem)
		dashboard.Post("/:category/:id/restore", c.MenuHandler.RestoreItem)
		dashboard.Post("/:category/:id/image", c.MenuHandler.UploadItemImage)
	}
}

func (c *Config) Users() {
	users := c.App.Group("/api/v1/users")
	{
		users.Post("/register", c.UserHandler.Register)
		users.Post("/login", c.UserHandler.Login)
		users.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		users.Post("/forget", c.UserHandler.ForgotPassword)
		users.Post("/reset", c.UserHandler.ResetPassword)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
