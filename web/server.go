package web

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/potatoco/config"
	"github.com/potatoco/web/handlers"
	"github.com/potatoco/web/middleware"
	"github.com/shopspring/decimal"
)

// Server represents the web server
type Server struct {
	app *fiber.App
}

// NewServer creates a new Fiber server
func NewServer(cfg *config.Config) *Server {
	// Initialize template engine
	engine := html.New("./web/templates", ".html")
	if cfg.App.Environment == "development" {
		engine.Reload(true)
	}

	// Template helpers
	engine.AddFunc("formatDate", func(t time.Time) string {
		return t.Format("02/01/2006 15:04")
	})
	engine.AddFunc("formatDateYMD", func(t time.Time) string {
		return t.Format("2006-01-02")
	})
	engine.AddFunc("formatMoney", func(d decimal.Decimal) string {
		return "$" + d.StringFixed(2)
	})
	engine.AddFunc("formatKg", func(d decimal.Decimal) string {
		return d.StringFixed(2) + " kg"
	})
	engine.AddFunc("formatPercent", func(d decimal.Decimal) string {
		return d.StringFixed(1) + "%"
	})
	engine.AddFunc("add", func(a, b int) int {
		return a + b
	})
	engine.AddFunc("sub", func(a, b int) int {
		return a - b
	})

	handlers.InitSite(&cfg.Site)

	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/base",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("ERROR [%s %s]: %v", c.Method(), c.Path(), err)

			if strings.HasPrefix(c.Path(), "/api/") {
				return c.Status(code).JSON(fiber.Map{
					"success": false,
					"message": "Sorry, something went wrong. Please try again.",
				})
			}

			return c.Status(code).Render("pages/error", fiber.Map{
				"Title": "Error",
				"Error": err.Error(),
				"Code":  code,
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))
	app.Use(middleware.Flash())

	// Method override middleware for HTML forms
	app.Use(func(c *fiber.Ctx) error {
		if c.Method() == "POST" {
			method := c.FormValue("_method")
			if method != "" {
				c.Method(method)
			}
		}
		return c.Next()
	})

	// Static files
	app.Static("/static", "./web/static")

	// Setup routes
	SetupRoutes(app)

	return &Server{app: app}
}

// Start starts the server
func (s *Server) Start(port string) error {
	log.Printf("Server starting on http://localhost:%s", port)
	return s.app.Listen(":" + port)
}

// App exposes the underlying Fiber app. Used by tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// SetupRoutes configures all application routes
func SetupRoutes(app *fiber.App) {
	// Public pages
	app.Get("/", handlers.HomePage)
	app.Get("/about", handlers.AboutPage)
	app.Get("/products", handlers.ProductsPage)
	app.Get("/services", handlers.ServicesPage)
	app.Get("/contact", handlers.ContactPage)
	app.Post("/contact", handlers.ContactSubmit)

	// AJAX endpoints
	api := app.Group("/api")
	api.Post("/quote-request", handlers.QuoteRequestSubmit)
	api.Post("/newsletter-signup", handlers.NewsletterSignup)

	// Administrative dashboard
	admin := app.Group("/admin")
	admin.Get("/", handlers.Dashboard)

	seedBatches := admin.Group("/seed-batches")
	seedBatches.Get("/", handlers.SeedBatchList)
	seedBatches.Get("/new", handlers.SeedBatchNew)
	seedBatches.Post("/", handlers.SeedBatchCreate)
	seedBatches.Get("/:id", handlers.SeedBatchView)
	seedBatches.Get("/:id/edit", handlers.SeedBatchEdit)
	seedBatches.Put("/:id", handlers.SeedBatchUpdate)
	seedBatches.Delete("/:id", handlers.SeedBatchDelete)

	plantings := admin.Group("/plantings")
	plantings.Get("/", handlers.PlantingList)
	plantings.Get("/new", handlers.PlantingNew)
	plantings.Post("/", handlers.PlantingCreate)
	plantings.Get("/:id", handlers.PlantingView)
	plantings.Get("/:id/edit", handlers.PlantingEdit)
	plantings.Put("/:id", handlers.PlantingUpdate)
	plantings.Delete("/:id", handlers.PlantingDelete)

	sales := admin.Group("/sales")
	sales.Get("/", handlers.SaleList)
	sales.Get("/new", handlers.SaleNew)
	sales.Post("/", handlers.SaleCreate)
	sales.Get("/:id", handlers.SaleView)
	sales.Get("/:id/edit", handlers.SaleEdit)
	sales.Put("/:id", handlers.SaleUpdate)
	sales.Delete("/:id", handlers.SaleDelete)

	inventory := admin.Group("/inventory")
	inventory.Get("/", handlers.InventoryList)
	inventory.Get("/new", handlers.InventoryNew)
	inventory.Post("/", handlers.InventoryCreate)
	inventory.Get("/:id", handlers.InventoryView)
	inventory.Get("/:id/edit", handlers.InventoryEdit)
	inventory.Put("/:id", handlers.InventoryUpdate)
	inventory.Delete("/:id", handlers.InventoryDelete)

	expenses := admin.Group("/expenses")
	expenses.Get("/", handlers.ExpenseList)
	expenses.Get("/new", handlers.ExpenseNew)
	expenses.Post("/", handlers.ExpenseCreate)
	expenses.Get("/:id", handlers.ExpenseView)
	expenses.Get("/:id/edit", handlers.ExpenseEdit)
	expenses.Put("/:id", handlers.ExpenseUpdate)
	expenses.Delete("/:id", handlers.ExpenseDelete)

	// Contact message triage
	messages := admin.Group("/messages")
	messages.Get("/", handlers.ContactMessageList)
	messages.Get("/:id", handlers.ContactMessageView)
	messages.Put("/:id", handlers.ContactMessageUpdate)

	// Quote pipeline
	quotes := admin.Group("/quotes")
	quotes.Get("/", handlers.QuoteList)
	quotes.Get("/:id", handlers.QuoteView)
	quotes.Put("/:id", handlers.QuoteUpdate)
}
