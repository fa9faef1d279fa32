package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/potatoco/database"
	"github.com/potatoco/models"
)

// product is a catalog entry shown on the products page
type product struct {
	Name        string
	Description string
	Image       string
	Features    []string
}

// service is a catalog entry shown on the services page
type service struct {
	Title       string
	Description string
	Icon        string
	Features    []string
}

var productCatalog = []product{
	{
		Name:        "Russet Burbank",
		Description: "Perfect for french fries and baking",
		Image:       "images/russet.jpg",
		Features:    []string{"High starch content", "Excellent for processing", "Long storage life"},
	},
	{
		Name:        "Red Pontiac",
		Description: "Ideal for boiling and salads",
		Image:       "images/red.jpg",
		Features:    []string{"Thin red skin", "Waxy texture", "Great for roasting"},
	},
	{
		Name:        "Yukon Gold",
		Description: "Versatile all-purpose potato",
		Image:       "images/yukon.jpg",
		Features:    []string{"Buttery flavor", "Medium starch", "Perfect for mashing"},
	},
	{
		Name:        "Fingerling",
		Description: "Gourmet variety with unique shape",
		Image:       "images/fingerling.jpg",
		Features:    []string{"Premium quality", "Multiple colors", "Restaurant favorite"},
	},
	{
		Name:        "Sweet Potato",
		Description: "Nutritious and delicious",
		Image:       "images/sweet.jpg",
		Features:    []string{"High in vitamins", "Natural sweetness", "Versatile cooking"},
	},
}

var serviceCatalog = []service{
	{
		Title:       "Wholesale Distribution",
		Description: "Large volume orders for restaurants, grocery chains, and food processors",
		Icon:        "truck",
		Features:    []string{"Bulk pricing", "Reliable delivery", "Quality assurance"},
	},
	{
		Title:       "Custom Packaging",
		Description: "Tailored packaging solutions for your brand requirements",
		Icon:        "package",
		Features:    []string{"Private labeling", "Various sizes", "Sustainable options"},
	},
	{
		Title:       "Quality Control",
		Description: "Rigorous testing and grading to ensure premium quality",
		Icon:        "shield-check",
		Features:    []string{"Grade A certification", "Regular inspections", "Traceability"},
	},
	{
		Title:       "Logistics Support",
		Description: "End-to-end supply chain management and delivery",
		Icon:        "globe",
		Features:    []string{"Cold storage", "Freight coordination", "International shipping"},
	},
}

// HomePage handles the home page
func HomePage(c *fiber.Ctx) error {
	return c.Render("pages/home", siteMap(fiber.Map{
		"Title":     "Home",
		"Interests": models.Interests(),
	}))
}

// AboutPage shows the company statistics block
func AboutPage(c *fiber.Ctx) error {
	var varietiesAvailable int64
	db := database.GetDB()
	if db != nil {
		db.Model(&models.Inventory{}).Distinct("variety").Count(&varietiesAvailable)
	}
	if varietiesAvailable == 0 {
		varietiesAvailable = int64(len(productCatalog))
	}

	return c.Render("pages/about", siteMap(fiber.Map{
		"Title": "About Us",
		"CompanyStats": fiber.Map{
			"YearsExperience":    15,
			"SatisfiedCustomers": 500,
			"VarietiesAvailable": varietiesAvailable,
			"CountriesServed":    10,
		},
	}))
}

// ProductsPage shows the product catalog with an embedded quote form
func ProductsPage(c *fiber.Ctx) error {
	return c.Render("pages/products", siteMap(fiber.Map{
		"Title":          "Our Products",
		"Products":       productCatalog,
		"Varieties":      models.QuoteVarieties(),
		"QuantityRanges": models.QuantityRanges(),
	}))
}

// ServicesPage shows the service catalog
func ServicesPage(c *fiber.Ctx) error {
	return c.Render("pages/services", siteMap(fiber.Map{
		"Title":    "Our Services",
		"Services": serviceCatalog,
	}))
}
