package http

import (
	"time"

	mw "givemarket-backend/internal/adapter/middleware"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// Handlers bundles everything RegisterRoutes mounts.
type Handlers struct {
	Base         *Handler
	User         *UserHandler
	Product      *ProductHandler
	Order        *OrderHandler
	Donation     *DonationHandler
	Organization *OrganizationHandler
	Catalog      *CatalogHandler
	Rating       *RatingHandler
	Chatbot      *ChatbotHandler
}

// RegisterRoutes mounts the API under /api/v1. Public routes skip auth;
// everything else runs behind JWTAuth, with idempotent replay on mutations.
func RegisterRoutes(e *echo.Echo, h Handlers, jwtSecret string, rdb *redis.Client, idempTTL time.Duration) {
	e.GET("/health", h.Base.Health)

	pub := e.Group("/api/v1")
	pub.POST("/users/register", h.User.Register)
	pub.POST("/chatbot", h.Chatbot.Chat)
	pub.GET("/products/public", h.Product.ListPublic)
	pub.GET("/products/search", h.Product.Search)
	pub.GET("/products/:id", h.Product.Get)
	pub.GET("/products/:id/ratings", h.Rating.ListByProduct)
	pub.GET("/categories", h.Catalog.ListCategories)
	pub.GET("/categories/:id", h.Catalog.GetCategory)
	pub.GET("/organizations/verified", h.Organization.ListVerified)
	pub.GET("/organizations/:id", h.Organization.Get)
	pub.GET("/organizations/:id/donations/stats", h.Donation.OrgStats)

	api := e.Group("/api/v1", mw.JWTAuth(jwtSecret), mw.Idempotency(rdb, idempTTL))
	admin := mw.RequireAdmin()

	// users
	api.GET("/users/me", h.User.Me)
	api.GET("/users/:id", h.User.Get)
	api.PATCH("/users/:id", h.User.UpdateProfile)

	// products
	api.POST("/products", h.Product.Create)
	api.GET("/products", h.Product.List, admin)
	api.PATCH("/products/:id", h.Product.Edit)
	api.DELETE("/products/:id", h.Product.Delete)
	api.DELETE("/products/:id/hard", h.Product.HardDelete, admin)
	api.POST("/products/:id/submit", h.Product.Submit)
	api.POST("/products/:id/approve", h.Product.Approve, admin)
	api.POST("/products/:id/reject", h.Product.Reject, admin)
	api.POST("/products/:id/toggle-activation", h.Product.ToggleActivation)
	api.GET("/products/status/:status", h.Product.ListByStatus, admin)
	api.GET("/sellers/:id/products", h.Product.ListBySeller)

	// orders
	api.POST("/orders", h.Order.Create)
	api.GET("/orders", h.Order.List, admin)
	api.GET("/orders/history", h.Order.History)
	api.GET("/orders/stats", h.Order.Stats, admin)
	api.GET("/orders/number/:number", h.Order.GetByNumber)
	api.GET("/orders/:id", h.Order.Get)
	api.PATCH("/orders/:id", h.Order.Update, admin)
	api.PATCH("/orders/:id/payment-status", h.Order.UpdatePaymentStatus, admin)
	api.POST("/orders/:id/cancel", h.Order.Cancel)
	api.DELETE("/orders/:id", h.Order.Delete, admin)
	api.POST("/orders/:id/items", h.Order.AddItem)
	api.GET("/orders/:id/items", h.Order.Items)
	api.DELETE("/orders/:id/items/:item_id", h.Order.RemoveItem)

	// donations
	api.POST("/donations", h.Donation.Create)
	api.GET("/donations", h.Donation.List, admin)
	api.GET("/donations/history", h.Donation.History)
	api.GET("/donations/:id", h.Donation.Get)
	api.PATCH("/donations/:id/status", h.Donation.UpdateStatus, admin)
	api.POST("/donations/:id/confirm", h.Donation.Confirm, admin)
	api.DELETE("/donations/:id", h.Donation.Delete, admin)
	api.GET("/organizations/:id/donations", h.Donation.ListByOrganization)

	// organizations
	api.POST("/organizations", h.Organization.Create, admin)
	api.GET("/organizations", h.Organization.List)
	api.GET("/organizations/pending", h.Organization.ListPending, admin)
	api.POST("/organizations/:id/verify", h.Organization.Verify, admin)
	api.POST("/organizations/:id/reject", h.Organization.Reject, admin)
	api.DELETE("/organizations/:id", h.Organization.Delete, admin)

	// categories
	api.POST("/categories", h.Catalog.CreateCategory, admin)
	api.DELETE("/categories/:id", h.Catalog.DeleteCategory, admin)

	// ratings
	api.POST("/ratings", h.Rating.Rate)
}
