package handler

import (
	"go-teknostore-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AnalyticsHandler struct {
	service service.AnalyticsService
}

func NewAnalyticsHandler(s service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: s}
}

// RecordPageView is fire-and-forget from the storefront; it never fails the
// client on write errors.
func (h *AnalyticsHandler) RecordPageView(c *fiber.Ctx) error {
	var body struct {
		Path     string `json:"path"`
		Referrer string `json:"referrer"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	_ = h.service.RecordPageView(body.Path, body.Referrer, c.Get("User-Agent"), c.IP())
	return c.SendStatus(204)
}

func (h *AnalyticsHandler) GetDailyViews(c *fiber.Ctx) error {
	rangeParam := c.Query("range", "7d") // Default 7 days

	var days int
	switch rangeParam {
	case "7d":
		days = 7
	case "1m":
		days = 30
	case "3m":
		days = 90
	case "6m":
		days = 180
	case "12m":
		days = 365
	default:
		days = 7
	}

	views, err := h.service.GetDailyViews(days)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(views)
}

func (h *AnalyticsHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.GetDashboardStats()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(stats)
}
