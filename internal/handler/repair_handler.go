package handler

import (
	"errors"

	"go-teknostore-api/internal/model"
	"go-teknostore-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type RepairHandler struct {
	service service.RepairService
}

func NewRepairHandler(s service.RepairService) *RepairHandler {
	return &RepairHandler{service: s}
}

// CreateRequestBody is the customer intake payload: repair request fields
// plus optional pre-uploaded image URLs.
type CreateRequestBody struct {
	model.RepairRequest
	ImageURLs []string `json:"image_urls"`
}

func (h *RepairHandler) CreateRequest(c *fiber.Ctx) error {
	var body CreateRequestBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	request, err := h.service.CreateRequest(&body.RepairRequest, body.ImageURLs, getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Repair request created", "data": request})
}

// TrackRequest is the customer-facing lookup: tracking number in, request
// plus ordered images out.
func (h *RepairHandler) TrackRequest(c *fiber.Ctx) error {
	request, err := h.service.GetRequestByTracking(c.Params("tracking"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Repair request not found"})
	}
	return c.JSON(request)
}

// ApprovalBody carries the customer's decision on a price quote.
type ApprovalBody struct {
	Approved *bool `json:"approved"`
}

func (h *RepairHandler) SetApproval(c *fiber.Ctx) error {
	var body ApprovalBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if body.Approved == nil {
		return c.Status(400).JSON(fiber.Map{"error": "approved is required"})
	}

	request, err := h.service.SetApproval(c.Params("tracking"), *body.Approved)
	if err != nil {
		if isNotFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Repair request not found"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Approval recorded", "data": request})
}

func (h *RepairHandler) GetRequests(c *fiber.Ctx) error {
	requests, err := h.service.GetRequests()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(requests)
}

func (h *RepairHandler) GetRequest(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid repair request ID"})
	}

	request, err := h.service.GetRequest(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Repair request not found"})
	}
	return c.JSON(request)
}

func (h *RepairHandler) QuotePrice(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid repair request ID"})
	}

	var input service.QuotePriceInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	request, err := h.service.QuotePrice(id, input, getUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFinalPriceRequired):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		case isNotFound(err):
			return c.Status(404).JSON(fiber.Map{"error": "Repair request not found"})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
		}
	}
	return c.JSON(fiber.Map{"message": "Price quoted", "data": request})
}

func (h *RepairHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid repair request ID"})
	}

	var input service.UpdateStatusInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	request, err := h.service.UpdateStatus(id, input, getUserID(c))
	if err != nil {
		if isNotFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Repair request not found"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Status updated", "data": request})
}

func (h *RepairHandler) DeleteRequest(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid repair request ID"})
	}

	if err := h.service.DeleteRequest(id); err != nil {
		if isNotFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Repair request not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"message": "Repair request deleted"})
}

func (h *RepairHandler) DeleteImage(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("imageId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid image ID"})
	}

	if err := h.service.DeleteImage(id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"message": "Image deleted"})
}
