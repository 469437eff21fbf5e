package handler

import (
	"go-teknostore-api/internal/model"
	"go-teknostore-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type EngageHandler struct {
	service service.EngageService
}

func NewEngageHandler(s service.EngageService) *EngageHandler {
	return &EngageHandler{service: s}
}

func (h *EngageHandler) Subscribe(c *fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	subscriber, err := h.service.Subscribe(body.Email)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Subscribed", "data": subscriber})
}

func (h *EngageHandler) Unsubscribe(c *fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.Unsubscribe(body.Email); err != nil {
		if isNotFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Subscriber not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"message": "Unsubscribed"})
}

func (h *EngageHandler) GetSubscribers(c *fiber.Ctx) error {
	subscribers, err := h.service.GetSubscribers()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(subscribers)
}

func (h *EngageHandler) SubmitContactMessage(c *fiber.Ctx) error {
	var message model.ContactMessage
	if err := c.BodyParser(&message); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.SubmitContactMessage(&message); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Message received"})
}

func (h *EngageHandler) GetContactMessages(c *fiber.Ctx) error {
	messages, err := h.service.GetContactMessages()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(messages)
}

func (h *EngageHandler) MarkMessageRead(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid message ID"})
	}

	if err := h.service.MarkMessageRead(id); err != nil {
		if isNotFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Message not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"message": "Marked as read"})
}

func (h *EngageHandler) DeleteContactMessage(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid message ID"})
	}

	if err := h.service.DeleteContactMessage(id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"message": "Message deleted"})
}
