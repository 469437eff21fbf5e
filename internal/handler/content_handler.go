package handler

import (
	"go-teknostore-api/internal/model"
	"go-teknostore-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ContentHandler struct {
	service service.ContentService
}

func NewContentHandler(s service.ContentService) *ContentHandler {
	return &ContentHandler{service: s}
}

func (h *ContentHandler) GetPublishedPosts(c *fiber.Ctx) error {
	posts, err := h.service.GetPublishedPosts()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(posts)
}

func (h *ContentHandler) GetPostBySlug(c *fiber.Ctx) error {
	post, err := h.service.GetPostBySlug(c.Params("slug"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Post not found"})
	}
	return c.JSON(post)
}

func (h *ContentHandler) GetAllPosts(c *fiber.Ctx) error {
	posts, err := h.service.GetAllPosts()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(posts)
}

func (h *ContentHandler) CreatePost(c *fiber.Ctx) error {
	var post model.BlogPost
	if err := c.BodyParser(&post); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreatePost(&post, getUserID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Post created", "data": post})
}

func (h *ContentHandler) UpdatePost(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid post ID"})
	}

	var post model.BlogPost
	if err := c.BodyParser(&post); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdatePost(id, &post, getUserID(c))
	if err != nil {
		if isNotFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Post not found"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Post updated", "data": updated})
}

func (h *ContentHandler) DeletePost(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid post ID"})
	}

	if err := h.service.DeletePost(id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"message": "Post deleted"})
}

func (h *ContentHandler) GetRunningCampaigns(c *fiber.Ctx) error {
	campaigns, err := h.service.GetRunningCampaigns()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(campaigns)
}

func (h *ContentHandler) GetAllCampaigns(c *fiber.Ctx) error {
	campaigns, err := h.service.GetAllCampaigns()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(campaigns)
}

func (h *ContentHandler) CreateCampaign(c *fiber.Ctx) error {
	var campaign model.Campaign
	if err := c.BodyParser(&campaign); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateCampaign(&campaign, getUserID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Campaign created", "data": campaign})
}

func (h *ContentHandler) UpdateCampaign(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid campaign ID"})
	}

	var campaign model.Campaign
	if err := c.BodyParser(&campaign); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateCampaign(id, &campaign, getUserID(c))
	if err != nil {
		if isNotFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Campaign not found"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Campaign updated", "data": updated})
}

func (h *ContentHandler) DeleteCampaign(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid campaign ID"})
	}

	if err := h.service.DeleteCampaign(id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"message": "Campaign deleted"})
}
