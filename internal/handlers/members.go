package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/activ/internal/store"
	"github.com/example/activ/internal/utils"
)

// MembersHandler manages the member directory endpoints.
type MembersHandler struct {
	members *store.MemberStore
}

// NewMembersHandler constructs a MembersHandler.
func NewMembersHandler(members *store.MemberStore) *MembersHandler {
	return &MembersHandler{members: members}
}

// List returns a page of members, newest first.
func (h *MembersHandler) List(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	members, total, err := h.members.List(pg)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"members":    members,
			"pagination": pg.Meta(total),
		},
	})
}

// Search returns members matching the query across name, email, phone, state
// and district.
func (h *MembersHandler) Search(c *fiber.Ctx) error {
	query := c.Params("query")
	pg := utils.ParsePagination(c)

	members, total, err := h.members.Search(query, pg)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"members":    members,
			"pagination": pg.Meta(total),
		},
	})
}

// GetByEmail looks a member up by the email query param.
func (h *MembersHandler) GetByEmail(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email query param required")
	}

	member, err := h.members.GetByEmail(email)
	if err != nil {
		return storeError(c, err, "Member not found")
	}

	return c.JSON(fiber.Map{"success": true, "data": member})
}

// Get returns a member by id.
func (h *MembersHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid member id")
	}

	member, err := h.members.GetByID(id)
	if err != nil {
		return storeError(c, err, "Member not found")
	}

	return c.JSON(fiber.Map{"success": true, "data": member})
}

// Create inserts a new member from a whitelisted payload.
func (h *MembersHandler) Create(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	member, err := h.members.Create(body)
	if err != nil {
		return storeError(c, err, "Member not found")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": member})
}

// Update applies whitelisted fields to a member by id, creating the record
// when the id is unknown (PUT-as-upsert).
func (h *MembersHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid member id")
	}

	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	member, err := h.members.Upsert(id, body)
	if err != nil {
		return storeError(c, err, "Member not found")
	}

	return c.JSON(fiber.Map{"success": true, "data": member})
}

// Delete removes a member and its credential. A missing credential does not
// fail the request.
func (h *MembersHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid member id")
	}

	if err := h.members.Delete(id); err != nil {
		return storeError(c, err, "Member not found")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Member deleted successfully"})
}
