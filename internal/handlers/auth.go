package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/activ/internal/config"
	"github.com/example/activ/internal/events"
	"github.com/example/activ/internal/store"
	"github.com/example/activ/internal/utils"
)

// AuthHandler bundles dependencies for registration and login endpoints.
type AuthHandler struct {
	members  *store.MemberStore
	cfg      *config.Config
	producer *events.Producer
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(members *store.MemberStore, cfg *config.Config, producer *events.Producer) *AuthHandler {
	return &AuthHandler{members: members, cfg: cfg, producer: producer}
}

// Register creates a new member with its credential and returns a session token.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req store.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	member, err := h.members.Register(req)
	if err != nil {
		if errors.Is(err, store.ErrCredentialWrite) {
			// Member row persisted but the credential did not. The orphan
			// stays visible; a retried registration with the same email
			// conflicts until it is cleaned up.
			log.Printf("registration credential write failed for %s: %v", member.Email, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
		}
		return storeError(c, err, "Member not found")
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, member.ID, member.Email, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	h.producer.MemberRegistered(member.ID, member.Email)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Member registered successfully",
		"data": fiber.Map{
			"token":  token,
			"member": member.PublicView(),
		},
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates an existing member and returns a fresh session token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	member, err := h.members.Login(req.Email, req.Password)
	if err != nil {
		return storeError(c, err, "Member not found")
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, member.ID, member.Email, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data": fiber.Map{
			"token":  token,
			"member": member.PublicView(),
		},
	})
}

// GetMember returns the public view of a member by id.
func (h *AuthHandler) GetMember(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid member id")
	}

	member, err := h.members.GetByID(memberID)
	if err != nil {
		return storeError(c, err, "Member not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"member": member.PublicView()},
	})
}

// GetMemberByEmail returns the public view of a member by email.
func (h *AuthHandler) GetMemberByEmail(c *fiber.Ctx) error {
	member, err := h.members.GetByEmail(c.Params("email"))
	if err != nil {
		return storeError(c, err, "Member not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"member": member.PublicView()},
	})
}
