package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/activ/internal/middleware"
	"github.com/example/activ/internal/store"
)

// ReviewHandler manages the authenticated review surface: onboarding
// statistics and declaration review decisions.
type ReviewHandler struct {
	members      *store.MemberStore
	declarations *store.DeclarationStore
}

// NewReviewHandler constructs a ReviewHandler.
func NewReviewHandler(members *store.MemberStore, declarations *store.DeclarationStore) *ReviewHandler {
	return &ReviewHandler{members: members, declarations: declarations}
}

// Stats returns aggregate onboarding numbers.
func (h *ReviewHandler) Stats(c *fiber.Ctx) error {
	total, completed, err := h.members.Counts()
	if err != nil {
		return err
	}

	byStatus, err := h.declarations.CountByStatus()
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"totalMembers":         total,
			"completedProfiles":    completed,
			"declarationsByStatus": byStatus,
		},
	})
}

type reviewRequest struct {
	Status      string `json:"status"`
	ReviewNotes string `json:"reviewNotes"`
}

// ReviewDeclaration records a review decision on a member's declaration.
// The reviewer identity comes from the session token, not the body.
func (h *ReviewHandler) ReviewDeclaration(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid member id")
	}

	var req reviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	reviewer, _ := middleware.GetCurrentMemberEmail(c)

	decl, err := h.declarations.Review(memberID, req.Status, req.ReviewNotes, reviewer)
	if err != nil {
		return storeError(c, err, "Declaration not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Declaration review recorded",
		"data":    fiber.Map{"declaration": decl},
	})
}
