package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/activ/internal/events"
	"github.com/example/activ/internal/store"
)

// ProfileHandler manages the onboarding sections and the composite profile.
type ProfileHandler struct {
	members      *store.MemberStore
	business     *store.BusinessInfoStore
	financial    *store.FinancialInfoStore
	declarations *store.DeclarationStore
	profiles     *store.ProfileStore
	producer     *events.Producer
}

// NewProfileHandler constructs a ProfileHandler.
func NewProfileHandler(
	members *store.MemberStore,
	business *store.BusinessInfoStore,
	financial *store.FinancialInfoStore,
	declarations *store.DeclarationStore,
	profiles *store.ProfileStore,
	producer *events.Producer,
) *ProfileHandler {
	return &ProfileHandler{
		members:      members,
		business:     business,
		financial:    financial,
		declarations: declarations,
		profiles:     profiles,
		producer:     producer,
	}
}

// GetFullProfile returns the member plus all three onboarding sections.
// Sections not yet submitted come back as null.
func (h *ProfileHandler) GetFullProfile(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid member id")
	}

	profile, err := h.profiles.FullProfile(memberID)
	if err != nil {
		return storeError(c, err, "Member not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    profile,
	})
}

// sectionPayload splits the memberId key out of a section save body.
func sectionPayload(c *fiber.Ctx) (uuid.UUID, map[string]interface{}, error) {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return uuid.Nil, nil, fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	raw, ok := body["memberId"]
	if !ok || raw == nil || raw == "" {
		return uuid.Nil, nil, fiber.NewError(fiber.StatusBadRequest, "Member ID is required")
	}

	str, ok := raw.(string)
	if !ok {
		return uuid.Nil, nil, fiber.NewError(fiber.StatusBadRequest, "invalid member id")
	}
	memberID, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil, nil, fiber.NewError(fiber.StatusBadRequest, "invalid member id")
	}

	delete(body, "memberId")
	return memberID, body, nil
}

// GetBusinessInfo returns a member's business section.
func (h *ProfileHandler) GetBusinessInfo(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid member id")
	}

	info, err := h.business.Get(memberID)
	if err != nil {
		return storeError(c, err, "Business information not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"businessInfo": info},
	})
}

// SaveBusinessInfo upserts a member's business section.
func (h *ProfileHandler) SaveBusinessInfo(c *fiber.Ctx) error {
	memberID, fields, err := sectionPayload(c)
	if err != nil {
		return err
	}

	info, err := h.business.Save(memberID, fields)
	if err != nil {
		return storeError(c, err, "Member not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Business information saved successfully",
		"data":    fiber.Map{"businessInfo": info},
	})
}

// GetFinancialInfo returns a member's financial section.
func (h *ProfileHandler) GetFinancialInfo(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid member id")
	}

	info, err := h.financial.Get(memberID)
	if err != nil {
		return storeError(c, err, "Financial information not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"financialInfo": info},
	})
}

// SaveFinancialInfo upserts a member's financial section.
func (h *ProfileHandler) SaveFinancialInfo(c *fiber.Ctx) error {
	memberID, fields, err := sectionPayload(c)
	if err != nil {
		return err
	}

	info, err := h.financial.Save(memberID, fields)
	if err != nil {
		return storeError(c, err, "Member not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Financial information saved successfully",
		"data":    fiber.Map{"financialInfo": info},
	})
}

// GetDeclaration returns a member's declaration section.
func (h *ProfileHandler) GetDeclaration(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid member id")
	}

	decl, err := h.declarations.Get(memberID)
	if err != nil {
		return storeError(c, err, "Declaration not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"declaration": decl},
	})
}

// SaveDeclaration upserts the declaration and then flips the member's
// profileCompleted flag as a second, non-transactional write. When the flag
// write fails the declaration is still saved; the response reports the flag
// state so the caller can retry the completion step alone.
func (h *ProfileHandler) SaveDeclaration(c *fiber.Ctx) error {
	memberID, fields, err := sectionPayload(c)
	if err != nil {
		return err
	}

	decl, err := h.declarations.Save(memberID, fields)
	if err != nil {
		return storeError(c, err, "Member not found")
	}

	profileCompleted := true
	if _, err := h.members.MarkProfileCompleted(memberID); err != nil {
		log.Printf("profile completion flag update failed for member %s: %v", memberID, err)
		profileCompleted = false
	}

	h.producer.DeclarationSubmitted(memberID, decl.Email)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Declaration submitted successfully",
		"data": fiber.Map{
			"declaration":      decl,
			"profileCompleted": profileCompleted,
		},
	})
}

// CompleteProfile marks a member's profile as completed without touching the
// declaration, the retry path for a failed phase-two write.
func (h *ProfileHandler) CompleteProfile(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid member id")
	}

	member, err := h.members.MarkProfileCompleted(memberID)
	if err != nil {
		return storeError(c, err, "Member not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Profile marked as completed",
		"data":    fiber.Map{"member": member},
	})
}
