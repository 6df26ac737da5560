package models

import (
	"time"

	"github.com/google/uuid"
)

// Declaration review statuses.
const (
	DeclarationStatusPending     = "pending"
	DeclarationStatusUnderReview = "under_review"
	DeclarationStatusApproved    = "approved"
	DeclarationStatusRejected    = "rejected"
)

// Declaration holds the final onboarding section. Submitting it flips the
// owning member's profileCompleted flag as a separate, best-effort write.
// FullName and Email are member snapshots taken at save time.
type Declaration struct {
	BaseModel
	MemberID uuid.UUID `gorm:"type:uuid;index" json:"memberId"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`

	SisterConcerns      int       `json:"sisterConcerns" validate:"gte=0"`
	CompanyNames        []string  `gorm:"serializer:json" json:"companyNames,omitempty"`
	ShowOneFieldPerName bool      `json:"showOneFieldPerName"`
	AgreeToDeclaration  bool      `json:"agreeToDeclaration"`
	ProfileCompleted    bool      `json:"profileCompleted"`
	SubmissionDate      time.Time `json:"submissionDate"`

	// Review workflow fields, set by reviewers rather than the member.
	Status      string     `gorm:"index;default:pending" json:"status" validate:"omitempty,oneof=pending under_review approved rejected"`
	ReviewNotes string     `json:"reviewNotes,omitempty"`
	ReviewedBy  string     `json:"reviewedBy,omitempty"`
	ReviewedAt  *time.Time `json:"reviewedAt,omitempty"`
}

// DeclarationFields is the allow-list applied before every declaration save.
// Review fields are deliberately absent so clients cannot self-approve.
var DeclarationFields = []string{
	"sisterConcerns", "companyNames", "showOneFieldPerName",
	"agreeToDeclaration", "profileCompleted", "submissionDate",
}
