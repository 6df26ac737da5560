package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/activ/internal/models"
	"github.com/example/activ/internal/utils"
)

// DeclarationStore owns the declaration section, one record per member.
// Saving a declaration is phase one of submission; flipping the member's
// profileCompleted flag (MemberStore.MarkProfileCompleted) is phase two and
// is invoked separately so a failed flag update leaves a retryable, visible
// state instead of an ambiguous one.
type DeclarationStore struct {
	db *gorm.DB
}

// NewDeclarationStore constructs a DeclarationStore.
func NewDeclarationStore(db *gorm.DB) *DeclarationStore {
	return &DeclarationStore{db: db}
}

// Get returns the member's declaration or ErrNotFound.
func (s *DeclarationStore) Get(memberID uuid.UUID) (*models.Declaration, error) {
	var decl models.Declaration
	if err := s.db.Where("member_id = ?", memberID).First(&decl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &decl, nil
}

// Save upserts the member's declaration from a client field map. Review
// fields are not in the allow-list, so clients cannot set their own status.
// New declarations default to pending status with the submission time stamped.
func (s *DeclarationStore) Save(memberID uuid.UUID, fields map[string]interface{}) (*models.Declaration, error) {
	member, err := memberForSection(s.db, memberID)
	if err != nil {
		return nil, err
	}

	payload := utils.Filter(models.DeclarationFields, fields)

	var decl models.Declaration
	err = s.db.Where("member_id = ?", memberID).First(&decl).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := applyFields(&decl, payload); err != nil {
		return nil, err
	}
	decl.MemberID = memberID
	decl.FullName = member.FullName
	decl.Email = member.Email
	if decl.Status == "" {
		decl.Status = models.DeclarationStatusPending
	}
	if decl.SubmissionDate.IsZero() {
		decl.SubmissionDate = time.Now()
	}

	if err := validateStruct(&decl); err != nil {
		return nil, err
	}

	if err := s.db.Save(&decl).Error; err != nil {
		return nil, err
	}
	return &decl, nil
}

// Review records a reviewer's decision on a member's declaration. The status
// must be a post-submission value; pending is only ever set by Save.
func (s *DeclarationStore) Review(memberID uuid.UUID, status, notes, reviewer string) (*models.Declaration, error) {
	switch status {
	case models.DeclarationStatusUnderReview,
		models.DeclarationStatusApproved,
		models.DeclarationStatusRejected:
	default:
		return nil, newFieldError("status", "status must be one of under_review, approved, rejected")
	}

	decl, err := s.Get(memberID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	decl.Status = status
	decl.ReviewNotes = notes
	decl.ReviewedBy = reviewer
	decl.ReviewedAt = &now

	if err := s.db.Save(decl).Error; err != nil {
		return nil, err
	}
	return decl, nil
}

// CountByStatus returns how many declarations sit in each review status.
func (s *DeclarationStore) CountByStatus() (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var counts []statusCount
	if err := s.db.Model(&models.Declaration{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	byStatus := make(map[string]int64, len(counts))
	for _, sc := range counts {
		byStatus[sc.Status] = sc.Count
	}
	return byStatus, nil
}
