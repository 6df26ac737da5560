package store

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/activ/internal/models"
	"github.com/example/activ/internal/utils"
)

// BusinessInfoStore owns the business-details section, one record per member.
type BusinessInfoStore struct {
	db *gorm.DB
}

// NewBusinessInfoStore constructs a BusinessInfoStore.
func NewBusinessInfoStore(db *gorm.DB) *BusinessInfoStore {
	return &BusinessInfoStore{db: db}
}

// Get returns the member's business info or ErrNotFound.
func (s *BusinessInfoStore) Get(memberID uuid.UUID) (*models.BusinessInfo, error) {
	var info models.BusinessInfo
	if err := s.db.Where("member_id = ?", memberID).First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &info, nil
}

// Save upserts the member's business info from a client field map. Unknown
// keys are dropped by the allow-list and the member's fullName/email snapshot
// overrides anything the client supplied for those two keys.
func (s *BusinessInfoStore) Save(memberID uuid.UUID, fields map[string]interface{}) (*models.BusinessInfo, error) {
	member, err := memberForSection(s.db, memberID)
	if err != nil {
		return nil, err
	}

	payload := utils.Filter(models.BusinessInfoFields, fields)

	var info models.BusinessInfo
	err = s.db.Where("member_id = ?", memberID).First(&info).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := applyFields(&info, payload); err != nil {
		return nil, err
	}
	info.MemberID = memberID
	info.FullName = member.FullName
	info.Email = member.Email

	if err := validateStruct(&info); err != nil {
		return nil, err
	}

	if err := s.db.Save(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}
