package store

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/activ/internal/models"
	"github.com/example/activ/internal/utils"
)

// FinancialInfoStore owns the financial section, one record per member.
type FinancialInfoStore struct {
	db *gorm.DB
}

// NewFinancialInfoStore constructs a FinancialInfoStore.
func NewFinancialInfoStore(db *gorm.DB) *FinancialInfoStore {
	return &FinancialInfoStore{db: db}
}

// Get returns the member's financial info or ErrNotFound.
func (s *FinancialInfoStore) Get(memberID uuid.UUID) (*models.FinancialInfo, error) {
	var info models.FinancialInfo
	if err := s.db.Where("member_id = ?", memberID).First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &info, nil
}

// Save upserts the member's financial info from a client field map, applying
// the allow-list and the fullName/email snapshot before validation.
func (s *FinancialInfoStore) Save(memberID uuid.UUID, fields map[string]interface{}) (*models.FinancialInfo, error) {
	member, err := memberForSection(s.db, memberID)
	if err != nil {
		return nil, err
	}

	payload := utils.Filter(models.FinancialInfoFields, fields)

	var info models.FinancialInfo
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
	info.PanNumber = strings.ToUpper(info.PanNumber)
	info.GstNumber = strings.ToUpper(info.GstNumber)

	if err := validateStruct(&info); err != nil {
		return nil, err
	}

	if err := s.db.Save(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}
