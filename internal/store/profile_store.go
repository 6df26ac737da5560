package store

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/activ/internal/models"
)

// FullProfile is the composite onboarding view. Sections a member has not
// submitted yet are nil, which is a legitimate state, not an error.
type FullProfile struct {
	Member        *models.Member        `json:"member"`
	BusinessInfo  *models.BusinessInfo  `json:"businessInfo"`
	FinancialInfo *models.FinancialInfo `json:"financialInfo"`
	Declaration   *models.Declaration   `json:"declaration"`
}

// ProfileStore assembles the composite profile across the identity record and
// the three section tables.
type ProfileStore struct {
	db *gorm.DB
}

// NewProfileStore constructs a ProfileStore.
func NewProfileStore(db *gorm.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// FullProfile fetches the member (ErrNotFound when absent) and best-effort
// fetches each section independently.
func (s *ProfileStore) FullProfile(memberID uuid.UUID) (*FullProfile, error) {
	var member models.Member
	if err := s.db.First(&member, "id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	profile := &FullProfile{Member: &member}

	var business models.BusinessInfo
	switch err := s.db.Where("member_id = ?", memberID).First(&business).Error; {
	case err == nil:
		profile.BusinessInfo = &business
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	var financial models.FinancialInfo
	switch err := s.db.Where("member_id = ?", memberID).First(&financial).Error; {
	case err == nil:
		profile.FinancialInfo = &financial
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	var decl models.Declaration
	switch err := s.db.Where("member_id = ?", memberID).First(&decl).Error; {
	case err == nil:
		profile.Declaration = &decl
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	return profile, nil
}
