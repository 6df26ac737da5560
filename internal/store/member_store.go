package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/activ/internal/models"
	"github.com/example/activ/internal/utils"
	"github.com/example/activ/internal/validation"
)

// MemberStore owns member identity records and their credentials.
type MemberStore struct {
	db *gorm.DB
}

// NewMemberStore constructs a MemberStore.
func NewMemberStore(db *gorm.DB) *MemberStore {
	return &MemberStore{db: db}
}

// RegisterInput is the required field set for a new registration.
type RegisterInput struct {
	FullName    string `json:"fullName" validate:"required,max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"required,phone"`
	Email       string `json:"email" validate:"required,email"`
	DateOfBirth string `json:"dateOfBirth" validate:"required"`
	Gender      string `json:"gender" validate:"required,oneof=Male Female Other"`
	Password    string `json:"password" validate:"required,min=8"`
	State       string `json:"state" validate:"required"`
	District    string `json:"district" validate:"required"`
	Block       string `json:"block" validate:"required"`
	City        string `json:"city" validate:"required"`
}

// NormalizeEmail lowercases and trims an email for lookup and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the member record and then its credential. The two writes
// are sequential, not transactional: when the credential write fails the
// member row stays behind and the error wraps ErrCredentialWrite so callers
// can tell phase one succeeded.
func (s *MemberStore) Register(in RegisterInput) (*models.Member, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	email := NormalizeEmail(in.Email)

	var existing models.Member
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	member := &models.Member{
		FullName:    strings.TrimSpace(in.FullName),
		Email:       email,
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		DateOfBirth: strings.TrimSpace(in.DateOfBirth),
		Gender:      in.Gender,
		State:       strings.TrimSpace(in.State),
		District:    strings.TrimSpace(in.District),
		Block:       strings.TrimSpace(in.Block),
		City:        strings.TrimSpace(in.City),
	}

	if err := s.db.Create(member).Error; err != nil {
		return nil, err
	}

	if err := s.createCredential(email, in.Password); err != nil {
		return member, fmt.Errorf("%w: %v", ErrCredentialWrite, err)
	}

	return member, nil
}

func (s *MemberStore) createCredential(email, password string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	cred := &models.Credential{
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}
	return s.db.Create(cred).Error
}

// Login verifies the credential pair and updates lastLogin. Failures are
// split so handlers can distinguish missing member (404), inactive or absent
// credential (403) and password mismatch (401).
func (s *MemberStore) Login(email, password string) (*models.Member, error) {
	var fields []validation.FieldError
	if email == "" {
		fields = append(fields, validation.FieldError{Field: "email", Message: "email is required"})
	}
	if password == "" {
		fields = append(fields, validation.FieldError{Field: "password", Message: "password is required"})
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	member, err := s.GetByEmail(email)
	if err != nil {
		return nil, err
	}

	var cred models.Credential
	if err := s.db.Where("email = ?", member.Email).First(&cred).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInactiveAccount
		}
		return nil, err
	}
	if !cred.IsActive {
		return nil, ErrInactiveAccount
	}

	if !utils.CheckPassword(cred.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.db.Model(&cred).Update("last_login", &now).Error; err != nil {
		return nil, err
	}

	return member, nil
}

// GetByID returns the member with the given id or ErrNotFound.
func (s *MemberStore) GetByID(id uuid.UUID) (*models.Member, error) {
	var member models.Member
	if err := s.db.First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &member, nil
}

// GetByEmail returns the member with the given email or ErrNotFound.
func (s *MemberStore) GetByEmail(email string) (*models.Member, error) {
	var member models.Member
	if err := s.db.Where("email = ?", NormalizeEmail(email)).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &member, nil
}

// List returns one page of members sorted by creation time descending.
func (s *MemberStore) List(pg utils.Pagination) ([]models.Member, int64, error) {
	var total int64
	if err := s.db.Model(&models.Member{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var members []models.Member
	if err := s.db.Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&members).Error; err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// Search matches the query case-insensitively as a substring of fullName,
// email, phoneNumber, state or district.
func (s *MemberStore) Search(query string, pg utils.Pagination) ([]models.Member, int64, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	scope := s.db.Model(&models.Member{}).Where(
		"LOWER(full_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(phone_number) LIKE ? OR LOWER(state) LIKE ? OR LOWER(district) LIKE ?",
		pattern, pattern, pattern, pattern, pattern,
	)

	var total int64
	if err := scope.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var members []models.Member
	if err := scope.Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&members).Error; err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// requiredMemberFields guards directory creates, where the full identity must
// be supplied up front.
var requiredMemberFields = []validation.FieldError{
	{Field: "fullName", Message: "Full name is required"},
	{Field: "email", Message: "Email is required"},
	{Field: "phoneNumber", Message: "Phone number is required"},
	{Field: "dateOfBirth", Message: "Date of birth is required"},
	{Field: "gender", Message: "Gender is required"},
	{Field: "state", Message: "State is required"},
	{Field: "district", Message: "District is required"},
	{Field: "block", Message: "Block is required"},
	{Field: "city", Message: "City is required"},
}

// Create inserts a new member from a whitelisted field map.
func (s *MemberStore) Create(fields map[string]interface{}) (*models.Member, error) {
	payload := utils.Filter(models.MemberFields, fields)

	var member models.Member
	if err := applyFields(&member, payload); err != nil {
		return nil, err
	}
	member.Email = NormalizeEmail(member.Email)

	var missing []validation.FieldError
	values := map[string]string{
		"fullName": member.FullName, "email": member.Email, "phoneNumber": member.PhoneNumber,
		"dateOfBirth": member.DateOfBirth, "gender": member.Gender, "state": member.State,
		"district": member.District, "block": member.Block, "city": member.City,
	}
	for _, req := range requiredMemberFields {
		if values[req.Field] == "" {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}
	if err := validateStruct(&member); err != nil {
		return nil, err
	}

	var existing models.Member
	if err := s.db.Where("email = ?", member.Email).First(&existing).Error; err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.db.Create(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// Upsert applies whitelisted fields to the member with the given id, creating
// the record when the id is unknown. PUT-as-upsert is the documented directory
// contract, unusual as it is.
func (s *MemberStore) Upsert(id uuid.UUID, fields map[string]interface{}) (*models.Member, error) {
	payload := utils.Filter(models.MemberFields, fields)

	var member models.Member
	err := s.db.First(&member, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	exists := err == nil

	if err := applyFields(&member, payload); err != nil {
		return nil, err
	}
	member.ID = id
	if member.Email != "" {
		member.Email = NormalizeEmail(member.Email)
	}
	if err := validateStruct(&member); err != nil {
		return nil, err
	}

	if exists {
		err = s.db.Save(&member).Error
	} else {
		err = s.db.Create(&member).Error
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// Delete removes the member and, when present, its credential. A missing
// credential is not an error.
func (s *MemberStore) Delete(id uuid.UUID) error {
	member, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(&models.Member{}, "id = ?", id).Error; err != nil {
		return err
	}

	if err := s.db.Where("email = ?", member.Email).Delete(&models.Credential{}).Error; err != nil {
		return err
	}
	return nil
}

// MarkProfileCompleted flips the member's completion flag. Returns the
// refreshed member.
func (s *MemberStore) MarkProfileCompleted(id uuid.UUID) (*models.Member, error) {
	member, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(member).Update("profile_completed", true).Error; err != nil {
		return nil, err
	}
	member.ProfileCompleted = true
	return member, nil
}

// Counts returns the total number of members and how many have completed
// onboarding.
func (s *MemberStore) Counts() (int64, int64, error) {
	var total int64
	if err := s.db.Model(&models.Member{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}

	var completed int64
	if err := s.db.Model(&models.Member{}).
		Where("profile_completed = ?", true).
		Count(&completed).Error; err != nil {
		return 0, 0, err
	}
	return total, completed, nil
}
