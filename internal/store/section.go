package store

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/activ/internal/models"
)

// applyFields merges a whitelisted field map onto a typed record. Only keys
// present in the map are touched, so partial updates leave other columns as
// loaded. A type mismatch surfaces as a ValidationError naming the field.
func applyFields(target interface{}, fields map[string]interface{}) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, target); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return newFieldError(typeErr.Field, "has wrong type, expected "+typeErr.Type.String())
		}
		return err
	}
	return nil
}

// memberForSection resolves the owning member before any section write. Every
// section record denormalizes the member's fullName and email from here.
func memberForSection(db *gorm.DB, memberID uuid.UUID) (*models.Member, error) {
	var member models.Member
	if err := db.First(&member, "id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &member, nil
}
