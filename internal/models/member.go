package models

import (
	"time"
)

// Member gender values.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Member is the primary registrant identity record. Email is unique and
// case-normalized; profileCompleted is flipped when the declaration is
// submitted.
type Member struct {
	BaseModel
	FullName    string `gorm:"size:100" json:"fullName" validate:"omitempty,max=100"`
	Email       string `gorm:"uniqueIndex" json:"email" validate:"omitempty,email"`
	PhoneNumber string `gorm:"index" json:"phoneNumber" validate:"omitempty,phone"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	State       string `json:"state"`
	District    string `json:"district"`
	Block       string `json:"block"`
	City        string `json:"city"`

	// Demographic details, all optional.
	AadhaarNumber            string `json:"aadhaarNumber,omitempty" validate:"omitempty,len=12,numeric"`
	StreetName               string `json:"streetName,omitempty"`
	EducationalQualification string `json:"educationalQualification,omitempty"`
	Religion                 string `json:"religion,omitempty"`
	SocialCategory           string `json:"socialCategory,omitempty" validate:"omitempty,oneof=General OBC SC ST EWS Other"`

	ProfileCompleted bool `json:"profileCompleted"`
}

// MemberFields is the allow-list applied before directory creates and updates.
var MemberFields = []string{
	"fullName", "email", "phoneNumber", "dateOfBirth", "gender",
	"state", "district", "block", "city", "profileCompleted",
	"aadhaarNumber", "streetName", "educationalQualification", "religion", "socialCategory",
}

// PublicView returns the member shape exposed by auth endpoints.
func (m *Member) PublicView() map[string]interface{} {
	return map[string]interface{}{
		"id":               m.ID,
		"fullName":         m.FullName,
		"email":            m.Email,
		"phoneNumber":      m.PhoneNumber,
		"dateOfBirth":      m.DateOfBirth,
		"gender":           m.Gender,
		"state":            m.State,
		"district":         m.District,
		"block":            m.Block,
		"city":             m.City,
		"profileCompleted": m.ProfileCompleted,
	}
}

// Credential is the authentication record paired 1:1 with a Member by email.
// The password is stored only as a bcrypt hash.
type Credential struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex" json:"email"`
	PasswordHash string     `json:"-"`
	IsActive     bool       `json:"isActive"`
	LastLogin    *time.Time `json:"lastLogin"`
}
