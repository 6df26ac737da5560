package models

import "github.com/google/uuid"

// BusinessInfo holds the business-details onboarding section for a member.
// FullName and Email are snapshots of the owning member taken at save time;
// they are not rewritten if the member record changes later.
type BusinessInfo struct {
	BaseModel
	MemberID uuid.UUID `gorm:"type:uuid;index" json:"memberId"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`

	OrganizationName         string `json:"organizationName,omitempty"`
	ConstitutionType         string `json:"constitutionType,omitempty" validate:"omitempty,oneof=Proprietorship Partnership 'Private Limited' 'Public Limited' LLP 'Sole Proprietorship' Other"`
	BusinessType             string `json:"businessType,omitempty" validate:"omitempty,oneof=Agriculture Manufacturing Trader Retailer 'Service Provider' Others"`
	BusinessActivities       string `json:"businessActivities,omitempty"`
	BusinessCommencementYear string `json:"businessCommencementYear,omitempty"`
	NumberOfEmployees        string `json:"numberOfEmployees,omitempty"`
	MemberOfOtherChamber     bool   `json:"memberOfOtherChamber"`
	OtherChamber             string `json:"otherChamber,omitempty"`

	RegisteredWithGovtOrganization []string `gorm:"serializer:json" json:"registeredWithGovtOrganization,omitempty" validate:"omitempty,dive,oneof=MSME KVIC NABARD None Others"`

	DoingBusiness       bool   `json:"doingBusiness"`
	AdditionalBusiness  string `json:"additionalBusiness,omitempty"`
	BusinessLocation    string `json:"businessLocation,omitempty"`
	BusinessWebsite     string `json:"businessWebsite,omitempty"`
	BusinessScale       string `json:"businessScale,omitempty" validate:"omitempty,oneof=Micro Small Medium Large"`
	ExportStatus        string `json:"exportStatus,omitempty" validate:"omitempty,oneof='Domestic Only' 'Export to Neighboring Countries' 'International Export' 'Planning to Export'"`
	HasExportLicense    bool   `json:"hasExportLicense"`
	ExportLicense       string `json:"exportLicense,omitempty"`
	BusinessDescription string `json:"businessDescription,omitempty"`
}

// BusinessInfoFields is the allow-list applied before every business-info save.
var BusinessInfoFields = []string{
	"organizationName",
	"constitutionType",
	"businessType",
	"businessActivities",
	"businessCommencementYear",
	"numberOfEmployees",
	"memberOfOtherChamber",
	"otherChamber",
	"registeredWithGovtOrganization",
	"doingBusiness",
	"additionalBusiness",
	"businessLocation",
	"businessWebsite",
	"businessScale",
	"exportStatus",
	"hasExportLicense",
	"exportLicense",
	"businessDescription",
}
