package models

import "github.com/google/uuid"

// FinancialInfo holds the financial and compliance onboarding section for a
// member. FullName and Email are member snapshots taken at save time.
type FinancialInfo struct {
	BaseModel
	MemberID uuid.UUID `gorm:"type:uuid;index" json:"memberId"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`

	PanNumber   string `gorm:"column:pan_number" json:"panNumber,omitempty" validate:"omitempty,pan"`
	GstNumber   string `gorm:"column:gst_number" json:"gstNumber,omitempty" validate:"omitempty,gstin"`
	UdyamNumber string `json:"udyamNumber,omitempty"`

	FiledITR      bool   `gorm:"column:filed_itr" json:"filedITR"`
	ItrYears      string `json:"itrYears,omitempty"`
	TurnoverRange string `json:"turnoverRange,omitempty" validate:"omitempty,oneof='Less than 25 Lakhs' '25 Lakhs - 50 Lakhs' '50 Lakhs - 1 Crore' '1 Crore - 5 Crores' '5 Crores - 10 Crores' 'More than 10 Crores'"`

	Fy2021 string `gorm:"column:fy2021" json:"fy2021,omitempty"`
	Fy2020 string `gorm:"column:fy2020" json:"fy2020,omitempty"`
	Fy2019 string `gorm:"column:fy2019" json:"fy2019,omitempty"`

	GovtSchemeBenefit bool   `json:"govtSchemeBenefit"`
	Scheme1           string `json:"scheme1,omitempty"`
	Scheme2           string `json:"scheme2,omitempty"`
	Scheme3           string `json:"scheme3,omitempty"`
}

// FinancialInfoFields is the allow-list applied before every financial-info save.
var FinancialInfoFields = []string{
	"panNumber", "gstNumber", "udyamNumber", "filedITR", "itrYears", "turnoverRange",
	"fy2021", "fy2020", "fy2019", "govtSchemeBenefit", "scheme1", "scheme2", "scheme3",
}
