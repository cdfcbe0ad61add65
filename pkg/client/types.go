package client

import (
	"time"

	"github.com/shopspring/decimal"
)

// Equipment is the wire shape of one inventory asset as the server serves
// it. Calendar dates are YYYY-MM-DD strings; optional fields are pointers.
type Equipment struct {
	ID          string `json:"id"`
	EquipmentID string `json:"equipment_id"`
	Name        string `json:"name"`

	Category     *string `json:"category,omitempty"`
	Manufacturer *string `json:"manufacturer,omitempty"`
	Make         *string `json:"make,omitempty"`
	SerialNo     *string `json:"serial_no,omitempty"`
	ModelNo      *string `json:"model_no,omitempty"`
	PurchaseDate *string `json:"purchase_date,omitempty"`
	Location     *string `json:"location,omitempty"`
	Status       *string `json:"status,omitempty"`

	Specifications  *string `json:"specifications,omitempty"`
	MaintenanceDue  *string `json:"maintenance_due,omitempty"`
	AssignedUser    *string `json:"assigned_user,omitempty"`
	FacultyIncharge *string `json:"faculty_incharge,omitempty"`
	Notes           *string `json:"notes,omitempty"`

	StockRegisterInfo     *string          `json:"stock_register_info,omitempty"`
	PhysicalPresence      *string          `json:"physical_presence,omitempty"`
	WorkingStatus         *string          `json:"working_status,omitempty"`
	RepairStatus          *string          `json:"repair_status,omitempty"`
	FundingSource         *string          `json:"funding_source,omitempty"`
	GovtRegistration      *string          `json:"govt_registration,omitempty"`
	ProjectCompletionYear *string          `json:"project_completion_year,omitempty"`
	PurchaseCost          *decimal.Decimal `json:"purchase_cost,omitempty"`

	QRURL     string    `json:"qr_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateEquipmentInput is the create payload. Only the business key and name
// are mandatory.
type CreateEquipmentInput struct {
	EquipmentID string `json:"equipment_id"`
	Name        string `json:"name"`

	Category     *string `json:"category,omitempty"`
	Manufacturer *string `json:"manufacturer,omitempty"`
	Make         *string `json:"make,omitempty"`
	SerialNo     *string `json:"serial_no,omitempty"`
	ModelNo      *string `json:"model_no,omitempty"`
	PurchaseDate *string `json:"purchase_date,omitempty"`
	Location     *string `json:"location,omitempty"`
	Status       *string `json:"status,omitempty"`

	Specifications  *string `json:"specifications,omitempty"`
	MaintenanceDue  *string `json:"maintenance_due,omitempty"`
	AssignedUser    *string `json:"assigned_user,omitempty"`
	FacultyIncharge *string `json:"faculty_incharge,omitempty"`
	Notes           *string `json:"notes,omitempty"`

	StockRegisterInfo     *string          `json:"stock_register_info,omitempty"`
	PhysicalPresence      *string          `json:"physical_presence,omitempty"`
	WorkingStatus         *string          `json:"working_status,omitempty"`
	RepairStatus          *string          `json:"repair_status,omitempty"`
	FundingSource         *string          `json:"funding_source,omitempty"`
	GovtRegistration      *string          `json:"govt_registration,omitempty"`
	ProjectCompletionYear *string          `json:"project_completion_year,omitempty"`
	PurchaseCost          *decimal.Decimal `json:"purchase_cost,omitempty"`
}

// UpdateEquipmentInput is an explicit patch: only non-nil fields are sent,
// so a partial update never clears something it didn't mention. The business
// key is deliberately absent because the server treats it as immutable.
type UpdateEquipmentInput struct {
	Name *string `json:"name,omitempty"`

	Category     *string `json:"category,omitempty"`
	Manufacturer *string `json:"manufacturer,omitempty"`
	Make         *string `json:"make,omitempty"`
	SerialNo     *string `json:"serial_no,omitempty"`
	ModelNo      *string `json:"model_no,omitempty"`
	PurchaseDate *string `json:"purchase_date,omitempty"`
	Location     *string `json:"location,omitempty"`
	Status       *string `json:"status,omitempty"`

	Specifications  *string `json:"specifications,omitempty"`
	MaintenanceDue  *string `json:"maintenance_due,omitempty"`
	AssignedUser    *string `json:"assigned_user,omitempty"`
	FacultyIncharge *string `json:"faculty_incharge,omitempty"`
	Notes           *string `json:"notes,omitempty"`

	StockRegisterInfo     *string          `json:"stock_register_info,omitempty"`
	PhysicalPresence      *string          `json:"physical_presence,omitempty"`
	WorkingStatus         *string          `json:"working_status,omitempty"`
	RepairStatus          *string          `json:"repair_status,omitempty"`
	FundingSource         *string          `json:"funding_source,omitempty"`
	GovtRegistration      *string          `json:"govt_registration,omitempty"`
	ProjectCompletionYear *string          `json:"project_completion_year,omitempty"`
	PurchaseCost          *decimal.Decimal `json:"purchase_cost,omitempty"`
}

// ScanLog is the wire shape of one recorded scan.
type ScanLog struct {
	ID          string    `json:"id"`
	EquipmentID string    `json:"equipment_id"`
	UserInfo    string    `json:"user_info"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	ScannedAt   time.Time `json:"scanned_at"`
}

// CreateScanLogInput records one scan event. Coordinates are optional.
type CreateScanLogInput struct {
	EquipmentID string   `json:"equipment_id"`
	UserInfo    *string  `json:"user_info,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// Token is a minted console session.
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	Email       string    `json:"email"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
