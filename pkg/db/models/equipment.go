package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Equipment is one physical lab asset. The business key is EquipmentID; the
// uuid surrogate exists only for storage. Addressing everywhere else in the
// system (QR payloads, URLs, scan logs) uses EquipmentID.
type Equipment struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	EquipmentID string    `gorm:"column:equipment_id;not null;uniqueIndex:equipment_equipment_id_key"`
	Name        string    `gorm:"column:name;not null"`

	Category     *string    `gorm:"column:category"`
	Manufacturer *string    `gorm:"column:manufacturer"`
	Make         *string    `gorm:"column:make"`
	SerialNo     *string    `gorm:"column:serial_no"`
	ModelNo      *string    `gorm:"column:model_no"`
	PurchaseDate *time.Time `gorm:"column:purchase_date;type:date"`
	Location     *string    `gorm:"column:location"`
	Status       *string    `gorm:"column:status"`

	Specifications *string    `gorm:"column:specifications"`
	MaintenanceDue *time.Time `gorm:"column:maintenance_due;type:date"`
	AssignedUser   *string    `gorm:"column:assigned_user"`
	FacultyIncharge *string   `gorm:"column:faculty_incharge"`
	Notes          *string    `gorm:"column:notes"`

	StockRegisterInfo     *string             `gorm:"column:stock_register_info"`
	PhysicalPresence      *string             `gorm:"column:physical_presence"`
	WorkingStatus         *string             `gorm:"column:working_status"`
	RepairStatus          *string             `gorm:"column:repair_status"`
	FundingSource         *string             `gorm:"column:funding_source"`
	GovtRegistration      *string             `gorm:"column:govt_registration"`
	ProjectCompletionYear *string             `gorm:"column:project_completion_year"`
	PurchaseCost          decimal.NullDecimal `gorm:"column:purchase_cost;type:numeric(12,2)"`

	QRURL     string    `gorm:"column:qr_url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Equipment) TableName() string { return "equipment" }

// BeforeCreate assigns the surrogate key client-side so the model also works
// on databases without gen_random_uuid (the sqlite test driver).
func (e *Equipment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
