package equipment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rahulmenon/labtrack-backend/pkg/db/models"
)

const dateLayout = "2006-01-02"

// EquipmentDTO is the wire shape of one asset. Calendar dates render as
// YYYY-MM-DD strings; optional fields are omitted when unset.
type EquipmentDTO struct {
	ID          uuid.UUID `json:"id"`
	EquipmentID string    `json:"equipment_id"`
	Name        string    `json:"name"`

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

// CreateInput is the payload accepted by the create operation. Only the
// business key and name are mandatory; everything else is descriptive.
type CreateInput struct {
	EquipmentID string `json:"equipment_id" validate:"required"`
	Name        string `json:"name" validate:"required"`

	Category     *string `json:"category"`
	Manufacturer *string `json:"manufacturer"`
	Make         *string `json:"make"`
	SerialNo     *string `json:"serial_no"`
	ModelNo      *string `json:"model_no"`
	PurchaseDate *string `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	Location     *string `json:"location"`
	Status       *string `json:"status"`

	Specifications  *string `json:"specifications"`
	MaintenanceDue  *string `json:"maintenance_due" validate:"omitempty,datetime=2006-01-02"`
	AssignedUser    *string `json:"assigned_user"`
	FacultyIncharge *string `json:"faculty_incharge"`
	Notes           *string `json:"notes"`

	StockRegisterInfo     *string          `json:"stock_register_info"`
	PhysicalPresence      *string          `json:"physical_presence"`
	WorkingStatus         *string          `json:"working_status"`
	RepairStatus          *string          `json:"repair_status"`
	FundingSource         *string          `json:"funding_source"`
	GovtRegistration      *string          `json:"govt_registration"`
	ProjectCompletionYear *string          `json:"project_completion_year"`
	PurchaseCost          *decimal.Decimal `json:"purchase_cost"`
}

// UpdateInput is an explicit patch: only fields present in the request body
// mutate, so a partial update can never clear something it didn't mention.
// The business key is deliberately absent — equipment_id is immutable and any
// attempt to send it is ignored.
type UpdateInput struct {
	Name *string `json:"name"`

	Category     *string `json:"category"`
	Manufacturer *string `json:"manufacturer"`
	Make         *string `json:"make"`
	SerialNo     *string `json:"serial_no"`
	ModelNo      *string `json:"model_no"`
	PurchaseDate *string `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	Location     *string `json:"location"`
	Status       *string `json:"status"`

	Specifications  *string `json:"specifications"`
	MaintenanceDue  *string `json:"maintenance_due" validate:"omitempty,datetime=2006-01-02"`
	AssignedUser    *string `json:"assigned_user"`
	FacultyIncharge *string `json:"faculty_incharge"`
	Notes           *string `json:"notes"`

	StockRegisterInfo     *string          `json:"stock_register_info"`
	PhysicalPresence      *string          `json:"physical_presence"`
	WorkingStatus         *string          `json:"working_status"`
	RepairStatus          *string          `json:"repair_status"`
	FundingSource         *string          `json:"funding_source"`
	GovtRegistration      *string          `json:"govt_registration"`
	ProjectCompletionYear *string          `json:"project_completion_year"`
	PurchaseCost          *decimal.Decimal `json:"purchase_cost"`
}

func (in CreateInput) toModel() (models.Equipment, error) {
	purchaseDate, err := parseDatePtr(in.PurchaseDate)
	if err != nil {
		return models.Equipment{}, err
	}
	maintenanceDue, err := parseDatePtr(in.MaintenanceDue)
	if err != nil {
		return models.Equipment{}, err
	}

	record := models.Equipment{
		EquipmentID:           in.EquipmentID,
		Name:                  in.Name,
		Category:              in.Category,
		Manufacturer:          in.Manufacturer,
		Make:                  in.Make,
		SerialNo:              in.SerialNo,
		ModelNo:               in.ModelNo,
		PurchaseDate:          purchaseDate,
		Location:              in.Location,
		Status:                in.Status,
		Specifications:        in.Specifications,
		MaintenanceDue:        maintenanceDue,
		AssignedUser:          in.AssignedUser,
		FacultyIncharge:       in.FacultyIncharge,
		Notes:                 in.Notes,
		StockRegisterInfo:     in.StockRegisterInfo,
		PhysicalPresence:      in.PhysicalPresence,
		WorkingStatus:         in.WorkingStatus,
		RepairStatus:          in.RepairStatus,
		FundingSource:         in.FundingSource,
		GovtRegistration:      in.GovtRegistration,
		ProjectCompletionYear: in.ProjectCompletionYear,
	}
	if in.PurchaseCost != nil {
		record.PurchaseCost = decimal.NullDecimal{Decimal: *in.PurchaseCost, Valid: true}
	}
	return record, nil
}

// toUpdates flattens the patch into column assignments, skipping absent fields.
func (in UpdateInput) toUpdates() (map[string]any, error) {
	updates := map[string]any{}

	setString := func(column string, value *string) {
		if value != nil {
			updates[column] = *value
		}
	}
	setString("name", in.Name)
	setString("category", in.Category)
	setString("manufacturer", in.Manufacturer)
	setString("make", in.Make)
	setString("serial_no", in.SerialNo)
	setString("model_no", in.ModelNo)
	setString("location", in.Location)
	setString("status", in.Status)
	setString("specifications", in.Specifications)
	setString("assigned_user", in.AssignedUser)
	setString("faculty_incharge", in.FacultyIncharge)
	setString("notes", in.Notes)
	setString("stock_register_info", in.StockRegisterInfo)
	setString("physical_presence", in.PhysicalPresence)
	setString("working_status", in.WorkingStatus)
	setString("repair_status", in.RepairStatus)
	setString("funding_source", in.FundingSource)
	setString("govt_registration", in.GovtRegistration)
	setString("project_completion_year", in.ProjectCompletionYear)

	if in.PurchaseDate != nil {
		parsed, err := parseDatePtr(in.PurchaseDate)
		if err != nil {
			return nil, err
		}
		updates["purchase_date"] = parsed
	}
	if in.MaintenanceDue != nil {
		parsed, err := parseDatePtr(in.MaintenanceDue)
		if err != nil {
			return nil, err
		}
		updates["maintenance_due"] = parsed
	}
	if in.PurchaseCost != nil {
		updates["purchase_cost"] = decimal.NullDecimal{Decimal: *in.PurchaseCost, Valid: true}
	}

	return updates, nil
}

func parseDatePtr(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func formatDatePtr(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.Format(dateLayout)
	return &formatted
}

func toDTO(record models.Equipment) EquipmentDTO {
	dto := EquipmentDTO{
		ID:                    record.ID,
		EquipmentID:           record.EquipmentID,
		Name:                  record.Name,
		Category:              record.Category,
		Manufacturer:          record.Manufacturer,
		Make:                  record.Make,
		SerialNo:              record.SerialNo,
		ModelNo:               record.ModelNo,
		PurchaseDate:          formatDatePtr(record.PurchaseDate),
		Location:              record.Location,
		Status:                record.Status,
		Specifications:        record.Specifications,
		MaintenanceDue:        formatDatePtr(record.MaintenanceDue),
		AssignedUser:          record.AssignedUser,
		FacultyIncharge:       record.FacultyIncharge,
		Notes:                 record.Notes,
		StockRegisterInfo:     record.StockRegisterInfo,
		PhysicalPresence:      record.PhysicalPresence,
		WorkingStatus:         record.WorkingStatus,
		RepairStatus:          record.RepairStatus,
		FundingSource:         record.FundingSource,
		GovtRegistration:      record.GovtRegistration,
		ProjectCompletionYear: record.ProjectCompletionYear,
		QRURL:                 record.QRURL,
		CreatedAt:             record.CreatedAt,
		UpdatedAt:             record.UpdatedAt,
	}
	if record.PurchaseCost.Valid {
		cost := record.PurchaseCost.Decimal
		dto.PurchaseCost = &cost
	}
	return dto
}
