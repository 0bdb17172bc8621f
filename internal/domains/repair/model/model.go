package model

import "time"

const (
	CompanyTableName  = "maintenance_companies"
	CompanyEntityName = "maintenance company"

	CompanyFieldID          = "id"
	CompanyFieldName        = "name"
	CompanyFieldAddress     = "address"
	CompanyFieldIsCertified = "is_certified"
)

const (
	TableName  = "room_repairs"
	EntityName = "repair"

	FieldID         = "id"
	FieldCompanyID  = "company_id"
	FieldHotelID    = "hotel_id"
	FieldRoomNumber = "room_number"
	FieldRepairDate = "repair_date"
)

const (
	RequestTableName  = "room_repair_requests"
	RequestEntityName = "repair request"

	RequestFieldID        = "id"
	RequestFieldManagerID = "manager_id"
	RequestFieldRepairID  = "repair_id"
)

type Company struct {
	ID          int64  `db:"id"           readonly:"true"`
	Name        string `db:"name"`
	Address     string `db:"address"`
	IsCertified bool   `db:"is_certified"`
}

type Repair struct {
	ID         int64     `db:"id"          readonly:"true"`
	CompanyID  int64     `db:"company_id"`
	HotelID    int64     `db:"hotel_id"`
	RoomNumber int64     `db:"room_number"`
	RepairDate time.Time `db:"repair_date"`
}

// Request ties a repair to the manager who asked for it.
type Request struct {
	ID        int64 `db:"id"         readonly:"true"`
	ManagerID int64 `db:"manager_id"`
	RepairID  int64 `db:"repair_id"`
}

type HistoryEntry struct {
	RequestID  int64     `db:"request_id"`
	CompanyID  int64     `db:"company_id"`
	HotelID    int64     `db:"hotel_id"`
	RoomNumber int64     `db:"room_number"`
	RepairDate time.Time `db:"repair_date"`
}
