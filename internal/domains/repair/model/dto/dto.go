package dto

import (
	"hotel/internal/domains/repair/model"
	"hotel/shared/timezone"
	"time"
)

type RepairRequest struct {
	HotelID    int64 `json:"hotel_id"    validate:"required,gt=0"`
	RoomNumber int64 `json:"room_number" validate:"required,gt=0"`
	CompanyID  int64 `json:"company_id"  validate:"required,gt=0"`
}

func (r *RepairRequest) ToModel(date time.Time) model.Repair {
	return model.Repair{
		CompanyID:  r.CompanyID,
		HotelID:    r.HotelID,
		RoomNumber: r.RoomNumber,
		RepairDate: date,
	}
}

type RepairRequestResponse struct {
	RequestID  int64  `json:"request_id"`
	RepairID   int64  `json:"repair_id"`
	CompanyID  int64  `json:"company_id"`
	HotelID    int64  `json:"hotel_id"`
	RoomNumber int64  `json:"room_number"`
	RepairDate string `json:"repair_date"`
}

// RepairRequestedEvent is published to the maintenance companies after a
// request is committed.
type RepairRequestedEvent struct {
	RepairRequestResponse
	ManagerID int64 `json:"manager_id"`
}

type HistoryResponse struct {
	RequestID  int64  `json:"request_id"`
	CompanyID  int64  `json:"company_id"`
	HotelID    int64  `json:"hotel_id"`
	RoomNumber int64  `json:"room_number"`
	RepairDate string `json:"repair_date"`
}

func (r *HistoryResponse) FromModel(entry model.HistoryEntry) {
	r.RequestID = entry.RequestID
	r.CompanyID = entry.CompanyID
	r.HotelID = entry.HotelID
	r.RoomNumber = entry.RoomNumber
	r.RepairDate = timezone.FormatDate(entry.RepairDate)
}
