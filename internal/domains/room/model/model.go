package model

import (
	"hotel/shared"
	gDto "hotel/shared/dto"
	"time"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldHotelID    = "hotel_id"
	FieldRoomNumber = "room_number"
	FieldPrice      = "price"
	FieldImageURL   = "image_url"
)

const (
	LogTableName  = "room_updates_log"
	LogEntityName = "room update log"

	LogFieldID         = "id"
	LogFieldManagerID  = "manager_id"
	LogFieldHotelID    = "hotel_id"
	LogFieldRoomNumber = "room_number"
	LogFieldUpdatedOn  = "updated_on"
)

type Room struct {
	HotelID    int64  `db:"hotel_id"`
	RoomNumber int64  `db:"room_number"`
	Price      int64  `db:"price"`
	ImageURL   string `db:"image_url"`
}

// UpdateLog is one append-only audit row written with every room change.
type UpdateLog struct {
	ID         int64     `db:"id"          readonly:"true"`
	ManagerID  int64     `db:"manager_id"`
	HotelID    int64     `db:"hotel_id"`
	RoomNumber int64     `db:"room_number"`
	UpdatedOn  time.Time `db:"updated_on"`
}

// ByKey filters a single room by its composite key.
func ByKey(hotelID, roomNumber int64) gDto.FilterGroup {
	return shared.FilterAll(TableName, map[string]any{
		FieldHotelID:    hotelID,
		FieldRoomNumber: roomNumber,
	})
}
