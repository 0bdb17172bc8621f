package dto

import (
	"hotel/internal/domains/room/model"
	"hotel/shared/constant"
	"hotel/shared/timezone"
)

type UpdateRoomRequest struct {
	HotelID    int64   `json:"-"`
	RoomNumber int64   `json:"-"`
	Price      float64 `json:"price"     validate:"required,gt=0,lte=2147483647,wholenumber"`
	ImageURL   string  `json:"image_url" validate:"required,min=1,max=30"`
}

// Fields returns the columns changed by the request.
func (r *UpdateRoomRequest) Fields() map[string]any {
	return map[string]any{
		model.FieldPrice:    int64(r.Price),
		model.FieldImageURL: r.ImageURL,
	}
}

type RoomResponse struct {
	RoomNumber int64 `json:"room_number"`
	Price      int64 `json:"price"`
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.RoomNumber = room.RoomNumber
	r.Price = room.Price
}

func FromModels(rooms []model.Room) []RoomResponse {
	res := make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		res[i].FromModel(room)
	}

	return res
}

type UpdateLogResponse struct {
	ID         int64  `json:"id"`
	HotelID    int64  `json:"hotel_id"`
	RoomNumber int64  `json:"room_number"`
	UpdatedOn  string `json:"updated_on"`
}

func (r *UpdateLogResponse) FromModel(entry model.UpdateLog) {
	r.ID = entry.ID
	r.HotelID = entry.HotelID
	r.RoomNumber = entry.RoomNumber
	r.UpdatedOn = timezone.Format(entry.UpdatedOn, constant.DateTimeFormat)
}
