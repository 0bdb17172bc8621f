package dto

import roomDto "hotel/internal/domains/room/model/dto"

type RoomsRequest struct {
	HotelID int64  `json:"-"`
	Date    string `json:"date" validate:"required,date"`
}

// RoomsResponse splits the rooms of a hotel by occupancy on one date.
type RoomsResponse struct {
	HotelID   int64                  `json:"hotel_id"`
	Date      string                 `json:"date"`
	Available []roomDto.RoomResponse `json:"available"`
	Booked    []roomDto.RoomResponse `json:"booked"`
}
