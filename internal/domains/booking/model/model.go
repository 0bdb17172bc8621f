package model

import (
	"hotel/shared"
	gDto "hotel/shared/dto"
	"time"
)

const (
	TableName  = "room_bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldCustomerID  = "customer_id"
	FieldHotelID     = "hotel_id"
	FieldRoomNumber  = "room_number"
	FieldBookingDate = "booking_date"
)

type Booking struct {
	ID          int64     `db:"id"           readonly:"true"`
	CustomerID  int64     `db:"customer_id"`
	HotelID     int64     `db:"hotel_id"`
	RoomNumber  int64     `db:"room_number"`
	BookingDate time.Time `db:"booking_date"`
}

// CustomerBooking is a booking of the customer together with the room price.
type CustomerBooking struct {
	ID          int64     `db:"id"`
	HotelID     int64     `db:"hotel_id"`
	RoomNumber  int64     `db:"room_number"`
	Price       int64     `db:"price"`
	BookingDate time.Time `db:"booking_date"`
}

// HotelBooking is a booking at one of the manager's hotels.
type HotelBooking struct {
	ID           int64     `db:"id"`
	CustomerName string    `db:"customer_name"`
	HotelID      int64     `db:"hotel_id"`
	RoomNumber   int64     `db:"room_number"`
	BookingDate  time.Time `db:"booking_date"`
}

type RegularCustomer struct {
	CustomerID int64  `db:"customer_id"`
	Name       string `db:"name"`
	Bookings   int64  `db:"bookings"`
}

// ByKey filters the booking of a room on a date.
func ByKey(hotelID, roomNumber int64, date time.Time) gDto.FilterGroup {
	return shared.FilterAll(TableName, map[string]any{
		FieldHotelID:     hotelID,
		FieldRoomNumber:  roomNumber,
		FieldBookingDate: date,
	})
}
