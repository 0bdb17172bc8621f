package dto

import (
	"hotel/internal/domains/booking/model"
	"hotel/shared/timezone"
	"time"
)

type BookRequest struct {
	HotelID    int64  `json:"hotel_id"    validate:"required,gt=0"`
	RoomNumber int64  `json:"room_number" validate:"required,gt=0"`
	Date       string `json:"date"        validate:"required,date"`
}

func (r *BookRequest) ToModel(customerID int64, date time.Time) model.Booking {
	return model.Booking{
		CustomerID:  customerID,
		HotelID:     r.HotelID,
		RoomNumber:  r.RoomNumber,
		BookingDate: date,
	}
}

type BookingResponse struct {
	ID         int64  `json:"id"`
	HotelID    int64  `json:"hotel_id"`
	RoomNumber int64  `json:"room_number"`
	Date       string `json:"date"`
	Price      int64  `json:"price"`
}

type HistoryRequest struct {
	Start string `json:"start" validate:"required,date"`
	End   string `json:"end"   validate:"required,date"`
}

type CustomerBookingResponse struct {
	ID         int64  `json:"id"`
	HotelID    int64  `json:"hotel_id"`
	RoomNumber int64  `json:"room_number"`
	Price      int64  `json:"price"`
	Date       string `json:"date"`
}

func (r *CustomerBookingResponse) FromModel(booking model.CustomerBooking) {
	r.ID = booking.ID
	r.HotelID = booking.HotelID
	r.RoomNumber = booking.RoomNumber
	r.Price = booking.Price
	r.Date = timezone.FormatDate(booking.BookingDate)
}

type HotelBookingResponse struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customer_name"`
	HotelID      int64  `json:"hotel_id"`
	RoomNumber   int64  `json:"room_number"`
	Date         string `json:"date"`
}

func (r *HotelBookingResponse) FromModel(booking model.HotelBooking) {
	r.ID = booking.ID
	r.CustomerName = booking.CustomerName
	r.HotelID = booking.HotelID
	r.RoomNumber = booking.RoomNumber
	r.Date = timezone.FormatDate(booking.BookingDate)
}

type RegularCustomerResponse struct {
	CustomerID int64  `json:"customer_id"`
	Name       string `json:"name"`
	Bookings   int64  `json:"bookings"`
}

func (r *RegularCustomerResponse) FromModel(customer model.RegularCustomer) {
	r.CustomerID = customer.CustomerID
	r.Name = customer.Name
	r.Bookings = customer.Bookings
}
