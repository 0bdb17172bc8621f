package dto

import "hotel/internal/domains/hotel/model"

type NearbyRequest struct {
	Latitude  float64 `json:"latitude"  validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	Radius    float64 `json:"radius"    validate:"gte=0"`
}

func (r NearbyRequest) Origin() model.Coordinate {
	return model.Coordinate{Latitude: r.Latitude, Longitude: r.Longitude}
}

type NearbyHotel struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Distance float64 `json:"distance"`
}

type NearbyHotelsResponse struct {
	Radius float64       `json:"radius"`
	Hotels []NearbyHotel `json:"hotels"`
}
