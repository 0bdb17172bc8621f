package model

import "time"

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID              = "id"
	FieldName            = "name"
	FieldLatitude        = "latitude"
	FieldLongitude       = "longitude"
	FieldDateEstablished = "date_established"
	FieldManagerUserID   = "manager_user_id"
)

type Hotel struct {
	ID              int64     `db:"id"               readonly:"true"`
	Name            string    `db:"name"`
	Latitude        float64   `db:"latitude"`
	Longitude       float64   `db:"longitude"`
	DateEstablished time.Time `db:"date_established"`
	ManagerUserID   int64     `db:"manager_user_id"`
}

// Coordinate is a raw latitude/longitude pair.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

func (h Hotel) Coordinate() Coordinate {
	return Coordinate{Latitude: h.Latitude, Longitude: h.Longitude}
}
