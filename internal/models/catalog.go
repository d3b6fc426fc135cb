package models

import "time"

type Segment struct {
	ID          string    `json:"id"`
	SegmentName string    `json:"segment_name"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

type Brand struct {
	ID        string    `json:"id"`
	BrandName string    `json:"brand_name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Vehicle carries the segment and brand names alongside the foreign keys so
// list/detail responses don't force the caller into extra lookups. The names
// are filled on reads only; writes go through the id columns.
type Vehicle struct {
	ID          string    `json:"id"`
	VehicleName string    `json:"vehicle_name"`
	ReleaseYear int       `json:"release_year"`
	Price       float64   `json:"price"`
	UserID      string    `json:"-"`
	SegmentID   string    `json:"segment"`
	BrandID     string    `json:"brand"`
	SegmentName string    `json:"segment_name"`
	BrandName   string    `json:"brand_name"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
