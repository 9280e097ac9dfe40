package domain

import "time"

// Hotel represents a property with images and room types
type Hotel struct {
	ID          int64
	Name        string
	City        string
	Address     string
	Description *string
	CreatedAt   time.Time

	Images    []HotelImage
	RoomTypes []*RoomType
}

// HotelImage изображение отеля, порядок задается SortOrder
type HotelImage struct {
	ID        int64
	HotelID   int64
	URL       string
	SortOrder int
}

// HotelSummary отель в публичном списке
type HotelSummary struct {
	Hotel
	CoverURL      *string // первое изображение по SortOrder
	RoomTypeCount int
}
