package domain

import "time"

// RoomType represents a category of room in a hotel.
// Total is the number of physically identical rooms of this category.
type RoomType struct {
	ID        int64
	HotelID   int64
	Name      string
	Price     float64
	Total     int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Hotel заполняется только при выборке со связанными данными
	Hotel *Hotel
}

// CanAdmit returns true if one more booking fits next to overlapping ones
func (rt *RoomType) CanAdmit(overlapping int) bool {
	return overlapping < rt.Total
}

// RoomTypesFilter фильтр для админского списка типов номеров
type RoomTypesFilter struct {
	HotelID      *int64
	IsActive     *bool
	IncludeHotel bool
}
