package domain

// Capacity remaining units of a room type for a date range
type Capacity struct {
	RoomTypeID  int64
	Range       DateRange
	Total       int
	Overlapping int
	// Remaining = Total - Overlapping, может быть отрицательным,
	// если total уменьшили ниже числа действующих бронирований
	Remaining int
}

// NewCapacity calculates capacity from total stock and overlapping bookings count
func NewCapacity(rt *RoomType, r DateRange, overlapping int) Capacity {
	return Capacity{
		RoomTypeID:  rt.ID,
		Range:       r,
		Total:       rt.Total,
		Overlapping: overlapping,
		Remaining:   rt.Total - overlapping,
	}
}

// SoldOut returns true if no more bookings can be admitted for the range
func (c Capacity) SoldOut() bool {
	return c.Remaining <= 0
}
