package create_booking

import (
	"errors"
	"strings"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// validateRequest проверяет обязательные поля, затем формат дат, затем порядок дат
func validateRequest(req *Request) (domain.DateRange, error) {
	if req.RoomTypeID <= 0 {
		return domain.DateRange{}, &FieldError{Field: "roomTypeId", Err: ErrInvalidInput}
	}
	if req.UserID != nil && *req.UserID <= 0 {
		return domain.DateRange{}, &FieldError{Field: "userId", Err: ErrInvalidInput}
	}

	required := []struct {
		field string
		value string
	}{
		{field: "checkIn", value: req.CheckIn},
		{field: "checkOut", value: req.CheckOut},
		{field: "contactName", value: req.ContactName},
		{field: "contactPhone", value: req.ContactPhone},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return domain.DateRange{}, &FieldError{Field: r.field, Err: ErrInvalidInput}
		}
	}

	if len(req.ContactName) > domain.MaxContactNameLength {
		return domain.DateRange{}, &FieldError{Field: "contactName", Err: ErrInvalidInput}
	}
	if len(req.ContactPhone) > domain.MaxContactPhoneLength {
		return domain.DateRange{}, &FieldError{Field: "contactPhone", Err: ErrInvalidInput}
	}

	checkIn, err := domain.ParseDate(req.CheckIn)
	if err != nil {
		return domain.DateRange{}, &FieldError{Field: "checkIn", Err: ErrInvalidDate}
	}
	checkOut, err := domain.ParseDate(req.CheckOut)
	if err != nil {
		return domain.DateRange{}, &FieldError{Field: "checkOut", Err: ErrInvalidDate}
	}

	dates, err := domain.NewDateRange(checkIn, checkOut)
	if errors.Is(err, domain.ErrInvalidDateRange) {
		return domain.DateRange{}, &FieldError{Field: "checkOut", Err: ErrInvalidDateRange}
	}
	if err != nil {
		return domain.DateRange{}, &FieldError{Field: "checkIn", Err: ErrInvalidDate}
	}

	return dates, nil
}

// resolveOwner определяет владельца бронирования: обычный пользователь бронирует только на себя
func resolveOwner(req *Request) (int64, error) {
	if req.UserID == nil || *req.UserID == req.Actor.ID {
		return req.Actor.ID, nil
	}
	if !req.Actor.IsAdmin() {
		return 0, ErrForbidden
	}
	return *req.UserID, nil
}
