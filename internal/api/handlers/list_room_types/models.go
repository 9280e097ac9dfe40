package list_room_types

import (
	"errors"
	"net/url"
	"strconv"

	roomTypeModels "github.com/m04kA/SMC-HotelBookingService/internal/service/roomtypes/models"
	listRoomTypes "github.com/m04kA/SMC-HotelBookingService/internal/usecase/list_room_types"
)

var (
	errInvalidHotelID  = errors.New("invalid hotelId")
	errInvalidIsActive = errors.New("invalid isActive")
)

// RoomTypeItem тип номера с остатком; remaining и soldOut null без дат
type RoomTypeItem struct {
	*roomTypeModels.RoomTypeResponse
	Remaining *int  `json:"remaining"`
	SoldOut   *bool `json:"soldOut"`
}

// ToUseCaseRequest разбирает query параметры: hotelId, isActive, checkIn|in, checkOut|out
func ToUseCaseRequest(q url.Values) (*listRoomTypes.Request, error) {
	req := &listRoomTypes.Request{
		CheckIn:  firstNonEmpty(q, "checkIn", "in"),
		CheckOut: firstNonEmpty(q, "checkOut", "out"),
	}

	if raw := q.Get("hotelId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return nil, errInvalidHotelID
		}
		req.HotelID = &id
	}

	if raw := q.Get("isActive"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errInvalidIsActive
		}
		req.IsActive = &active
	}

	return req, nil
}

func firstNonEmpty(q url.Values, keys ...string) *string {
	for _, k := range keys {
		if v := q.Get(k); v != "" {
			return &v
		}
	}
	return nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response: массив типов номеров,
// пустой массив вместо null
func FromUseCaseResponse(resp *listRoomTypes.Response) []*RoomTypeItem {
	out := make([]*RoomTypeItem, 0, len(resp.RoomTypes))
	for _, item := range resp.RoomTypes {
		out = append(out, &RoomTypeItem{
			RoomTypeResponse: roomTypeModels.FromDomainRoomType(item.RoomType),
			Remaining:        item.Remaining,
			SoldOut:          item.SoldOut,
		})
	}
	return out
}
