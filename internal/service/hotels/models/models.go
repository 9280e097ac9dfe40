package models

import (
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	roomTypeModels "github.com/m04kA/SMC-HotelBookingService/internal/service/roomtypes/models"
)

// HotelSummaryResponse отель в публичном списке
type HotelSummaryResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	City          string  `json:"city"`
	Address       string  `json:"address"`
	Description   *string `json:"description,omitempty"`
	CoverURL      *string `json:"coverUrl"`
	RoomTypeCount int     `json:"roomTypeCount"`
}

// HotelImageResponse изображение отеля
type HotelImageResponse struct {
	ID        int64  `json:"id"`
	URL       string `json:"url"`
	SortOrder int    `json:"sortOrder"`
}

// HotelDetailResponse отель с изображениями и активными типами номеров
type HotelDetailResponse struct {
	ID          int64                              `json:"id"`
	Name        string                             `json:"name"`
	City        string                             `json:"city"`
	Address     string                             `json:"address"`
	Description *string                            `json:"description,omitempty"`
	CreatedAt   string                             `json:"createdAt"`
	Images      []HotelImageResponse               `json:"images"`
	RoomTypes   []*roomTypeModels.RoomTypeResponse `json:"roomTypes"`
}

func FromDomainHotelSummaries(hotels []*domain.HotelSummary) []*HotelSummaryResponse {
	items := make([]*HotelSummaryResponse, len(hotels))
	for i, h := range hotels {
		items[i] = &HotelSummaryResponse{
			ID:            h.ID,
			Name:          h.Name,
			City:          h.City,
			Address:       h.Address,
			Description:   h.Description,
			CoverURL:      h.CoverURL,
			RoomTypeCount: h.RoomTypeCount,
		}
	}
	return items
}

func FromDomainHotel(h *domain.Hotel) *HotelDetailResponse {
	resp := &HotelDetailResponse{
		ID:          h.ID,
		Name:        h.Name,
		City:        h.City,
		Address:     h.Address,
		Description: h.Description,
		CreatedAt:   h.CreatedAt.Format(time.RFC3339),
		Images:      make([]HotelImageResponse, len(h.Images)),
		RoomTypes:   make([]*roomTypeModels.RoomTypeResponse, len(h.RoomTypes)),
	}
	for i, img := range h.Images {
		resp.Images[i] = HotelImageResponse{ID: img.ID, URL: img.URL, SortOrder: img.SortOrder}
	}
	for i, rt := range h.RoomTypes {
		resp.RoomTypes[i] = roomTypeModels.FromDomainRoomType(rt)
	}
	return resp
}
