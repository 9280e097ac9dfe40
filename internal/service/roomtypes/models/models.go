package models

import (
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// Request модели

// CreateRoomTypeRequest запрос на создание типа номера
type CreateRoomTypeRequest struct {
	HotelID  int64   `json:"hotelId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Total    int     `json:"total"`
	IsActive *bool   `json:"isActive,omitempty"` // по умолчанию true
}

// Response модели

// HotelBriefResponse краткие данные отеля внутри типа номера
type HotelBriefResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Address     string  `json:"address"`
	Description *string `json:"description,omitempty"`
}

// RoomTypeResponse ответ с данными типа номера
type RoomTypeResponse struct {
	ID        int64               `json:"id"`
	HotelID   int64               `json:"hotelId"`
	Name      string              `json:"name"`
	Price     float64             `json:"price"`
	Total     int                 `json:"total"`
	IsActive  bool                `json:"isActive"`
	CreatedAt string              `json:"createdAt"`
	UpdatedAt string              `json:"updatedAt"`
	Hotel     *HotelBriefResponse `json:"hotel,omitempty"`
}

// FromDomainRoomType конвертирует domain модель в response
func FromDomainRoomType(rt *domain.RoomType) *RoomTypeResponse {
	if rt == nil {
		return nil
	}
	resp := &RoomTypeResponse{
		ID:        rt.ID,
		HotelID:   rt.HotelID,
		Name:      rt.Name,
		Price:     rt.Price,
		Total:     rt.Total,
		IsActive:  rt.IsActive,
		CreatedAt: rt.CreatedAt.Format(time.RFC3339),
		UpdatedAt: rt.UpdatedAt.Format(time.RFC3339),
	}
	if rt.Hotel != nil {
		resp.Hotel = FromDomainHotelBrief(rt.Hotel)
	}
	return resp
}

// FromDomainHotelBrief конвертирует отель в краткий response
func FromDomainHotelBrief(h *domain.Hotel) *HotelBriefResponse {
	return &HotelBriefResponse{
		ID:          h.ID,
		Name:        h.Name,
		City:        h.City,
		Address:     h.Address,
		Description: h.Description,
	}
}
