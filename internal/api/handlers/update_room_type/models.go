package update_room_type

// UpdatePriceRequest тело PATCH .../price
type UpdatePriceRequest struct {
	Price *float64 `json:"price"`
}

// UpdateStatusRequest тело PATCH .../status
type UpdateStatusRequest struct {
	IsActive *bool `json:"isActive"`
}

// UpdateStockRequest тело PATCH .../stock. Дробное число отклоняется при разборе JSON
type UpdateStockRequest struct {
	Total *int `json:"total"`
}
