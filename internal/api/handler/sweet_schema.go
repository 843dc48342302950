package handler

import "github.com/sweetshop/sweetshop-api/internal/core/domain"

// --- Request types ---

// Price and Quantity are pointers so a legitimate zero survives the
// required check.
type createSweetRequest struct {
	Name     string   `json:"name"     validate:"required"`
	Category string   `json:"category" validate:"required"`
	Price    *float64 `json:"price"    validate:"required,gte=0"`
	Quantity *int     `json:"quantity" validate:"omitempty,gte=0"`
}

// updateSweetRequest is a partial update: nil fields are left untouched.
type updateSweetRequest struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
}

type restockRequest struct {
	Amount *int `json:"amount"`
}

// --- Response envelopes ---

// sweetResponse wraps a single item: {"success":true,"data":{...}}.
type sweetResponse struct {
	Success bool          `json:"success"`
	Data    *domain.Sweet `json:"data"`
}

// sweetListResponse wraps collections: {"success":true,"count":N,"data":[...]}.
type sweetListResponse struct {
	Success bool            `json:"success"`
	Count   int             `json:"count"`
	Data    []*domain.Sweet `json:"data"`
}

// emptyResponse is returned by delete: {"success":true,"data":{}}.
type emptyResponse struct {
	Success bool     `json:"success"`
	Data    struct{} `json:"data"`
}
