package api

import "gymdesk/internal/apperr"

type ErrorResponse struct {
	Message string              `json:"message" example:"Gym not found"`
	Errors  []apperr.FieldError `json:"errors,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database,omitempty" example:"ok"`
	Redis    string `json:"redis,omitempty" example:"ok"`
}

type CountResponse struct {
	Count int `json:"count" example:"3"`
}
