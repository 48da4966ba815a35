package models

import "encoding/json"

// Response is the envelope the restaurant API wraps every payload in.
type Response struct {
	Status  string          `json:"status,omitempty"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

type PaginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type PaginatedResponse struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Meta   PaginationMeta  `json:"meta"`
}
