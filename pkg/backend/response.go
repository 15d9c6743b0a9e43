package backend

import "github.com/Tyler2517/creditkeeper/internal/model"

type CustomerPage struct {
	Customers   []model.Customer `json:"customers"`
	TotalPages  int              `json:"total_pages"`
	CurrentPage int              `json:"current_page"`
}

type errorResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

func (r errorResponse) text() string {
	switch {
	case r.Message != "":
		return r.Message
	case r.Error != "":
		return r.Error
	default:
		return r.Detail
	}
}
