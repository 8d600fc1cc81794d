package dto

import "github.com/google/uuid"

type PaginationMeta struct {
	Total  int64 `json:"total"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

type PaginationRequest struct {
	Offset int `query:"offset" validate:"gte=0"`
	Limit  int `query:"limit" validate:"gte=0,lte=100"`
}

// Normalize เติมค่า default ถ้า client ไม่ส่งมา
func (p *PaginationRequest) Normalize() {
	if p.Limit == 0 {
		p.Limit = 20
	}
}

type IDRequest struct {
	ID uuid.UUID `json:"id" validate:"required" param:"id"`
}
