package request

import (
	"net/url"
	"strconv"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

// PaginationFromQuery reads ?page=&per_page=, falling back to the first
// page of ten for anything missing or not a positive integer.
func PaginationFromQuery(q url.Values) *PaginatedRequest {
	return &PaginatedRequest{
		Page:    positiveInt(q.Get("page"), 1),
		PerPage: positiveInt(q.Get("per_page"), defaultPerPage),
	}
}

func positiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func (p PaginatedRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit()
}

func (p PaginatedRequest) Limit() int {
	if p.PerPage < 1 {
		return defaultPerPage
	}
	return min(p.PerPage, maxPerPage)
}
