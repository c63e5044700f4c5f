package domain

import "strings"

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PageRequest é a paginação normalizada de uma listagem. Page começa em 1.
type PageRequest struct {
	Page  int
	Limit int
	Query string
}

func NewPageRequest(page, limit int, query string) PageRequest {
	if page < 1 {
		page = 1
	}

	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	return PageRequest{
		Page:  page,
		Limit: limit,
		Query: strings.ToLower(strings.TrimSpace(query)),
	}
}

func (p PageRequest) Offset() uint64 {
	return uint64((p.Page - 1) * p.Limit)
}

type Page[T any] struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Data  []T   `json:"data"`
}

func NewPage[T any](req PageRequest, total int64, data []T) *Page[T] {
	if data == nil {
		data = []T{}
	}

	return &Page[T]{
		Total: total,
		Page:  req.Page,
		Limit: req.Limit,
		Data:  data,
	}
}
