package service

import "github.com/GhufranBkri/Sipema-backend/internal/repository"

// PagedList adalah bentuk response listing standar.
type PagedList[T any] struct {
	Entries   []T   `json:"entries"`
	TotalData int64 `json:"totalData"`
	TotalPage int   `json:"totalPage"`
}

func NewPagedList[T any](entries []T, total int64, rows int) PagedList[T] {
	if entries == nil {
		entries = []T{}
	}
	return PagedList[T]{
		Entries:   entries,
		TotalData: total,
		TotalPage: repository.TotalPage(total, rows),
	}
}
