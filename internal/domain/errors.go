package domain

import "github.com/pkg/errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidPagination = errors.New("page and page size must be positive integers")
)
