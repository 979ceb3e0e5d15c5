package pages

import "errors"

var (
	ErrPageNotFound = errors.New("page not found")
)
