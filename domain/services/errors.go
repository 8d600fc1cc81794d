package services

import "errors"

// Sentinel errors ที่ handler แปลงเป็น HTTP status
var (
	ErrNotFound     = errors.New("resource not found")
	ErrForbidden    = errors.New("access denied")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("resource already exists")
	ErrTooLarge     = errors.New("payload too large")
	ErrUpstream     = errors.New("upstream provider error")
	ErrLocked       = errors.New("setting is locked by environment override")
)
