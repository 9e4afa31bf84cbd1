package service

import "errors"

// Sentinel errors services wrap with %w; handlers map them onto HTTP codes.
var (
	ErrValidation        = errors.New("validation")         // 400
	ErrInsufficientStock = errors.New("insufficient stock") // 400
	ErrUnauthorized      = errors.New("unauthorized")       // 401
	ErrNotFound          = errors.New("not found")          // 404
	ErrConflict          = errors.New("conflict")           // 409
	ErrProvider          = errors.New("provider failure")   // 502
)
