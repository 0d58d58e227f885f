package domain

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNoMedia             = errors.New("no media files in folder")
	ErrDeliveryFailed      = errors.New("media delivery failed")
)
