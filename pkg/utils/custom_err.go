package utils

import "errors"

var (
	ErrMissingCredentials   = errors.New("username and password required")
	ErrUserExists           = errors.New("user already exists")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrEmptyMessage         = errors.New("empty chat message")
	ErrAssistantUnavailable = errors.New("assistant unavailable")
	ErrStoreError           = errors.New("account store error")
)
