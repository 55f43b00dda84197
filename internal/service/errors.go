package service

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrPlaceNotFound   = errors.New("place not found")
	ErrAmenityNotFound = errors.New("amenity not found")
	ErrReviewNotFound  = errors.New("review not found")
	// ErrOwnerNotFound is returned when a place names an owner that does not
	// exist. It also matches [ErrUserNotFound].
	ErrOwnerNotFound = fmt.Errorf("owner not found: %w", ErrUserNotFound)

	ErrDuplicateEmail       = errors.New("email already registered")
	ErrDuplicateAmenityName = errors.New("amenity name already exists")

	ErrSelfReviewForbidden = errors.New("you cannot review your own place")
	ErrAlreadyReviewed     = errors.New("you have already reviewed this place")
	ErrForbidden           = errors.New("unauthorized action")

	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)
