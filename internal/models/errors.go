package models

import (
	"errors"
)

var (
	ErrNoRecord         = errors.New("models: no matching record found")
	ErrUserNotFound     = errors.New("models: user not found")
	ErrRequestNotFound  = errors.New("request not found")
	ErrOfferNotFound    = errors.New("offer not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrJobNotFound      = errors.New("paired job not found")
	ErrProviderNotFound = errors.New("provider not found")

	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrDuplicatePhone     = errors.New("models: duplicate phone number")

	ErrValidation        = errors.New("missing or invalid required fields")
	ErrInvalidStatus     = errors.New("invalid status value")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrRequestNotOpen    = errors.New("request is not open for offers")
	ErrOfferDecided      = errors.New("offer already accepted or rejected")

	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	ErrPaymentIntentNotFound = errors.New("payment intent not found or expired")
	ErrInsufficientTokens    = errors.New("insufficient token balance")
)
