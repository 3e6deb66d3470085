package domain

import "errors"

// Domain errors as sentinel values
var (
	// Catalog errors
	ErrProductNotFound       = errors.New("product not found")
	ErrEmptyID               = errors.New("product id cannot be empty")
	ErrEmptyName             = errors.New("product name cannot be empty")
	ErrInvalidPrice          = errors.New("product price cannot be negative")
	ErrNegativeOriginalPrice = errors.New("original price cannot be negative")
	ErrNoImages              = errors.New("product must have at least one image")
	ErrUnknownCategory       = errors.New("product category is not a known category")
	ErrInvalidRating         = errors.New("product rating must be between 0 and 5")
	ErrInvalidReviews        = errors.New("product review count cannot be negative")

	// Session errors
	ErrNotLoggedIn  = errors.New("no active session")
	ErrEmptyEmail   = errors.New("email cannot be empty")
	ErrInvalidToken = errors.New("session token is invalid")
)
