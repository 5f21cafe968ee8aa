package service

import "animehub/internal/domain"

// Caller-facing errors. Each is classified by a domain sentinel so the
// handler layer can pick a status code with errors.Is.
var (
	ErrShowNotFound       = domain.NewError(domain.ErrNotFound, "Show not found.")
	ErrRatingNotFound     = domain.NewError(domain.ErrNotFound, "Rating not found.")
	ErrNotRatingOwner     = domain.NewError(domain.ErrForbidden, "Not authorized to delete this rating.")
	ErrRatingConflict     = domain.NewError(domain.ErrConflict, "Rating was modified concurrently, please retry.")
	ErrReviewExists       = domain.NewError(domain.ErrConflict, "You have already submitted a review for this episode.")
	ErrUserNotFound       = domain.NewError(domain.ErrNotFound, "User not found")
	ErrUserGone           = domain.NewError(domain.ErrUnauthorized, "Not authorized, user not found")
	ErrNameInUse          = domain.NewError(domain.ErrConflict, "Username is already taken. Please choose a different username.")
	ErrEmailInUse         = domain.NewError(domain.ErrConflict, "Email is already registered.")
	ErrAccountExists      = domain.NewError(domain.ErrConflict, "An account with that username or email already exists.")
	ErrAccountDisabled    = domain.NewError(domain.ErrUnauthorized, "Account is disabled")
	ErrInvalidCredentials = domain.NewError(domain.ErrUnauthorized, "Invalid email or password")
	ErrInvalidToken       = domain.NewError(domain.ErrUnauthorized, "invalid token")
	ErrExpiredToken       = domain.NewError(domain.ErrUnauthorized, "token has expired")
	ErrBlogNotFound       = domain.NewError(domain.ErrNotFound, "Blog not found")
	ErrBlogNotOwned       = domain.NewError(domain.ErrNotFound, "Blog not found or unauthorized")
	ErrAlreadyInList      = domain.NewError(domain.ErrConflict, "Show already in your list")
	ErrWatchEntryNotFound = domain.NewError(domain.ErrNotFound, "Show not found in your list")
	ErrHomeItemNotFound   = domain.NewError(domain.ErrNotFound, "Not found")
)
