package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest   = "Failed to parse request body"
	MessageInternalServerError = "Internal Server Error"
	MessageFailedGetToken      = "Authorization token is required"
	MessageFailedTokenInvalid  = "Invalid or expired token"

	ErrValidation    = errors.New("validation failed")
	ErrParseUUID     = errors.New("failed to parse UUID")
	ErrTokenNotFound = errors.New("failed to token not found")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrTokenExpired  = errors.New("token expired")
)
