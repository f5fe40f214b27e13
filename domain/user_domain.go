package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister   = "User created successfully"
	MessageSuccessLogin      = "Login successful"
	MessageSuccessGetProfile = "User profile fetched successfully"

	MessageFailedRegister     = "Failed to register user"
	MessageFailedLogin        = "Failed to login"
	MessageFailedGetProfile   = "Failed to get user profile"
	MessageEmailPasswordEmpty = "Email and password are required"
	MessageUserIDRequired     = "User ID is required"
	MessageUserAlreadyExists  = "User already exists"
	MessageInvalidCredentials = "Invalid email or password"
	MessageUserNotFound       = "User not found"

	ErrMissingCredentials = errors.New("email and password are required")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
)

type (
	UserRegisterRequest struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	UserLoginRequest struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	UserResponse struct {
		ID        string    `json:"id"`
		Email     string    `json:"email"`
		CreatedAt time.Time `json:"createdAt"`
		Token     string    `json:"token,omitempty"`
	}

	UserProfileResponse struct {
		ID        string    `json:"id"`
		Email     string    `json:"email"`
		CreatedAt time.Time `json:"createdAt"`
		UpdatedAt time.Time `json:"updatedAt"`
	}
)
