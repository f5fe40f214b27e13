package user

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/entities"
	"Recipe-Sharing-API/pkg/jwt"
	"Recipe-Sharing-API/pkg/password"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.UserRegisterRequest) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.UserLoginRequest) (domain.UserResponse, error)
		GetProfile(ctx context.Context, userID string) (domain.UserProfileResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.UserRegisterRequest) (domain.UserResponse, error) {
	if req.Email == "" || req.Password == "" {
		return domain.UserResponse{}, domain.ErrMissingCredentials
	}

	_, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return domain.UserResponse{}, domain.ErrUserAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, fmt.Errorf("lookup user by email: %w", err)
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return domain.UserResponse{}, fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrPasswordTooLong)
		}
		return domain.UserResponse{}, fmt.Errorf("hash password: %w", err)
	}

	user := &entities.User{
		Email:    req.Email,
		Password: hashed,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		// a concurrent signup with the same email lost the race on the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserResponse{}, domain.ErrUserAlreadyExists
		}
		return domain.UserResponse{}, fmt.Errorf("create user: %w", err)
	}

	return s.userResponse(user)
}

func (s *userService) Login(ctx context.Context, req domain.UserLoginRequest) (domain.UserResponse, error) {
	if req.Email == "" || req.Password == "" {
		return domain.UserResponse{}, domain.ErrMissingCredentials
	}

	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			password.VerifyDummy(req.Password)
			return domain.UserResponse{}, domain.ErrInvalidCredentials
		}
		return domain.UserResponse{}, fmt.Errorf("lookup user by email: %w", err)
	}

	if !password.Verify(req.Password, user.Password) {
		return domain.UserResponse{}, domain.ErrInvalidCredentials
	}

	return s.userResponse(user)
}

func (s *userService) GetProfile(ctx context.Context, userID string) (domain.UserProfileResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return domain.UserProfileResponse{}, domain.ErrUserNotFound
	}

	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.UserProfileResponse{}, fmt.Errorf("lookup user by id: %w", err)
	}

	return domain.UserProfileResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

func (s *userService) userResponse(user *entities.User) (domain.UserResponse, error) {
	token, err := s.jwtService.GenerateTokenUser(user.ID.String())
	if err != nil {
		return domain.UserResponse{}, fmt.Errorf("generate token: %w", err)
	}

	return domain.UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		Token:     token,
	}, nil
}
