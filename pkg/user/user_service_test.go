package user

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/internal/utils/testdb"
	"Recipe-Sharing-API/pkg/jwt"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (UserService, UserRepository, jwt.JWTService) {
	t.Helper()
	repo := NewUserRepository(testdb.New(t))
	jwtService := jwt.NewJWTService("test-secret")
	return NewUserService(repo, jwtService), repo, jwtService
}

func TestRegister_ReturnsPublicViewAndToken(t *testing.T) {
	svc, repo, jwtService := newTestService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, domain.UserRegisterRequest{Email: "alice@example.com", Password: "pw1"})
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", res.Email)
	assert.False(t, res.CreatedAt.IsZero())
	_, err = uuid.Parse(res.ID)
	require.NoError(t, err)

	tokenUserID, err := jwtService.GetUserIDByToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.ID, tokenUserID)

	stored, err := repo.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", stored.Password)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Register(ctx, domain.UserRegisterRequest{Email: "alice@example.com", Password: "pw1"})
	require.NoError(t, err)
	before, err := repo.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)

	_, err = svc.Register(ctx, domain.UserRegisterRequest{Email: "alice@example.com", Password: "other"})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)

	after, err := repo.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, after.ID.String())
	assert.Equal(t, before.Password, after.Password)

	// the old password still works, the rejected one does not
	_, err = svc.Login(ctx, domain.UserLoginRequest{Email: "alice@example.com", Password: "pw1"})
	assert.NoError(t, err)
	_, err = svc.Login(ctx, domain.UserLoginRequest{Email: "alice@example.com", Password: "other"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRegister_EmailIsCaseSensitive(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.UserRegisterRequest{Email: "alice@example.com", Password: "pw1"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, domain.UserRegisterRequest{Email: "Alice@example.com", Password: "pw1"})
	assert.NoError(t, err)
}

func TestRegister_MissingFields(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Register(context.Background(), domain.UserRegisterRequest{Email: "a@b.c"})
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
	_, err = svc.Register(context.Background(), domain.UserRegisterRequest{Password: "pw"})
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
}

func TestLogin_NonEnumerable(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.UserRegisterRequest{Email: "alice@example.com", Password: "pw1"})
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, domain.UserLoginRequest{Email: "alice@example.com", Password: "nope"})
	_, unknownEmail := svc.Login(ctx, domain.UserLoginRequest{Email: "bob@example.com", Password: "pw1"})

	assert.ErrorIs(t, wrongPassword, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, domain.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLogin_Success(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, domain.UserRegisterRequest{Email: "alice@example.com", Password: "pw1"})
	require.NoError(t, err)

	res, err := svc.Login(ctx, domain.UserLoginRequest{Email: "alice@example.com", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, res.ID)
	assert.Equal(t, "alice@example.com", res.Email)
	assert.NotEmpty(t, res.Token)
}

func TestGetProfile(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, domain.UserRegisterRequest{Email: "alice@example.com", Password: "pw1"})
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, profile.ID)
	assert.Equal(t, "alice@example.com", profile.Email)
	assert.False(t, profile.UpdatedAt.IsZero())

	_, err = svc.GetProfile(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = svc.GetProfile(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRegister_PasswordTooLong(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.UserRegisterRequest{Email: "a@example.com", Password: strings.Repeat("x", 80)})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorIs(t, err, domain.ErrPasswordTooLong)

	_, err = repo.GetUserByEmail(ctx, "a@example.com")
	assert.Error(t, err)

	_, err = svc.Register(ctx, domain.UserRegisterRequest{Email: "a@example.com", Password: strings.Repeat("x", 72)})
	assert.NoError(t, err)
}
