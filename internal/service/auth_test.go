package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/resumelab/resumelab/internal/data"
	domainauth "github.com/resumelab/resumelab/internal/domain/auth"
	"github.com/resumelab/resumelab/internal/domain/model"
	apperrors "github.com/resumelab/resumelab/internal/errors"
	"github.com/resumelab/resumelab/internal/mocks"
	mockauth "github.com/resumelab/resumelab/internal/mocks/auth"
)

const (
	testUserID    = "user-123"
	testUserEmail = "alice@example.com"
)

type authServiceFixture struct {
	users    *mocks.MockUserRepository
	sessions *mockauth.MemorySessionStore
	tokens   *mockauth.FakeTokenIssuer
	hasher   *mockauth.FakePasswordHasher
	service  *AuthService
}

func newAuthService(t *testing.T) *authServiceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &authServiceFixture{
		users:    mocks.NewMockUserRepository(ctrl),
		sessions: mockauth.NewMemorySessionStore(),
		tokens:   &mockauth.FakeTokenIssuer{},
		hasher:   &mockauth.FakePasswordHasher{},
	}
	f.service = NewAuthService(AuthServiceOptions{
		Users:    f.users,
		Sessions: f.sessions,
		Tokens:   f.tokens,
		Hasher:   f.hasher,
	})
	return f
}

func testUser() *model.User {
	return &model.User{
		ID:           testUserID,
		Email:        testUserEmail,
		PasswordHash: "hashed:correct-horse",
		CreatedAt:    time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	t.Parallel()
	f := newAuthService(t)
	ctx := context.Background()

	f.users.EXPECT().
		Create(ctx, testUserEmail, "hashed:correct-horse").
		Return(testUser(), nil).
		Times(1)

	user, err := f.service.Register(ctx, &model.RegisterRequest{
		Email:    " Alice@Example.com ",
		Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.Equal(t, testUserEmail, user.Email)
}

func TestAuthService_Register_InvalidEmail(t *testing.T) {
	t.Parallel()
	f := newAuthService(t)

	_, err := f.service.Register(context.Background(), &model.RegisterRequest{
		Email:    "not-an-email",
		Password: "correct-horse",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	t.Parallel()
	f := newAuthService(t)

	_, err := f.service.Register(context.Background(), &model.RegisterRequest{
		Email:    testUserEmail,
		Password: "short",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "password", apperrors.GetField(err))
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()
	f := newAuthService(t)
	ctx := context.Background()

	f.users.EXPECT().
		Create(ctx, testUserEmail, gomock.Any()).
		Return(nil, apperrors.Conflict("an account with this email already exists")).
		Times(1)

	_, err := f.service.Register(ctx, &model.RegisterRequest{
		Email:    testUserEmail,
		Password: "correct-horse",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestAuthService_Login_Success(t *testing.T) {
	t.Parallel()
	f := newAuthService(t)
	ctx := context.Background()

	f.users.EXPECT().
		GetByEmail(ctx, testUserEmail).
		Return(testUser(), nil).
		Times(1)

	result, err := f.service.Login(ctx, &model.LoginRequest{
		Email:    testUserEmail,
		Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, testUserID, result.Session.UserID)
	assert.Equal(t, 1, f.sessions.Len())

	stored, err := f.sessions.Get(ctx, result.Session.ID)
	require.NoError(t, err)
	assert.True(t, stored.ExpiresAt.After(stored.IssuedAt))
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	t.Parallel()
	f := newAuthService(t)
	ctx := context.Background()

	f.users.EXPECT().
		GetByEmail(ctx, "nobody@example.com").
		Return(nil, data.ErrUserNotFound).
		Times(1)

	_, err := f.service.Login(ctx, &model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct-horse",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.EqualError(t, err, "invalid email or password")
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	t.Parallel()
	f := newAuthService(t)
	ctx := context.Background()

	f.users.EXPECT().
		GetByEmail(ctx, testUserEmail).
		Return(testUser(), nil).
		Times(1)

	_, err := f.service.Login(ctx, &model.LoginRequest{
		Email:    testUserEmail,
		Password: "wrong-password",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	// Same message as unknown email so callers cannot tell them apart.
	assert.EqualError(t, err, "invalid email or password")
	assert.Equal(t, 0, f.sessions.Len())
}

func TestAuthService_Login_SessionSaveError(t *testing.T) {
	t.Parallel()
	f := newAuthService(t)
	ctx := context.Background()
	f.sessions.SaveErr = errors.New("redis down")

	f.users.EXPECT().
		GetByEmail(ctx, testUserEmail).
		Return(testUser(), nil).
		Times(1)

	_, err := f.service.Login(ctx, &model.LoginRequest{
		Email:    testUserEmail,
		Password: "correct-horse",
	})

	require.Error(t, err)
	assert.ErrorContains(t, err, "save session")
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	t.Parallel()
	f := newAuthService(t)
	ctx := context.Background()

	f.users.EXPECT().
		GetByEmail(ctx, testUserEmail).
		Return(testUser(), nil).
		Times(1)

	result, err := f.service.Login(ctx, &model.LoginRequest{
		Email:    testUserEmail,
		Password: "correct-horse",
	})
	require.NoError(t, err)

	session, err := f.service.Authenticate(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, testUserID, session.UserID)
	assert.Equal(t, result.Session.ID, session.ID)
}

func TestAuthService_Authenticate_MissingToken(t *testing.T) {
	t.Parallel()
	f := newAuthService(t)

	_, err := f.service.Authenticate(context.Background(), "")

	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestAuthService_Authenticate_RevokedSession(t *testing.T) {
	t.Parallel()
	f := newAuthService(t)
	ctx := context.Background()

	f.users.EXPECT().
		GetByEmail(ctx, testUserEmail).
		Return(testUser(), nil).
		Times(1)

	result, err := f.service.Login(ctx, &model.LoginRequest{
		Email:    testUserEmail,
		Password: "correct-horse",
	})
	require.NoError(t, err)

	require.NoError(t, f.service.Logout(ctx, result.Session.ID))

	_, err = f.service.Authenticate(ctx, result.Token)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestAuthService_Authenticate_ExpiredSession(t *testing.T) {
	t.Parallel()
	f := newAuthService(t)
	ctx := context.Background()

	expired := domainauth.Session{
		ID:        "sess-expired",
		UserID:    testUserID,
		Email:     testUserEmail,
		IssuedAt:  time.Now().Add(-48 * time.Hour),
		ExpiresAt: time.Now().Add(-24 * time.Hour),
	}
	require.NoError(t, f.sessions.Save(ctx, expired))

	token, err := f.tokens.Issue(expired)
	require.NoError(t, err)

	_, err = f.service.Authenticate(ctx, token)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestAuthService_Authenticate_UserMismatch(t *testing.T) {
	t.Parallel()
	f := newAuthService(t)
	ctx := context.Background()

	sess := domainauth.Session{
		ID:        "sess-1",
		UserID:    "someone-else",
		Email:     "other@example.com",
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, f.sessions.Save(ctx, sess))

	// Token claims a different user than the stored session.
	forged, err := f.tokens.Issue(domainauth.Session{ID: "sess-1", UserID: testUserID})
	require.NoError(t, err)

	_, err = f.service.Authenticate(ctx, forged)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestAuthService_Logout_EmptySessionID(t *testing.T) {
	t.Parallel()
	f := newAuthService(t)

	require.NoError(t, f.service.Logout(context.Background(), ""))
}
