package service

import (
	"context"
	"testing"

	"enginerent-backend/internal/domain"
	"enginerent-backend/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubTokenManager struct {
	token string
}

func (s *stubTokenManager) GenerateAccessToken(userID int32, email, role string) (string, error) {
	return s.token, nil
}

func (s *stubTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	return nil, security.ErrInvalidToken
}

func TestRegister(t *testing.T) {
	userRepo := new(MockUserRepo)
	svc := NewAuthService(userRepo, &stubTokenManager{})

	userRepo.On("GetByEmail", mock.Anything, "new@b.com").Return(nil, domain.ErrNotFound)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "new@b.com" &&
			u.Role == domain.UserRoleClient &&
			u.PasswordHash != "" &&
			u.PasswordHash != "secret-pass"
	})).Return(nil)

	user, err := svc.Register(context.Background(), "new@b.com", "secret-pass", "Bo", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, domain.UserRoleClient, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret-pass")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepo)
	svc := NewAuthService(userRepo, &stubTokenManager{})

	userRepo.On("GetByEmail", mock.Anything, "taken@b.com").Return(&domain.User{ID: 1, Email: "taken@b.com"}, nil)

	_, err := svc.Register(context.Background(), "taken@b.com", "secret-pass", "Bo", "", "", "")
	assert.ErrorIs(t, err, domain.ErrConflict)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_UnknownRole(t *testing.T) {
	userRepo := new(MockUserRepo)
	svc := NewAuthService(userRepo, &stubTokenManager{})

	_, err := svc.Register(context.Background(), "new@b.com", "secret-pass", "Bo", "", "", "superuser")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestLogin(t *testing.T) {
	userRepo := new(MockUserRepo)
	svc := NewAuthService(userRepo, &stubTokenManager{token: "jwt-token"})

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	userRepo.On("GetByEmail", mock.Anything, "a@b.com").Return(&domain.User{
		ID: 3, Email: "a@b.com", PasswordHash: string(hash), Role: domain.UserRoleClient,
	}, nil)

	token, user, err := svc.Login(context.Background(), "a@b.com", "secret-pass")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, int32(3), user.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepo)
	svc := NewAuthService(userRepo, &stubTokenManager{})

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	userRepo.On("GetByEmail", mock.Anything, "a@b.com").Return(&domain.User{
		ID: 3, Email: "a@b.com", PasswordHash: string(hash),
	}, nil)

	_, _, err = svc.Login(context.Background(), "a@b.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepo)
	svc := NewAuthService(userRepo, &stubTokenManager{})

	userRepo.On("GetByEmail", mock.Anything, "ghost@b.com").Return(nil, domain.ErrNotFound)

	_, _, err := svc.Login(context.Background(), "ghost@b.com", "whatever")
	// Unknown email and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
