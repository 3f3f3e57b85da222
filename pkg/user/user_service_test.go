package user_test

import (
	"cafe-menu-backend/domain"
	"cafe-menu-backend/entities"
	"cafe-menu-backend/pkg/jwt"
	"cafe-menu-backend/pkg/user"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (user.UserService, jwt.JWTService) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}))

	jwtService := jwt.NewJWTService()
	return user.NewUserService(user.NewUserRepository(db), jwtService), jwtService
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, domain.RegisterRequest{
		Name:     "Mia",
		Email:    "mia@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStaff, registered.Role)

	login, err := svc.Login(ctx, domain.LoginRequest{Email: "mia@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, domain.RoleStaff, login.Role)

	profile, err := svc.Me(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "mia@example.com", profile.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := domain.RegisterRequest{Name: "Mia", Email: "mia@example.com", Password: "correct-horse"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{Name: "Mia", Email: "mia@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "mia@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "nobody@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestMeUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Me(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestResetPassword(t *testing.T) {
	svc, jwtService := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{Name: "Mia", Email: "mia@example.com", Password: "old-password"})
	require.NoError(t, err)

	token, err := jwtService.GenerateTokenResetPassword("mia@example.com", time.Minute*30)
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(ctx, domain.ResetPasswordRequest{Token: token, Password: "new-password"}))

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "mia@example.com", Password: "old-password"})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	login, err := svc.Login(ctx, domain.LoginRequest{Email: "mia@example.com", Password: "new-password"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
}

func TestResetPasswordBadToken(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.ResetPassword(context.Background(), domain.ResetPasswordRequest{Token: "garbage", Password: "new-password"})
	assert.ErrorIs(t, err, domain.ErrResetTokenInvalid)
}
