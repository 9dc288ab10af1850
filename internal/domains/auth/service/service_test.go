package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"libdash/config"
	"libdash/infras/jwt"
	"libdash/infras/otel/mocks"
	"libdash/infras/sheets"
	sheetsMocks "libdash/infras/sheets/mocks"
	"libdash/internal/domains/auth/model/dto"
	"libdash/internal/domains/auth/service"
	"libdash/shared/cache"
	cacheMocks "libdash/shared/cache/mocks"
	"libdash/shared/failure"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "libdash-test"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60
	cfg.JWT.RememberExpireMin = 1440

	return cfg
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSheets := sheetsMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	cfg := testConfig()

	svc := service.New(mockSheets, cfg, mockCache, mockOtel, jwt.New(cfg))

	mockSheets.EXPECT().
		VerifyCredentials(gomock.Any(), "librarian", "secret").
		Return(sheets.Credential{OK: true, Username: "librarian", Role: "admin"}, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), "session:librarian", gomock.Any(), cfg.JWT.RefreshExpireMin*60).
		Return(nil)

	res, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "librarian",
		Password: "secret",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	assert.Equal(t, "librarian", res.Username)
	assert.Equal(t, "admin", res.Role)
}

func TestAuthService_LoginRememberExtendsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSheets := sheetsMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	cfg := testConfig()

	svc := service.New(mockSheets, cfg, mockCache, mockOtel, jwt.New(cfg))

	mockSheets.EXPECT().
		VerifyCredentials(gomock.Any(), "librarian", "secret").
		Return(sheets.Credential{OK: true, Role: "admin"}, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), "session:librarian", gomock.Any(), cfg.JWT.RememberExpireMin*60).
		Return(nil)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "librarian",
		Password: "secret",
		Remember: true,
	})

	assert.NoError(t, err)
}

func TestAuthService_LoginInvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSheets := sheetsMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	cfg := testConfig()

	svc := service.New(mockSheets, cfg, mockCache, mockOtel, jwt.New(cfg))

	mockSheets.EXPECT().
		VerifyCredentials(gomock.Any(), "librarian", "wrong").
		Return(sheets.Credential{}, nil)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "librarian",
		Password: "wrong",
	})

	assert.Error(t, err)
	assert.Equal(t, 401, failure.GetCode(err))
	assert.EqualError(t, err, "Invalid username or password")
}

func TestAuthService_LoginUpstreamMessagePropagated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSheets := sheetsMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	cfg := testConfig()

	svc := service.New(mockSheets, cfg, mockCache, mockOtel, jwt.New(cfg))

	mockSheets.EXPECT().
		VerifyCredentials(gomock.Any(), "librarian", "wrong").
		Return(sheets.Credential{Message: "Account is locked"}, nil)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "librarian",
		Password: "wrong",
	})

	assert.Error(t, err)
	assert.Equal(t, 401, failure.GetCode(err))
	assert.EqualError(t, err, "Account is locked")
}

func TestAuthService_LoginConnectionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSheets := sheetsMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	cfg := testConfig()

	svc := service.New(mockSheets, cfg, mockCache, mockOtel, jwt.New(cfg))

	mockSheets.EXPECT().
		VerifyCredentials(gomock.Any(), "librarian", "secret").
		Return(sheets.Credential{}, failure.ConnectionError)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "librarian",
		Password: "secret",
	})

	assert.ErrorIs(t, err, failure.ConnectionError)
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSheets := sheetsMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	cfg := testConfig()

	jwtService := jwt.New(cfg)
	svc := service.New(mockSheets, cfg, mockCache, mockOtel, jwtService)

	tokenPair, err := jwtService.GenerateTokenPair(context.Background(), "librarian", "admin")
	assert.NoError(t, err)

	mockCache.EXPECT().
		Get(gomock.Any(), "session:librarian", gomock.Any()).
		Return(nil)

	res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{
		RefreshToken: tokenPair.RefreshToken,
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
}

func TestAuthService_RefreshTokenWithoutSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSheets := sheetsMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	cfg := testConfig()

	jwtService := jwt.New(cfg)
	svc := service.New(mockSheets, cfg, mockCache, mockOtel, jwtService)

	tokenPair, err := jwtService.GenerateTokenPair(context.Background(), "librarian", "admin")
	assert.NoError(t, err)

	mockCache.EXPECT().
		Get(gomock.Any(), "session:librarian", gomock.Any()).
		Return(cache.Nil)

	_, err = svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{
		RefreshToken: tokenPair.RefreshToken,
	})

	assert.Error(t, err)
	assert.Equal(t, 401, failure.GetCode(err))
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSheets := sheetsMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	cfg := testConfig()

	svc := service.New(mockSheets, cfg, mockCache, mockOtel, jwt.New(cfg))

	mockCache.EXPECT().
		Delete(gomock.Any(), "session:librarian").
		Return(nil)

	assert.NoError(t, svc.Logout(context.Background(), "librarian"))
}
