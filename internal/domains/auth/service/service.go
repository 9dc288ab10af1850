package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/auth_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"libdash/config"
	"libdash/infras/jwt"
	"libdash/infras/otel"
	"libdash/infras/sheets"
	"libdash/internal/domains/auth/model/dto"
	"libdash/shared"
	"libdash/shared/cache"
	"libdash/shared/constant"
	"libdash/shared/failure"
	"libdash/shared/timezone"
)

const sessionPrefix = "session"

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	Logout(ctx context.Context, username string) error
}

type serviceImpl struct {
	sheets     sheets.Client
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(sheetsClient sheets.Client, cfg *config.Config, redisCache cache.RedisCache, otel otel.Otel, jwtService jwt.JWT) Auth {
	return &serviceImpl{
		sheets:     sheetsClient,
		cfg:        cfg,
		cache:      redisCache,
		otel:       otel,
		jwtService: jwtService,
	}
}

// Login verifies the credentials against the upstream login endpoint and
// issues a token pair. The session record lives in the cache for the
// refresh token's lifetime, or longer when remember is set.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	credential, err := s.sheets.VerifyCredentials(ctx, req.Username, req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to verify credentials upstream")

		var fail *failure.Failure
		if errors.As(err, &fail) {
			return res, err
		}

		return res, failure.ConnectionError
	}

	if !credential.OK {
		log.Warn().Str("username", req.Username).Msg("login attempt with invalid credentials")

		message := credential.Message
		if message == "" {
			message = "Invalid username or password"
		}

		return res, failure.Unauthorized(message)
	}

	role := credential.Role
	if role == "" {
		role = constant.RoleAdmin
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, req.Username, role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	session := dto.Session{
		Username:   req.Username,
		Role:       role,
		Remember:   req.Remember,
		LoggedInAt: timezone.Now().Format(constant.DateFormat),
	}

	ttl := s.cfg.JWT.RefreshExpireMin * constant.MinutesToSeconds
	if req.Remember && s.cfg.JWT.RememberExpireMin > 0 {
		ttl = s.cfg.JWT.RememberExpireMin * constant.MinutesToSeconds
	}

	sessionKey := shared.BuildCacheKey(sessionPrefix, req.Username)
	if err = s.cache.Save(ctx, sessionKey, session, ttl); err != nil {
		log.Error().Err(err).Msg("failed to save session")

		return res, fmt.Errorf("failed to save session: %w", err)
	}

	res.FromTokenPair(tokenPair, req.Username, role)

	return res, nil
}

// RefreshToken rotates the token pair. The session must still exist;
// logging out invalidates every outstanding refresh token.
func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	claims, err := s.jwtService.ValidateToken(ctx, req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to validate refresh token")

		return res, failure.Unauthorized("invalid refresh token")
	}

	var session dto.Session

	sessionKey := shared.BuildCacheKey(sessionPrefix, claims.Username)
	if err = s.cache.Get(ctx, sessionKey, &session); err != nil {
		log.Warn().Str("username", claims.Username).Msg("refresh attempt without an active session")

		return res, failure.Unauthorized("session has expired")
	}

	tokenPair, err := s.jwtService.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

// Logout drops the session record so refresh tokens stop working.
func (s *serviceImpl) Logout(ctx context.Context, username string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	sessionKey := shared.BuildCacheKey(sessionPrefix, username)
	if err = s.cache.Delete(ctx, sessionKey); err != nil {
		log.Error().Err(err).Msg("failed to delete session")

		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
