package service

//go:generate go run go.uber.org/mock/mockgen -source=./token.go -destination=../mocks/token_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/jwt"
	"hotel/infras/otel"
	"hotel/internal/domains/auth/model/dto"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

// Token issues and revokes the bearer tokens used by the HTTP API.
type Token interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Refresh(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	Logout(ctx context.Context, accessToken string) error
}

type tokenImpl struct {
	auth Auth
	jwt  jwt.JWT
	otel otel.Otel
}

func NewToken(auth Auth, jwt jwt.JWT, otel otel.Otel) Token {
	return &tokenImpl{
		auth: auth,
		jwt:  jwt,
		otel: otel,
	}
}

func (s *tokenImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	identity, err := s.auth.Authenticate(ctx, req)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	tokenPair, err := s.jwt.GenerateTokenPair(identity.UserID, identity.Name, identity.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token pair")

		return res, fmt.Errorf("failed to generate token pair: %w", err)
	}

	res.Identity = identity
	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *tokenImpl) Refresh(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Refresh")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	tokenPair, err := s.jwt.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized(err.Error())
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

// Logout revokes the access token until it would have expired anyway.
func (s *tokenImpl) Logout(ctx context.Context, accessToken string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwt.ValidateToken(ctx, accessToken, jwt.AccessToken)
	if err != nil {
		return failure.Unauthorized(err.Error())
	}

	if err = s.jwt.Revoke(ctx, claims); err != nil {
		log.Error().Err(err).Msg("failed to revoke token")

		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}
