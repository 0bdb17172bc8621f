package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/auth/model/dto"
	userModel "hotel/internal/domains/user/model"
	userRepo "hotel/internal/domains/user/repository"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/password"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error)
	Authenticate(ctx context.Context, req dto.LoginRequest) (dto.Identity, error)
}

type serviceImpl struct {
	userRepo userRepo.User
	otel     otel.Otel
}

func New(userRepo userRepo.User, otel otel.Otel) Auth {
	return &serviceImpl{
		userRepo: userRepo,
		otel:     otel,
	}
}

// Register creates a customer and returns the ID the store generated for it.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.RegisterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if errors.Is(err, password.ErrPasswordTooLong) {
		return res, failure.BadRequestFromString(fmt.Sprintf("Password must be at most %d bytes", password.MaxLength))
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	res.UserID, err = s.userRepo.InsertReturningID(ctx, req.ToUserModel(hashedPassword))
	if err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Int64("userID", res.UserID).Msg("user registered")

	return res, nil
}

// Authenticate checks the credentials of a user. Unknown users and wrong
// passwords get the same answer.
func (s *serviceImpl) Authenticate(ctx context.Context, req dto.LoginRequest) (res dto.Identity, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Authenticate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(req.UserID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == 0 {
		log.Warn().Int64("userID", req.UserID).Msg("login attempt with unknown user")

		return res, failure.InvalidCredentialsError
	}

	if err = password.Verify(req.Password, user.Password); err != nil {
		if !errors.Is(err, password.ErrInvalidPassword) {
			log.Error().Err(err).Msg("failed to verify password")
		}

		log.Warn().Int64("userID", req.UserID).Msg("login attempt with wrong password")

		return res, failure.InvalidCredentialsError
	}

	res.FromModel(user)

	return res, nil
}
